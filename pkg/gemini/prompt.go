package gemini

import "fmt"

// estimationPrompt carries the reference table the model anchors its
// estimates on. The reply contract (two comma-separated numbers) keeps
// parsing trivial.
const estimationPrompt = `You are an academic task estimator. Estimate the time (in minutes) and difficulty (1-10 scale) for this assignment.

Reference guide:
| Task Type | Minutes | Difficulty |
|-----------|---------|------------|
| Math worksheet (10-20 problems) | 20 | 3 |
| Math homework (30-40 problems) | 45 | 4 |
| Reading assignment (10-20 pages) | 30 | 2 |
| Reading textbook chapter | 45 | 3 |
| Short essay (1-2 pages) | 90 | 4 |
| Essay (3-5 pages) | 180 | 5 |
| Lab report | 120 | 5 |
| Research paper (5-10 pages) | 600 | 8 |
| Major research paper (10+ pages) | 900 | 9 |
| Programming assignment (simple) | 60 | 6 |
| Programming project (complex) | 240 | 8 |
| Study for quiz | 30 | 3 |
| Study for test | 90 | 5 |
| Study for final exam | 240 | 7 |
| Group project | 300 | 6 |
| Presentation preparation | 120 | 5 |
| Problem set (physics/chemistry) | 60 | 6 |

Task: %s

Reply with ONLY two numbers separated by comma: minutes,difficulty
Example: 45,4`

// BuildEstimationPrompt embeds the task text into the estimation prompt.
func BuildEstimationPrompt(taskInfo string) string {
	return fmt.Sprintf(estimationPrompt, taskInfo)
}

// BuildSuggestMaterialsPrompt asks for study material suggestions for the
// given assignment context.
func BuildSuggestMaterialsPrompt(context string) string {
	return fmt.Sprintf(`You are a helpful study assistant. Based on this assignment, suggest what study materials would be most helpful:

%s

Provide a short, friendly response suggesting:
1. Whether flashcards would help (and what topics)
2. Whether a study guide would help (and what to include)
3. Whether practice tests would help

Keep it brief and encouraging (2-3 sentences per suggestion).`, context)
}

// BuildChatPrompt embeds the assignment context, the rendered conversation
// history, and the student's new message.
func BuildChatPrompt(context, history, message string) string {
	return fmt.Sprintf(`You are a friendly, helpful study assistant. The student is working on this assignment:

%s

Previous conversation:
%s

Student: %s

Provide a helpful, encouraging response. If they ask for study materials, be specific about what you can help create.`, context, history, message)
}

// BuildFlashcardsPrompt asks for a JSON array of flashcards.
func BuildFlashcardsPrompt(context string, count int) string {
	return fmt.Sprintf(`Create %d flashcards to help study for this assignment:

%s

Return ONLY a JSON array of flashcards:
[
  {"front": "Question/Term", "back": "Answer/Definition"},
  ...
]

Make them focused on key concepts, terms, and ideas.`, count, context)
}

// BuildStudyGuidePrompt asks for a markdown study guide.
func BuildStudyGuidePrompt(context string) string {
	return fmt.Sprintf(`Create a comprehensive study guide for this assignment:

%s

Include:
1. Key Concepts (bullet points)
2. Important Terms & Definitions
3. Main Topics to Focus On
4. Practice Questions (3-5)

Format with clear markdown headings and be thorough.`, context)
}
