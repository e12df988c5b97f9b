package http

import (
	"time"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
)

// Action names accepted by the dispatch endpoint.
const (
	actionSuggestMaterials   = "suggest-materials"
	actionChat               = "chat"
	actionGenerateFlashcards = "generate-flashcards"
	actionGenerateStudyGuide = "generate-study-guide"
)

// --- Request DTOs ---

type actionReq struct {
	Action       string `json:"action" binding:"required"`
	AssignmentID string `json:"assignment_id"`
	Message      string `json:"message"`

	// Context for the no-assignment general study path.
	AssignmentTitle       string `json:"assignment_title"`
	AssignmentDescription string `json:"assignment_description"`
}

func (r actionReq) taskRef() studyhelper.TaskRef {
	return studyhelper.TaskRef{
		AssignmentID: r.AssignmentID,
		Title:        r.AssignmentTitle,
		Description:  r.AssignmentDescription,
	}
}

type historyReq struct {
	AssignmentID string `form:"assignment_id"`
}

// --- Response DTOs ---

type actionItemResp struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type suggestResp struct {
	Suggestion string           `json:"suggestion"`
	Actions    []actionItemResp `json:"actions"`
}

func (h *handler) newSuggestResp(out studyhelper.SuggestOutput) suggestResp {
	actions := make([]actionItemResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = actionItemResp{ID: a.ID, Label: a.Label}
	}
	return suggestResp{
		Suggestion: out.Suggestion,
		Actions:    actions,
	}
}

type chatResp struct {
	Reply     string `json:"reply"`
	Persisted bool   `json:"persisted"`
}

func (h *handler) newChatResp(out studyhelper.ChatOutput) chatResp {
	return chatResp{
		Reply:     out.Reply,
		Persisted: out.Persisted,
	}
}

type flashcardResp struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

type flashcardsResp struct {
	Topic      string          `json:"topic"`
	Flashcards []flashcardResp `json:"flashcards"`
	Count      int             `json:"count"`
}

func (h *handler) newFlashcardsResp(out studyhelper.FlashcardsOutput) flashcardsResp {
	cards := make([]flashcardResp, len(out.Flashcards))
	for i, card := range out.Flashcards {
		cards[i] = flashcardResp{
			ID:    card.ID,
			Topic: card.Topic,
			Front: card.Front,
			Back:  card.Back,
		}
	}
	return flashcardsResp{
		Topic:      out.Topic,
		Flashcards: cards,
		Count:      len(cards),
	}
}

type guideResp struct {
	ID      string    `json:"id"`
	Topic   string    `json:"topic"`
	Content string    `json:"content"`
	Created time.Time `json:"created_at"`
}

func (h *handler) newGuideResp(out studyhelper.GuideOutput) guideResp {
	return guideResp{
		ID:      out.Guide.ID,
		Topic:   out.Guide.Topic,
		Content: out.Guide.Content,
		Created: out.Guide.CreatedAt,
	}
}

type turnResp struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id,omitempty"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	Context      string    `json:"context,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newTurnResp(turn model.ChatTurn) turnResp {
	return turnResp{
		ID:           turn.ID,
		AssignmentID: turn.AssignmentID,
		Role:         string(turn.Role),
		Content:      turn.Content,
		Context:      turn.Context,
		CreatedAt:    turn.CreatedAt,
	}
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
	Count int        `json:"count"`
}

func (h *handler) newHistoryResp(out studyhelper.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, turn := range out.Turns {
		turns[i] = newTurnResp(turn)
	}
	return historyResp{
		Turns: turns,
		Count: len(turns),
	}
}
