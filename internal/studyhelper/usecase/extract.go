package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AnishD4/StudyTide/internal/studyhelper"
)

// rawFlashcard is one record as the generator writes it.
type rawFlashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// extractFlashcards recovers a flashcard list from a free-text reply. The
// span between the first '[' and the last ']' is parsed as a JSON array; a
// malformed span rejects the whole batch. Records with an empty front or
// back are dropped without failing the batch, and the returned list is
// never empty.
func extractFlashcards(raw string) ([]rawFlashcard, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, studyhelper.ErrNoFlashcardsFound
	}

	var cards []rawFlashcard
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", studyhelper.ErrMalformedFlashcards, err)
	}

	kept := make([]rawFlashcard, 0, len(cards))
	for _, card := range cards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			continue
		}
		kept = append(kept, card)
	}
	if len(kept) == 0 {
		return nil, studyhelper.ErrNoFlashcardsFound
	}

	return kept, nil
}

// stripFences removes markdown code fence lines so a reply wrapped in
// ```json ... ``` parses the same as a bare one.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
