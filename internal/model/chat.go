package model

import "time"

// TurnRole is the author of a chat turn.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// ChatTurn is one message in a study-helper conversation thread. A thread is
// scoped by (UserID, AssignmentID); an empty AssignmentID is the general
// study thread. Turns are never mutated; ordering is CreatedAt ascending with
// Seq as the insertion-order tiebreak.
type ChatTurn struct {
	ID           string
	Seq          int64
	UserID       string
	AssignmentID string
	Role         TurnRole
	Content      string
	Context      string // optional JSON note attached to assistant turns
	CreatedAt    time.Time
}

// Flashcard is one front/back study card, produced in batches.
type Flashcard struct {
	ID        string
	UserID    string
	Topic     string
	Front     string
	Back      string
	CreatedAt time.Time
}

// StudyGuide is a generated guide document. Content is opaque formatted text.
type StudyGuide struct {
	ID        string
	UserID    string
	Topic     string
	Content   string
	CreatedAt time.Time
}
