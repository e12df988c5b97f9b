package studyhelper

import "errors"

var (
	// ErrEmptyMessage means the chat action arrived without a message body.
	ErrEmptyMessage = errors.New("message is required")

	// ErrAssignmentNotFound means the referenced assignment does not exist
	// for this caller.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrNoFlashcardsFound means the generated reply contained no usable
	// flashcard list. Distinct from ErrMalformedFlashcards so callers can
	// tell "no list" from "broken list".
	ErrNoFlashcardsFound = errors.New("no flashcards found in the generated reply")

	// ErrMalformedFlashcards means a bracketed list was present but could
	// not be parsed. The whole batch is rejected.
	ErrMalformedFlashcards = errors.New("generated flashcard list could not be parsed")

	// ErrReplyNotPersisted means a reply was generated but storing the
	// assistant turn failed. The reply is still returned alongside this
	// error so the caller can show it while flagging the partial success.
	ErrReplyNotPersisted = errors.New("reply generated but not persisted")
)
