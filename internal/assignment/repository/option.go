package repository

// CreateOptions holds the parameters for storing a new assignment.
// Difficulty and EstimatedMinutes arrive already bounded from the estimator.
type CreateOptions struct {
	Title            string
	Description      string
	DueDate          string // YYYY-MM-DD
	Difficulty       int
	EstimatedMinutes int
	ClassID          string // optional
}
