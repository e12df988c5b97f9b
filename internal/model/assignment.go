package model

import "time"

// Assignment is a single academic task tracked for a user.
type Assignment struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	DueDate          string // YYYY-MM-DD
	Difficulty       int    // 1-10
	EstimatedMinutes int
	ClassID          string // optional link to a class
	ClassName        string // joined from classes, read-only
	Completed        bool
	CreatedAt        time.Time
}
