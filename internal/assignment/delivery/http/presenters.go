package http

import (
	"strings"
	"time"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=5000"`
	DueDate     string `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	ClassID     string `json:"class_id"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return assignment.ErrEmptyTitle
	}
	return nil
}

func (r createReq) toInput() assignment.CreateInput {
	return assignment.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		ClassID:     r.ClassID,
	}
}

type setCompletedReq struct {
	ID        string `json:"-"`
	Completed bool   `json:"completed"`
}

func (r setCompletedReq) toInput() assignment.SetCompletedInput {
	return assignment.SetCompletedInput{
		ID:        r.ID,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type assignmentResp struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	DueDate          string    `json:"due_date"`
	Difficulty       int       `json:"difficulty"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	ClassID          string    `json:"class_id,omitempty"`
	ClassName        string    `json:"class_name,omitempty"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func newAssignmentResp(a model.Assignment) assignmentResp {
	return assignmentResp{
		ID:               a.ID,
		Title:            a.Title,
		Description:      a.Description,
		DueDate:          a.DueDate,
		Difficulty:       a.Difficulty,
		EstimatedMinutes: a.EstimatedMinutes,
		ClassID:          a.ClassID,
		ClassName:        a.ClassName,
		Completed:        a.Completed,
		CreatedAt:        a.CreatedAt,
	}
}

type estimateResp struct {
	Minutes    int    `json:"minutes"`
	Difficulty int    `json:"difficulty"`
	Source     string `json:"source"`
}

type createResp struct {
	Assignment assignmentResp `json:"assignment"`
	Estimate   estimateResp   `json:"estimate"`
}

func (h *handler) newCreateResp(out assignment.CreateOutput) createResp {
	return createResp{
		Assignment: newAssignmentResp(out.Assignment),
		Estimate: estimateResp{
			Minutes:    out.Estimate.Minutes,
			Difficulty: out.Estimate.Difficulty,
			Source:     string(out.Estimate.Source),
		},
	}
}

type listResp struct {
	Assignments []assignmentResp `json:"assignments"`
	Count       int              `json:"count"`
}

func (h *handler) newListResp(out assignment.ListOutput) listResp {
	items := make([]assignmentResp, len(out.Assignments))
	for i, a := range out.Assignments {
		items[i] = newAssignmentResp(a)
	}
	return listResp{
		Assignments: items,
		Count:       out.Count,
	}
}

type setCompletedResp struct {
	Assignment assignmentResp `json:"assignment"`
}

func (h *handler) newSetCompletedResp(out assignment.SetCompletedOutput) setCompletedResp {
	return setCompletedResp{Assignment: newAssignmentResp(out.Assignment)}
}
