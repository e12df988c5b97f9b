package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
)

const assignmentColumns = `
	a.id, a.user_id, a.title, COALESCE(a.description, ''),
	a.due_date, a.difficulty, a.estimated_minutes,
	COALESCE(a.class_id, ''), COALESCE(c.name, ''), a.completed, a.created_at`

// Create inserts a new assignment row for the scoped user.
func (r *implRepository) Create(ctx context.Context, sc model.Scope, opt repository.CreateOptions) (model.Assignment, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO assignments
			(id, user_id, title, description, due_date, difficulty, estimated_minutes, class_id, completed)
		VALUES
			($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), FALSE)
		RETURNING created_at`

	a := model.Assignment{
		ID:               id,
		UserID:           sc.UserID,
		Title:            opt.Title,
		Description:      opt.Description,
		DueDate:          opt.DueDate,
		Difficulty:       opt.Difficulty,
		EstimatedMinutes: opt.EstimatedMinutes,
		ClassID:          opt.ClassID,
	}

	err := r.db.QueryRow(ctx, query,
		id, sc.UserID, opt.Title, opt.Description, opt.DueDate,
		opt.Difficulty, opt.EstimatedMinutes, opt.ClassID,
	).Scan(&a.CreatedAt)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("failed to insert assignment: %w", err)
	}

	return a, nil
}

// Get fetches one assignment owned by the scoped user.
func (r *implRepository) Get(ctx context.Context, sc model.Scope, id string) (model.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		LEFT JOIN classes c ON c.id = a.class_id
		WHERE a.id = $1 AND a.user_id = $2`, assignmentColumns)

	a, err := scanAssignment(r.db.QueryRow(ctx, query, id, sc.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Assignment{}, repository.ErrNotFound
		}
		return model.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// List returns the user's assignments, newest first.
func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM assignments a
		LEFT JOIN classes c ON c.id = a.class_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`, assignmentColumns)

	rows, err := r.db.Query(ctx, query, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]model.Assignment, 0)
	for rows.Next() {
		a, scanErr := scanAssignment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", scanErr)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignment rows: %w", err)
	}

	return assignments, nil
}

// SetCompleted flips the completion flag and returns the updated row.
func (r *implRepository) SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (model.Assignment, error) {
	const query = `
		UPDATE assignments
		SET completed = $3
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, sc.UserID, completed)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Assignment{}, repository.ErrNotFound
	}

	return r.Get(ctx, sc, id)
}

// Delete removes an assignment owned by the scoped user.
func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1 AND user_id = $2`, id, sc.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanAssignment(row pgx.Row) (model.Assignment, error) {
	var a model.Assignment
	err := row.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Description,
		&a.DueDate, &a.Difficulty, &a.EstimatedMinutes,
		&a.ClassID, &a.ClassName, &a.Completed, &a.CreatedAt,
	)
	return a, err
}
