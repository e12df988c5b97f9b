package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
)

const turnColumns = `
	id, seq, user_id, COALESCE(assignment_id, ''), message_type,
	content, COALESCE(context, ''), created_at`

// CreateTurn appends one turn to the scoped user's thread. The seq column is
// a bigserial so insertion order survives identical timestamps.
func (r *implRepository) CreateTurn(ctx context.Context, sc model.Scope, opt repository.CreateTurnOptions) (model.ChatTurn, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO ai_chat_history
			(id, user_id, assignment_id, message_type, content, context)
		VALUES
			($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		RETURNING seq, created_at`

	turn := model.ChatTurn{
		ID:           id,
		UserID:       sc.UserID,
		AssignmentID: opt.AssignmentID,
		Role:         opt.Role,
		Content:      opt.Content,
		Context:      opt.Context,
	}

	err := r.db.QueryRow(ctx, query,
		id, sc.UserID, opt.AssignmentID, string(opt.Role), opt.Content, opt.Context,
	).Scan(&turn.Seq, &turn.CreatedAt)
	if err != nil {
		return model.ChatTurn{}, fmt.Errorf("failed to insert chat turn: %w", err)
	}

	return turn, nil
}

// RecentTurns returns up to limit turns for the thread, newest first.
func (r *implRepository) RecentTurns(ctx context.Context, sc model.Scope, assignmentID string, limit int) ([]model.ChatTurn, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM ai_chat_history
		WHERE user_id = $1 AND COALESCE(assignment_id, '') = $2
		ORDER BY created_at DESC, seq DESC
		LIMIT $3`, turnColumns)

	return r.queryTurns(ctx, query, sc.UserID, assignmentID, limit)
}

// ListTurns returns turns oldest first. The assignment filter is optional on
// reads: an empty assignmentID spans every thread the user owns.
func (r *implRepository) ListTurns(ctx context.Context, sc model.Scope, assignmentID string) ([]model.ChatTurn, error) {
	query, args := listTurnsQuery(sc.UserID, assignmentID)
	return r.queryTurns(ctx, query, args...)
}

func listTurnsQuery(userID, assignmentID string) (string, []any) {
	if assignmentID == "" {
		query := fmt.Sprintf(`
			SELECT %s
			FROM ai_chat_history
			WHERE user_id = $1
			ORDER BY created_at ASC, seq ASC`, turnColumns)
		return query, []any{userID}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM ai_chat_history
		WHERE user_id = $1 AND COALESCE(assignment_id, '') = $2
		ORDER BY created_at ASC, seq ASC`, turnColumns)
	return query, []any{userID, assignmentID}
}

// DeleteTurns removes every turn in the thread. Deleting an empty thread is
// not an error.
func (r *implRepository) DeleteTurns(ctx context.Context, sc model.Scope, assignmentID string) error {
	const query = `
		DELETE FROM ai_chat_history
		WHERE user_id = $1 AND COALESCE(assignment_id, '') = $2`

	if _, err := r.db.Exec(ctx, query, sc.UserID, assignmentID); err != nil {
		return fmt.Errorf("failed to delete chat turns: %w", err)
	}
	return nil
}

func (r *implRepository) queryTurns(ctx context.Context, query string, args ...any) ([]model.ChatTurn, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat turns: %w", err)
	}
	defer rows.Close()

	turns := make([]model.ChatTurn, 0)
	for rows.Next() {
		turn, scanErr := scanTurn(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan chat turn row: %w", scanErr)
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat turn rows: %w", err)
	}

	return turns, nil
}

func scanTurn(row pgx.Row) (model.ChatTurn, error) {
	var turn model.ChatTurn
	var role string
	err := row.Scan(
		&turn.ID, &turn.Seq, &turn.UserID, &turn.AssignmentID,
		&role, &turn.Content, &turn.Context, &turn.CreatedAt,
	)
	turn.Role = model.TurnRole(role)
	return turn, err
}
