package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
)

// CreateStudyGuide stores one guide document for the scoped user.
func (r *implRepository) CreateStudyGuide(ctx context.Context, sc model.Scope, opt repository.CreateStudyGuideOptions) (model.StudyGuide, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO study_guides (id, user_id, topic, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	guide := model.StudyGuide{
		ID:      id,
		UserID:  sc.UserID,
		Topic:   opt.Topic,
		Content: opt.Content,
	}

	err := r.db.QueryRow(ctx, query, id, sc.UserID, opt.Topic, opt.Content).Scan(&guide.CreatedAt)
	if err != nil {
		return model.StudyGuide{}, fmt.Errorf("failed to insert study guide: %w", err)
	}

	return guide, nil
}
