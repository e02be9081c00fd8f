package repository

import (
	"context"
	"encoding/json"

	"comptrack/internal/database"
	"comptrack/internal/domain/assessment"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	SaveForm(ctx context.Context, authorID uuid.UUID, form assessment.Form) error
	SaveFeedbackForm(ctx context.Context, authorID uuid.UUID, form assessment.FeedbackForm) error
	ListFormsByAuthor(ctx context.Context, authorID uuid.UUID) ([]assessment.Form, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) SaveForm(ctx context.Context, authorID uuid.UUID, form assessment.Form) error {
	questions, err := json.Marshal(form.Questions)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO assessment_forms (id, training_id, author_id, title, description, questions)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		form.ID, form.TrainingID, authorID, form.Title, form.Description, questions,
	)
	return err
}

func (r *PostgresAssessmentRepository) SaveFeedbackForm(ctx context.Context, authorID uuid.UUID, form assessment.FeedbackForm) error {
	defaults, err := json.Marshal(form.Defaults)
	if err != nil {
		return err
	}
	custom, err := json.Marshal(form.Custom)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO feedback_forms (id, training_id, author_id, default_questions, custom_questions)
		VALUES ($1, $2, $3, $4, $5)`,
		form.ID, form.TrainingID, authorID, defaults, custom,
	)
	return err
}

func (r *PostgresAssessmentRepository) ListFormsByAuthor(ctx context.Context, authorID uuid.UUID) ([]assessment.Form, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, training_id, title, description, questions
		FROM assessment_forms
		WHERE author_id = $1
		ORDER BY created_at DESC`,
		authorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.Form, 0)
	for rows.Next() {
		var f assessment.Form
		var raw []byte
		if err := rows.Scan(&f.ID, &f.TrainingID, &f.Title, &f.Description, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &f.Questions); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
