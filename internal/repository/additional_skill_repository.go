package repository

import (
	"context"
	"errors"

	"comptrack/internal/database"
	"comptrack/internal/domain/competency"

	"github.com/google/uuid"
)

var (
	ErrAdditionalSkillNotFound = errors.New("additional skill not found")
	ErrAdditionalSkillExists   = errors.New("additional skill already exists")
)

type AdditionalSkillRepository interface {
	List(ctx context.Context, employeeID uuid.UUID) ([]competency.AdditionalSkill, error)
	Create(ctx context.Context, employeeID uuid.UUID, skillName, level string) (competency.AdditionalSkill, error)
	Update(ctx context.Context, employeeID, id uuid.UUID, level string) error
	Delete(ctx context.Context, employeeID, id uuid.UUID) error
}

type PostgresAdditionalSkillRepository struct {
	db database.DB
}

func NewPostgresAdditionalSkillRepository(db database.DB) *PostgresAdditionalSkillRepository {
	return &PostgresAdditionalSkillRepository{db: db}
}

func (r *PostgresAdditionalSkillRepository) List(ctx context.Context, employeeID uuid.UUID) ([]competency.AdditionalSkill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, skill_name, level
		FROM additional_skills
		WHERE employee_id = $1
		ORDER BY skill_name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.AdditionalSkill, 0)
	for rows.Next() {
		var s competency.AdditionalSkill
		if err := rows.Scan(&s.ID, &s.SkillName, &s.SkillLevel); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAdditionalSkillRepository) Create(ctx context.Context, employeeID uuid.UUID, skillName, level string) (competency.AdditionalSkill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO additional_skills (id, employee_id, skill_name, level)
		VALUES ($1, $2, $3, $4)`,
		id, employeeID, skillName, level,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return competency.AdditionalSkill{}, ErrAdditionalSkillExists
		}
		return competency.AdditionalSkill{}, err
	}
	return competency.AdditionalSkill{ID: id, SkillName: skillName, SkillLevel: level}, nil
}

func (r *PostgresAdditionalSkillRepository) Update(ctx context.Context, employeeID, id uuid.UUID, level string) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE additional_skills SET level = $3
		WHERE employee_id = $1 AND id = $2`,
		employeeID, id, level,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdditionalSkillNotFound
	}
	return nil
}

func (r *PostgresAdditionalSkillRepository) Delete(ctx context.Context, employeeID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `
		DELETE FROM additional_skills
		WHERE employee_id = $1 AND id = $2`,
		employeeID, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdditionalSkillNotFound
	}
	return nil
}
