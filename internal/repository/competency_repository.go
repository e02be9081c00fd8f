package repository

import (
	"context"
	"errors"

	"comptrack/internal/database"
	"comptrack/internal/domain/competency"

	"github.com/google/uuid"
)

var ErrCompetencyNotFound = errors.New("competency not found")

type CompetencyRepository interface {
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]competency.Competency, error)
	Get(ctx context.Context, id uuid.UUID) (competency.Competency, uuid.UUID, error)
	UpdateLevels(ctx context.Context, id uuid.UUID, current, target string) error
	ListAdditionalSkills(ctx context.Context, employeeID uuid.UUID) ([]competency.AdditionalSkill, error)
}

type PostgresCompetencyRepository struct {
	db database.DB
}

func NewPostgresCompetencyRepository(db database.DB) *PostgresCompetencyRepository {
	return &PostgresCompetencyRepository{db: db}
}

func (r *PostgresCompetencyRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]competency.Competency, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, skill_name, competency_name, current_expertise, target_expertise
		FROM employee_competency
		WHERE employee_id = $1
		ORDER BY skill_name ASC, competency_name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Competency, 0)
	for rows.Next() {
		var c competency.Competency
		if err := rows.Scan(&c.ID, &c.SkillName, &c.CompetencyName, &c.CurrentExpertise, &c.TargetExpertise); err != nil {
			return nil, err
		}
		c.Status = competency.StatusFromLevels(c.CurrentExpertise, c.TargetExpertise)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get also returns the owning employee so callers can verify team membership.
func (r *PostgresCompetencyRepository) Get(ctx context.Context, id uuid.UUID) (competency.Competency, uuid.UUID, error) {
	var c competency.Competency
	var employeeID uuid.UUID
	err := r.db.QueryRow(ctx, `
		SELECT id, employee_id, skill_name, competency_name, current_expertise, target_expertise
		FROM employee_competency WHERE id = $1`,
		id,
	).Scan(&c.ID, &employeeID, &c.SkillName, &c.CompetencyName, &c.CurrentExpertise, &c.TargetExpertise)
	if err != nil {
		if isNoRows(err) {
			return competency.Competency{}, uuid.Nil, ErrCompetencyNotFound
		}
		return competency.Competency{}, uuid.Nil, err
	}
	c.Status = competency.StatusFromLevels(c.CurrentExpertise, c.TargetExpertise)
	return c, employeeID, nil
}

func (r *PostgresCompetencyRepository) UpdateLevels(ctx context.Context, id uuid.UUID, current, target string) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE employee_competency
		SET current_expertise = $2, target_expertise = $3, updated_at = now()
		WHERE id = $1`,
		id, current, target,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetencyNotFound
	}
	return nil
}

func (r *PostgresCompetencyRepository) ListAdditionalSkills(ctx context.Context, employeeID uuid.UUID) ([]competency.AdditionalSkill, error) {
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
