package repository

import (
	"context"
	"errors"
	"time"

	"comptrack/internal/database"
	"comptrack/internal/domain/training"

	"github.com/google/uuid"
)

var ErrTrainingNotFound = errors.New("training not found")

const trainingColumns = `
	id, division, department, competency, skill, name, topics, prerequisites,
	skill_category, trainer_name, email, date, duration, time_of_day, type,
	seats, assessment`

type TrainingRepository interface {
	ListAll(ctx context.Context) ([]training.Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (training.Record, error)
	Create(ctx context.Context, rec training.Record) (training.Record, error)
	ListAssignedTo(ctx context.Context, employeeID uuid.UUID) ([]training.Record, error)
}

type PostgresTrainingRepository struct {
	db database.DB
}

func NewPostgresTrainingRepository(db database.DB) *PostgresTrainingRepository {
	return &PostgresTrainingRepository{db: db}
}

func (r *PostgresTrainingRepository) ListAll(ctx context.Context) ([]training.Record, error) {
	rows, err := r.db.Query(ctx, `SELECT `+trainingColumns+` FROM training_details ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrainings(rows)
}

func (r *PostgresTrainingRepository) GetByID(ctx context.Context, id uuid.UUID) (training.Record, error) {
	var rec training.Record
	var date *time.Time
	err := r.db.QueryRow(ctx, `SELECT `+trainingColumns+` FROM training_details WHERE id = $1`, id).Scan(
		&rec.ID, &rec.Division, &rec.Department, &rec.Competency, &rec.Skill,
		&rec.Name, &rec.Topics, &rec.Prerequisites, &rec.SkillCategory,
		&rec.TrainerName, &rec.Email, &date, &rec.Duration, &rec.TimeOfDay,
		&rec.Type, &rec.Seats, &rec.Assessment,
	)
	if err != nil {
		if isNoRows(err) {
			return training.Record{}, ErrTrainingNotFound
		}
		return training.Record{}, err
	}
	rec.Date = date
	return rec, nil
}

func (r *PostgresTrainingRepository) Create(ctx context.Context, rec training.Record) (training.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO training_details (`+trainingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		rec.ID, rec.Division, rec.Department, rec.Competency, rec.Skill,
		rec.Name, rec.Topics, rec.Prerequisites, rec.SkillCategory,
		rec.TrainerName, rec.Email, rec.Date, rec.Duration, rec.TimeOfDay,
		rec.Type, rec.Seats, rec.Assessment,
	)
	if err != nil {
		return training.Record{}, err
	}
	return rec, nil
}

func (r *PostgresTrainingRepository) ListAssignedTo(ctx context.Context, employeeID uuid.UUID) ([]training.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+qualify(trainingColumns, "t")+`
		FROM training_assignments a
		JOIN training_details t ON t.id = a.training_id
		WHERE a.employee_id = $1
		ORDER BY a.assigned_at ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrainings(rows)
}

func scanTrainings(rows database.Rows) ([]training.Record, error) {
	out := make([]training.Record, 0)
	for rows.Next() {
		var rec training.Record
		var date *time.Time
		if err := rows.Scan(
			&rec.ID, &rec.Division, &rec.Department, &rec.Competency, &rec.Skill,
			&rec.Name, &rec.Topics, &rec.Prerequisites, &rec.SkillCategory,
			&rec.TrainerName, &rec.Email, &date, &rec.Duration, &rec.TimeOfDay,
			&rec.Type, &rec.Seats, &rec.Assessment,
		); err != nil {
			return nil, err
		}
		rec.Date = date
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
