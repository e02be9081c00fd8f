package repository

import (
	"context"
	"errors"
	"time"

	"comptrack/internal/database"

	"github.com/google/uuid"
)

var ErrAlreadyAssigned = errors.New("training already assigned")

type Assignment struct {
	ID         uuid.UUID
	TrainingID uuid.UUID
	EmployeeID uuid.UUID
	AssignedBy uuid.UUID
	AssignedAt time.Time
}

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a Assignment) (Assignment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO training_assignments (id, training_id, employee_id, assigned_by, assigned_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.TrainingID, a.EmployeeID, a.AssignedBy, a.AssignedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Assignment{}, ErrAlreadyAssigned
		}
		return Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, training_id, employee_id, assigned_by, assigned_at
		FROM training_assignments
		WHERE employee_id = $1
		ORDER BY assigned_at DESC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Assignment, 0)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.TrainingID, &a.EmployeeID, &a.AssignedBy, &a.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
