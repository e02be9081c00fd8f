package repository

import (
	"context"

	"comptrack/internal/database"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
}

type TeamRepository interface {
	ListMembers(ctx context.Context, managerID uuid.UUID) ([]TeamMember, error)
	IsManagerOf(ctx context.Context, managerID, employeeID uuid.UUID) (bool, error)
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) ListMembers(ctx context.Context, managerID uuid.UUID) ([]TeamMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.username, u.display_name
		FROM manager_employee me
		JOIN users u ON u.id = me.employee_id
		WHERE me.manager_id = $1
		ORDER BY u.display_name ASC`,
		managerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TeamMember, 0)
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Username, &m.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) IsManagerOf(ctx context.Context, managerID, employeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM manager_employee
			WHERE manager_id = $1 AND employee_id = $2
		)`,
		managerID, employeeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
