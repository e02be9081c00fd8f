package seeder

import (
	"context"
	"fmt"

	"comptrack/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// UsersSeeder creates one manager with a small team plus an employee trainer.
// Re-running it is a no-op because every insert is keyed by username.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

type seedUser struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	Role        string
	IsTrainer   bool
}

var seedUsers = []seedUser{
	{Username: "asha.manager", DisplayName: "Asha Iyer", Email: "asha.iyer@comptrack.dev", Password: "manager123", Role: "manager", IsTrainer: true},
	{Username: "dita.trainer", DisplayName: "Dita Larasati", Email: "dita.larasati@comptrack.dev", Password: "trainer123", Role: "employee", IsTrainer: true},
	{Username: "budi.engineer", DisplayName: "Budi Santoso", Email: "budi.santoso@comptrack.dev", Password: "employee123", Role: "employee"},
	{Username: "citra.engineer", DisplayName: "Citra Dewi", Email: "citra.dewi@comptrack.dev", Password: "employee123", Role: "employee"},
	{Username: "eko.engineer", DisplayName: "Eko Prasetyo", Email: "eko.prasetyo@comptrack.dev", Password: "employee123", Role: "employee"},
}

var seedTeam = map[string][]string{
	"asha.manager": {"budi.engineer", "citra.engineer", "eko.engineer"},
}

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (username, display_name, email, password_hash, role, is_trainer)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (username) DO NOTHING`,
			u.Username, u.DisplayName, u.Email, string(hash), u.Role, u.IsTrainer,
		); err != nil {
			return err
		}
	}

	for manager, members := range seedTeam {
		for _, member := range members {
			if _, err := tx.Exec(ctx, `
				INSERT INTO manager_employee (manager_id, employee_id)
				SELECT m.id, e.id FROM users m, users e
				WHERE m.username = $1 AND e.username = $2
				ON CONFLICT DO NOTHING`,
				manager, member,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
