package seeder

import (
	"context"
	"fmt"

	"comptrack/internal/database"
)

type TrainingsSeeder struct{}

func (TrainingsSeeder) Name() string { return "trainings" }

type seedTraining struct {
	Name          string
	Skill         string
	SkillCategory string
	Topics        string
	TrainerName   string
	Email         string
	Date          string
	Duration      string
	TimeOfDay     string
	Type          string
	Seats         int
}

var seedTrainings = []seedTraining{
	{Name: "Python for Services", Skill: "Python", SkillCategory: "Programming Language", Topics: "FastAPI, testing, packaging", TrainerName: "Dita Larasati", Email: "dita.larasati@comptrack.dev", Date: "2026-09-10", Duration: "2 days", TimeOfDay: "Morning", Type: "Virtual", Seats: 30},
	{Name: "Advanced Git Workflows", Skill: "Git", SkillCategory: "Tooling", Topics: "Rebase, bisect, hooks", TrainerName: "Dita Larasati", Email: "dita.larasati@comptrack.dev", Date: "2026-09-24", Duration: "1 day", TimeOfDay: "Afternoon", Type: "In-person", Seats: 20},
	{Name: "SQL Performance Tuning", Skill: "SQL", SkillCategory: "Database", Topics: "Indexes, query plans", TrainerName: "Asha Iyer", Email: "asha.iyer@comptrack.dev", Date: "2026-10-05", Duration: "Half day", TimeOfDay: "Morning", Type: "Virtual", Seats: 40},
	{Name: "Kubernetes Fundamentals", Skill: "Kubernetes", SkillCategory: "DevOps", Topics: "Pods, services, deployments", TrainerName: "Dita Larasati", Email: "dita.larasati@comptrack.dev", Date: "", Duration: "3 days", TimeOfDay: "Full day", Type: "Virtual", Seats: 25},
}

func (TrainingsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, t := range seedTrainings {
		var date any
		if t.Date != "" {
			date = t.Date
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO training_details
				(name, skill, skill_category, topics, trainer_name, email,
				 date, duration, time_of_day, type, seats)
			SELECT $1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11
			WHERE NOT EXISTS (SELECT 1 FROM training_details WHERE name = $1)`,
			t.Name, t.Skill, t.SkillCategory, t.Topics, t.TrainerName, t.Email,
			date, t.Duration, t.TimeOfDay, t.Type, t.Seats,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
