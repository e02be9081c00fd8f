package seeder

import (
	"context"
	"fmt"

	"comptrack/internal/database"
)

type CompetenciesSeeder struct{}

func (CompetenciesSeeder) Name() string { return "competencies" }

type seedCompetency struct {
	Username   string
	Skill      string
	Competency string
	Current    string
	Target     string
}

var seedCompetencies = []seedCompetency{
	{Username: "budi.engineer", Skill: "Python", Competency: "Backend Development", Current: "L2", Target: "L4"},
	{Username: "budi.engineer", Skill: "Git", Competency: "Version Control", Current: "L3", Target: "L3"},
	{Username: "budi.engineer", Skill: "SQL", Competency: "Data Management", Current: "Beginner", Target: "Advanced"},
	{Username: "citra.engineer", Skill: "Python", Competency: "Backend Development", Current: "L1", Target: "L3"},
	{Username: "citra.engineer", Skill: "Docker", Competency: "DevOps", Current: "Intermediate", Target: "Intermediate"},
	{Username: "citra.engineer", Skill: "Git", Competency: "Version Control", Current: "L2", Target: "L4"},
	{Username: "eko.engineer", Skill: "Python", Competency: "Backend Development", Current: "Advanced", Target: "Expert"},
	{Username: "eko.engineer", Skill: "Kubernetes", Competency: "DevOps", Current: "L0", Target: "L2"},
	{Username: "eko.engineer", Skill: "SQL", Competency: "Data Management", Current: "L3", Target: "L3"},
}

func (CompetenciesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range seedCompetencies {
		if _, err := tx.Exec(ctx, `
			INSERT INTO employee_competency
				(employee_id, skill_name, competency_name, current_expertise, target_expertise)
			SELECT u.id, $2, $3, $4, $5 FROM users u WHERE u.username = $1
			ON CONFLICT (employee_id, skill_name, competency_name) DO NOTHING`,
			c.Username, c.Skill, c.Competency, c.Current, c.Target,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
