package dto

import (
	"comptrack/internal/domain/training"
)

// TrainingResponse flattens a catalog record for clients; the date is a
// plain YYYY-MM-DD string or empty when the session is unscheduled.
type TrainingResponse struct {
	ID            string `json:"id"`
	Division      string `json:"division"`
	Department    string `json:"department"`
	Competency    string `json:"competency"`
	Skill         string `json:"skill"`
	Name          string `json:"name"`
	Topics        string `json:"topics"`
	Prerequisites string `json:"prerequisites"`
	SkillCategory string `json:"skillCategory"`
	TrainerName   string `json:"trainerName"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Duration      string `json:"duration"`
	TimeOfDay     string `json:"timeOfDay"`
	Type          string `json:"type"`
	Seats         int    `json:"seats"`
	Assessment    string `json:"assessment"`
}

// CatalogResponse wraps the catalog list; Degraded is true when the list is
// the last cached copy served during a database outage.
type CatalogResponse struct {
	Trainings []TrainingResponse `json:"trainings"`
	Degraded  bool               `json:"degraded"`
}

func FromTraining(rec training.Record) TrainingResponse {
	return TrainingResponse{
		ID:            rec.ID.String(),
		Division:      rec.Division,
		Department:    rec.Department,
		Competency:    rec.Competency,
		Skill:         rec.Skill,
		Name:          rec.Name,
		Topics:        rec.Topics,
		Prerequisites: rec.Prerequisites,
		SkillCategory: rec.SkillCategory,
		TrainerName:   rec.TrainerName,
		Email:         rec.Email,
		Date:          training.DateString(rec.Date),
		Duration:      rec.Duration,
		TimeOfDay:     rec.TimeOfDay,
		Type:          rec.Type,
		Seats:         rec.Seats,
		Assessment:    rec.Assessment,
	}
}

func FromTrainings(list []training.Record) []TrainingResponse {
	out := make([]TrainingResponse, 0, len(list))
	for _, rec := range list {
		out = append(out, FromTraining(rec))
	}
	return out
}
