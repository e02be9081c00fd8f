package training

import (
	"time"

	"github.com/google/uuid"
)

// Record is one training catalog entry. Date is optional; records without
// a date sort last in ascending views and earliest in descending ones.
type Record struct {
	ID            uuid.UUID
	Division      string
	Department    string
	Competency    string
	Skill         string
	Name          string
	Topics        string
	Prerequisites string
	SkillCategory string
	TrainerName   string
	Email         string
	Date          *time.Time
	Duration      string
	TimeOfDay     string
	Type          string
	Seats         int
	Assessment    string
}
