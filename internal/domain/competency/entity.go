package competency

import (
	"time"

	"github.com/google/uuid"
)

// Status is supplied by the backend when records are fetched and recomputed
// server-side when a manager edits a team member's levels. Anything outside
// the three known values is folded into StatusError.
type Status string

const (
	StatusMet   Status = "Met"
	StatusGap   Status = "Gap"
	StatusError Status = "Error"
)

// Normalize maps unknown status tokens to StatusError.
func (s Status) Normalize() Status {
	switch s {
	case StatusMet, StatusGap:
		return s
	default:
		return StatusError
	}
}

type Competency struct {
	ID               uuid.UUID
	SkillName        string
	CompetencyName   string
	CurrentExpertise string
	TargetExpertise  string
	Status           Status
}

type AdditionalSkill struct {
	ID          uuid.UUID
	Username    string
	SkillName   string
	SkillLevel  string
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Person struct {
	ID               uuid.UUID
	Username         string
	DisplayName      string
	Competencies     []Competency
	AdditionalSkills []AdditionalSkill
}

// Team is a manager's direct reports. One level only; members do not nest.
type Team struct {
	ManagerUsername string
	Members         []Person
}
