package usecase

import (
	"context"
	"errors"

	"comptrack/internal/domain/competency"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

type CompetencyView struct {
	ID               uuid.UUID         `json:"id"`
	SkillName        string            `json:"skillName"`
	CompetencyName   string            `json:"competencyName"`
	CurrentExpertise string            `json:"currentExpertise"`
	TargetExpertise  string            `json:"targetExpertise"`
	Status           competency.Status `json:"status"`
	ProgressPercent  int               `json:"progressPercent"`
}

type DashboardProfile struct {
	UserID           uuid.UUID                    `json:"userId"`
	Username         string                       `json:"username"`
	DisplayName      string                       `json:"displayName"`
	IsTrainer        bool                         `json:"isTrainer"`
	Competencies     []CompetencyView             `json:"competencies"`
	AdditionalSkills []competency.AdditionalSkill `json:"additionalSkills"`
	Summary          competency.Summary           `json:"summary"`
}

type DashboardUsecase interface {
	Profile(ctx context.Context, userID uuid.UUID) (DashboardProfile, error)
}

type Dashboard struct {
	users        repository.UserRepository
	competencies repository.CompetencyRepository
}

func NewDashboardUsecase(users repository.UserRepository, competencies repository.CompetencyRepository) *Dashboard {
	return &Dashboard{users: users, competencies: competencies}
}

func (u *Dashboard) Profile(ctx context.Context, userID uuid.UUID) (DashboardProfile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return DashboardProfile{}, ErrUnauthorized
		}
		return DashboardProfile{}, ErrInternal
	}

	list, err := u.competencies.ListByEmployee(ctx, userID)
	if err != nil {
		return DashboardProfile{}, ErrInternal
	}
	skills, err := u.competencies.ListAdditionalSkills(ctx, userID)
	if err != nil {
		return DashboardProfile{}, ErrInternal
	}

	return DashboardProfile{
		UserID:           usr.ID,
		Username:         usr.Username,
		DisplayName:      usr.DisplayName,
		IsTrainer:        usr.IsTrainer,
		Competencies:     toViews(list),
		AdditionalSkills: skills,
		Summary:          competency.Summarize(list),
	}, nil
}

func toViews(list []competency.Competency) []CompetencyView {
	out := make([]CompetencyView, 0, len(list))
	for _, c := range list {
		out = append(out, CompetencyView{
			ID:               c.ID,
			SkillName:        c.SkillName,
			CompetencyName:   c.CompetencyName,
			CurrentExpertise: c.CurrentExpertise,
			TargetExpertise:  c.TargetExpertise,
			Status:           c.Status,
			ProgressPercent:  competency.Progress(c.CurrentExpertise, c.TargetExpertise),
		})
	}
	return out
}
