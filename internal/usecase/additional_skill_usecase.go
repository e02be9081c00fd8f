package usecase

import (
	"context"
	"errors"
	"strings"

	"comptrack/internal/domain/competency"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

type AdditionalSkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]competency.AdditionalSkill, error)
	Add(ctx context.Context, userID uuid.UUID, skillName, level string) (competency.AdditionalSkill, error)
	UpdateLevel(ctx context.Context, userID, id uuid.UUID, level string) error
	Remove(ctx context.Context, userID, id uuid.UUID) error
}

type AdditionalSkills struct {
	skills repository.AdditionalSkillRepository
}

func NewAdditionalSkillUsecase(skills repository.AdditionalSkillRepository) *AdditionalSkills {
	return &AdditionalSkills{skills: skills}
}

func (u *AdditionalSkills) List(ctx context.Context, userID uuid.UUID) ([]competency.AdditionalSkill, error) {
	list, err := u.skills.List(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *AdditionalSkills) Add(ctx context.Context, userID uuid.UUID, skillName, level string) (competency.AdditionalSkill, error) {
	skillName = strings.TrimSpace(skillName)
	level = strings.TrimSpace(level)
	if skillName == "" || level == "" {
		return competency.AdditionalSkill{}, ErrInvalidInput
	}

	s, err := u.skills.Create(ctx, userID, skillName, level)
	if err != nil {
		if errors.Is(err, repository.ErrAdditionalSkillExists) {
			return competency.AdditionalSkill{}, err
		}
		return competency.AdditionalSkill{}, ErrInternal
	}
	return s, nil
}

func (u *AdditionalSkills) UpdateLevel(ctx context.Context, userID, id uuid.UUID, level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return ErrInvalidInput
	}
	err := u.skills.Update(ctx, userID, id, level)
	if err != nil && !errors.Is(err, repository.ErrAdditionalSkillNotFound) {
		return ErrInternal
	}
	return err
}

func (u *AdditionalSkills) Remove(ctx context.Context, userID, id uuid.UUID) error {
	err := u.skills.Delete(ctx, userID, id)
	if err != nil && !errors.Is(err, repository.ErrAdditionalSkillNotFound) {
		return ErrInternal
	}
	return err
}
