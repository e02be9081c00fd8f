package usecase

import (
	"context"
	"errors"

	"comptrack/internal/domain/training"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

type AssignmentView struct {
	ID         uuid.UUID       `json:"id"`
	Training   training.Record `json:"training"`
	AssignedAt string          `json:"assignedAt"`
}

type AssignmentUsecase interface {
	Assign(ctx context.Context, managerID, employeeID, trainingID uuid.UUID) (repository.Assignment, error)
	MyAssignments(ctx context.Context, employeeID uuid.UUID) ([]AssignmentView, error)
}

type Assignmenter struct {
	assignments repository.AssignmentRepository
	trainings   repository.TrainingRepository
	team        repository.TeamRepository
}

func NewAssignmentUsecase(assignments repository.AssignmentRepository, trainings repository.TrainingRepository, team repository.TeamRepository) *Assignmenter {
	return &Assignmenter{assignments: assignments, trainings: trainings, team: team}
}

func (u *Assignmenter) Assign(ctx context.Context, managerID, employeeID, trainingID uuid.UUID) (repository.Assignment, error) {
	if employeeID == uuid.Nil || trainingID == uuid.Nil {
		return repository.Assignment{}, ErrInvalidInput
	}

	ok, err := u.team.IsManagerOf(ctx, managerID, employeeID)
	if err != nil {
		return repository.Assignment{}, ErrInternal
	}
	if !ok {
		return repository.Assignment{}, ErrNotTeamMember
	}

	if _, err := u.trainings.GetByID(ctx, trainingID); err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			return repository.Assignment{}, err
		}
		return repository.Assignment{}, ErrInternal
	}

	a, err := u.assignments.Create(ctx, repository.Assignment{
		TrainingID: trainingID,
		EmployeeID: employeeID,
		AssignedBy: managerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyAssigned) {
			return repository.Assignment{}, err
		}
		return repository.Assignment{}, ErrInternal
	}
	return a, nil
}

func (u *Assignmenter) MyAssignments(ctx context.Context, employeeID uuid.UUID) ([]AssignmentView, error) {
	list, err := u.assignments.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		rec, err := u.trainings.GetByID(ctx, a.TrainingID)
		if err != nil {
			if errors.Is(err, repository.ErrTrainingNotFound) {
				continue
			}
			return nil, ErrInternal
		}
		out = append(out, AssignmentView{
			ID:         a.ID,
			Training:   rec,
			AssignedAt: a.AssignedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out, nil
}
