package handler

import (
	"errors"

	"comptrack/internal/delivery/http/middleware"
	"comptrack/internal/pkg/response"
	"comptrack/internal/repository"
	"comptrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type assignRequest struct {
	EmployeeID string `json:"employeeId"`
	TrainingID string `json:"trainingId"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router, requireManager fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/mine", h.Mine)
	r.Post("/", h.Assign, requireManager)
}

func (h *AssignmentHandler) Assign(c fiber.Ctx) error {
	managerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req assignRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}
	trainingID, err := uuid.Parse(req.TrainingID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid training id", nil, err)
	}

	a, err := h.uc.Assign(c.Context(), managerID, employeeID, trainingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
		case errors.Is(err, usecase.ErrNotTeamMember):
			return middleware.NewAppError(fiber.StatusForbidden, "Employee is not on your team", nil, err)
		case errors.Is(err, repository.ErrTrainingNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Training not found", nil, err)
		case errors.Is(err, repository.ErrAlreadyAssigned):
			return middleware.NewAppError(fiber.StatusConflict, "Training already assigned", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]string{
		"id": a.ID.String(),
	})
}

func (h *AssignmentHandler) Mine(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	list, err := h.uc.MyAssignments(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}
