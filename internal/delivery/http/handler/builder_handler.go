package handler

import (
	"errors"

	"comptrack/internal/delivery/http/middleware"
	"comptrack/internal/pkg/response"
	"comptrack/internal/repository"
	"comptrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// BuilderHandler exposes the trainer zone: an in-memory draft per trainer,
// edited through actions and persisted only on submit.
type BuilderHandler struct {
	uc usecase.BuilderUsecase
}

func NewBuilderHandler(uc usecase.BuilderUsecase) *BuilderHandler {
	return &BuilderHandler{uc: uc}
}

func (h *BuilderHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.State)
	r.Post("/actions", h.Apply)
	r.Post("/submit", h.SubmitAssessment)
	r.Post("/feedback/submit", h.SubmitFeedback)
}

func (h *BuilderHandler) State(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	state, err := h.uc.State(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, state)
}

func (h *BuilderHandler) Apply(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var action usecase.BuilderAction
	if err := c.Bind().Body(&action); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	state, err := h.uc.Apply(c.Context(), userID, action)
	if err != nil {
		return mapBuilderError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, state)
}

func (h *BuilderHandler) SubmitAssessment(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	form, err := h.uc.SubmitAssessment(c.Context(), userID)
	if err != nil {
		return mapBuilderError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, form)
}

func (h *BuilderHandler) SubmitFeedback(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	form, err := h.uc.SubmitFeedback(c.Context(), userID)
	if err != nil {
		return mapBuilderError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, form)
}

func mapBuilderError(err error) error {
	switch {
	case usecase.IsDraftError(err):
		// Validation messages name the offending question, so they go to
		// the client verbatim.
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown action", nil, err)
	case errors.Is(err, repository.ErrTrainingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Training not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
