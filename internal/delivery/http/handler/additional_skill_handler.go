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

type AdditionalSkillHandler struct {
	uc usecase.AdditionalSkillUsecase
}

type additionalSkillRequest struct {
	SkillName string `json:"skillName"`
	Level     string `json:"level"`
}

func NewAdditionalSkillHandler(uc usecase.AdditionalSkillUsecase) *AdditionalSkillHandler {
	return &AdditionalSkillHandler{uc: uc}
}

func (h *AdditionalSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}

func (h *AdditionalSkillHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	list, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *AdditionalSkillHandler) Add(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req additionalSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.Add(c.Context(), userID, req.SkillName, req.Level)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "skillName and level are required", nil, err)
		case errors.Is(err, repository.ErrAdditionalSkillExists):
			return middleware.NewAppError(fiber.StatusConflict, "Skill already added", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, s)
}

func (h *AdditionalSkillHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	var req additionalSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateLevel(c.Context(), userID, id, req.Level); err != nil {
		return mapAdditionalSkillError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdditionalSkillHandler) Remove(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	if err := h.uc.Remove(c.Context(), userID, id); err != nil {
		return mapAdditionalSkillError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAdditionalSkillError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, repository.ErrAdditionalSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
