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

type TeamHandler struct {
	uc usecase.ManagerUsecase
}

type skillUpdateRequest struct {
	CurrentExpertise string `json:"currentExpertise"`
	TargetExpertise  string `json:"targetExpertise"`
}

func NewTeamHandler(uc usecase.ManagerUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Overview)
	r.Get("/gaps", h.GapRanking)
	r.Patch("/skills/:id", h.UpdateSkill)
}

func (h *TeamHandler) Overview(c fiber.Ctx) error {
	managerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	overview, err := h.uc.Overview(c.Context(), managerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, overview)
}

func (h *TeamHandler) GapRanking(c fiber.Ctx) error {
	managerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	all := c.Query("all") == "true"
	ranking, err := h.uc.GapRanking(c.Context(), managerID, all)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ranking)
}

func (h *TeamHandler) UpdateSkill(c fiber.Ctx) error {
	managerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	compID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid competency id", nil, err)
	}

	var req skillUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := h.uc.UpdateTeamSkill(c.Context(), managerID, usecase.SkillUpdateInput{
		CompetencyID:     compID,
		CurrentExpertise: req.CurrentExpertise,
		TargetExpertise:  req.TargetExpertise,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
		case errors.Is(err, repository.ErrCompetencyNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Competency not found", nil, err)
		case errors.Is(err, usecase.ErrNotTeamMember):
			return middleware.NewAppError(fiber.StatusForbidden, "Employee is not on your team", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}
