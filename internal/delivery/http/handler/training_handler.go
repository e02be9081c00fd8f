package handler

import (
	"errors"
	"strconv"

	"comptrack/internal/delivery/http/dto"
	"comptrack/internal/delivery/http/middleware"
	"comptrack/internal/pkg/response"
	"comptrack/internal/repository"
	"comptrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TrainingHandler struct {
	uc usecase.CatalogUsecase
}

type createTrainingRequest struct {
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

func NewTrainingHandler(uc usecase.CatalogUsecase) *TrainingHandler {
	return &TrainingHandler{uc: uc}
}

func (h *TrainingHandler) RegisterRoutes(r fiber.Router, requireTrainer fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/mine", h.Mine)
	r.Get("/calendar", h.Calendar)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create, requireTrainer)
}

func (h *TrainingHandler) List(c fiber.Ctx) error {
	params := usecase.CatalogParams{
		Search:        c.Query("search"),
		SearchIn:      c.Query("searchIn"),
		Skill:         c.Query("skill"),
		SkillCategory: c.Query("skillCategory"),
		Type:          c.Query("type"),
		Date:          c.Query("date"),
	}

	list, degraded, err := h.uc.List(c.Context(), params)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CatalogResponse{
		Trainings: dto.FromTrainings(list),
		Degraded:  degraded,
	})
}

func (h *TrainingHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid training id", nil, err)
	}

	rec, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Training not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTraining(rec))
}

func (h *TrainingHandler) Create(c fiber.Ctx) error {
	var req createTrainingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, fields, err := h.uc.Create(c.Context(), usecase.CreateTrainingInput{
		Division:      req.Division,
		Department:    req.Department,
		Competency:    req.Competency,
		Skill:         req.Skill,
		Name:          req.Name,
		Topics:        req.Topics,
		Prerequisites: req.Prerequisites,
		SkillCategory: req.SkillCategory,
		TrainerName:   req.TrainerName,
		Email:         req.Email,
		Date:          req.Date,
		Duration:      req.Duration,
		TimeOfDay:     req.TimeOfDay,
		Type:          req.Type,
		Seats:         req.Seats,
		Assessment:    req.Assessment,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromTraining(rec))
}

func (h *TrainingHandler) Mine(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	list, err := h.uc.MyTrainings(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTrainings(list))
}

func (h *TrainingHandler) Calendar(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || year <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "year and month are required", nil, nil)
	}

	view, err := h.uc.CalendarMonth(c.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid month", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}
