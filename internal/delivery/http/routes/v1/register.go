package v1

import (
	"log"

	"comptrack/internal/config"
	"comptrack/internal/database"
	"comptrack/internal/delivery/http/handler"
	"comptrack/internal/delivery/http/middleware"
	"comptrack/internal/infrastructure/cache"
	"comptrack/internal/pkg/jwt"
	"comptrack/internal/pkg/validation"
	"comptrack/internal/repository"
	"comptrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cacheRedis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	validator := validation.New()

	userRepo := repository.NewPostgresUserRepository(db)
	teamRepo := repository.NewPostgresTeamRepository(db)
	competencyRepo := repository.NewPostgresCompetencyRepository(db)
	trainingRepo := repository.NewPostgresTrainingRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)
	additionalSkillRepo := repository.NewPostgresAdditionalSkillRepository(db)
	assessmentRepo := repository.NewPostgresAssessmentRepository(db)

	ttl := cfg.Redis.TTL

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	dashboardUC := usecase.NewDashboardUsecase(userRepo, competencyRepo)
	managerUC := usecase.NewManagerUsecase(userRepo, teamRepo, competencyRepo, cacheRedis, ttl, logger)
	catalogUC := usecase.NewCatalogUsecase(trainingRepo, cacheRedis, ttl, validator, logger)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, trainingRepo, teamRepo)
	additionalSkillUC := usecase.NewAdditionalSkillUsecase(additionalSkillRepo)
	builderUC := usecase.NewBuilderUsecase(usecase.NewDraftStore(), assessmentRepo, trainingRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	teamHandler := handler.NewTeamHandler(managerUC)
	trainingHandler := handler.NewTrainingHandler(catalogUC)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUC)
	additionalSkillHandler := handler.NewAdditionalSkillHandler(additionalSkillUC)
	builderHandler := handler.NewBuilderHandler(builderUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())
	requireManager := authMw.RequireManager()
	requireTrainer := authMw.RequireTrainer()

	dashboardHandler.RegisterRoutes(protected.Group("/dashboard"))
	teamHandler.RegisterRoutes(protected.Group("/team", requireManager))
	trainingHandler.RegisterRoutes(protected.Group("/trainings"), requireTrainer)
	assignmentHandler.RegisterRoutes(protected.Group("/assignments"), requireManager)
	additionalSkillHandler.RegisterRoutes(protected.Group("/skills"))
	builderHandler.RegisterRoutes(protected.Group("/trainer/builder", requireTrainer))
}
