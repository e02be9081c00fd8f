package middleware

import (
	"errors"
	"strings"

	"comptrack/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey    = "user_id"
	CtxUsernameKey  = "username"
	CtxRoleKey      = "role"
	CtxIsTrainerKey = "is_trainer"

	RoleManager = "manager"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxRoleKey, claims.Role)
		c.Locals(CtxIsTrainerKey, claims.IsTrainer)

		return c.Next()
	}
}

// RequireManager gates manager-only routes. It must run after Middleware.
func (m *AuthMiddleware) RequireManager() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if role != RoleManager {
			return NewAppError(fiber.StatusForbidden, "Manager role required", nil, nil)
		}
		return c.Next()
	}
}

// RequireTrainer gates trainer-zone routes. Trainer is a capability flag
// independent of the manager role; an employee can be a trainer.
func (m *AuthMiddleware) RequireTrainer() fiber.Handler {
	return func(c fiber.Ctx) error {
		isTrainer, _ := c.Locals(CtxIsTrainerKey).(bool)
		if !isTrainer {
			return NewAppError(fiber.StatusForbidden, "Trainer access required", nil, nil)
		}
		return c.Next()
	}
}

// UserIDFromCtx reads the authenticated user set by Middleware.
func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
