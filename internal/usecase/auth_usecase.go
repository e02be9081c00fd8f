package usecase

import (
	"context"
	"errors"
	"strings"

	"comptrack/internal/pkg/jwt"
	"comptrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken       = errors.New("username already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

type RegisterInput struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	Role        string
	IsTrainer   bool
}

type LoginInput struct {
	Username string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.User, string, string, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || len(in.Password) < 8 {
		return repository.User{}, "", "", ErrInvalidInput
	}
	role := strings.TrimSpace(in.Role)
	if role != RoleEmployee && role != RoleManager {
		return repository.User{}, "", "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}

	created, err := u.users.Create(ctx, repository.User{
		Username:     username,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsTrainer:    in.IsTrainer,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return repository.User{}, "", "", ErrUsernameTaken
		}
		return repository.User{}, "", "", ErrInternal
	}

	return u.withTokens(created)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.User, string, string, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || in.Password == "" {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, "", "", ErrInvalidCredentials
		}
		return repository.User{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	return u.withTokens(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Username, usr.Role, usr.IsTrainer)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) withTokens(usr repository.User) (repository.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Username, usr.Role, usr.IsTrainer)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}
