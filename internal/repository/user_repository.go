package repository

import (
	"context"
	"errors"

	"comptrack/internal/database"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type User struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	Role         string
	IsTrainer    bool
}

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u User) (User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, display_name, email, password_hash, role, is_trainer)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.DisplayName, u.Email, u.PasswordHash, u.Role, u.IsTrainer,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserAlreadyExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (User, error) {
	return r.get(ctx, `
		SELECT id, username, display_name, email, password_hash, role, is_trainer
		FROM users WHERE username = $1`, username)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.get(ctx, `
		SELECT id, username, display_name, email, password_hash, role, is_trainer
		FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) get(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.IsTrainer)
	if err != nil {
		if isNoRows(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}
