package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"comptrack/internal/pkg/jwt"
	"comptrack/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byUsername map[string]repository.User
	byID       map[uuid.UUID]repository.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byUsername: map[string]repository.User{},
		byID:       map[uuid.UUID]repository.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) (repository.User, error) {
	if _, ok := m.byUsername[u.Username]; ok {
		return repository.User{}, repository.ErrUserAlreadyExists
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	m.byUsername[u.Username] = u
	m.byID[u.ID] = u
	return u, nil
}
func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (repository.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}
func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthRegister_IssuesTokensWithRole(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, newTestJWT())

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Username:    "Asha.Manager",
		DisplayName: "Asha Iyer",
		Email:       "asha@comptrack.dev",
		Password:    "supersecret",
		Role:        RoleManager,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Username != "asha.manager" {
		t.Fatalf("expected lowercased username, got %q", usr.Username)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	claims, err := newTestJWT().ValidateToken(access)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Role != RoleManager || claims.Username != "asha.manager" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthRegister_EmployeeTrainerClaim(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), newTestJWT())

	_, access, _, err := uc.Register(context.Background(), RegisterInput{
		Username:  "dita.trainer",
		Password:  "supersecret",
		Role:      RoleEmployee,
		IsTrainer: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := newTestJWT().ValidateToken(access)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Role != RoleEmployee || !claims.IsTrainer {
		t.Fatalf("expected an employee trainer claim, got %+v", claims)
	}
}

func TestAuthRegister_RejectsShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), newTestJWT())
	_, _, _, err := uc.Register(context.Background(), RegisterInput{
		Username: "x", Password: "short", Role: RoleEmployee,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthRegister_DuplicateUsername(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, newTestJWT())

	in := RegisterInput{Username: "budi", Password: "password1", Role: RoleEmployee}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	if _, err := users.Create(context.Background(), repository.User{
		Username: "budi", PasswordHash: string(hash), Role: RoleEmployee,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uc := NewAuthUsecase(users, newTestJWT())
	_, _, _, err := uc.Login(context.Background(), LoginInput{Username: "budi", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthRefresh_RejectsAccessToken(t *testing.T) {
	users := newMockUserRepo()
	usr, err := users.Create(context.Background(), repository.User{Username: "budi", Role: RoleEmployee})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := newTestJWT()
	access, err := svc.GenerateAccessToken(usr.ID, usr.Username, usr.Role, usr.IsTrainer)
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}

	uc := NewAuthUsecase(users, svc)
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthRefresh_RoundTrip(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, newTestJWT())

	_, _, refresh, err := uc.Register(context.Background(), RegisterInput{
		Username: "budi", Password: "password1", Role: RoleEmployee,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("expected rotated token pair")
	}
}
