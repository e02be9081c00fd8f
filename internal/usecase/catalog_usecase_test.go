package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"comptrack/internal/domain/training"
	"comptrack/internal/pkg/validation"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

type mockTrainingRepo struct {
	all      []training.Record
	assigned map[uuid.UUID][]training.Record
	created  []training.Record
	err      error
}

func (m *mockTrainingRepo) ListAll(context.Context) ([]training.Record, error) {
	return m.all, m.err
}
func (m *mockTrainingRepo) GetByID(_ context.Context, id uuid.UUID) (training.Record, error) {
	for _, r := range m.all {
		if r.ID == id {
			return r, nil
		}
	}
	return training.Record{}, repository.ErrTrainingNotFound
}
func (m *mockTrainingRepo) Create(_ context.Context, rec training.Record) (training.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m.created = append(m.created, rec)
	return rec, nil
}
func (m *mockTrainingRepo) ListAssignedTo(_ context.Context, employeeID uuid.UUID) ([]training.Record, error) {
	return m.assigned[employeeID], m.err
}

func dateOf(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestCatalogList_FiltersAndSortsAscending(t *testing.T) {
	repo := &mockTrainingRepo{all: []training.Record{
		{ID: uuid.New(), Name: "Kubernetes Basics", Skill: "Kubernetes", Type: "Virtual"},
		{ID: uuid.New(), Name: "Go Advanced", Skill: "Go", Type: "Virtual", Date: dateOf("2026-10-01")},
		{ID: uuid.New(), Name: "Go Basics", Skill: "Go", Type: "Virtual", Date: dateOf("2026-09-01")},
		{ID: uuid.New(), Name: "SQL Tuning", Skill: "SQL", Type: "In-person", Date: dateOf("2026-08-01")},
	}}

	uc := NewCatalogUsecase(repo, nil, time.Minute, validation.New(), nil)
	got, _, err := uc.List(context.Background(), CatalogParams{Skill: "Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 Go trainings, got %d", len(got))
	}
	if got[0].Name != "Go Basics" || got[1].Name != "Go Advanced" {
		t.Fatalf("expected ascending date order, got %s then %s", got[0].Name, got[1].Name)
	}
}

func TestCatalogList_UndatedSortLast(t *testing.T) {
	repo := &mockTrainingRepo{all: []training.Record{
		{ID: uuid.New(), Name: "Undated", Type: "Virtual"},
		{ID: uuid.New(), Name: "Dated", Type: "Virtual", Date: dateOf("2026-09-01")},
	}}

	uc := NewCatalogUsecase(repo, nil, time.Minute, validation.New(), nil)
	got, _, err := uc.List(context.Background(), CatalogParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[len(got)-1].Name != "Undated" {
		t.Fatalf("expected undated training last, got %s", got[len(got)-1].Name)
	}
}

func TestCatalogList_ServesFromCache(t *testing.T) {
	repo := &mockTrainingRepo{all: []training.Record{
		{ID: uuid.New(), Name: "Fresh", Type: "Virtual"},
	}}
	cache := newMockCache()
	uc := NewCatalogUsecase(repo, cache, time.Minute, validation.New(), nil)

	params := CatalogParams{Type: "Virtual"}
	if _, _, err := uc.List(context.Background(), params); err != nil {
		t.Fatalf("warm call failed: %v", err)
	}

	repo.all = nil
	got, degraded, err := uc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("cached call failed: %v", err)
	}
	if degraded {
		t.Fatalf("cache hit must not report degraded mode")
	}
	if len(got) != 1 || got[0].Name != "Fresh" {
		t.Fatalf("expected cached result, got %+v", got)
	}
}

func TestCatalogList_ServesStaleCopyWhenRepositoryDown(t *testing.T) {
	repo := &mockTrainingRepo{all: []training.Record{
		{ID: uuid.New(), Name: "Survivor", Type: "Virtual"},
	}}
	cache := newMockCache()
	uc := NewCatalogUsecase(repo, cache, time.Minute, validation.New(), nil)

	params := CatalogParams{Type: "Virtual"}
	if _, _, err := uc.List(context.Background(), params); err != nil {
		t.Fatalf("warm call failed: %v", err)
	}

	// Expire the regular entry but keep the stale copy, then break the repo.
	if err := cache.Delete(context.Background(), CatalogCacheKey(params)); err != nil {
		t.Fatalf("drop cache entry: %v", err)
	}
	repo.all = nil
	repo.err = errors.New("connection refused")

	got, degraded, err := uc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("expected stale fallback, got error: %v", err)
	}
	if !degraded {
		t.Fatalf("expected degraded mode to be reported")
	}
	if len(got) != 1 || got[0].Name != "Survivor" {
		t.Fatalf("unexpected stale result: %+v", got)
	}
}

func TestCatalogList_RepositoryDownWithoutCacheFails(t *testing.T) {
	repo := &mockTrainingRepo{err: errors.New("connection refused")}
	uc := NewCatalogUsecase(repo, newMockCache(), time.Minute, validation.New(), nil)

	if _, _, err := uc.List(context.Background(), CatalogParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal with no stale copy, got %v", err)
	}
}

func TestCatalogCreate_CollectsFieldErrors(t *testing.T) {
	uc := NewCatalogUsecase(&mockTrainingRepo{}, nil, time.Minute, validation.New(), nil)

	_, fields, err := uc.Create(context.Background(), CreateTrainingInput{
		Name:  "Incomplete",
		Email: "not-an-email",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(fields) == 0 {
		t.Fatalf("expected field errors")
	}
	seen := map[string]string{}
	for _, f := range fields {
		seen[f.Field] = f.Message
	}
	if seen["email"] != "must be a valid email address" {
		t.Fatalf("expected email message, got %q", seen["email"])
	}
	if _, ok := seen["trainerName"]; !ok {
		t.Fatalf("expected trainerName to be flagged, got %v", seen)
	}
}

func TestCatalogCreate_InvalidatesCatalogCache(t *testing.T) {
	repo := &mockTrainingRepo{}
	cache := newMockCache()
	uc := NewCatalogUsecase(repo, cache, time.Minute, validation.New(), nil)

	if _, _, err := uc.List(context.Background(), CatalogParams{}); err != nil {
		t.Fatalf("warm call failed: %v", err)
	}

	_, fields, err := uc.Create(context.Background(), CreateTrainingInput{
		Division: "Engineering", Department: "Platform", Competency: "Backend Development",
		Skill: "Go", Name: "Go Basics", Topics: "Syntax", SkillCategory: "Programming Language",
		TrainerName: "Dita", Email: "dita@comptrack.dev", Duration: "1 day",
		TimeOfDay: "Morning", Type: "Virtual", Seats: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v (fields %v)", err, fields)
	}
	if len(cache.data) != 0 {
		t.Fatalf("expected catalog cache flushed, %d keys remain", len(cache.data))
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created training, got %d", len(repo.created))
	}
}

func TestMyTrainings_NewestFirstWithUndatedAtBottom(t *testing.T) {
	employeeID := uuid.New()
	repo := &mockTrainingRepo{assigned: map[uuid.UUID][]training.Record{
		employeeID: {
			{ID: uuid.New(), Name: "Old", Date: dateOf("2026-01-10")},
			{ID: uuid.New(), Name: "Undated"},
			{ID: uuid.New(), Name: "New", Date: dateOf("2026-08-10")},
		},
	}}

	uc := NewCatalogUsecase(repo, nil, time.Minute, validation.New(), nil)
	got, err := uc.MyTrainings(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "New" || got[1].Name != "Old" || got[2].Name != "Undated" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestCalendarMonth_PlacesEventsAndLeadingNulls(t *testing.T) {
	employeeID := uuid.New()
	repo := &mockTrainingRepo{assigned: map[uuid.UUID][]training.Record{
		employeeID: {
			{ID: uuid.New(), Name: "Go Basics", TrainerName: "Dita", Date: dateOf("2026-04-15")},
		},
	}}

	uc := NewCatalogUsecase(repo, nil, time.Minute, validation.New(), nil)
	view, err := uc.CalendarMonth(context.Background(), employeeID, 2026, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// April 1st 2026 is a Wednesday, so three leading placeholders.
	if len(view.Cells) != 33 {
		t.Fatalf("expected 33 cells, got %d", len(view.Cells))
	}
	for i := 0; i < 3; i++ {
		if view.Cells[i].Date != nil {
			t.Fatalf("expected cell %d to be a placeholder", i)
		}
	}

	cell := view.Cells[3+14]
	if cell.Date == nil || cell.Date.Day() != 15 {
		t.Fatalf("expected April 15 at index 17")
	}
	if len(cell.Events) != 1 || cell.Events[0].Title != "Go Basics" {
		t.Fatalf("expected event on April 15, got %+v", cell.Events)
	}
}

func TestCalendarMonth_RejectsBadMonth(t *testing.T) {
	uc := NewCatalogUsecase(&mockTrainingRepo{}, nil, time.Minute, validation.New(), nil)
	if _, err := uc.CalendarMonth(context.Background(), uuid.New(), 2026, 13); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
