package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"comptrack/internal/domain/calendar"
	"comptrack/internal/domain/training"
	"comptrack/internal/pkg/validation"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

// Stale copies outlive the regular cache entry so an outage shorter than a
// day still has something to serve.
const staleCatalogTTL = 24 * time.Hour

type CatalogParams struct {
	Search        string
	SearchIn      string
	Skill         string
	SkillCategory string
	Type          string
	Date          string
}

type CreateTrainingInput struct {
	Division      string `validate:"required"`
	Department    string `validate:"required"`
	Competency    string `validate:"required"`
	Skill         string `validate:"required"`
	Name          string `validate:"required"`
	Topics        string `validate:"required"`
	Prerequisites string
	SkillCategory string `validate:"required"`
	TrainerName   string `validate:"required"`
	Email         string `validate:"required,email"`
	Date          string `validate:"omitempty,datetime=2006-01-02"`
	Duration      string `validate:"required"`
	TimeOfDay     string `validate:"required"`
	Type          string `validate:"required,oneof=Virtual In-person Hybrid"`
	Seats         int    `validate:"min=0"`
	Assessment    string
}

type CalendarCell struct {
	Date    *time.Time       `json:"date"`
	IsToday bool             `json:"isToday"`
	Events  []calendar.Event `json:"events"`
}

type CalendarView struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

type CatalogUsecase interface {
	List(ctx context.Context, params CatalogParams) ([]training.Record, bool, error)
	Get(ctx context.Context, id uuid.UUID) (training.Record, error)
	Create(ctx context.Context, in CreateTrainingInput) (training.Record, []validation.FieldError, error)
	MyTrainings(ctx context.Context, employeeID uuid.UUID) ([]training.Record, error)
	CalendarMonth(ctx context.Context, employeeID uuid.UUID, year, month int) (CalendarView, error)
}

type Catalog struct {
	trainings repository.TrainingRepository
	cache     Cache
	cacheTTL  time.Duration
	validator *validation.Validator
	logger    *log.Logger
	now       func() time.Time
}

func NewCatalogUsecase(trainings repository.TrainingRepository, cache Cache, cacheTTL time.Duration, v *validation.Validator, logger *log.Logger) *Catalog {
	return &Catalog{
		trainings: trainings,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validator: v,
		logger:    logger,
		now:       time.Now,
	}
}

// List serves the filtered catalog through a cache-aside path. A short lock
// keeps concurrent misses for one filter from stampeding Postgres. The bool
// result reports degraded mode: the repository was down and the response is
// the last cached copy for this filter.
func (u *Catalog) List(ctx context.Context, params CatalogParams) ([]training.Record, bool, error) {
	cacheKey := CatalogCacheKey(params)
	lockKey := CatalogLockKey(cacheKey)

	if u.cache != nil {
		var cached []training.Record
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Catalog] Cache HIT: %s", cacheKey)
			}
			return cached, false, nil
		}

		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && !ok {
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitter)
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, false, nil
			}
		}
	}

	all, err := u.trainings.ListAll(ctx)
	if err != nil {
		if u.cache != nil {
			var stale []training.Record
			hit, err2 := u.cache.GetJSON(ctx, CatalogStaleKey(cacheKey), &stale)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Catalog] repository down, serving stale copy: %v", err)
				}
				return stale, true, nil
			}
		}
		return nil, false, ErrInternal
	}

	var searchIn []training.SearchField
	if field := searchFieldFromParam(params.SearchIn); field != "" {
		searchIn = []training.SearchField{field}
	}
	filter := training.Filter{
		Search:        params.Search,
		SearchIn:      searchIn,
		Skill:         params.Skill,
		SkillCategory: params.SkillCategory,
		Type:          params.Type,
		Date:          params.Date,
	}
	result := training.SortByDateAsc(filter.Apply(all))

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Catalog] cache set failed: %v", err)
		}
		if err := u.cache.SetJSON(ctx, CatalogStaleKey(cacheKey), result, staleCatalogTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Catalog] stale copy set failed: %v", err)
		}
		_ = u.cache.Delete(ctx, lockKey)
	}

	return result, false, nil
}

func (u *Catalog) Get(ctx context.Context, id uuid.UUID) (training.Record, error) {
	rec, err := u.trainings.GetByID(ctx, id)
	if err != nil {
		return training.Record{}, err
	}
	return rec, nil
}

func (u *Catalog) Create(ctx context.Context, in CreateTrainingInput) (training.Record, []validation.FieldError, error) {
	if fields := u.validator.Struct(in); len(fields) > 0 {
		return training.Record{}, fields, ErrInvalidInput
	}

	var date *time.Time
	if s := strings.TrimSpace(in.Date); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return training.Record{}, []validation.FieldError{{Field: "date", Message: "must be a date in YYYY-MM-DD format"}}, ErrInvalidInput
		}
		date = &d
	}

	rec, err := u.trainings.Create(ctx, training.Record{
		Division:      in.Division,
		Department:    in.Department,
		Competency:    in.Competency,
		Skill:         in.Skill,
		Name:          in.Name,
		Topics:        in.Topics,
		Prerequisites: in.Prerequisites,
		SkillCategory: in.SkillCategory,
		TrainerName:   in.TrainerName,
		Email:         in.Email,
		Date:          date,
		Duration:      in.Duration,
		TimeOfDay:     in.TimeOfDay,
		Type:          in.Type,
		Seats:         in.Seats,
		Assessment:    in.Assessment,
	})
	if err != nil {
		return training.Record{}, nil, ErrInternal
	}

	if u.cache != nil {
		for _, pattern := range []string{"trainings:catalog:*", "trainings:stale:*"} {
			if err := u.cache.DeleteByPattern(ctx, pattern); err != nil && u.logger != nil {
				u.logger.Printf("[Catalog] cache invalidation failed: %v", err)
			}
		}
	}

	return rec, nil, nil
}

// MyTrainings lists the caller's assigned trainings newest first. Undated
// entries sink to the bottom here, unlike the catalog where they sort last
// in an ascending list.
func (u *Catalog) MyTrainings(ctx context.Context, employeeID uuid.UUID) ([]training.Record, error) {
	assigned, err := u.trainings.ListAssignedTo(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	return training.SortByDateDesc(assigned), nil
}

func (u *Catalog) CalendarMonth(ctx context.Context, employeeID uuid.UUID, year, month int) (CalendarView, error) {
	if month < 1 || month > 12 {
		return CalendarView{}, ErrInvalidInput
	}

	assigned, err := u.trainings.ListAssignedTo(ctx, employeeID)
	if err != nil {
		return CalendarView{}, ErrInternal
	}

	events := make([]calendar.Event, 0, len(assigned))
	for _, rec := range assigned {
		if rec.Date == nil {
			continue
		}
		events = append(events, calendar.Event{
			Date:        *rec.Date,
			Title:       rec.Name,
			TrainerName: rec.TrainerName,
		})
	}

	grid := calendar.Project(calendar.Month{Year: year, Month: time.Month(month)})
	now := u.now()

	cells := make([]CalendarCell, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		cells = append(cells, CalendarCell{
			Date:    cell,
			IsToday: calendar.IsToday(cell, now),
			Events:  calendar.EventsOn(cell, events),
		})
	}

	return CalendarView{Year: year, Month: month, Cells: cells}, nil
}

func searchFieldFromParam(s string) training.SearchField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return training.SearchName
	case "topics":
		return training.SearchTopics
	case "trainer":
		return training.SearchTrainer
	case "skill":
		return training.SearchSkill
	default:
		return ""
	}
}
