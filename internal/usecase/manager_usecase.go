package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"comptrack/internal/domain/competency"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

var ErrNotTeamMember = errors.New("employee is not on this manager's team")

type TeamMemberView struct {
	UserID       uuid.UUID          `json:"userId"`
	Username     string             `json:"username"`
	DisplayName  string             `json:"displayName"`
	Competencies []CompetencyView   `json:"competencies"`
	Summary      competency.Summary `json:"summary"`
}

type TeamOverview struct {
	ManagerIsTrainer bool                 `json:"managerIsTrainer"`
	Members          []TeamMemberView     `json:"members"`
	Summary          competency.Summary   `json:"summary"`
	TopGaps          []competency.GapRank `json:"topGaps"`
}

type SkillUpdateInput struct {
	CompetencyID     uuid.UUID
	CurrentExpertise string
	TargetExpertise  string
}

type ManagerUsecase interface {
	Overview(ctx context.Context, managerID uuid.UUID) (TeamOverview, error)
	GapRanking(ctx context.Context, managerID uuid.UUID, all bool) ([]competency.GapRank, error)
	UpdateTeamSkill(ctx context.Context, managerID uuid.UUID, in SkillUpdateInput) (CompetencyView, error)
}

type Manager struct {
	users        repository.UserRepository
	team         repository.TeamRepository
	competencies repository.CompetencyRepository
	cache        Cache
	cacheTTL     time.Duration
	logger       *log.Logger
}

func NewManagerUsecase(users repository.UserRepository, team repository.TeamRepository, competencies repository.CompetencyRepository, cache Cache, cacheTTL time.Duration, logger *log.Logger) *Manager {
	return &Manager{users: users, team: team, competencies: competencies, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (u *Manager) Overview(ctx context.Context, managerID uuid.UUID) (TeamOverview, error) {
	mgr, err := u.users.GetByID(ctx, managerID)
	if err != nil {
		return TeamOverview{}, ErrInternal
	}

	members, err := u.team.ListMembers(ctx, managerID)
	if err != nil {
		return TeamOverview{}, ErrInternal
	}

	views := make([]TeamMemberView, 0, len(members))
	all := make([]competency.Competency, 0)
	for _, m := range members {
		list, err := u.competencies.ListByEmployee(ctx, m.ID)
		if err != nil {
			return TeamOverview{}, ErrInternal
		}
		views = append(views, TeamMemberView{
			UserID:       m.ID,
			Username:     m.Username,
			DisplayName:  m.DisplayName,
			Competencies: toViews(list),
			Summary:      competency.Summarize(list),
		})
		all = append(all, list...)
	}

	overview := TeamOverview{
		ManagerIsTrainer: mgr.IsTrainer,
		Members:          views,
		Summary:          competency.Summarize(all),
		TopGaps:          competency.RankGaps(all, competency.TopGapsCompact),
	}

	if u.cache != nil {
		key := TeamSummaryCacheKey(managerID.String())
		if err := u.cache.SetJSON(ctx, key, overview.Summary, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Team] cache set failed: %v", err)
		}
	}

	return overview, nil
}

func (u *Manager) GapRanking(ctx context.Context, managerID uuid.UUID, all bool) ([]competency.GapRank, error) {
	members, err := u.team.ListMembers(ctx, managerID)
	if err != nil {
		return nil, ErrInternal
	}

	pool := make([]competency.Competency, 0)
	for _, m := range members {
		list, err := u.competencies.ListByEmployee(ctx, m.ID)
		if err != nil {
			return nil, ErrInternal
		}
		pool = append(pool, list...)
	}

	topN := competency.TopGapsCompact
	if all {
		topN = competency.AllGaps
	}
	return competency.RankGaps(pool, topN), nil
}

// UpdateTeamSkill persists new levels for one competency and folds the
// status change into the cached team summary instead of recomputing it.
func (u *Manager) UpdateTeamSkill(ctx context.Context, managerID uuid.UUID, in SkillUpdateInput) (CompetencyView, error) {
	if in.CompetencyID == uuid.Nil || in.CurrentExpertise == "" || in.TargetExpertise == "" {
		return CompetencyView{}, ErrInvalidInput
	}

	old, employeeID, err := u.competencies.Get(ctx, in.CompetencyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompetencyNotFound) {
			return CompetencyView{}, err
		}
		return CompetencyView{}, ErrInternal
	}

	ok, err := u.team.IsManagerOf(ctx, managerID, employeeID)
	if err != nil {
		return CompetencyView{}, ErrInternal
	}
	if !ok {
		return CompetencyView{}, ErrNotTeamMember
	}

	if err := u.competencies.UpdateLevels(ctx, in.CompetencyID, in.CurrentExpertise, in.TargetExpertise); err != nil {
		if errors.Is(err, repository.ErrCompetencyNotFound) {
			return CompetencyView{}, err
		}
		return CompetencyView{}, ErrInternal
	}

	newStatus := competency.StatusFromLevels(in.CurrentExpertise, in.TargetExpertise)
	u.refoldSummary(ctx, managerID, old.Status, newStatus)

	return CompetencyView{
		ID:               in.CompetencyID,
		SkillName:        old.SkillName,
		CompetencyName:   old.CompetencyName,
		CurrentExpertise: in.CurrentExpertise,
		TargetExpertise:  in.TargetExpertise,
		Status:           newStatus,
		ProgressPercent:  competency.Progress(in.CurrentExpertise, in.TargetExpertise),
	}, nil
}

func (u *Manager) refoldSummary(ctx context.Context, managerID uuid.UUID, oldStatus, newStatus competency.Status) {
	if u.cache == nil {
		return
	}
	key := TeamSummaryCacheKey(managerID.String())

	var cached competency.Summary
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		return
	}

	updated := competency.ApplySkillUpdate(cached, oldStatus, newStatus)
	if err := u.cache.SetJSON(ctx, key, updated, u.cacheTTL); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Team] cache refold failed, dropping key: %v", err)
		}
		_ = u.cache.Delete(ctx, key)
	}
}
