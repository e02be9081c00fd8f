package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"comptrack/internal/domain/competency"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

type mockTeamRepo struct {
	members []repository.TeamMember
	manages map[uuid.UUID]bool
	err     error
}

func (m mockTeamRepo) ListMembers(context.Context, uuid.UUID) ([]repository.TeamMember, error) {
	return m.members, m.err
}
func (m mockTeamRepo) IsManagerOf(_ context.Context, _, employeeID uuid.UUID) (bool, error) {
	return m.manages[employeeID], nil
}

type mockCompetencyRepo struct {
	byEmployee map[uuid.UUID][]competency.Competency
	owner      map[uuid.UUID]uuid.UUID
	updated    map[uuid.UUID][2]string
}

func (m *mockCompetencyRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]competency.Competency, error) {
	return m.byEmployee[employeeID], nil
}
func (m *mockCompetencyRepo) Get(_ context.Context, id uuid.UUID) (competency.Competency, uuid.UUID, error) {
	owner, ok := m.owner[id]
	if !ok {
		return competency.Competency{}, uuid.Nil, repository.ErrCompetencyNotFound
	}
	for _, list := range m.byEmployee {
		for _, c := range list {
			if c.ID == id {
				return c, owner, nil
			}
		}
	}
	return competency.Competency{}, uuid.Nil, repository.ErrCompetencyNotFound
}
func (m *mockCompetencyRepo) UpdateLevels(_ context.Context, id uuid.UUID, current, target string) error {
	if m.updated == nil {
		m.updated = map[uuid.UUID][2]string{}
	}
	m.updated[id] = [2]string{current, target}
	return nil
}
func (m *mockCompetencyRepo) ListAdditionalSkills(context.Context, uuid.UUID) ([]competency.AdditionalSkill, error) {
	return nil, nil
}

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache { return &mockCache{data: map[string][]byte{}} }

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}
func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}
func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
func (m *mockCache) DeleteByPattern(_ context.Context, _ string) error {
	m.data = map[string][]byte{}
	return nil
}
func (m *mockCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = []byte(value)
	return true, nil
}

func TestManagerOverview_AggregatesTeam(t *testing.T) {
	managerID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	users := newMockUserRepo()
	users.byID[managerID] = repository.User{ID: managerID, Username: "asha", Role: RoleManager, IsTrainer: true}
	team := mockTeamRepo{members: []repository.TeamMember{
		{ID: alice, Username: "alice", DisplayName: "Alice"},
		{ID: bob, Username: "bob", DisplayName: "Bob"},
	}}
	comps := &mockCompetencyRepo{byEmployee: map[uuid.UUID][]competency.Competency{
		alice: {
			{ID: uuid.New(), SkillName: "Python", Status: competency.StatusGap},
			{ID: uuid.New(), SkillName: "Git", Status: competency.StatusMet},
		},
		bob: {
			{ID: uuid.New(), SkillName: "Python", Status: competency.StatusGap},
		},
	}}

	uc := NewManagerUsecase(users, team, comps, newMockCache(), time.Minute, nil)
	overview, err := uc.Overview(context.Background(), managerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(overview.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(overview.Members))
	}
	if !overview.ManagerIsTrainer {
		t.Fatalf("expected the manager's trainer flag to be set")
	}
	if overview.Summary.Total != 3 || overview.Summary.GapCount != 2 {
		t.Fatalf("unexpected team summary: %+v", overview.Summary)
	}
	if len(overview.TopGaps) != 1 || overview.TopGaps[0].SkillName != "Python" || overview.TopGaps[0].Count != 2 {
		t.Fatalf("unexpected top gaps: %+v", overview.TopGaps)
	}
}

func TestUpdateTeamSkill_RejectsOutsiders(t *testing.T) {
	compID := uuid.New()
	stranger := uuid.New()
	comps := &mockCompetencyRepo{
		byEmployee: map[uuid.UUID][]competency.Competency{
			stranger: {{ID: compID, SkillName: "Go", Status: competency.StatusGap}},
		},
		owner: map[uuid.UUID]uuid.UUID{compID: stranger},
	}
	team := mockTeamRepo{manages: map[uuid.UUID]bool{}}

	uc := NewManagerUsecase(newMockUserRepo(), team, comps, nil, time.Minute, nil)
	_, err := uc.UpdateTeamSkill(context.Background(), uuid.New(), SkillUpdateInput{
		CompetencyID:     compID,
		CurrentExpertise: "L3",
		TargetExpertise:  "L3",
	})
	if !errors.Is(err, ErrNotTeamMember) {
		t.Fatalf("expected ErrNotTeamMember, got %v", err)
	}
}

func TestUpdateTeamSkill_RefoldsCachedSummary(t *testing.T) {
	managerID := uuid.New()
	employeeID := uuid.New()
	compID := uuid.New()

	comps := &mockCompetencyRepo{
		byEmployee: map[uuid.UUID][]competency.Competency{
			employeeID: {{ID: compID, SkillName: "Go", Status: competency.StatusGap}},
		},
		owner: map[uuid.UUID]uuid.UUID{compID: employeeID},
	}
	team := mockTeamRepo{manages: map[uuid.UUID]bool{employeeID: true}}
	cache := newMockCache()

	seed := competency.Summary{Total: 5, MetCount: 2, GapCount: 3, ProgressPercent: 40}
	if err := cache.SetJSON(context.Background(), TeamSummaryCacheKey(managerID.String()), seed, time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	uc := NewManagerUsecase(newMockUserRepo(), team, comps, cache, time.Minute, nil)
	view, err := uc.UpdateTeamSkill(context.Background(), managerID, SkillUpdateInput{
		CompetencyID:     compID,
		CurrentExpertise: "L4",
		TargetExpertise:  "L4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != competency.StatusMet {
		t.Fatalf("expected Met after update, got %s", view.Status)
	}

	var refolded competency.Summary
	hit, err := cache.GetJSON(context.Background(), TeamSummaryCacheKey(managerID.String()), &refolded)
	if err != nil || !hit {
		t.Fatalf("expected refolded summary in cache, hit=%v err=%v", hit, err)
	}
	if refolded.MetCount != 3 || refolded.GapCount != 2 || refolded.Total != 5 {
		t.Fatalf("unexpected refolded summary: %+v", refolded)
	}
	if refolded.ProgressPercent != 60 {
		t.Fatalf("expected 60%% after refold, got %d", refolded.ProgressPercent)
	}
}

func TestUpdateTeamSkill_UnknownCompetency(t *testing.T) {
	uc := NewManagerUsecase(newMockUserRepo(), mockTeamRepo{}, &mockCompetencyRepo{}, nil, time.Minute, nil)
	_, err := uc.UpdateTeamSkill(context.Background(), uuid.New(), SkillUpdateInput{
		CompetencyID:     uuid.New(),
		CurrentExpertise: "L1",
		TargetExpertise:  "L2",
	})
	if !errors.Is(err, repository.ErrCompetencyNotFound) {
		t.Fatalf("expected ErrCompetencyNotFound, got %v", err)
	}
}
