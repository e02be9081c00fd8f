package usecase

import (
	"sync"

	"comptrack/internal/domain/assessment"

	"github.com/google/uuid"
)

// DraftStore keeps one builder per trainer. Drafts live only in process
// memory; nothing is persisted until a form is submitted.
type DraftStore struct {
	mu       sync.Mutex
	builders map[uuid.UUID]*assessment.Builder
}

func NewDraftStore() *DraftStore {
	return &DraftStore{builders: make(map[uuid.UUID]*assessment.Builder)}
}

func (s *DraftStore) Get(userID uuid.UUID) *assessment.Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builders[userID]
	if !ok {
		b = assessment.NewBuilder()
		s.builders[userID] = b
	}
	return b
}

func (s *DraftStore) Discard(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.builders, userID)
}
