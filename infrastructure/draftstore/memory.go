package draftstore

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]*domain.SettingsDraft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[string]*domain.SettingsDraft),
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*domain.SettingsDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, draft *domain.SettingsDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[draft.UserID] = draft.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
	return nil
}

// Sweep remove os rascunhos sem alteração desde cutoff e devolve quantos saíram
func (s *MemoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, draft := range s.drafts {
		if draft.UpdatedAt.Before(cutoff) {
			delete(s.drafts, userID)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}
