package repository

import (
	"context"
	"sync"

	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
)

type memorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStore keeps slots in process memory only.
func NewMemorySlotStore() domainRepo.SlotStore {
	return &memorySlotStore{slots: make(map[string][]byte)}
}

func (s *memorySlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *memorySlotStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}
