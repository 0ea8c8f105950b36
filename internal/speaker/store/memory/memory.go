package memory

import (
	"context"
	"fmt"
	"sync"

	"speakerreg/internal/speaker/models"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/sentinel"
)

// InMemoryStore keeps registrations in a map guarded by a RWMutex.
// Saved and returned registrations are deep copies.
type InMemoryStore struct {
	mu       sync.RWMutex
	speakers map[id.SpeakerID]*models.SpeakerRegistration
}

func New() *InMemoryStore {
	return &InMemoryStore{
		speakers: make(map[id.SpeakerID]*models.SpeakerRegistration),
	}
}

// SaveSpeaker assigns a fresh SpeakerID and stores a copy of reg.
func (s *InMemoryStore) SaveSpeaker(_ context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error) {
	if reg == nil {
		return id.SpeakerID{}, fmt.Errorf("speaker registration is required")
	}
	stored := reg.Clone()
	stored.ID = id.NewSpeakerID()
	for _, session := range stored.Sessions {
		if session != nil && session.ID.IsNil() {
			session.ID = id.NewTalkID()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.speakers[stored.ID] = stored
	return stored.ID, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.speakers[speakerID]
	if !ok {
		return nil, fmt.Errorf("speaker %s: %w", speakerID, sentinel.ErrNotFound)
	}
	return reg.Clone(), nil
}

// Count returns the number of stored registrations.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.speakers), nil
}
