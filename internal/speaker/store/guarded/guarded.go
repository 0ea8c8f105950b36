// Package guarded wraps a speaker store with a circuit breaker so an
// unreachable backend fails fast instead of holding every request until its
// own timeout.
package guarded

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"speakerreg/internal/speaker/models"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/circuit"
	"speakerreg/pkg/platform/sentinel"
)

type SpeakerStore interface {
	SaveSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error)
	FindByID(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error)
}

// Store forwards to next while the breaker allows it and returns
// sentinel.ErrUnavailable otherwise.
type Store struct {
	next    SpeakerStore
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func New(next SpeakerStore, breaker *circuit.Breaker, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{next: next, breaker: breaker, logger: logger}
}

func (s *Store) SaveSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error) {
	if !s.breaker.Allow() {
		return id.SpeakerID{}, s.unavailable()
	}
	speakerID, err := s.next.SaveSpeaker(ctx, reg)
	s.record(ctx, err)
	return speakerID, err
}

func (s *Store) FindByID(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error) {
	if !s.breaker.Allow() {
		return nil, s.unavailable()
	}
	reg, err := s.next.FindByID(ctx, speakerID)
	s.record(ctx, err)
	return reg, err
}

func (s *Store) unavailable() error {
	return fmt.Errorf("speaker store %s circuit open: %w", s.breaker.Name(), sentinel.ErrUnavailable)
}

// record treats ErrNotFound as a healthy answer.
func (s *Store) record(ctx context.Context, err error) {
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		if _, change := s.breaker.RecordSuccess(); change.Closed {
			s.logger.InfoContext(ctx, "speaker store circuit closed", "store", s.breaker.Name())
		}
		return
	}
	if _, change := s.breaker.RecordFailure(); change.Opened {
		s.logger.WarnContext(ctx, "speaker store circuit opened",
			"store", s.breaker.Name(),
			"error", err,
		)
	}
}
