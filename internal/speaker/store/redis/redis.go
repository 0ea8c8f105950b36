package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"speakerreg/internal/speaker/models"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/sentinel"
)

const (
	speakerKeyPrefix = "speaker:"
	speakerIDsKey    = "speakers:ids"
	speakerEmailsKey = "speakers:emails"
)

// RedisStore keeps each registration as a JSON document under speaker:<id>.
// The document and both index sets are written in a single MULTI/EXEC.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisStoreOption configures a RedisStore instance.
type RedisStoreOption func(*RedisStore)

// WithTTL expires speaker documents after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedis constructs a Redis-backed speaker store.
func NewRedis(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func speakerKey(speakerID id.SpeakerID) string {
	return speakerKeyPrefix + speakerID.String()
}

func (s *RedisStore) SaveSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error) {
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

	payload, err := json.Marshal(stored)
	if err != nil {
		return id.SpeakerID{}, fmt.Errorf("encode speaker: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, speakerKey(stored.ID), payload, s.ttl)
		pipe.SAdd(ctx, speakerIDsKey, stored.ID.String())
		pipe.SAdd(ctx, speakerEmailsKey, stored.Email)
		return nil
	})
	if err != nil {
		return id.SpeakerID{}, fmt.Errorf("save speaker: %w", err)
	}
	return stored.ID, nil
}

func (s *RedisStore) FindByID(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error) {
	payload, err := s.client.Get(ctx, speakerKey(speakerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("speaker %s: %w", speakerID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find speaker: %w", err)
	}

	var reg models.SpeakerRegistration
	if err := json.Unmarshal(payload, &reg); err != nil {
		return nil, fmt.Errorf("decode speaker %s: %w", speakerID, err)
	}
	return &reg, nil
}

// HasEmail reports whether any saved registration used address.
func (s *RedisStore) HasEmail(ctx context.Context, address string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, speakerEmailsKey, address).Result()
	if err != nil {
		return false, fmt.Errorf("check speaker email: %w", err)
	}
	return ok, nil
}

// Count returns the number of saved registrations, including expired ones
// whose id is still indexed.
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, speakerIDsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count speakers: %w", err)
	}
	return int(n), nil
}
