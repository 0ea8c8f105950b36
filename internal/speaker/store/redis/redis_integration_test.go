//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"speakerreg/internal/speaker/models"
	speakerredis "speakerreg/internal/speaker/store/redis"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/sentinel"
	"speakerreg/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *speakerredis.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = speakerredis.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func newRegistration() *models.SpeakerRegistration {
	return &models.SpeakerRegistration{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "grace@example.com",
		YearsExperience: 7,
		Browser:         &models.BrowserInfo{Name: models.BrowserSafari, MajorVersion: 17},
		Certifications:  []string{"CKA"},
		RegistrationFee: 50,
		Sessions:        []*models.Session{{Title: "Compilers", Approved: true}},
	}
}

func (s *RedisStoreSuite) TestSaveAndFind() {
	ctx := context.Background()

	s.Run("round-trips the registration and indexes the email", func() {
		speakerID, err := s.store.SaveSpeaker(ctx, newRegistration())
		s.Require().NoError(err)

		found, err := s.store.FindByID(ctx, speakerID)
		s.Require().NoError(err)
		s.Equal(speakerID, found.ID)
		s.Equal(50, found.RegistrationFee)
		s.Equal(models.BrowserSafari, found.Browser.Name)
		s.Require().Len(found.Sessions, 1)
		s.True(found.Sessions[0].Approved)
		s.False(found.Sessions[0].ID.IsNil())

		ok, err := s.store.HasEmail(ctx, "grace@example.com")
		s.Require().NoError(err)
		s.True(ok)

		count, err := s.store.Count(ctx)
		s.Require().NoError(err)
		s.Equal(1, count)
	})

	s.Run("unknown id returns ErrNotFound", func() {
		_, err := s.store.FindByID(ctx, id.NewSpeakerID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *RedisStoreSuite) TestTTL() {
	ctx := context.Background()
	store := speakerredis.NewRedis(s.redis.Client, speakerredis.WithTTL(time.Minute))

	speakerID, err := store.SaveSpeaker(ctx, newRegistration())
	s.Require().NoError(err)

	ttl, err := s.redis.Client.TTL(ctx, "speaker:"+speakerID.String()).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}
