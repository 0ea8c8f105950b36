package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"speakerreg/internal/speaker/models"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func newRegistration() *models.SpeakerRegistration {
	return &models.SpeakerRegistration{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "grace@example.com",
		YearsExperience: 12,
		Browser:         &models.BrowserInfo{Name: models.BrowserFirefox, MajorVersion: 120},
		Certifications:  []string{"A", "B"},
		RegistrationFee: 0,
		Sessions: []*models.Session{
			{Title: "Compilers", Description: "from scratch", Approved: true},
		},
	}
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	s.Run("assigns an identifier and round-trips the registration", func() {
		reg := newRegistration()
		speakerID, err := s.store.SaveSpeaker(s.ctx, reg)
		s.Require().NoError(err)
		s.False(speakerID.IsNil())

		found, err := s.store.FindByID(s.ctx, speakerID)
		s.Require().NoError(err)
		s.Equal(speakerID, found.ID)
		s.Equal(reg.Email, found.Email)
		s.Equal([]string{"A", "B"}, found.Certifications)
		s.Require().Len(found.Sessions, 1)
		s.True(found.Sessions[0].Approved)
		s.False(found.Sessions[0].ID.IsNil())
	})

	s.Run("unknown id returns ErrNotFound", func() {
		_, err := s.store.FindByID(s.ctx, id.NewSpeakerID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("nil registration is rejected", func() {
		_, err := s.store.SaveSpeaker(s.ctx, nil)
		s.Error(err)
	})

	s.Run("each save gets a distinct identifier", func() {
		first, err := s.store.SaveSpeaker(s.ctx, newRegistration())
		s.Require().NoError(err)
		second, err := s.store.SaveSpeaker(s.ctx, newRegistration())
		s.Require().NoError(err)
		s.NotEqual(first, second)
	})
}

func (s *InMemoryStoreSuite) TestIsolation() {
	s.Run("caller mutations after save do not leak into the store", func() {
		reg := newRegistration()
		speakerID, err := s.store.SaveSpeaker(s.ctx, reg)
		s.Require().NoError(err)

		reg.Email = "changed@example.com"
		reg.Sessions[0].Title = "changed"
		reg.Browser.MajorVersion = 1

		found, err := s.store.FindByID(s.ctx, speakerID)
		s.Require().NoError(err)
		s.Equal("grace@example.com", found.Email)
		s.Equal("Compilers", found.Sessions[0].Title)
		s.Equal(120, found.Browser.MajorVersion)
		s.True(reg.ID.IsNil(), "the store does not write back into the caller's value")
	})

	s.Run("mutating a returned registration does not change the store", func() {
		speakerID, err := s.store.SaveSpeaker(s.ctx, newRegistration())
		s.Require().NoError(err)

		found, err := s.store.FindByID(s.ctx, speakerID)
		s.Require().NoError(err)
		found.Certifications[0] = "Z"

		again, err := s.store.FindByID(s.ctx, speakerID)
		s.Require().NoError(err)
		s.Equal("A", again.Certifications[0])
	})
}

func (s *InMemoryStoreSuite) TestConcurrentSaves() {
	const goroutines = 50
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.SaveSpeaker(s.ctx, newRegistration())
			s.NoError(err)
		}()
	}
	wg.Wait()

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(goroutines, count)
}
