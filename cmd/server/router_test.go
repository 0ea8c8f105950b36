package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerreg/internal/audit"
	platformmetrics "speakerreg/internal/platform/metrics"
	speakerhandler "speakerreg/internal/speaker/handler"
	speakermetrics "speakerreg/internal/speaker/metrics"
	speakerservice "speakerreg/internal/speaker/service"
	"speakerreg/internal/speaker/store/memory"
	"speakerreg/pkg/testutil"
)

type fixture struct {
	router http.Handler
	audit  *audit.InMemoryStore
}

func newFixture(t *testing.T, health func(context.Context) error) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	auditStore := audit.NewInMemoryStore()
	svc := speakerservice.New(memory.New(),
		speakerservice.WithLogger(log),
		speakerservice.WithAuditPublisher(audit.NewPublisher(auditStore)),
		speakerservice.WithMetrics(speakermetrics.New(registry)),
	)
	return &fixture{
		router: newRouter(routerDeps{
			logger:      log,
			service:     svc,
			adminToken:  "admin",
			registry:    registry,
			httpMetrics: platformmetrics.New(registry),
			health:      health,
		}),
		audit: auditStore,
	}
}

func TestRouterRegistersAndReadsBack(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	body := map[string]any{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"years_experience": 1,
		"sessions": []map[string]string{
			{"title": "Cobol and you"},
			{"title": "Go in production"},
		},
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/speakers", body)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0")
	rr := testutil.DoRequest(f.router, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	created := testutil.UnmarshalResponse[speakerhandler.RegisterSpeakerResponse](t, rr)
	assert.Equal(t, 500, created.RegistrationFee)
	require.Len(t, created.Sessions, 2)
	assert.False(t, created.Sessions[0].Approved)
	assert.True(t, created.Sessions[1].Approved)

	get := testutil.NewJSONRequest(t, http.MethodGet, "/speakers/"+created.SpeakerID, nil)
	get.Header.Set("X-Admin-Token", "admin")
	rr = testutil.DoRequest(f.router, get)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	stored := testutil.UnmarshalResponse[speakerhandler.SpeakerResponse](t, rr)
	assert.Equal(t, "ada@example.com", stored.Email)
	require.NotNil(t, stored.Browser)
	assert.Equal(t, "Firefox", stored.Browser.Name)

	events, err := f.audit.ListBySpeaker(context.Background(), created.SpeakerID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionSpeakerRegistered, events[0].Action)
	assert.NotEmpty(t, events[0].RequestID)
}

func TestRouterRejectsIneligibleSpeaker(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	body := map[string]any{
		"first_name": "Old",
		"last_name":  "Timer",
		"email":      "old@aol.com",
		"sessions":   []map[string]string{{"title": "Modems"}},
	}
	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/speakers", body))
	testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "requirements_not_met")
}

func TestRouterOperationalEndpoints(t *testing.T) {
	t.Run("healthz reports the store", func(t *testing.T) {
		f := newFixture(t, func(context.Context) error { return nil })
		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		f = newFixture(t, func(context.Context) error { return errors.New("down") })
		rr = testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("metrics exposes pipeline counters", func(t *testing.T) {
		f := newFixture(t, func(context.Context) error { return nil })
		body := map[string]any{"first_name": "", "last_name": "x", "email": "x@y.z", "sessions": []map[string]string{{"title": "t"}}}
		testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/speakers", body))

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), `speakerreg_registrations_total{outcome="missing_field"} 1`))
		assert.Contains(t, rr.Body.String(), "speakerreg_http_requests_total")
	})
}
