package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"speakerreg/internal/audit"
	speakermetrics "speakerreg/internal/speaker/metrics"
	"speakerreg/internal/speaker/models"
	"speakerreg/internal/speaker/rules"
	id "speakerreg/pkg/domain"
	dErrors "speakerreg/pkg/domain-errors"
	"speakerreg/pkg/platform/sentinel"
	"speakerreg/pkg/requestcontext"
)

// Repository persists an evaluated registration and returns its identifier.
type Repository interface {
	SaveSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error)
}

// SpeakerStore is the service's default repository, which can also read back.
type SpeakerStore interface {
	Repository
	FindByID(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	outcomeRegistered    = "registered"
	outcomePersistFailed = "persist_failed"
)

// Service runs the speaker registration pipeline.
type Service struct {
	speakers       SpeakerStore
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *speakermetrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *speakermetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. speakers backs RegisterSpeaker and GetSpeaker.
func New(speakers SpeakerStore, opts ...Option) *Service {
	s := &Service{
		speakers: speakers,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer("speakerreg/speaker"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterSpeaker runs Register against the configured store.
func (s *Service) RegisterSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (models.SaveResult, error) {
	return s.Register(ctx, reg, s.speakers)
}

// Register validates reg, gates it on eligibility, scores its sessions,
// prices it and saves it through repo. Each step aborts the rest on failure.
//
// reg is mutated in place: session approval flags and the fee are written
// as the steps run, and stay written if a later step rejects.
//
// A repository failure is not an error: the returned SaveResult has
// Saved=false and the failure is only logged, counted and audited.
func (s *Service) Register(ctx context.Context, reg *models.SpeakerRegistration, repo Repository) (models.SaveResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "speaker.Register")
	defer span.End()
	defer s.metrics.ObserveRegister(start)

	if reg == nil {
		return models.SaveResult{}, dErrors.New(dErrors.CodeBadRequest, "registration is required")
	}

	if err := rules.ValidateRequiredFields(reg); err != nil {
		return models.SaveResult{}, s.reject(ctx, span, reg, err)
	}

	if !rules.PassesGate(reg) {
		err := dErrors.New(dErrors.CodeRequirementsNotMet, "speaker doesn't meet our arbitrary and capricious standards")
		return models.SaveResult{}, s.reject(ctx, span, reg, err)
	}

	approved, err := rules.EvaluateSessions(reg)
	s.metrics.ObserveSessions(approved, len(reg.Sessions)-approved)
	if err != nil {
		return models.SaveResult{}, s.reject(ctx, span, reg, err)
	}

	reg.RegistrationFee = rules.RegistrationFee(reg.YearsExperience)
	s.metrics.ObserveFee(reg.RegistrationFee)
	span.SetAttributes(
		attribute.Int("speaker.registration_fee", reg.RegistrationFee),
		attribute.Int("speaker.approved_sessions", approved),
	)

	return s.persist(ctx, span, reg, repo), nil
}

// persist delegates to repo and folds any failure into SaveResult.
func (s *Service) persist(ctx context.Context, span trace.Span, reg *models.SpeakerRegistration, repo Repository) models.SaveResult {
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = requestcontext.Now(ctx)
	}

	var (
		speakerID id.SpeakerID
		err       error
	)
	if repo == nil {
		err = errors.New("no repository configured")
	} else {
		speakerID, err = repo.SaveSpeaker(ctx, reg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "speaker registration accepted but not saved",
			"request_id", requestcontext.RequestID(ctx),
			"email", reg.Email,
			"error", err,
		)
		span.RecordError(err)
		span.SetAttributes(attribute.String("speaker.outcome", outcomePersistFailed))
		s.metrics.IncrementPersistFailure()
		s.metrics.IncrementOutcome(outcomePersistFailed)
		s.emit(ctx, audit.Event{
			Action:   audit.ActionPersistFailed,
			Email:    reg.Email,
			Decision: "accepted",
			Reason:   outcomePersistFailed,
			Fee:      reg.RegistrationFee,
			Approved: reg.ApprovedSessions(),
		})
		return models.SaveResult{}
	}

	reg.ID = speakerID
	s.logger.InfoContext(ctx, "speaker registered",
		"request_id", requestcontext.RequestID(ctx),
		"speaker_id", speakerID.String(),
		"registration_fee", reg.RegistrationFee,
	)
	span.SetAttributes(attribute.String("speaker.outcome", outcomeRegistered))
	s.metrics.IncrementOutcome(outcomeRegistered)
	s.emit(ctx, audit.Event{
		Action:    audit.ActionSpeakerRegistered,
		SpeakerID: speakerID.String(),
		Email:     reg.Email,
		Decision:  "accepted",
		Fee:       reg.RegistrationFee,
		Approved:  reg.ApprovedSessions(),
	})
	return models.SaveResult{SpeakerID: speakerID, Saved: true}
}

func (s *Service) reject(ctx context.Context, span trace.Span, reg *models.SpeakerRegistration, err error) error {
	code := dErrors.CodeOf(err)
	s.logger.InfoContext(ctx, "speaker registration rejected",
		"request_id", requestcontext.RequestID(ctx),
		"email", reg.Email,
		"reason", string(code),
	)
	span.SetStatus(codes.Error, string(code))
	span.SetAttributes(attribute.String("speaker.outcome", string(code)))
	s.metrics.IncrementOutcome(string(code))
	s.emit(ctx, audit.Event{
		Action:   audit.ActionSpeakerRejected,
		Email:    reg.Email,
		Decision: "rejected",
		Reason:   string(code),
	})
	return err
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", string(event.Action),
			"error", err,
		)
	}
}

// GetSpeaker loads a saved registration.
func (s *Service) GetSpeaker(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error) {
	if speakerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "speaker_id is required")
	}
	reg, err := s.speakers.FindByID(ctx, speakerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "speaker not found")
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "speaker store unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load speaker")
	}
	return reg, nil
}
