package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"speakerreg/internal/platform/middleware"
	"speakerreg/internal/speaker/browser"
	"speakerreg/internal/speaker/models"
	id "speakerreg/pkg/domain"
	dErrors "speakerreg/pkg/domain-errors"
	"speakerreg/pkg/platform/httputil"
	"speakerreg/pkg/requestcontext"
)

// Service defines the speaker operations the handler needs.
type Service interface {
	RegisterSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (models.SaveResult, error)
	GetSpeaker(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error)
}

// Handler wires speaker endpoints to the speaker service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

// New constructs a speaker handler. adminToken guards the read endpoint.
func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		adminToken: adminToken,
	}
}

// Register mounts speaker endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/speakers", h.HandleRegister)
	r.With(middleware.RequireAdminToken(h.adminToken, h.logger)).Get("/speakers/{id}", h.HandleGetSpeaker)
}

// HandleRegister handles POST /speakers.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RegisterSpeakerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	userAgent := requestcontext.UserAgent(ctx)
	if userAgent == "" {
		userAgent = r.UserAgent()
	}
	reg := req.ToModel(browser.Detect(userAgent))

	result, err := h.service.RegisterSpeaker(ctx, reg)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "speaker registration failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if !result.Saved {
		status = http.StatusAccepted
	}
	h.logger.InfoContext(ctx, "speaker registration handled",
		"request_id", requestID,
		"persisted", result.Saved,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, status, FromSaveResult(reg, result))
}

// HandleGetSpeaker handles GET /speakers/{id}.
func (h *Handler) HandleGetSpeaker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	speakerID, err := id.ParseSpeakerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	reg, err := h.service.GetSpeaker(ctx, speakerID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load speaker",
				"request_id", requestID,
				"speaker_id", speakerID.String(),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(reg))
}
