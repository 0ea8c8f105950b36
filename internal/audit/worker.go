package audit

import (
	"context"
	"log/slog"
)

// Worker drains queued events into a sink. Sink failures are logged and the
// event dropped; the worker only stops when ctx is done.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.WarnContext(ctx, "failed to forward audit event",
					"action", string(event.Action),
					"speaker_id", event.SpeakerID,
					"error", err,
				)
			}
		}
	}
}
