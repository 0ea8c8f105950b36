package audit

import "time"

// Action names the registration step an event records.
type Action string

const (
	ActionSpeakerRegistered Action = "speaker_registered"
	ActionSpeakerRejected   Action = "speaker_rejected"
	ActionPersistFailed     Action = "speaker_persist_failed"
)

// Event is emitted from the registration pipeline to capture each outcome.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	SpeakerID string    `json:"speaker_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Decision  string    `json:"decision"`
	Reason    string    `json:"reason,omitempty"`
	Fee       int       `json:"registration_fee"`
	Approved  int       `json:"approved_sessions"`
	RequestID string    `json:"request_id,omitempty"`
}
