// Package domain holds typed identifiers shared across modules.
//
// IDs wrap uuid.UUID so a speaker ID can never be passed where a talk ID is
// expected. Parsing happens once at the trust boundary (HTTP path params,
// store rows); everything behind it works with the typed value.
package domain

import (
	"github.com/google/uuid"

	dErrors "speakerreg/pkg/domain-errors"
)

// SpeakerID identifies a persisted speaker registration.
type SpeakerID uuid.UUID

// TalkID identifies a submitted talk session.
type TalkID uuid.UUID

// NewSpeakerID returns a random SpeakerID.
func NewSpeakerID() SpeakerID { return SpeakerID(uuid.New()) }

// NewTalkID returns a random TalkID.
func NewTalkID() TalkID { return TalkID(uuid.New()) }

// ParseSpeakerID parses s, rejecting empty, malformed and nil UUIDs.
func ParseSpeakerID(s string) (SpeakerID, error) {
	u, err := parseUUID(s, "speaker_id")
	if err != nil {
		return SpeakerID{}, err
	}
	return SpeakerID(u), nil
}

// ParseTalkID parses s, rejecting empty, malformed and nil UUIDs.
func ParseTalkID(s string) (TalkID, error) {
	u, err := parseUUID(s, "talk_id")
	if err != nil {
		return TalkID{}, err
	}
	return TalkID(u), nil
}

func (id SpeakerID) String() string { return uuid.UUID(id).String() }
func (id SpeakerID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id TalkID) String() string { return uuid.UUID(id).String() }
func (id TalkID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed IDs serialize as plain UUID strings in JSON.
func (id SpeakerID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *SpeakerID) UnmarshalText(b []byte) error {
	parsed, err := ParseSpeakerID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id TalkID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TalkID) UnmarshalText(b []byte) error {
	parsed, err := ParseTalkID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be nil")
	}
	return u, nil
}
