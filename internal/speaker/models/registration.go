package models

import (
	"time"

	id "speakerreg/pkg/domain"
)

// SpeakerRegistration is a speaker's submission for the conference.
//
// Invariants:
//   - FirstName, LastName and Email are non-empty once validated
//   - Sessions is non-empty once validated
//   - RegistrationFee is meaningful only after the pipeline validated the registration
//   - Session.Approved is meaningful only after session evaluation ran
//
// The registration pipeline mutates RegistrationFee and each Session.Approved
// in place. A rejected registration may carry partially updated flags.
type SpeakerRegistration struct {
	ID              id.SpeakerID `json:"id"`
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	Email           string       `json:"email"`
	YearsExperience int          `json:"years_experience"`
	HasBlog         bool         `json:"has_blog"`
	BlogURL         string       `json:"blog_url,omitempty"`
	Browser         *BrowserInfo `json:"browser,omitempty"`
	Certifications  []string     `json:"certifications"`
	Employer        string       `json:"employer"`
	RegistrationFee int          `json:"registration_fee"`
	Sessions        []*Session   `json:"sessions"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Session is a talk submitted with a registration.
type Session struct {
	ID          id.TalkID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Approved    bool      `json:"approved"`
}

// ApprovedSessions counts sessions currently flagged as approved.
func (r *SpeakerRegistration) ApprovedSessions() int {
	n := 0
	for _, s := range r.Sessions {
		if s != nil && s.Approved {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (r *SpeakerRegistration) Clone() *SpeakerRegistration {
	if r == nil {
		return nil
	}
	out := *r
	if r.Browser != nil {
		b := *r.Browser
		out.Browser = &b
	}
	if r.Certifications != nil {
		out.Certifications = append([]string(nil), r.Certifications...)
	}
	if r.Sessions != nil {
		out.Sessions = make([]*Session, len(r.Sessions))
		for i, s := range r.Sessions {
			if s == nil {
				continue
			}
			cp := *s
			out.Sessions[i] = &cp
		}
	}
	return &out
}

// SaveResult is the outcome of the persistence step. Saved is false when the
// repository failed; the failure is deliberately not returned to callers.
type SaveResult struct {
	SpeakerID id.SpeakerID
	Saved     bool
}

// ID returns the persisted identifier and whether one was produced.
func (r SaveResult) ID() (id.SpeakerID, bool) {
	return r.SpeakerID, r.Saved
}
