package handler

import (
	"time"

	"speakerreg/internal/speaker/models"
)

// RegisterSpeakerResponse is the HTTP response for POST /speakers.
// SpeakerID is omitted when the registration was accepted but not saved.
type RegisterSpeakerResponse struct {
	SpeakerID       string            `json:"speaker_id,omitempty"`
	RegistrationFee int               `json:"registration_fee"`
	Sessions        []SessionResponse `json:"sessions"`
	Persisted       bool              `json:"persisted"`
}

type SessionResponse struct {
	Title    string `json:"title"`
	Approved bool   `json:"approved"`
}

// SpeakerResponse is the HTTP response for GET /speakers/{id}.
type SpeakerResponse struct {
	SpeakerID       string            `json:"speaker_id"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	Email           string            `json:"email"`
	YearsExperience int               `json:"years_experience"`
	HasBlog         bool              `json:"has_blog"`
	BlogURL         string            `json:"blog_url,omitempty"`
	Browser         *BrowserResponse  `json:"browser,omitempty"`
	Certifications  []string          `json:"certifications"`
	Employer        string            `json:"employer"`
	RegistrationFee int               `json:"registration_fee"`
	Sessions        []SessionResponse `json:"sessions"`
	CreatedAt       time.Time         `json:"created_at"`
}

type BrowserResponse struct {
	Name         string `json:"name"`
	MajorVersion int    `json:"major_version"`
}

func toSessionResponses(sessions []*models.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		out = append(out, SessionResponse{Title: s.Title, Approved: s.Approved})
	}
	return out
}

// FromSaveResult converts the pipeline outcome to an HTTP response.
func FromSaveResult(reg *models.SpeakerRegistration, result models.SaveResult) *RegisterSpeakerResponse {
	resp := &RegisterSpeakerResponse{
		RegistrationFee: reg.RegistrationFee,
		Sessions:        toSessionResponses(reg.Sessions),
		Persisted:       result.Saved,
	}
	if speakerID, ok := result.ID(); ok {
		resp.SpeakerID = speakerID.String()
	}
	return resp
}

// FromRegistration converts a stored registration to an HTTP response.
func FromRegistration(reg *models.SpeakerRegistration) *SpeakerResponse {
	resp := &SpeakerResponse{
		SpeakerID:       reg.ID.String(),
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		Email:           reg.Email,
		YearsExperience: reg.YearsExperience,
		HasBlog:         reg.HasBlog,
		BlogURL:         reg.BlogURL,
		Certifications:  reg.Certifications,
		Employer:        reg.Employer,
		RegistrationFee: reg.RegistrationFee,
		Sessions:        toSessionResponses(reg.Sessions),
		CreatedAt:       reg.CreatedAt,
	}
	if resp.Certifications == nil {
		resp.Certifications = []string{}
	}
	if reg.Browser != nil {
		resp.Browser = &BrowserResponse{Name: string(reg.Browser.Name), MajorVersion: reg.Browser.MajorVersion}
	}
	return resp
}
