package handler

import (
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"

	"speakerreg/internal/speaker/models"
	dErrors "speakerreg/pkg/domain-errors"
	"speakerreg/pkg/email"
)

const (
	maxNameLength        = 100
	maxTextLength        = 2000
	maxSessions          = 20
	maxCertifications    = 50
	maxYearsOfExperience = 80
)

// RegisterSpeakerRequest is the HTTP request body for POST /speakers.
//
// Validate checks request shape only. Missing names, email or sessions are
// left to the registration pipeline so its error codes reach the client.
type RegisterSpeakerRequest struct {
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Email           string           `json:"email"`
	YearsExperience int              `json:"years_experience"`
	HasBlog         bool             `json:"has_blog"`
	BlogURL         string           `json:"blog_url"`
	Browser         *BrowserRequest  `json:"browser"`
	Certifications  []string         `json:"certifications"`
	Employer        string           `json:"employer"`
	Sessions        []SessionRequest `json:"sessions"`
}

type BrowserRequest struct {
	Name         string `json:"name"`
	MajorVersion int    `json:"major_version"`
}

type SessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Normalize trims surrounding whitespace. Inner text is kept as sent since
// session matching is case and space sensitive.
func (r *RegisterSpeakerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.BlogURL = strings.TrimSpace(r.BlogURL)
	r.Employer = strings.TrimSpace(r.Employer)
	if r.Browser != nil {
		r.Browser.Name = strings.TrimSpace(r.Browser.Name)
	}
	for i := range r.Certifications {
		r.Certifications[i] = strings.TrimSpace(r.Certifications[i])
	}
}

// Validate implements httputil.Preparable.
func (r *RegisterSpeakerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	fields := []struct{ name, value string }{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"employer", r.Employer},
	}
	for _, f := range fields {
		if !govalidator.RuneLength(f.value, "0", itoa(maxNameLength)) {
			return dErrors.New(dErrors.CodeValidation, f.name+" must be at most "+itoa(maxNameLength)+" characters")
		}
	}
	if len(r.Sessions) > maxSessions {
		return dErrors.New(dErrors.CodeValidation, "at most "+itoa(maxSessions)+" sessions may be submitted")
	}
	if len(r.Certifications) > maxCertifications {
		return dErrors.New(dErrors.CodeValidation, "too many certifications")
	}
	for _, s := range r.Sessions {
		if !govalidator.RuneLength(s.Title, "0", itoa(maxTextLength)) ||
			!govalidator.RuneLength(s.Description, "0", itoa(maxTextLength)) {
			return dErrors.New(dErrors.CodeValidation, "session text must be at most "+itoa(maxTextLength)+" characters")
		}
	}

	if !govalidator.InRangeInt(r.YearsExperience, 0, maxYearsOfExperience) {
		return dErrors.New(dErrors.CodeValidation, "years_experience must be between 0 and "+itoa(maxYearsOfExperience))
	}
	if r.Email != "" && !email.HasAt(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "email must contain @")
	}
	if r.BlogURL != "" && !govalidator.IsURL(r.BlogURL) {
		return dErrors.New(dErrors.CodeValidation, "blog_url must be a valid URL")
	}
	if r.Browser != nil && r.Browser.MajorVersion < 0 {
		return dErrors.New(dErrors.CodeValidation, "browser.major_version must not be negative")
	}
	return nil
}

// ToModel builds the registration handed to the pipeline. fallback is used
// when the body carries no browser.
func (r *RegisterSpeakerRequest) ToModel(fallback *models.BrowserInfo) *models.SpeakerRegistration {
	reg := &models.SpeakerRegistration{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		YearsExperience: r.YearsExperience,
		HasBlog:         r.HasBlog,
		BlogURL:         r.BlogURL,
		Certifications:  r.Certifications,
		Employer:        r.Employer,
		Browser:         fallback,
	}
	if r.Browser != nil {
		reg.Browser = &models.BrowserInfo{
			Name:         models.ParseBrowserName(r.Browser.Name),
			MajorVersion: r.Browser.MajorVersion,
		}
	}
	if len(r.Sessions) > 0 {
		reg.Sessions = make([]*models.Session, 0, len(r.Sessions))
		for _, s := range r.Sessions {
			reg.Sessions = append(reg.Sessions, &models.Session{Title: s.Title, Description: s.Description})
		}
	}
	return reg
}

func itoa(n int) string { return strconv.Itoa(n) }
