// Package rules implements the speaker registration rule chain.
//
// Every function here is pure domain logic: no I/O, no logging, no clock.
// The service layer sequences them and owns persistence.
package rules

import (
	"strings"

	"speakerreg/internal/speaker/models"
	dErrors "speakerreg/pkg/domain-errors"
	"speakerreg/pkg/email"
)

// ValidateRequiredFields checks identity fields in order, then sessions.
func ValidateRequiredFields(reg *models.SpeakerRegistration) error {
	if reg.FirstName == "" {
		return dErrors.New(dErrors.CodeMissingField, "first name is required")
	}
	if reg.LastName == "" {
		return dErrors.New(dErrors.CodeMissingField, "last name is required")
	}
	if reg.Email == "" {
		return dErrors.New(dErrors.CodeMissingField, "email is required")
	}
	if len(reg.Sessions) == 0 {
		return dErrors.New(dErrors.CodeNoSessions, "can't register speaker with no sessions to present")
	}
	return nil
}

// IsEligible reports whether the speaker clears any of the experience, blog,
// certification or employer bars.
func IsEligible(reg *models.SpeakerRegistration) bool {
	if reg.YearsExperience > minYearsForEligibility {
		return true
	}
	if reg.HasBlog {
		return true
	}
	if len(reg.Certifications) > minCertificationsForEligibility {
		return true
	}
	return contains(allowedEmployers, reg.Employer)
}

// FailsDomainOrBrowserCheck reports whether the email domain is on the deny
// list or the speaker registered with an outdated Internet Explorer.
func FailsDomainOrBrowserCheck(reg *models.SpeakerRegistration) bool {
	if contains(deniedEmailDomains, email.Domain(reg.Email)) {
		return true
	}
	return reg.Browser.IsInternetExplorerBefore(minInternetExplorerVersion)
}

// PassesGate combines eligibility with the domain/browser check.
//
// NOTE: a speaker is rejected only when ineligible AND flagged, so anyone
// not flagged passes regardless of eligibility. This mirrors the legacy
// rule and is kept as-is.
func PassesGate(reg *models.SpeakerRegistration) bool {
	return IsEligible(reg) || !FailsDomainOrBrowserCheck(reg)
}

// EvaluateSessions sets Approved on every session and returns how many were
// approved. It fails with CodeNoSessionsApproved when none were.
func EvaluateSessions(reg *models.SpeakerRegistration) (int, error) {
	approved := 0
	for _, session := range reg.Sessions {
		if session == nil {
			continue
		}
		session.Approved = approveByFirstTechnology(session, bannedTechnologies)
		if session.Approved {
			approved++
		}
	}
	if approved == 0 {
		return 0, dErrors.New(dErrors.CodeNoSessionsApproved, "no sessions approved")
	}
	return approved, nil
}

// approveByFirstTechnology decides a session from the first technology in
// order: present in title or description rejects, absent approves. Later
// technologies are never consulted. This reproduces the legacy scan exactly;
// replace this function to scan the full list.
func approveByFirstTechnology(session *models.Session, technologies []string) bool {
	if len(technologies) == 0 {
		return true
	}
	return !mentions(session, technologies[0])
}

func mentions(session *models.Session, tech string) bool {
	return strings.Contains(session.Title, tech) || strings.Contains(session.Description, tech)
}

// RegistrationFee returns the fee of the first tier containing years, or 0
// when no tier matches.
func RegistrationFee(years int) int {
	for _, tier := range feeTiers {
		if tier.Contains(years) {
			return tier.Fee
		}
	}
	return 0
}
