// Package browser derives BrowserInfo from a User-Agent header.
package browser

import (
	"strconv"
	"strings"

	"github.com/mssola/useragent"

	"speakerreg/internal/speaker/models"
)

var namesByProduct = map[string]models.BrowserName{
	"Internet Explorer": models.BrowserInternetExplorer,
	"Edge":              models.BrowserEdge,
	"Firefox":           models.BrowserFirefox,
	"Chrome":            models.BrowserChrome,
	"Safari":            models.BrowserSafari,
	"Opera":             models.BrowserOpera,
}

// Detect parses a User-Agent string. It returns nil for an empty header so
// callers treat the browser as absent.
func Detect(userAgent string) *models.BrowserInfo {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil
	}

	name, version := useragent.New(userAgent).Browser()
	info := &models.BrowserInfo{
		Name:         models.BrowserUnknown,
		MajorVersion: majorVersion(version),
	}
	if name == "" {
		return info
	}
	if known, ok := namesByProduct[name]; ok {
		info.Name = known
	} else {
		info.Name = models.BrowserOther
	}
	return info
}

// majorVersion returns the leading integer of a dotted version, or 0.
func majorVersion(version string) int {
	head, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
