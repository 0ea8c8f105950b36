package models

// BrowserName identifies the browser family a speaker registered from.
type BrowserName string

const (
	BrowserUnknown          BrowserName = "Unknown"
	BrowserInternetExplorer BrowserName = "InternetExplorer"
	BrowserEdge             BrowserName = "Edge"
	BrowserFirefox          BrowserName = "Firefox"
	BrowserChrome           BrowserName = "Chrome"
	BrowserSafari           BrowserName = "Safari"
	BrowserOpera            BrowserName = "Opera"
	BrowserOther            BrowserName = "Other"
)

var knownBrowsers = map[BrowserName]struct{}{
	BrowserUnknown:          {},
	BrowserInternetExplorer: {},
	BrowserEdge:             {},
	BrowserFirefox:          {},
	BrowserChrome:           {},
	BrowserSafari:           {},
	BrowserOpera:            {},
	BrowserOther:            {},
}

// ParseBrowserName maps s to a known browser name. Unrecognized values map to
// BrowserOther; the empty string maps to BrowserUnknown.
func ParseBrowserName(s string) BrowserName {
	if s == "" {
		return BrowserUnknown
	}
	if _, ok := knownBrowsers[BrowserName(s)]; ok {
		return BrowserName(s)
	}
	return BrowserOther
}

func (b BrowserName) String() string { return string(b) }

// BrowserInfo describes the browser used to submit a registration.
type BrowserInfo struct {
	Name         BrowserName `json:"name"`
	MajorVersion int         `json:"major_version"`
}

// IsInternetExplorerBefore reports whether this is Internet Explorer with a
// major version below v.
func (b *BrowserInfo) IsInternetExplorerBefore(v int) bool {
	if b == nil {
		return false
	}
	return b.Name == BrowserInternetExplorer && b.MajorVersion < v
}
