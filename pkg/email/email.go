package email

import "strings"

// Domain returns the part of address after its last "@". An address without
// "@" is returned whole, so a bare host still compares against domain lists.
func Domain(address string) string {
	if at := strings.LastIndexByte(address, '@'); at >= 0 {
		return address[at+1:]
	}
	return address
}

// HasAt reports whether address contains an "@".
func HasAt(address string) bool {
	return strings.IndexByte(address, '@') >= 0
}
