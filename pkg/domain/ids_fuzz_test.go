//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseSpeakerID tests that parsing never panics on arbitrary input
// and always returns either a valid ID or an error.
func FuzzParseSpeakerID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE speakers;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseSpeakerID(input)

		if err == nil {
			roundTrip, err2 := ParseSpeakerID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
			if id.IsNil() {
				t.Error("nil ID was accepted")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseAllIDs ensures both ID types share the same validation.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errSpeaker := ParseSpeakerID(input)
		_, errTalk := ParseTalkID(input)

		if (errSpeaker == nil) != (errTalk == nil) {
			t.Error("inconsistent parsing across ID types")
		}
	})
}
