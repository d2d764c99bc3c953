package readings

import (
	"sort"
	"strings"

	"github.com/dinaypatil-web/whatmystarssays/internal/util"
)

// Cache keys are the deterministic fingerprint of a request's semantic
// identity: two logically identical requests must always produce the same
// key. Free-form fields are normalized (trimmed, lowercased, inner
// whitespace collapsed) before joining; composite birth identities are
// hashed short so keys stay store-friendly.

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func horoscopeKey(sign string, tf Timeframe, language string) string {
	return strings.Join([]string{normalize(sign), string(tf), normalize(language)}, ":")
}

// birthFingerprint hashes the full birth identity. Time-of-birth is part
// of it: charts for the same person with and without a known birth time
// are different readings.
func birthFingerprint(b BirthDetails) string {
	parts := []string{
		normalize(b.Name),
		b.Date.Format("2006-01-02"),
		normalize(b.TimeOfBirth),
		normalize(b.Place),
	}
	return util.ShortHash(strings.Join(parts, "|"))
}

func chartKey(b BirthDetails) string      { return birthFingerprint(b) }
func numerologyKey(b BirthDetails) string { return birthFingerprint(b) }

func palmKey(p PalmProfile, language string) string {
	return strings.Join([]string{
		normalize(p.Hand),
		util.ShortHash(normalize(p.Description)),
		normalize(language),
	}, ":")
}

// matchKey is order-insensitive: matching A with B is the same request as
// matching B with A.
func matchKey(a, b BirthDetails, language string) string {
	fps := []string{birthFingerprint(a), birthFingerprint(b)}
	sort.Strings(fps)
	return strings.Join([]string{fps[0], fps[1], normalize(language)}, ":")
}

func geocodeKey(place string) string {
	return normalize(place)
}
