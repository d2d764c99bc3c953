package readings

import (
	"encoding/json"
	"fmt"
	"strings"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

// The model is asked for a single JSON object per reading; decodeModel
// tolerates markdown code fences around it but nothing else. A completion
// that does not parse is a terminal failure: re-sending the same prompt
// is not a fix, the caller sees the error at once.

func decodeModel[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal(extractJSON(text), &v); err != nil {
		return v, starsays.Terminal(fmt.Errorf("readings: model output is not valid JSON: %w", err))
	}
	return v, nil
}

// extractJSON slices the first top-level JSON object out of a completion,
// dropping fences and prose around it. Text without braces is returned
// as-is and left to the JSON decoder to reject.
func extractJSON(text string) []byte {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return []byte(text)
	}
	return []byte(text[start : end+1])
}

func horoscopePrompt(sign string, tf Timeframe, language string) string {
	return fmt.Sprintf(
		"Write the %s horoscope for %s in %s. Respond with one JSON object with fields: overview, love, career, health, lucky_numbers (array of ints), lucky_color.",
		tf, sign, language)
}

func chartPrompt(b BirthDetails) string {
	tob := b.TimeOfBirth
	if tob == "" {
		tob = "unknown"
	}
	return fmt.Sprintf(
		"Create the natal chart for a person born on %s at %s in %s. Respond with one JSON object with fields: sun_sign, moon_sign, ascendant, houses (array of {number, sign, planets, summary}), summary.",
		b.Date.Format("2 January 2006"), tob, b.Place)
}

func numerologyPrompt(b BirthDetails, r NumerologyReading) string {
	return fmt.Sprintf(
		"Interpret a numerology profile: life path %d, birth number %d, name number %d, missing Loshu numbers %v. Respond with one JSON object with field: interpretation.",
		r.LifePath, r.BirthNumber, r.NameNumber, r.MissingNumbers)
}

func palmPrompt(p PalmProfile, language string) string {
	return fmt.Sprintf(
		"Give a palmistry reading in %s for the %s hand described as: %s. Respond with one JSON object with fields: life_line, head_line, heart_line, fate_line, summary.",
		language, p.Hand, p.Description)
}

func matchPrompt(a, b BirthDetails, language string) string {
	return fmt.Sprintf(
		"Assess the astrological compatibility in %s between a person born %s in %s and a person born %s in %s. Respond with one JSON object with fields: score (0-100), summary, strengths (array), challenges (array).",
		language, a.Date.Format("2 January 2006"), a.Place, b.Date.Format("2 January 2006"), b.Place)
}

func geocodePrompt(place string) string {
	return fmt.Sprintf(
		"Geocode the location %q. Respond with one JSON object with fields: latitude, longitude, display_name.", place)
}
