package readings

import (
	"time"

	"github.com/dinaypatil-web/whatmystarssays/numerology"
)

// Timeframe is the horoscope granularity.
type Timeframe string

const (
	Daily   Timeframe = "daily"
	Weekly  Timeframe = "weekly"
	Monthly Timeframe = "monthly"
	Yearly  Timeframe = "yearly"
)

func (t Timeframe) Valid() bool {
	switch t {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ZodiacSigns is the allow-list for horoscope subjects, normalized form.
var ZodiacSigns = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// BirthDetails identifies a reading subject. Name, date and place are the
// semantic identity every birth-derived cache key hangs off.
type BirthDetails struct {
	Name        string
	Date        time.Time
	TimeOfBirth string // "HH:MM", empty if unknown
	Place       string
}

// Horoscope is the structured reading for one sign and timeframe.
type Horoscope struct {
	Sign         string    `json:"sign"`
	Timeframe    Timeframe `json:"timeframe"`
	Language     string    `json:"language"`
	Overview     string    `json:"overview"`
	Love         string    `json:"love"`
	Career       string    `json:"career"`
	Health       string    `json:"health"`
	LuckyNumbers []int     `json:"lucky_numbers"`
	LuckyColor   string    `json:"lucky_color"`
}

// House is one of the twelve natal chart houses.
type House struct {
	Number  int      `json:"number"`
	Sign    string   `json:"sign"`
	Planets []string `json:"planets"`
	Summary string   `json:"summary"`
}

type NatalChart struct {
	Name       string  `json:"name"`
	SunSign    string  `json:"sun_sign"`
	MoonSign   string  `json:"moon_sign"`
	Ascendant  string  `json:"ascendant"`
	Houses     []House `json:"houses"`
	Summary    string  `json:"summary"`
	BirthPlace string  `json:"birth_place"`
}

// NumerologyReading merges the locally computed numbers and Loshu grid
// with the generated interpretation.
type NumerologyReading struct {
	LifePath       int             `json:"life_path"`
	BirthNumber    int             `json:"birth_number"`
	NameNumber     int             `json:"name_number"`
	Grid           numerology.Grid `json:"grid"`
	MissingNumbers []int           `json:"missing_numbers"`
	Interpretation string          `json:"interpretation"`
}

// PalmProfile describes the subject's hand for a palmistry reading.
type PalmProfile struct {
	Hand        string // "left" or "right"
	Description string // free-form feature description
}

type PalmReading struct {
	Hand      string `json:"hand"`
	LifeLine  string `json:"life_line"`
	HeadLine  string `json:"head_line"`
	HeartLine string `json:"heart_line"`
	FateLine  string `json:"fate_line"`
	Summary   string `json:"summary"`
}

// MatchReport is a compatibility reading for two subjects.
type MatchReport struct {
	Score      int      `json:"score"` // 0..100
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
}

// GeoPoint is a geocoded birth place.
type GeoPoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}
