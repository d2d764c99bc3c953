package readings

import (
	"time"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

// TTLTable maps content volatility to cache lifetime. The contract is
// monotonic: more volatile content never outlives less volatile content.
// Birth-derived readings (chart, numerology, palmistry) hang off immutable
// facts and never expire; invalidation happens explicitly when the user
// edits their birth data.
type TTLTable struct {
	Daily      time.Duration
	Weekly     time.Duration
	Monthly    time.Duration
	Yearly     time.Duration
	Match      time.Duration
	Geocode    time.Duration
	Chart      time.Duration
	Numerology time.Duration
	Palmistry  time.Duration
}

func DefaultTTLs() TTLTable {
	return TTLTable{
		Daily:      12 * time.Hour,
		Weekly:     48 * time.Hour,
		Monthly:    168 * time.Hour,
		Yearly:     720 * time.Hour,
		Match:      168 * time.Hour,
		Geocode:    720 * time.Hour,
		Chart:      starsays.NeverExpires,
		Numerology: starsays.NeverExpires,
		Palmistry:  starsays.NeverExpires,
	}
}

// Horoscope returns the lifetime for a horoscope timeframe.
func (t TTLTable) Horoscope(tf Timeframe) time.Duration {
	switch tf {
	case Weekly:
		return t.Weekly
	case Monthly:
		return t.Monthly
	case Yearly:
		return t.Yearly
	default:
		return t.Daily
	}
}
