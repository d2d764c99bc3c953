// Package readings is the domain layer over the cache-and-retry core:
// one typed, namespaced cache per content kind, deterministic request
// keys, and per-kind TTLs aligned with content volatility.
package readings

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	starsays "github.com/dinaypatil-web/whatmystarssays"
	"github.com/dinaypatil-web/whatmystarssays/codec"
	"github.com/dinaypatil-web/whatmystarssays/genai"
	zlog "github.com/dinaypatil-web/whatmystarssays/log/zerolog"
	"github.com/dinaypatil-web/whatmystarssays/numerology"
	"github.com/dinaypatil-web/whatmystarssays/store"
)

// Client serves astrology readings, caching every generated result under
// its semantic key so an identical request never re-asks the model.
type Client struct {
	gen     genai.Generator
	log     zerolog.Logger
	pol     starsays.Policy
	ttl     TTLTable
	backing store.Store

	horoscopes starsays.Cache[Horoscope]
	charts     starsays.Cache[NatalChart]
	numbers    starsays.Cache[NumerologyReading]
	palms      starsays.Cache[PalmReading]
	matches    starsays.Cache[MatchReport]
	places     starsays.Cache[GeoPoint]
}

// NewClient wires one cache per content kind over the shared backing store.
func NewClient(cfg Config, gen genai.Generator, backing store.Store, logger zerolog.Logger) (*Client, error) {
	if gen == nil {
		return nil, fmt.Errorf("readings: generator is required")
	}
	if backing == nil {
		return nil, fmt.Errorf("readings: store is required")
	}

	c := &Client{
		gen:     gen,
		log:     logger.With().Str("component", "readings").Logger(),
		pol:     cfg.RetryPolicy(),
		ttl:     cfg.TTLs(),
		backing: backing,
	}

	var err error
	if c.horoscopes, err = newKindCache[Horoscope]("horoscope", backing, cfg, c.log); err != nil {
		return nil, err
	}
	if c.charts, err = newKindCache[NatalChart]("chart", backing, cfg, c.log); err != nil {
		return nil, err
	}
	if c.numbers, err = newKindCache[NumerologyReading]("numerology", backing, cfg, c.log); err != nil {
		return nil, err
	}
	if c.palms, err = newKindCache[PalmReading]("palm", backing, cfg, c.log); err != nil {
		return nil, err
	}
	if c.matches, err = newKindCache[MatchReport]("match", backing, cfg, c.log); err != nil {
		return nil, err
	}
	if c.places, err = newKindCache[GeoPoint]("geo", backing, cfg, c.log); err != nil {
		return nil, err
	}
	return c, nil
}

func newKindCache[V any](ns string, backing store.Store, cfg Config, lg zerolog.Logger) (starsays.Cache[V], error) {
	return starsays.New[V](starsays.Options[V]{
		Namespace: ns,
		Store:     backing,
		Codec:     codec.JSON[V]{},
		Logger:    zlog.Logger{L: lg},
		Disabled:  cfg.CacheDisabled,
	})
}

// Close releases the shared backing store. The per-kind caches hold no
// resources of their own.
func (c *Client) Close(ctx context.Context) error {
	return c.backing.Close(ctx)
}

// Horoscope returns the reading for a sign and timeframe in the given
// language (empty means English).
func (c *Client) Horoscope(ctx context.Context, sign string, tf Timeframe, language string) (Horoscope, error) {
	sign = normalize(sign)
	language = defaultLanguage(language)
	if !validSign(sign) {
		return Horoscope{}, starsays.Terminal(fmt.Errorf("readings: unknown zodiac sign %q", sign))
	}
	if !tf.Valid() {
		return Horoscope{}, starsays.Terminal(fmt.Errorf("readings: unknown timeframe %q", tf))
	}

	key := horoscopeKey(sign, tf, language)
	v, cached, err := starsays.GetOrFetch(ctx, c.horoscopes, key, c.ttl.Horoscope(tf), c.pol,
		func(ctx context.Context) (Horoscope, error) {
			text, err := c.gen.Generate(ctx, horoscopePrompt(sign, tf, language))
			if err != nil {
				return Horoscope{}, err
			}
			h, err := decodeModel[Horoscope](text)
			if err != nil {
				return Horoscope{}, err
			}
			h.Sign = sign
			h.Timeframe = tf
			h.Language = language
			return h, nil
		})
	c.logFetch("horoscope", key, cached, err)
	return v, err
}

// NatalChart returns the chart for the given birth details; the result is
// cached forever because the inputs are immutable facts.
func (c *Client) NatalChart(ctx context.Context, b BirthDetails) (NatalChart, error) {
	if err := validateBirth(b); err != nil {
		return NatalChart{}, err
	}

	key := chartKey(b)
	v, cached, err := starsays.GetOrFetch(ctx, c.charts, key, c.ttl.Chart, c.pol,
		func(ctx context.Context) (NatalChart, error) {
			text, err := c.gen.Generate(ctx, chartPrompt(b))
			if err != nil {
				return NatalChart{}, err
			}
			ch, err := decodeModel[NatalChart](text)
			if err != nil {
				return NatalChart{}, err
			}
			ch.Name = b.Name
			ch.BirthPlace = b.Place
			return ch, nil
		})
	c.logFetch("chart", key, cached, err)
	return v, err
}

// Numerology computes the numbers and Loshu grid locally and asks the
// model only for the interpretation.
func (c *Client) Numerology(ctx context.Context, b BirthDetails) (NumerologyReading, error) {
	if err := validateBirth(b); err != nil {
		return NumerologyReading{}, err
	}

	key := numerologyKey(b)
	v, cached, err := starsays.GetOrFetch(ctx, c.numbers, key, c.ttl.Numerology, c.pol,
		func(ctx context.Context) (NumerologyReading, error) {
			grid := numerology.Loshu(b.Date)
			r := NumerologyReading{
				LifePath:       numerology.LifePath(b.Date),
				BirthNumber:    numerology.BirthNumber(b.Date),
				NameNumber:     numerology.NameNumber(b.Name),
				Grid:           grid,
				MissingNumbers: grid.Missing(),
			}
			text, err := c.gen.Generate(ctx, numerologyPrompt(b, r))
			if err != nil {
				return NumerologyReading{}, err
			}
			out, err := decodeModel[struct {
				Interpretation string `json:"interpretation"`
			}](text)
			if err != nil {
				return NumerologyReading{}, err
			}
			r.Interpretation = out.Interpretation
			return r, nil
		})
	c.logFetch("numerology", key, cached, err)
	return v, err
}

// Palmistry reads the described hand.
func (c *Client) Palmistry(ctx context.Context, p PalmProfile, language string) (PalmReading, error) {
	language = defaultLanguage(language)
	hand := normalize(p.Hand)
	if hand != "left" && hand != "right" {
		return PalmReading{}, starsays.Terminal(fmt.Errorf("readings: hand must be left or right, got %q", p.Hand))
	}
	p.Hand = hand

	key := palmKey(p, language)
	v, cached, err := starsays.GetOrFetch(ctx, c.palms, key, c.ttl.Palmistry, c.pol,
		func(ctx context.Context) (PalmReading, error) {
			text, err := c.gen.Generate(ctx, palmPrompt(p, language))
			if err != nil {
				return PalmReading{}, err
			}
			r, err := decodeModel[PalmReading](text)
			if err != nil {
				return PalmReading{}, err
			}
			r.Hand = hand
			return r, nil
		})
	c.logFetch("palm", key, cached, err)
	return v, err
}

// Match scores the compatibility of two subjects. The pair is
// order-insensitive: Match(a, b) and Match(b, a) share one cache entry.
func (c *Client) Match(ctx context.Context, a, b BirthDetails, language string) (MatchReport, error) {
	language = defaultLanguage(language)
	if err := validateBirth(a); err != nil {
		return MatchReport{}, err
	}
	if err := validateBirth(b); err != nil {
		return MatchReport{}, err
	}

	key := matchKey(a, b, language)
	v, cached, err := starsays.GetOrFetch(ctx, c.matches, key, c.ttl.Match, c.pol,
		func(ctx context.Context) (MatchReport, error) {
			text, err := c.gen.Generate(ctx, matchPrompt(a, b, language))
			if err != nil {
				return MatchReport{}, err
			}
			r, err := decodeModel[MatchReport](text)
			if err != nil {
				return MatchReport{}, err
			}
			if r.Score < 0 {
				r.Score = 0
			}
			if r.Score > 100 {
				r.Score = 100
			}
			return r, nil
		})
	c.logFetch("match", key, cached, err)
	return v, err
}

// Geocode resolves a birth place to coordinates. Long TTL: places do not
// move.
func (c *Client) Geocode(ctx context.Context, place string) (GeoPoint, error) {
	if normalize(place) == "" {
		return GeoPoint{}, starsays.Terminal(fmt.Errorf("readings: place is empty"))
	}

	key := geocodeKey(place)
	v, cached, err := starsays.GetOrFetch(ctx, c.places, key, c.ttl.Geocode, c.pol,
		func(ctx context.Context) (GeoPoint, error) {
			text, err := c.gen.Generate(ctx, geocodePrompt(place))
			if err != nil {
				return GeoPoint{}, err
			}
			return decodeModel[GeoPoint](text)
		})
	c.logFetch("geo", key, cached, err)
	return v, err
}

// Invalidate drops the birth-derived readings for a subject. Called when
// the user edits their birth data: those entries never expire on their own.
func (c *Client) Invalidate(ctx context.Context, b BirthDetails) error {
	if err := c.charts.Delete(ctx, chartKey(b)); err != nil {
		return err
	}
	return c.numbers.Delete(ctx, numerologyKey(b))
}

func (c *Client) logFetch(kind, key string, cached bool, err error) {
	if err != nil {
		c.log.Error().Err(err).Str("kind", kind).Str("key", key).Msg("reading fetch failed")
		return
	}
	c.log.Debug().Str("kind", kind).Str("key", key).Bool("cached", cached).Msg("reading served")
}

func validSign(sign string) bool {
	for _, s := range ZodiacSigns {
		if s == sign {
			return true
		}
	}
	return false
}

func validateBirth(b BirthDetails) error {
	if normalize(b.Name) == "" {
		return starsays.Terminal(fmt.Errorf("readings: name is required"))
	}
	if b.Date.IsZero() {
		return starsays.Terminal(fmt.Errorf("readings: birth date is required"))
	}
	return nil
}

func defaultLanguage(language string) string {
	if normalize(language) == "" {
		return "english"
	}
	return normalize(language)
}
