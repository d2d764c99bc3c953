package readings

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	starsays "github.com/dinaypatil-web/whatmystarssays"
	"github.com/dinaypatil-web/whatmystarssays/genai"
	"github.com/dinaypatil-web/whatmystarssays/store/memory"
)

// scriptedGenerator returns canned completions per prompt keyword and
// counts invocations.
type scriptedGenerator struct {
	calls   atomic.Int32
	replies map[string]string // keyword -> completion
	err     error
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls.Add(1)
	if g.err != nil {
		return "", g.err
	}
	for kw, reply := range g.replies {
		if strings.Contains(prompt, kw) {
			return reply, nil
		}
	}
	return "", errors.New("unscripted prompt: " + prompt)
}

func testConfig() Config {
	return Config{
		RetryMaxAttempts:  2,
		RetryInitialDelay: time.Millisecond,
		RetryMultiplier:   2,
	}
}

func newTestClient(t *testing.T, gen genai.Generator) *Client {
	t.Helper()
	c, err := NewClient(testConfig(), gen, memory.New(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func TestHoroscopeCachedAfterFirstFetch(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"aries": "```json\n{\"overview\":\"bold moves\",\"love\":\"warm\",\"career\":\"steady\",\"health\":\"rest\",\"lucky_numbers\":[3,9],\"lucky_color\":\"red\"}\n```",
	}}
	c := newTestClient(t, gen)

	h, err := c.Horoscope(ctx, "Aries", Daily, "English")
	require.NoError(t, err)
	assert.Equal(t, "aries", h.Sign)
	assert.Equal(t, Daily, h.Timeframe)
	assert.Equal(t, "bold moves", h.Overview)
	assert.Equal(t, []int{3, 9}, h.LuckyNumbers)
	assert.Equal(t, int32(1), gen.calls.Load())

	// Identical request (modulo case/whitespace): served from cache.
	h2, err := c.Horoscope(ctx, " ARIES ", Daily, "english")
	require.NoError(t, err)
	assert.Equal(t, h, h2)
	assert.Equal(t, int32(1), gen.calls.Load(), "cache hit must not call the model")

	// Different timeframe is a different request.
	gen.replies["aries"] = `{"overview":"slow week"}`
	_, err = c.Horoscope(ctx, "aries", Weekly, "english")
	require.NoError(t, err)
	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestHoroscopeRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{}
	c := newTestClient(t, gen)

	_, err := c.Horoscope(ctx, "dragon", Daily, "english")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err))

	_, err = c.Horoscope(ctx, "aries", Timeframe("hourly"), "english")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err))

	assert.Equal(t, int32(0), gen.calls.Load(), "validation failures must not reach the model")
}

func TestMalformedCompletionIsTerminalAndUncached(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"aries": "sorry, I cannot help with that",
	}}
	c := newTestClient(t, gen)

	_, err := c.Horoscope(ctx, "aries", Daily, "english")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err), "unparseable output must not be retried")
	assert.Equal(t, int32(1), gen.calls.Load())

	// A later request retries the remote call: nothing was cached.
	gen.replies["aries"] = `{"overview":"recovered"}`
	h, err := c.Horoscope(ctx, "aries", Daily, "english")
	require.NoError(t, err)
	assert.Equal(t, "recovered", h.Overview)
	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestTransientFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyGenerator{failures: 2, reply: `{"overview":"after retries"}`}
	c := newTestClient(t, flaky)

	h, err := c.Horoscope(ctx, "leo", Daily, "english")
	require.NoError(t, err)
	assert.Equal(t, "after retries", h.Overview)
	assert.Equal(t, int32(3), flaky.calls.Load())
}

type flakyGenerator struct {
	calls    atomic.Int32
	failures int32
	reply    string
}

func (g *flakyGenerator) Generate(context.Context, string) (string, error) {
	n := g.calls.Add(1)
	if n <= g.failures {
		return "", errors.New("upstream hiccup")
	}
	return g.reply, nil
}

func TestNumerologyMergesLocalComputation(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"numerology profile": `{"interpretation":"a grounded year"}`,
	}}
	c := newTestClient(t, gen)

	b := BirthDetails{
		Name: "John",
		Date: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
	}
	r, err := c.Numerology(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 3, r.LifePath)
	assert.Equal(t, 6, r.BirthNumber)
	assert.Equal(t, 2, r.NameNumber)
	assert.Equal(t, []int{2, 3, 4, 6, 7, 8}, r.MissingNumbers)
	assert.Equal(t, "a grounded year", r.Interpretation)

	// Cached under the birth fingerprint.
	_, err = c.Numerology(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestMatchSharedAcrossOrder(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"compatibility": `{"score":130,"summary":"stellar","strengths":["humor"],"challenges":["stubborn"]}`,
	}}
	c := newTestClient(t, gen)

	a := BirthDetails{Name: "Ada", Date: time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC), Place: "London"}
	b := BirthDetails{Name: "Alan", Date: time.Date(1912, time.June, 23, 0, 0, 0, 0, time.UTC), Place: "London"}

	m1, err := c.Match(ctx, a, b, "english")
	require.NoError(t, err)
	assert.Equal(t, 100, m1.Score, "score is clamped to 0..100")

	m2, err := c.Match(ctx, b, a, "english")
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
	assert.Equal(t, int32(1), gen.calls.Load(), "swapped pair must hit the same entry")
}

func TestInvalidateDropsBirthDerivedReadings(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"natal chart":        `{"sun_sign":"taurus","summary":"s"}`,
		"numerology profile": `{"interpretation":"i"}`,
	}}
	c := newTestClient(t, gen)

	b := BirthDetails{Name: "Ada", Date: time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)}

	_, err := c.NatalChart(ctx, b)
	require.NoError(t, err)
	_, err = c.Numerology(ctx, b)
	require.NoError(t, err)
	require.Equal(t, int32(2), gen.calls.Load())

	require.NoError(t, c.Invalidate(ctx, b))

	_, err = c.NatalChart(ctx, b)
	require.NoError(t, err)
	_, err = c.Numerology(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int32(4), gen.calls.Load(), "invalidated readings must be regenerated")
}

func TestGeocodeLongLived(t *testing.T) {
	ctx := context.Background()
	gen := &scriptedGenerator{replies: map[string]string{
		"Geocode": `{"latitude":28.6139,"longitude":77.209,"display_name":"New Delhi, India"}`,
	}}
	c := newTestClient(t, gen)

	p, err := c.Geocode(ctx, "New Delhi, India")
	require.NoError(t, err)
	assert.InDelta(t, 28.6139, p.Latitude, 1e-6)

	_, err = c.Geocode(ctx, "  new delhi,  india")
	require.NoError(t, err)
	assert.Equal(t, int32(1), gen.calls.Load())
}
