package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"text":"Aries: a good day for bold moves."}`))
	}))
	defer srv.Close()

	g := NewHTTP(HTTPConfig{BaseURL: srv.URL, APIKey: "test-key"}, zerolog.Nop())
	text, err := g.Generate(context.Background(), "daily horoscope for aries")
	require.NoError(t, err)
	assert.Contains(t, text, "Aries")
}

func TestGenerateMissingKeyIsTerminal(t *testing.T) {
	g := NewHTTP(HTTPConfig{BaseURL: "http://unused"}, zerolog.Nop())
	_, err := g.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err), "missing credentials must be terminal")
}

func TestGenerateServerErrorIsTransient(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewHTTP(HTTPConfig{BaseURL: srv.URL, APIKey: "k"}, zerolog.Nop())
	_, err := g.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.False(t, starsays.IsTerminal(err), "5xx should stay retryable")
}

func TestGenerateClientErrorIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad prompt", http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewHTTP(HTTPConfig{BaseURL: srv.URL, APIKey: "k"}, zerolog.Nop())
	_, err := g.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err), "4xx must not be retried")
}

func TestGenerateMalformedBodyIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := NewHTTP(HTTPConfig{BaseURL: srv.URL, APIKey: "k"}, zerolog.Nop())
	_, err := g.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, starsays.IsTerminal(err))
}
