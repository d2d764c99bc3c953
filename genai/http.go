package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

// HTTPConfig configures the HTTP generator.
type HTTPConfig struct {
	BaseURL string // completion endpoint, e.g. https://api.example.com/v1/generate
	APIKey  string
	Model   string
	Timeout time.Duration // 0 => 60s
}

// HTTPGenerator talks to a JSON completion endpoint: POST {model, prompt},
// bearer auth, response {text}.
type HTTPGenerator struct {
	cfg    HTTPConfig
	client *http.Client
	log    zerolog.Logger
}

var _ Generator = (*HTTPGenerator)(nil)

func NewHTTP(cfg HTTPConfig, logger zerolog.Logger) *HTTPGenerator {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HTTPGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    logger.With().Str("component", "genai").Logger(),
	}
}

type generateRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate runs one completion. Missing credentials and request rejections
// (4xx except 429) come back terminal; transport errors, 429 and 5xx are
// plain errors so the retry layer backs off and re-asks.
func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", starsays.Terminal(fmt.Errorf("genai: API key is not configured"))
	}
	if g.cfg.BaseURL == "" {
		return "", starsays.Terminal(fmt.Errorf("genai: base URL is not configured"))
	}

	body, err := json.Marshal(generateRequest{Model: g.cfg.Model, Prompt: prompt})
	if err != nil {
		return "", starsays.Terminal(fmt.Errorf("genai: encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", starsays.Terminal(fmt.Errorf("genai: build request: %w", err))
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("X-Request-ID", reqID)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("genai: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		g.log.Warn().Str("request_id", reqID).Int("status", resp.StatusCode).Msg("transient upstream failure")
		return "", fmt.Errorf("genai: upstream returned %d", resp.StatusCode)
	default:
		// 4xx: the request itself is bad; re-sending the same one cannot help
		return "", starsays.Terminal(fmt.Errorf("genai: upstream rejected request with %d: %s", resp.StatusCode, raw))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", starsays.Terminal(fmt.Errorf("genai: decode response: %w", err))
	}

	g.log.Debug().Str("request_id", reqID).Int("chars", len(out.Text)).Msg("completion received")
	return out.Text, nil
}
