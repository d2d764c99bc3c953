// Package genai abstracts the remote generative-text endpoint that
// produces the actual reading content. The readings client treats it
// as a black box returning text for a prompt.
package genai

import "context"

// Generator produces a text completion for a prompt.
//
// Implementations classify their failures: errors that retrying cannot fix
// (missing credentials, rejected requests) must be wrapped with
// starsays.Terminal so the retry layer surfaces them immediately;
// everything else is treated as transient and retried per policy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
