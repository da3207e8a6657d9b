// Package llm abstracts the text-generation backend used for empathetic
// response generation. The rest of the engine depends only on the Client
// interface, so tests substitute fakes and deployments can swap backends
// through configuration.
package llm

import (
	"context"
	"errors"
)

// Sentinel errors for LLM operations.
var (
	// ErrMissingAPIKey indicates the backend was configured without an
	// API key. Callers should degrade to a configuration apology rather
	// than surface this to end users.
	ErrMissingAPIKey = errors.New("llm API key is required")

	// ErrEmptyResponse indicates the backend returned no text.
	ErrEmptyResponse = errors.New("empty response from llm")
)

// Client generates a completion for a single prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
