// File path: internal/llm/providers/provider.go

// Package providers contains the concrete language-model backends.
package providers

import (
	"context"
	"errors"
)

// Message is one turn of a chat exchange. Role is "system", "user" or
// "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a chat-capable language model backend.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// Upstream failure classes. Handlers map these to distinct HTTP statuses; a
// provider error must never surface as an unclassified crash.
var (
	ErrRateLimited         = errors.New("llm: rate limited")
	ErrQuotaExceeded       = errors.New("llm: quota exceeded")
	ErrTimeout             = errors.New("llm: request timed out")
	ErrUpstreamUnavailable = errors.New("llm: upstream unavailable")
)
