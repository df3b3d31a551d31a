package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a synchronous chat transport. Implementations return the raw
// assistant text; callers own parsing and validation.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
