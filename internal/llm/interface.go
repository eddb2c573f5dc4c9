package llm

import "context"

// Provider defines the interface for text-generation providers
type Provider interface {
	// Complete sends a free-text prompt to the backend and returns the
	// generated text with surrounding whitespace trimmed
	Complete(ctx context.Context, prompt string) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
