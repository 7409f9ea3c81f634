// Package stt provides speech-to-text provider interface and implementations.
package stt

import "context"

// Provider defines the interface for speech-to-text providers.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Transcribe converts the audio in a WAV file to text.
	// A single attempt is made; the caller owns retries, if any.
	Transcribe(ctx context.Context, wavPath string) (string, error)

	// Close releases resources held by the provider.
	Close() error
}

// Registry holds registered STT providers.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns a provider by name, or nil if not registered.
func (r *Registry) Get(name string) Provider {
	return r.providers[name]
}

// Close releases all providers.
func (r *Registry) Close() error {
	for _, p := range r.providers {
		if err := p.Close(); err != nil {
			return err
		}
	}
	return nil
}
