package provider

import (
	"github.com/evaly/backend/config"
	"github.com/evaly/backend/internal/domain"
)

// ID identifies a provider class selectable at request time
type ID string

const (
	IDOpenAI    ID = "openai"
	IDGemini    ID = "gemini"
	IDAnthropic ID = "anthropic"
)

type factory func(apiKey string) domain.ModelProvider

// Registry maps provider ids to constructors. Adding a provider is an entry
// in NewRegistry, not an edit to dispatch logic.
type Registry struct {
	order     []ID
	factories map[ID]factory
}

// NewRegistry builds the registry of supported providers from configuration
func NewRegistry(cfg config.ProvidersConfig) *Registry {
	r := &Registry{factories: make(map[ID]factory)}

	r.register(IDOpenAI, func(apiKey string) domain.ModelProvider {
		return NewOpenAIProvider(apiKey, cfg.OpenAIModel)
	})
	r.register(IDGemini, func(apiKey string) domain.ModelProvider {
		return NewGeminiProvider(apiKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	})
	r.register(IDAnthropic, func(apiKey string) domain.ModelProvider {
		return NewAnthropicProvider(apiKey, cfg.AnthropicModel, cfg.AnthropicBaseURL)
	})

	return r
}

func (r *Registry) register(id ID, f factory) {
	r.order = append(r.order, id)
	r.factories[id] = f
}

// IDs returns the supported provider ids in registration order
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.order))
	copy(ids, r.order)
	return ids
}

// Resolve returns a provider for the given id, constructed with the caller's
// API key. An unrecognized id resolves to the first registered provider so a
// stale or mistyped selection still yields a working engine; the resolved id
// is returned so callers can surface the substitution.
func (r *Registry) Resolve(id ID, apiKey string) (domain.ModelProvider, ID) {
	if f, ok := r.factories[id]; ok {
		return f(apiKey), id
	}
	first := r.order[0]
	return r.factories[first](apiKey), first
}
