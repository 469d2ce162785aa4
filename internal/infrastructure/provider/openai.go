package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/evaly/backend/internal/domain"
)

// OpenAIProvider sends prompts to the OpenAI chat completions API
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed provider with the caller's API key.
// Extra request options are appended after the key, so callers can override
// the base URL or retry policy.
func NewOpenAIProvider(apiKey, model string, opts ...option.RequestOption) *OpenAIProvider {
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIProvider{
		client: openai.NewClient(clientOpts...),
		model:  model,
	}
}

// Generate sends the rendered prompt as a single user message and returns the
// completion text. Temperature is pinned to 0 so repeated runs on the same
// product stay comparable.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return "", fmt.Errorf("%w: provider rejected API key (status %d)", domain.ErrMissingCredential, apiErr.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrProvider)
	}

	return resp.Choices[0].Message.Content, nil
}
