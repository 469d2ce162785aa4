package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/evaly/backend/internal/domain"
)

const anthropicAPIVersion = "2023-06-01"

// anthropicMaxTokens bounds the completion; the structured verdict fits well
// under this
const anthropicMaxTokens = 2048

// AnthropicProvider sends prompts to the Anthropic Messages REST API
type AnthropicProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// NewAnthropicProvider creates a Claude-backed provider with the caller's API key
func NewAnthropicProvider(apiKey, model, baseURL string) *AnthropicProvider {
	return &AnthropicProvider{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate performs one messages round-trip and returns the first text block
func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	payload := anthropicRequest{
		Model:       p.model,
		MaxTokens:   anthropicMaxTokens,
		Temperature: 0,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: provider rejected API key (status %d)", domain.ErrMissingCredential, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d, body: %s", domain.ErrProvider, resp.StatusCode, string(respBody))
	}

	var msgResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrProvider, err)
	}

	for _, block := range msgResp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("%w: empty completion", domain.ErrProvider)
}
