package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/evaly/backend/internal/domain"
	"github.com/evaly/backend/internal/infrastructure/provider"
	"github.com/evaly/backend/internal/logger"
)

// MockModelProvider is a mock implementation of domain.ModelProvider
type MockModelProvider struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (m *MockModelProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// stubResolver resolves every id to the same backend, mimicking the
// registry's fallback for unknown ids
type stubResolver struct {
	backend    domain.ModelProvider
	known      provider.ID
	resolvedTo provider.ID
}

func (r *stubResolver) Resolve(id provider.ID, apiKey string) (domain.ModelProvider, provider.ID) {
	if id == r.known {
		r.resolvedTo = id
	} else {
		r.resolvedTo = r.known
	}
	return r.backend, r.resolvedTo
}

func validProduct() domain.ProductInput {
	return domain.ProductInput{
		Name:          "Red Light Therapy Belt",
		Price:         129.0,
		Cost:          28.0,
		BusinessModel: domain.BusinessPrivateLabel,
		Platform:      domain.PlatformShopify,
	}
}

func goVerdictResponse(t *testing.T) string {
	t.Helper()
	return wellFormedResponse(t, nil)
}

func newTestService(backend domain.ModelProvider) (*AnalysisService, *stubResolver) {
	resolver := &stubResolver{backend: backend, known: provider.IDOpenAI}
	return NewAnalysisService(resolver, logger.New("error")), resolver
}

func TestEvaluate_Success(t *testing.T) {
	mock := &MockModelProvider{response: goVerdictResponse(t)}
	service, _ := newTestService(mock)

	result, usedProvider, err := service.Evaluate(context.Background(), validProduct(), provider.IDOpenAI, "sk-test")
	if err != nil {
		t.Fatalf("Evaluate() error = %v, want nil", err)
	}

	if usedProvider != provider.IDOpenAI {
		t.Errorf("provider = %v, want openai", usedProvider)
	}
	if result.Verdict != domain.VerdictGo {
		t.Errorf("Verdict = %v, want GO", result.Verdict)
	}
	if len(result.Scores) != 9 {
		t.Errorf("len(Scores) = %d, want 9", len(result.Scores))
	}
	if result.Verdict.ColorBand() != "success" {
		t.Errorf("ColorBand = %v, want success", result.Verdict.ColorBand())
	}
	if mock.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1 round-trip", mock.calls)
	}
}

func TestEvaluate_PromptContainsProductAttributes(t *testing.T) {
	mock := &MockModelProvider{response: goVerdictResponse(t)}
	service, _ := newTestService(mock)

	if _, _, err := service.Evaluate(context.Background(), validProduct(), provider.IDOpenAI, "sk-test"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	for _, want := range []string{"Red Light Therapy Belt", "Private Label", "Shopify"} {
		if !strings.Contains(mock.lastPrompt, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
}

func TestEvaluate_MissingCredential(t *testing.T) {
	mock := &MockModelProvider{response: goVerdictResponse(t)}
	service, _ := newTestService(mock)

	_, _, err := service.Evaluate(context.Background(), validProduct(), provider.IDOpenAI, "  ")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
	if mock.calls != 0 {
		t.Errorf("provider called %d times with no credential, want 0", mock.calls)
	}
}

func TestEvaluate_InvalidProduct(t *testing.T) {
	tests := []struct {
		name    string
		product domain.ProductInput
	}{
		{"empty name", domain.ProductInput{Price: 10, Cost: 5, BusinessModel: domain.BusinessDropshipping, Platform: domain.PlatformShopify}},
		{"negative price", domain.ProductInput{Name: "x", Price: -1, Cost: 5, BusinessModel: domain.BusinessDropshipping, Platform: domain.PlatformShopify}},
		{"unknown business model", domain.ProductInput{Name: "x", Price: 10, Cost: 5, BusinessModel: "Franchise", Platform: domain.PlatformShopify}},
		{"unknown platform", domain.ProductInput{Name: "x", Price: 10, Cost: 5, BusinessModel: domain.BusinessDropshipping, Platform: "eBay"}},
	}

	mock := &MockModelProvider{response: goVerdictResponse(t)}
	service, _ := newTestService(mock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Evaluate(context.Background(), tt.product, provider.IDOpenAI, "sk-test")
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestEvaluate_UnknownProviderFallsBack(t *testing.T) {
	// Deliberate behavior: an unrecognized provider id resolves to the first
	// enumerated provider instead of failing, and the response reports the
	// substitution. Changing this to an error is a breaking change and must
	// update this test.
	mock := &MockModelProvider{response: goVerdictResponse(t)}
	service, resolver := newTestService(mock)

	result, usedProvider, err := service.Evaluate(context.Background(), validProduct(), provider.ID("grok"), "sk-test")
	if err != nil {
		t.Fatalf("Evaluate() error = %v, want fallback success", err)
	}
	if usedProvider != provider.IDOpenAI {
		t.Errorf("provider = %v, want fallback to openai", usedProvider)
	}
	if resolver.resolvedTo != provider.IDOpenAI {
		t.Errorf("resolver resolved to %v, want openai", resolver.resolvedTo)
	}
	if result == nil || len(result.Scores) != 9 {
		t.Error("fallback run did not produce a complete result")
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := &MockModelProvider{err: fmt.Errorf("%w: connection refused", domain.ErrProvider)}
	service, _ := newTestService(mock)

	_, _, err := service.Evaluate(context.Background(), validProduct(), provider.IDOpenAI, "sk-test")
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("error = %v, want ErrProvider", err)
	}
}

func TestEvaluate_SchemaValidationError(t *testing.T) {
	mock := &MockModelProvider{response: "I'd rate this product a solid 7/10 overall."}
	service, _ := newTestService(mock)

	result, _, err := service.Evaluate(context.Background(), validProduct(), provider.IDOpenAI, "sk-test")
	if !errors.Is(err, domain.ErrSchemaValidation) {
		t.Fatalf("error = %v, want ErrSchemaValidation", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil (no partial results)", result)
	}
}
