package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/evaly/backend/internal/domain"
	"github.com/evaly/backend/internal/infrastructure/provider"
)

// ProviderResolver resolves a provider selection to a constructed backend.
// Satisfied by provider.Registry.
type ProviderResolver interface {
	Resolve(id provider.ID, apiKey string) (domain.ModelProvider, provider.ID)
}

// AnalysisService runs the 9-point product analysis against a selectable
// model provider. A fresh provider adapter is built per call from the
// caller-supplied API key; the service itself holds no credentials.
type AnalysisService struct {
	resolver ProviderResolver
	log      *logrus.Logger
}

// NewAnalysisService creates an analysis service over the provider registry
func NewAnalysisService(resolver ProviderResolver, log *logrus.Logger) *AnalysisService {
	return &AnalysisService{
		resolver: resolver,
		log:      log,
	}
}

// Evaluate runs one analysis: validate input, render the prompt, make a
// single provider round-trip, strictly parse the response. The returned id is
// the provider actually used, which differs from providerID only when an
// unknown selection fell back to the default.
func (s *AnalysisService) Evaluate(
	ctx context.Context,
	product domain.ProductInput,
	providerID provider.ID,
	apiKey string,
) (*domain.AnalysisResult, provider.ID, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, "", domain.ErrMissingCredential
	}
	if err := validateProduct(product); err != nil {
		return nil, "", err
	}

	backend, resolvedID, err := s.resolveProvider(providerID, apiKey)
	if err != nil {
		return nil, "", err
	}

	prompt := BuildPrompt(product)

	s.log.WithFields(logrus.Fields{
		"provider": resolvedID,
		"product":  product.Name,
	}).Info("running product analysis")

	raw, err := backend.Generate(ctx, prompt)
	if err != nil {
		return nil, resolvedID, err
	}

	result, err := ParseAnalysis(raw)
	if err != nil {
		s.log.WithError(err).WithField("provider", resolvedID).Warn("model response rejected")
		return nil, resolvedID, err
	}

	return result, resolvedID, nil
}

func (s *AnalysisService) resolveProvider(id provider.ID, apiKey string) (domain.ModelProvider, provider.ID, error) {
	backend, resolvedID := s.resolver.Resolve(id, apiKey)
	if resolvedID != id {
		s.log.WithFields(logrus.Fields{
			"requested": id,
			"resolved":  resolvedID,
		}).Warn("unknown provider selection, using default")
	}
	return backend, resolvedID, nil
}

// validateProduct checks the analysis input before any network call is made
func validateProduct(product domain.ProductInput) error {
	if strings.TrimSpace(product.Name) == "" {
		return domain.ErrInvalidRequest
	}
	if product.Price < 0 || product.Cost < 0 {
		return domain.ErrInvalidRequest
	}
	if !domain.ValidBusinessModel(product.BusinessModel) {
		return domain.ErrInvalidRequest
	}
	if !domain.ValidPlatform(product.Platform) {
		return domain.ErrInvalidRequest
	}
	return nil
}
