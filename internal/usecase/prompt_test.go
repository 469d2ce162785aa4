package usecase

import (
	"strings"
	"testing"

	"github.com/evaly/backend/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	product := domain.ProductInput{
		Name:          "Red Light Therapy Belt",
		Price:         129.0,
		Cost:          28.0,
		BusinessModel: domain.BusinessPrivateLabel,
		Platform:      domain.PlatformShopify,
	}

	prompt := BuildPrompt(product)

	for _, want := range []string{
		"Red Light Therapy Belt",
		"Private Label",
		"Shopify",
		"Price: 129.00",
		"Cost: 28.00",
		"9-point analysis",
		"THE VIRAL TEST",
		"GREENLIGHT",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// The format instructions are appended verbatim
	if !strings.Contains(prompt, FormatInstructions()) {
		t.Error("prompt does not embed the format instructions")
	}
}

func TestFormatInstructions(t *testing.T) {
	instructions := FormatInstructions()

	// Every top-level field and every criterion key must be named so the
	// model knows the exact shape the parser enforces
	for _, want := range []string{"verdict", "action_plan", "scores", "```json"} {
		if !strings.Contains(instructions, want) {
			t.Errorf("format instructions missing %q", want)
		}
	}
	for _, key := range domain.Criteria() {
		if !strings.Contains(instructions, key) {
			t.Errorf("format instructions missing criterion %q", key)
		}
	}

	// Deterministic output: the same schema renders the same text
	if instructions != FormatInstructions() {
		t.Error("FormatInstructions() is not deterministic")
	}
}
