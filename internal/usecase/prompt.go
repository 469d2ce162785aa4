package usecase

import (
	"fmt"
	"strings"

	"github.com/evaly/backend/internal/domain"
)

// responseField describes one top-level field the model must emit. The
// format-instruction block is generated from these, so the instructions and
// the parser can never drift apart silently: change the schema here and both
// move together.
type responseField struct {
	Name        string
	Description string
}

// responseSchema is the contract the parser enforces
var responseSchema = []responseField{
	{
		Name:        "verdict",
		Description: "GREENLIGHT, GO, FIX, or KILL",
	},
	{
		Name:        "action_plan",
		Description: "array of 3 strings, the next steps to take",
	},
	{
		Name: "scores",
		Description: "JSON object with keys: " + strings.Join(domain.Criteria(), ", ") +
			". Each key holds an object with 'score' (integer 0-10) and 'insight' (string).",
	},
}

const promptTemplate = `You are a product intelligence engine. Analyze this product for the %s business model on %s.

Product: %s
Price: %.2f
Cost: %.2f

Perform a deep 9-point analysis.

1. Profit Margin: Calculate net margin after fees (estimate FBA/TikTok fees if applicable).

2. Platform Fit & Native Ad Potential:
   - Is this product native to %s? (e.g. visual for TikTok, search-heavy for Amazon).
   - Native/Image Ad Suitability: Does this product work for Native Advertising (Taboola/Outbrain) or Image Advertising (Pinterest/Instagram)?
   - Does it have a "weird" or "shocking" visual that stops the scroll in a news feed?

3. Trend Velocity: Is this trending up, down, or flat?
4. Competition: Estimate saturation level.

5. Content Difficulty (THE VIRAL TEST):
   Evaluate the product against these 4 specific 'Viral' questions. If the answer to any is 'No', lower the score significantly:
   - Can I show a clear before and after in under 10 seconds?
   - Does the product solve a problem people already know they have?
   - Can I demonstrate 3-5 different use cases without losing clarity?
   - Would someone understand what this does if they saw it used once with zero explanation?

6. Shipping Risk: Breakage/Returns/Weight.
7. Scalability: Can this go to $100k/month?
8. Brand Potential: Can we build a moat?
9. Risk Factors: IP, Liability, Seasonality.

Score each dimension 0-10 with a short insight, and give a Final Verdict:
- GREENLIGHT (Perfect)
- GO (Good, proceed)
- FIX (Good but needs tweaks)
- KILL (Do not touch)

%s`

// BuildPrompt renders the full analysis prompt for a product, including the
// generated format instructions
func BuildPrompt(product domain.ProductInput) string {
	return fmt.Sprintf(promptTemplate,
		product.BusinessModel,
		product.Platform,
		product.Name,
		product.Price,
		product.Cost,
		product.Platform,
		FormatInstructions(),
	)
}

// FormatInstructions renders the textual output-format block appended to the
// prompt. It is generated from responseSchema and is deterministic.
func FormatInstructions() string {
	var b strings.Builder
	b.WriteString("The output should be a markdown code snippet formatted in the following schema, ")
	b.WriteString("including the leading and trailing \"```json\" and \"```\":\n\n")
	b.WriteString("```json\n{\n")
	for i, field := range responseSchema {
		b.WriteString(fmt.Sprintf("\t%q: ... // %s", field.Name, field.Description))
		if i < len(responseSchema)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n```")
	return b.String()
}
