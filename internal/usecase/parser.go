package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evaly/backend/internal/domain"
)

// rawAnalysis mirrors the expected model output with pointer fields so that
// absent keys are distinguishable from zero values
type rawAnalysis struct {
	Verdict    *string                    `json:"verdict"`
	ActionPlan *[]string                  `json:"action_plan"`
	Scores     map[string]json.RawMessage `json:"scores"`
}

type rawScore struct {
	Score   *int    `json:"score"`
	Insight *string `json:"insight"`
}

// ParseAnalysis parses raw model output into an AnalysisResult. The model
// output is untrusted input: every key and type the display layer depends on
// is checked, and any defect surfaces as ErrSchemaValidation with no repair
// attempt. Parsing the same text twice yields equal results.
func ParseAnalysis(raw string) (*domain.AnalysisResult, error) {
	body := extractJSONBlock(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", domain.ErrSchemaValidation)
	}

	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaValidation, err)
	}

	if parsed.Verdict == nil {
		return nil, fmt.Errorf("%w: missing 'verdict'", domain.ErrSchemaValidation)
	}
	verdict := domain.Verdict(strings.TrimSpace(*parsed.Verdict))
	if !domain.ValidVerdict(verdict) {
		return nil, fmt.Errorf("%w: unknown verdict %q", domain.ErrSchemaValidation, *parsed.Verdict)
	}

	if parsed.ActionPlan == nil {
		return nil, fmt.Errorf("%w: missing 'action_plan'", domain.ErrSchemaValidation)
	}

	if parsed.Scores == nil {
		return nil, fmt.Errorf("%w: missing 'scores'", domain.ErrSchemaValidation)
	}

	scores := make(map[string]domain.CriterionScore, len(domain.Criteria()))
	for _, key := range domain.Criteria() {
		rawEntry, ok := parsed.Scores[key]
		if !ok {
			return nil, fmt.Errorf("%w: scores missing %q", domain.ErrSchemaValidation, key)
		}

		var entry rawScore
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			return nil, fmt.Errorf("%w: scores[%s]: %v", domain.ErrSchemaValidation, key, err)
		}
		if entry.Score == nil {
			return nil, fmt.Errorf("%w: scores[%s] missing 'score'", domain.ErrSchemaValidation, key)
		}
		if *entry.Score < 0 || *entry.Score > 10 {
			return nil, fmt.Errorf("%w: scores[%s] score %d out of range", domain.ErrSchemaValidation, key, *entry.Score)
		}
		if entry.Insight == nil {
			return nil, fmt.Errorf("%w: scores[%s] missing 'insight'", domain.ErrSchemaValidation, key)
		}

		scores[key] = domain.CriterionScore{
			Score:   *entry.Score,
			Insight: *entry.Insight,
		}
	}

	return &domain.AnalysisResult{
		Verdict:    verdict,
		ActionPlan: *parsed.ActionPlan,
		Scores:     scores,
	}, nil
}

// extractJSONBlock returns the JSON object embedded in model output. The
// format instructions ask for a ```json fenced block; some models emit bare
// JSON or extra prose around the fence, so this falls back to the outermost
// brace pair. It only locates the candidate text, never fixes it.
func extractJSONBlock(raw string) string {
	if idx := strings.Index(raw, "```json"); idx >= 0 {
		rest := raw[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return strings.TrimSpace(raw[start : end+1])
}
