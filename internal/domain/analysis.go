package domain

// Verdict is the model's overall recommendation for a product
type Verdict string

const (
	VerdictGreenlight Verdict = "GREENLIGHT"
	VerdictGo         Verdict = "GO"
	VerdictFix        Verdict = "FIX"
	VerdictKill       Verdict = "KILL"
)

// ValidVerdict reports whether v is one of the four defined verdicts
func ValidVerdict(v Verdict) bool {
	switch v {
	case VerdictGreenlight, VerdictGo, VerdictFix, VerdictKill:
		return true
	}
	return false
}

// ColorBand maps a verdict to the display band the dashboard renders it in
func (v Verdict) ColorBand() string {
	switch v {
	case VerdictGreenlight, VerdictGo:
		return "success"
	case VerdictFix:
		return "warning"
	default:
		return "danger"
	}
}

// Criterion keys for the nine evaluation dimensions. The display layer
// indexes every key unconditionally, so a result missing any of them is
// invalid rather than partially usable.
const (
	CriterionMargin      = "margin"
	CriterionPlatformFit = "platform_fit"
	CriterionTrend       = "trend"
	CriterionCompetition = "competition"
	CriterionContent     = "content"
	CriterionShipping    = "shipping"
	CriterionScalability = "scalability"
	CriterionBrand       = "brand"
	CriterionRisk        = "risk"
)

// Criteria lists the nine criterion keys in scorecard order
func Criteria() []string {
	return []string{
		CriterionMargin,
		CriterionPlatformFit,
		CriterionTrend,
		CriterionCompetition,
		CriterionContent,
		CriterionShipping,
		CriterionScalability,
		CriterionBrand,
		CriterionRisk,
	}
}

// CriterionScore is one scored dimension with the model's short reasoning
type CriterionScore struct {
	Score   int    `json:"score"`
	Insight string `json:"insight"`
}

// AnalysisResult is the structured verdict produced by one analysis run.
// Scores always contains exactly the nine criterion keys.
type AnalysisResult struct {
	Verdict    Verdict                   `json:"verdict"`
	ActionPlan []string                  `json:"action_plan"`
	Scores     map[string]CriterionScore `json:"scores"`
}
