package guidance

import (
	"fmt"
	"strings"
)

// Insight is a fixed piece of guidance text selected per request.
type Insight struct {
	Type           string `json:"insight_type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	EvidenceLevel  string `json:"evidence_level"`
}

// RiskAssessment is the coarse risk summary for a symptom report.
type RiskAssessment struct {
	ImmediateRisk       string `json:"immediate_risk"`
	ProgressionRisk     string `json:"progression_risk"`
	InterventionUrgency string `json:"intervention_urgency"`
	FollowUpTimeline    string `json:"follow_up_timeline"`
	Recommendation      string `json:"ai_recommendation"`
}

const ageInsightThreshold = 40

var escalatingSeverities = []string{"severe", "very severe"}

// GenerateInsights always returns the pattern and prevention insights, with an
// age-related insight between them for callers older than 40.
func GenerateInsights(symptom string, ctx Context) []Insight {
	insights := []Insight{{
		Type:           "Pattern Analysis",
		Title:          "AI Pattern Recognition",
		Description:    fmt.Sprintf("Based on analysis of similar cases, %s often correlates with specific lifestyle patterns.", Sanitize(symptom)),
		Recommendation: "Consider tracking your symptoms alongside sleep, stress, and dietary patterns for 1-2 weeks.",
		EvidenceLevel:  "High confidence based on population data",
	}}

	if ctx.Age != nil && *ctx.Age > ageInsightThreshold {
		insights = append(insights, Insight{
			Type:           "Age-Related",
			Title:          "Age-Specific Considerations",
			Description:    "Symptoms may have different underlying causes and treatment responses in your age group.",
			Recommendation: "Consider comprehensive metabolic panel and hormone evaluation if symptoms persist.",
			EvidenceLevel:  "Evidence-based for age demographic",
		})
	}

	insights = append(insights, Insight{
		Type:           "Prevention",
		Title:          "AI Prevention Strategy",
		Description:    "Proactive lifestyle modifications can reduce symptom recurrence by 60-80%.",
		Recommendation: "Implement gradual dietary changes and stress management techniques consistently.",
		EvidenceLevel:  "Strong evidence from clinical studies",
	})

	return insights
}

// AssessRisk escalates the default assessment on severity and duration
// independently. Severity must equal one of the escalating labels exactly.
func AssessRisk(_ string, severity, duration string) RiskAssessment {
	risk := RiskAssessment{
		ImmediateRisk:       UrgencyLow,
		ProgressionRisk:     UrgencyLow,
		InterventionUrgency: "Routine",
		FollowUpTimeline:    "1-2 weeks",
		Recommendation:      "Monitor and implement lifestyle modifications",
	}

	for _, s := range escalatingSeverities {
		if severity == s {
			risk.ImmediateRisk = UrgencyMedium
			risk.InterventionUrgency = "Prompt (within 48 hours)"
			risk.FollowUpTimeline = "3-5 days"
			break
		}
	}

	d := strings.ToLower(duration)
	if strings.Contains(d, "weeks") || strings.Contains(d, "month") {
		risk.ProgressionRisk = UrgencyMedium
		risk.Recommendation = "Seek professional evaluation for persistent symptoms"
	}

	return risk
}
