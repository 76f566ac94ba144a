// Package dashboard supplies the per-user health dashboard. The payload is
// produced by a Source so the literal demo data can be swapped for a store.
package dashboard

import "context"

// Trend is one point of a user's symptom history.
type Trend struct {
	Date              string `json:"date"`
	Symptom           string `json:"symptom"`
	Severity          int    `json:"severity"`
	AIPrediction      string `json:"ai_prediction"`
	DietaryCompliance int    `json:"dietary_compliance"`
}

// Dashboard is the dashboard payload.
type Dashboard struct {
	UserID            string   `json:"user_id"`
	SymptomTrends     []Trend  `json:"symptom_trends"`
	HealthScore       int      `json:"health_score"`
	RiskFactors       []string `json:"risk_factors"`
	ImprovementAreas  []string `json:"improvement_areas"`
	AIRecommendations []string `json:"ai_recommendations"`
}

// Source loads a dashboard for a user.
type Source interface {
	Dashboard(ctx context.Context, userID string) (Dashboard, error)
}

// StaticSource serves the same demo dashboard to every user.
type StaticSource struct{}

// Dashboard implements Source.
func (StaticSource) Dashboard(_ context.Context, userID string) (Dashboard, error) {
	d := staticSummary(userID)
	d.SymptomTrends = []Trend{
		{Date: "2025-01-15", Symptom: "headache", Severity: 6, AIPrediction: "improving", DietaryCompliance: 85},
		{Date: "2025-01-14", Symptom: "headache", Severity: 7, AIPrediction: "stable", DietaryCompliance: 70},
		{Date: "2025-01-13", Symptom: "fatigue", Severity: 5, AIPrediction: "improving", DietaryCompliance: 90},
	}
	return d, nil
}

func staticSummary(userID string) Dashboard {
	return Dashboard{
		UserID:      userID,
		HealthScore: 78,
		RiskFactors: []string{
			"Irregular sleep patterns detected",
			"Low omega-3 intake identified",
			"Stress levels above optimal range",
			"Hydration below recommended levels",
		},
		ImprovementAreas: []string{
			"Increase anti-inflammatory foods by 40%",
			"Establish consistent sleep schedule",
			"Add magnesium-rich foods to diet",
			"Implement stress reduction techniques",
		},
		AIRecommendations: []string{
			"🎯 Focus on Mediterranean diet pattern for next 2 weeks",
			"⏰ Maintain consistent meal timing (±30 minutes)",
			"💧 Increase water intake to 8-10 glasses daily",
			"🧘 Practice 10-minute daily mindfulness meditation",
			"📊 Track symptoms daily for AI pattern analysis",
		},
	}
}
