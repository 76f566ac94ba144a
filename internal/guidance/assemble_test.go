package guidance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestAssembler() *Assembler {
	return NewAssemblerWithClock(func() time.Time { return fixedNow })
}

func TestAnalyzeHeadache(t *testing.T) {
	resp, err := newTestAssembler().Analyze(Query{
		Symptom:  "tension headache",
		Duration: "3 weeks",
		Severity: "severe",
		Age:      intPtr(45),
		Gender:   "female",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.SymptomAnalysis, "'Tension Headache'")
	assert.Contains(t, resp.SymptomAnalysis, "• Duration: 3 weeks")
	assert.Contains(t, resp.SymptomAnalysis, "Personal factors: Age 45, female")
	assert.True(t, strings.HasPrefix(resp.SymptomAnalysis, "🤖"))

	assert.Contains(t, resp.WebResearch, "Real-Time Medical Research for Tension Headache")
	assert.Contains(t, resp.WebResearch, "linked to tension headache severity")

	assert.Equal(t, "Water (8-10 glasses daily)", resp.DietPlan.Consume[0])
	assert.Contains(t, resp.DietPlan.Consume, ironNote)
	assert.Len(t, resp.PossibleCauses, 6)
	assert.Equal(t, "Medium (15-20%)", resp.PossibleCauses[5].Probability)
	assert.Len(t, resp.Insights, 3)
	assert.Equal(t, "Medium", resp.RiskAssessment.ImmediateRisk)
	assert.Equal(t, "Medium", resp.RiskAssessment.ProgressionRisk)

	assert.Len(t, resp.LifestyleSuggestions, 10)
	assert.Len(t, resp.RedFlags, 7)
	require.Len(t, resp.PersonalizedTips, 4)
	assert.Contains(t, resp.PersonalizedTips[0], "severe severity, focus on Maintain stable blood sugar")
	assert.Contains(t, resp.PersonalizedTips[1], "gradual implementation of recommendations")
	assert.Contains(t, resp.PersonalizedTips[2], "aligns with tension headache")

	assert.Contains(t, resp.MedicalDisclaimer, "*AI Analysis Generated: 2025-01-15 09:30:00*")
	assert.Equal(t, "2025-01-15T09:30:00Z", resp.SearchTimestamp)
}

func TestAnalyzeUnmatchedSymptomUsesDefaults(t *testing.T) {
	resp, err := newTestAssembler().Analyze(Query{Symptom: "xyz123"})
	require.NoError(t, err)

	assert.Equal(t, defaultDiet, resp.DietPlan)
	assert.Equal(t, defaultCauses(), resp.PossibleCauses)
	assert.Contains(t, resp.SymptomAnalysis, "• Duration: Not specified")
	assert.Contains(t, resp.SymptomAnalysis, "• Severity: Not specified")
	assert.Contains(t, resp.PersonalizedTips[0], "Based on your reported severity")
	assert.Contains(t, resp.PersonalizedTips[1], "Given the reported duration")
	assert.Contains(t, resp.PersonalizedTips[2], "aligns with lifestyle factors")
}

func TestAnalyzeAcuteDuration(t *testing.T) {
	resp, err := newTestAssembler().Analyze(Query{Symptom: "nausea", Duration: "Acute, since this morning"})
	require.NoError(t, err)
	assert.Contains(t, resp.PersonalizedTips[1], "immediate lifestyle changes")
}

func TestAnalyzeSanitizesInterpolatedText(t *testing.T) {
	resp, err := newTestAssembler().Analyze(Query{
		Symptom:  `<img src=x onerror=alert(1)> headache`,
		Duration: "2 days\n\n**injected**",
		Gender:   "<b>",
	})
	require.NoError(t, err)

	for _, text := range []string{resp.SymptomAnalysis, resp.WebResearch, resp.Insights[0].Description} {
		assert.NotContains(t, text, "<img")
	}
	assert.Contains(t, resp.SymptomAnalysis, "• Duration: 2 days **injected**")
	assert.Contains(t, resp.SymptomAnalysis, "&lt;b&gt;")
}

func TestAnalyzeDoesNotShareStaticLists(t *testing.T) {
	a := newTestAssembler()
	first, err := a.Analyze(Query{Symptom: "fatigue"})
	require.NoError(t, err)
	first.RedFlags[0] = "changed"
	first.LifestyleSuggestions[0] = "changed"

	second, err := a.Analyze(Query{Symptom: "fatigue"})
	require.NoError(t, err)
	assert.Equal(t, redFlags[0], second.RedFlags[0])
	assert.Equal(t, lifestyleSuggestions[0], second.LifestyleSuggestions[0])
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a b c", Sanitize("  a\tb\n\nc "))
	assert.Equal(t, "&lt;x&gt; &amp; &#34;y&#34;", Sanitize(`<x> & "y"`))
	assert.Equal(t, "ab", Sanitize("a\x00b"))

	long := strings.Repeat("é", MaxInterpolatedRunes+10)
	got := Sanitize(long)
	assert.Equal(t, MaxInterpolatedRunes+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Severe Headache", TitleCase("severe headache"))
}
