package assistant

import (
	"text/template"
	"time"

	"github.com/Skufu/healthguide/internal/guidance"
)

const (
	defaultTimeframe = "week"
	searchSources    = "50+ medical sources analyzed"
)

// SearchResult is the canned real-time search response.
type SearchResult struct {
	Status      string `json:"status"`
	Query       string `json:"query"`
	Results     string `json:"results"`
	Timestamp   string `json:"timestamp"`
	SourceCount string `json:"source_count"`
}

// Patterns groups the fixed pattern analysis findings.
type Patterns struct {
	Recurring            []string `json:"recurring_patterns"`
	Triggers             []string `json:"trigger_identification"`
	ImprovementTrends    []string `json:"improvement_trends"`
	Predictions          []string `json:"ai_predictions"`
	PersonalizedInsights []string `json:"personalized_insights"`
}

// PatternResult is the pattern analysis response.
type PatternResult struct {
	Status          string   `json:"status"`
	AnalysisType    string   `json:"analysis_type"`
	Confidence      string   `json:"confidence"`
	Timeframe       string   `json:"timeframe"`
	SymptomCount    int      `json:"symptom_count"`
	Patterns        Patterns `json:"patterns"`
	Recommendations []string `json:"recommendations"`
	Timestamp       string   `json:"timestamp"`
}

var searchTmpl = template.Must(template.New("search results").Parse(`
🔍 **Real-Time Medical Search Results for: "{{.}}"**

**Latest Research (2025):**
• Recent clinical trials show promising results
• New dietary interventions being studied
• AI-driven treatment protocols emerging
• Personalized medicine advances

**Evidence-Based Findings:**
• Multiple systematic reviews support dietary approaches
• Meta-analyses confirm nutritional interventions
• Randomized controlled trials demonstrate efficacy

**Current Medical Guidelines:**
• Updated treatment protocols available
• New safety recommendations issued
• Integrated care approaches recommended

*Sources: PubMed, Cochrane Library, Medical Journals*
`))

// Stubs produces the canned search and pattern analysis payloads.
type Stubs struct {
	now func() time.Time
}

// NewStubs returns Stubs stamped with the wall clock.
func NewStubs() *Stubs {
	return &Stubs{now: time.Now}
}

// NewStubsWithClock returns Stubs stamped by now.
func NewStubsWithClock(now func() time.Time) *Stubs {
	return &Stubs{now: now}
}

// Search returns the fixed results block with query in its header line.
func (s *Stubs) Search(query string) (SearchResult, error) {
	results, err := guidance.Render(searchTmpl, guidance.Sanitize(query))
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		Status:      "success",
		Query:       query,
		Results:     results,
		Timestamp:   s.now().Format(time.RFC3339),
		SourceCount: searchSources,
	}, nil
}

// AnalyzePatterns returns the fixed analysis. Only the echoed timeframe and
// symptom count depend on the input.
func (s *Stubs) AnalyzePatterns(symptoms []string, timeframe string) PatternResult {
	if timeframe == "" {
		timeframe = defaultTimeframe
	}
	return PatternResult{
		Status:       "success",
		AnalysisType: "AI Pattern Recognition",
		Confidence:   "High (92%)",
		Timeframe:    timeframe,
		SymptomCount: len(symptoms),
		Patterns: Patterns{
			Recurring: []string{
				"Symptoms tend to peak in evening hours",
				"Strong correlation with stress levels",
				"Dietary patterns influence symptom severity",
			},
			Triggers: []string{
				"High-sodium foods appear to worsen symptoms",
				"Inadequate sleep correlates with symptom intensity",
				"Weather changes show mild correlation",
			},
			ImprovementTrends: []string{
				"Mediterranean diet shows 65% symptom reduction",
				"Regular exercise correlates with improvement",
				"Stress management techniques showing positive impact",
			},
			Predictions: []string{
				"70% probability of improvement with recommended diet",
				"Expected symptom reduction: 40-60% over 2 weeks",
				"Risk of symptom escalation: Low (15%)",
			},
			PersonalizedInsights: []string{
				"Your symptom pattern suggests inflammatory response",
				"Timing indicates circadian rhythm involvement",
				"Response to interventions shows high compliance potential",
			},
		},
		Recommendations: []string{
			"Continue current dietary modifications",
			"Add targeted anti-inflammatory foods",
			"Monitor symptoms for 2-3 more weeks",
			"Consider comprehensive metabolic panel if symptoms persist",
		},
		Timestamp: s.now().Format(time.RFC3339),
	}
}
