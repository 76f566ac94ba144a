package guidance

import "strings"

// Urgency levels attached to a cause.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// CauseRecord is one candidate cause. Bands are descriptive labels, not statistics.
type CauseRecord struct {
	Condition   string `json:"condition"`
	Probability string `json:"probability"`
	Description string `json:"description"`
	Urgency     string `json:"urgency_level"`
	Confidence  string `json:"ai_confidence"`
}

type causeEntry struct {
	Keyword string
	Causes  func(age int) []CauseRecord
}

const (
	// used when the caller gave no age
	assumedAge        = 30
	hypertensionAge   = 40
	hypertensionYoung = "Low (5-10%)"
	hypertensionOlder = "Medium (15-20%)"
)

var causeTable = []causeEntry{
	{Keyword: "headache", Causes: headacheCauses},
	{Keyword: "anxiety", Causes: func(int) []CauseRecord { return anxietyCauses() }},
}

func headacheCauses(age int) []CauseRecord {
	hypertension := hypertensionYoung
	if age >= hypertensionAge {
		hypertension = hypertensionOlder
	}
	return []CauseRecord{
		{Condition: "Tension Headache", Probability: "High (40-50%)",
			Description: "Most common type, often stress-related, muscle tension", Urgency: UrgencyLow, Confidence: "High (95%)"},
		{Condition: "Dehydration", Probability: "High (30-40%)",
			Description: "Insufficient fluid intake, electrolyte imbalance", Urgency: UrgencyLow, Confidence: "High (90%)"},
		{Condition: "Migraine", Probability: "Medium (20-30%)",
			Description: "Neurological condition with specific triggers and patterns", Urgency: UrgencyMedium, Confidence: "Medium (75%)"},
		{Condition: "Caffeine Withdrawal", Probability: "Medium (15-25%)",
			Description: "Sudden reduction in caffeine intake", Urgency: UrgencyLow, Confidence: "Medium (70%)"},
		{Condition: "Sleep Disorders", Probability: "Medium (20-25%)",
			Description: "Poor sleep quality or insufficient sleep", Urgency: UrgencyMedium, Confidence: "High (85%)"},
		{Condition: "Hypertension", Probability: hypertension,
			Description: "High blood pressure causing vascular headaches", Urgency: UrgencyHigh, Confidence: "Medium (80%)"},
	}
}

func anxietyCauses() []CauseRecord {
	return []CauseRecord{
		{Condition: "Generalized Anxiety Disorder", Probability: "High (35-45%)",
			Description: "Persistent worry and anxiety about various aspects of life", Urgency: UrgencyMedium, Confidence: "High (90%)"},
		{Condition: "Stress Response", Probability: "High (30-40%)",
			Description: "Normal response to life stressors and challenges", Urgency: UrgencyLow, Confidence: "High (95%)"},
		{Condition: "Caffeine-Induced Anxiety", Probability: "Medium (20-25%)",
			Description: "Excessive caffeine consumption triggering anxiety symptoms", Urgency: UrgencyLow, Confidence: "High (85%)"},
		{Condition: "Thyroid Dysfunction", Probability: "Medium (10-15%)",
			Description: "Hyperthyroidism can mimic anxiety symptoms", Urgency: UrgencyMedium, Confidence: "Medium (75%)"},
		{Condition: "Panic Disorder", Probability: "Low (10-15%)",
			Description: "Recurrent panic attacks with intense fear", Urgency: UrgencyHigh, Confidence: "Medium (70%)"},
	}
}

func defaultCauses() []CauseRecord {
	return []CauseRecord{
		{Condition: "Lifestyle Factors", Probability: "High (40-50%)",
			Description: "Diet, sleep, stress, or activity-related factors", Urgency: UrgencyLow, Confidence: "High (90%)"},
		{Condition: "Viral Infection", Probability: "Medium (20-30%)",
			Description: "Common viral illness affecting multiple systems", Urgency: UrgencyLow, Confidence: "Medium (70%)"},
		{Condition: "Medication Effects", Probability: "Medium (15-25%)",
			Description: "Side effects or interactions from medications", Urgency: UrgencyMedium, Confidence: "Medium (75%)"},
	}
}

// LookupCauses returns the ordered candidate causes for the first matching
// keyword, or the default list. A nil age is treated as 30.
func LookupCauses(symptom string, age *int) []CauseRecord {
	years := assumedAge
	if age != nil {
		years = *age
	}

	lower := strings.ToLower(symptom)
	for _, e := range causeTable {
		if strings.Contains(lower, e.Keyword) {
			return e.Causes(years)
		}
	}
	return defaultCauses()
}
