package assistant

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Skufu/healthguide/internal/guidance"
)

// DefaultVoiceConfidence applies when the transcriber reports no confidence.
const DefaultVoiceConfidence = 1.0

// VoiceInput is one transcribed utterance.
type VoiceInput struct {
	AudioText  string
	Confidence *float64
	Language   string
	UserID     string
}

// VoiceResult is the response to a voice input.
type VoiceResult struct {
	Status           string   `json:"status"`
	Response         string   `json:"response"`
	DetectedSymptoms []string `json:"detected_symptoms"`
	Confidence       string   `json:"confidence"`
	Suggestions      []string `json:"suggestions"`
}

type voiceCategory struct {
	Name     string
	Keywords []string
}

var voiceCategories = []voiceCategory{
	{Name: "head", Keywords: []string{"headache", "migraine", "head pain"}},
	{Name: "stomach", Keywords: []string{"stomach ache", "nausea", "stomach pain", "belly pain"}},
	{Name: "fatigue", Keywords: []string{"tired", "exhausted", "fatigue", "low energy"}},
	{Name: "anxiety", Keywords: []string{"anxious", "worried", "stress", "nervous"}},
	{Name: "pain", Keywords: []string{"pain", "hurt", "ache", "sore"}},
}

var voiceSuggestions = []string{
	"Use detailed symptom form",
	"Ask AI health questions",
	"Get dietary recommendations",
	"Start health assessment",
}

var (
	voiceDetectedTmpl = template.Must(template.New("voice detected").Parse(`
🎤 **Voice Input Processed Successfully**

**Detected Symptoms:** {{.Symptoms}}
**AI Confidence:** {{.Level}} ({{.Percent}})

I've identified potential symptoms from your voice input. Would you like me to:
1. Provide immediate dietary recommendations
2. Conduct a full AI symptom analysis
3. Start an interactive health assessment

You can continue speaking or use the form for more detailed analysis.
`))

	voiceUndetectedTmpl = template.Must(template.New("voice undetected").Parse(`
🎤 **Voice Input Received**

I heard: "{{.Heard}}"

I didn't detect specific symptoms in your voice input. You can:
• Describe your symptoms more specifically
• Use the detailed form for comprehensive analysis
• Ask me health-related questions directly

How can I help you with your health concerns?
`))
)

// MatchVoiceCategories returns every category with at least one keyword in
// text, in category order.
func MatchVoiceCategories(text string) []string {
	lower := strings.ToLower(text)
	matched := []string{}
	for _, c := range voiceCategories {
		if containsAny(lower, c.Keywords) {
			matched = append(matched, c.Name)
		}
	}
	return matched
}

// ConfidenceLevel buckets a transcription confidence.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence > 0.8:
		return "High"
	case confidence > 0.5:
		return "Medium"
	default:
		return "Low"
	}
}

// ProcessVoice matches symptom categories in the utterance and renders the reply.
func ProcessVoice(in VoiceInput) (VoiceResult, error) {
	confidence := DefaultVoiceConfidence
	if in.Confidence != nil {
		confidence = *in.Confidence
	}

	detected := MatchVoiceCategories(in.AudioText)
	level := ConfidenceLevel(confidence)

	var (
		response string
		err      error
	)
	if len(detected) > 0 {
		response, err = guidance.Render(voiceDetectedTmpl, struct{ Symptoms, Level, Percent string }{
			Symptoms: strings.Join(detected, ", "),
			Level:    level,
			Percent:  fmt.Sprintf("%.1f%%", confidence*100),
		})
	} else {
		response, err = guidance.Render(voiceUndetectedTmpl, struct{ Heard string }{guidance.Sanitize(in.AudioText)})
	}
	if err != nil {
		return VoiceResult{}, err
	}

	return VoiceResult{
		Status:           "success",
		Response:         response,
		DetectedSymptoms: detected,
		Confidence:       level,
		Suggestions:      append([]string(nil), voiceSuggestions...),
	}, nil
}
