// Package assistant holds the scripted conversational endpoints: chat replies,
// voice keyword matching, and the canned search and pattern analysis text.
package assistant

import "strings"

// ChatConfidence is reported on every scripted reply.
const ChatConfidence = "High (90-95%)"

// ChatReply is a canned chat response.
type ChatReply struct {
	Branch            string   `json:"-"`
	Response          string   `json:"response"`
	Suggestions       []string `json:"suggestions"`
	FollowUpQuestions []string `json:"follow_up_questions"`
	AIConfidence      string   `json:"ai_confidence"`
}

type chatBranch struct {
	Name        string
	Keywords    []string
	Response    string
	Suggestions []string
	FollowUps   []string
}

// Checked in order; the default branch has no keywords and always matches last.
var chatBranches = []chatBranch{
	{
		Name:     "pain",
		Keywords: []string{"pain", "hurt", "ache", "sore"},
		Response: `I understand you're experiencing pain. Pain can have many causes, and it's important to identify the type and location.

🤖 **AI Analysis:** Pain symptoms often respond well to:
• Anti-inflammatory foods (turmeric, ginger, berries)
• Adequate hydration
• Gentle movement and stretching
• Stress management techniques

Would you like me to provide specific dietary recommendations for your type of pain?`,
		Suggestions: []string{
			"Tell me about the location and type of pain",
			"Analyze pain with full symptom form",
			"Get anti-inflammatory meal suggestions",
			"Learn about natural pain management",
		},
		FollowUps: []string{
			"How long have you been experiencing this pain?",
			"Is the pain constant or does it come and go?",
			"What makes the pain better or worse?",
		},
	},
	{
		Name:     "fatigue",
		Keywords: []string{"tired", "fatigue", "energy", "exhausted"},
		Response: `Fatigue can significantly impact your quality of life. Let me help you understand potential causes and solutions.

🤖 **AI Analysis:** Fatigue often improves with:
• Iron-rich foods (if deficient)
• B-vitamin complex foods
• Regular sleep schedule
• Balanced blood sugar levels

I can provide a comprehensive fatigue analysis if you'd like!`,
		Suggestions: []string{
			"Get comprehensive fatigue analysis",
			"Learn about energy-boosting foods",
			"Understand sleep hygiene",
			"Check for nutrient deficiencies",
		},
		FollowUps: []string{
			"How many hours of sleep do you typically get?",
			"Do you feel tired even after sleeping?",
			"Have you had any recent blood work done?",
		},
	},
	{
		Name:     "nutrition",
		Keywords: []string{"diet", "food", "eat", "nutrition"},
		Response: `Nutrition is fundamental to health and symptom management! I'm here to help you optimize your diet.

🤖 **AI Nutrition Insights:**
• Personalized meal planning based on symptoms
• Evidence-based food recommendations
• Nutrient timing for optimal health
• Anti-inflammatory diet strategies

What specific nutritional guidance are you looking for?`,
		Suggestions: []string{
			"Get personalized meal plan",
			"Learn about anti-inflammatory foods",
			"Understand nutrient timing",
			"Analyze current diet",
		},
		FollowUps: []string{
			"What are your current dietary restrictions?",
			"Are you trying to address any specific symptoms?",
			"Do you have any food allergies or intolerances?",
		},
	},
	{
		Name: "default",
		Response: `Hello! I'm your AI Health Assistant, here to provide evidence-based health guidance and dietary recommendations.

🤖 **How I can help:**
• Analyze symptoms and provide dietary guidance
• Offer evidence-based health recommendations
• Suggest lifestyle modifications
• Provide personalized nutrition advice

What health concerns can I help you with today?`,
		Suggestions: []string{
			"Analyze a symptom",
			"Get dietary recommendations",
			"Learn about healthy lifestyle",
			"Ask a health question",
		},
		FollowUps: []string{
			"What symptoms are you experiencing?",
			"Are you looking for dietary guidance?",
			"Do you have any specific health goals?",
		},
	},
}

// Reply selects the first branch with a keyword contained in message.
func Reply(message string) ChatReply {
	lower := strings.ToLower(message)
	branch := chatBranches[len(chatBranches)-1]
	for _, b := range chatBranches[:len(chatBranches)-1] {
		if containsAny(lower, b.Keywords) {
			branch = b
			break
		}
	}

	return ChatReply{
		Branch:            branch.Name,
		Response:          branch.Response,
		Suggestions:       append([]string(nil), branch.Suggestions...),
		FollowUpQuestions: append([]string(nil), branch.FollowUps...),
		AIConfidence:      ChatConfidence,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
