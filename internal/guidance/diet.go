package guidance

import "strings"

// Context carries the optional demographic fields used for personalization.
type Context struct {
	Age    *int
	Gender string
}

// DietaryRecord is one entry of the dietary table.
type DietaryRecord struct {
	Consume     []string `json:"foods_to_consume"`
	Avoid       []string `json:"foods_to_avoid"`
	Focus       []string `json:"nutritional_focus"`
	Meals       []string `json:"meal_suggestions"`
	Supplements []string `json:"supplements"`
}

type dietEntry struct {
	Keyword string
	Record  DietaryRecord
}

const (
	seniorAgeThreshold = 50
	calciumNote        = "Calcium-rich foods (for bone health)"
	vitaminDNote       = "Vitamin D3 (higher dose for seniors)"
	ironNote           = "Iron-rich foods (especially for women)"
)

// Order matters: the first keyword contained in the symptom wins.
var dietTable = []dietEntry{
	{Keyword: "headache", Record: DietaryRecord{
		Consume: []string{"Water (8-10 glasses daily)", "Magnesium-rich foods (almonds, spinach)",
			"Omega-3 fatty acids (salmon, walnuts)", "Ginger tea", "Peppermint tea",
			"Complex carbohydrates (quinoa, brown rice)", "Riboflavin foods (eggs, dairy)",
			"Coenzyme Q10 sources (organ meats, whole grains)", "Feverfew tea (if chronic)"},
		Avoid: []string{"Aged cheeses", "Processed meats (nitrates)", "Alcohol", "Excessive caffeine",
			"Artificial sweeteners (aspartame)", "MSG-containing foods", "Chocolate (if trigger)",
			"Histamine-rich foods (aged wines, fermented foods)"},
		Focus: []string{"Maintain stable blood sugar", "Stay hydrated", "Regular meal timing", "Anti-inflammatory nutrients"},
		Meals: []string{"Breakfast: Steel-cut oats with almonds and blueberries",
			"Lunch: Quinoa bowl with spinach, salmon, and avocado",
			"Dinner: Grilled chicken with sweet potato and steamed broccoli",
			"Snack: Handful of walnuts with herbal tea"},
		Supplements: []string{"Magnesium glycinate (400mg)", "Riboflavin (400mg)", "Coenzyme Q10 (100mg)", "Omega-3 (1000mg EPA/DHA)"},
	}},
	{Keyword: "nausea", Record: DietaryRecord{
		Consume: []string{"Ginger root tea (fresh or dried)", "Plain crackers", "Bananas", "Rice (white, plain)",
			"Toast (plain)", "Peppermint tea", "Electrolyte solutions", "Small frequent meals",
			"Bone broth", "Chamomile tea", "Fennel seeds"},
		Avoid: []string{"Spicy foods", "Greasy/fried foods", "Strong odors", "Large meals",
			"Dairy products (initially)", "High-fat foods", "Acidic foods (citrus, tomatoes)",
			"Carbonated beverages", "Cold foods (if sensitive)"},
		Focus: []string{"BRAT diet initially", "Gradual food reintroduction", "Hydration maintenance", "Digestive rest"},
		Meals: []string{"Phase 1: Ginger tea with plain crackers",
			"Phase 2: Plain rice with banana slices",
			"Phase 3: Chicken broth with toast",
			"Recovery: Mild chicken soup with rice"},
		Supplements: []string{"Ginger capsules (250mg)", "Vitamin B6 (25mg)", "Probiotics (after acute phase)"},
	}},
	{Keyword: "fatigue", Record: DietaryRecord{
		Consume: []string{"Iron-rich foods (lean red meat, spinach)", "Vitamin B12 sources (fish, eggs)",
			"Complex carbohydrates (oats, quinoa)", "Protein at each meal",
			"Vitamin D sources (fortified milk, salmon)", "Magnesium foods (nuts, seeds)",
			"Adaptogenic herbs (ashwagandha, rhodiola)", "Green tea (L-theanine)"},
		Avoid: []string{"Refined sugars", "Processed foods", "Excessive caffeine", "Large heavy meals",
			"Alcohol", "Empty calorie foods", "Trans fats", "High-sodium processed foods"},
		Focus: []string{"Stable blood sugar levels", "Adequate protein intake", "Nutrient density", "Mitochondrial support"},
		Meals: []string{"Breakfast: Greek yogurt with berries, granola, and chia seeds",
			"Lunch: Lentil soup with whole grain bread and side salad",
			"Dinner: Grilled salmon with quinoa and roasted vegetables",
			"Snack: Apple with almond butter"},
		Supplements: []string{"Iron (if deficient)", "Vitamin B-complex", "Vitamin D3 (2000 IU)", "CoQ10 (100mg)", "Adaptogenic blend"},
	}},
	{Keyword: "anxiety", Record: DietaryRecord{
		Consume: []string{"Omega-3 rich fish (salmon, sardines)", "Magnesium foods (dark chocolate, nuts)",
			"Complex carbohydrates (oats, sweet potatoes)", "Herbal teas (passionflower, lemon balm)",
			"Probiotic foods (kefir, sauerkraut)", "Zinc-rich foods (pumpkin seeds)",
			"GABA-supporting foods (brown rice, oats)", "L-theanine sources (green tea)"},
		Avoid: []string{"Caffeine excess", "Alcohol", "Refined sugars", "Processed foods",
			"High-sodium foods", "Energy drinks", "Artificial additives", "Excessive sugar substitutes"},
		Focus: []string{"Stable blood sugar", "Gut-brain axis support", "Calming nutrients", "Neurotransmitter balance"},
		Meals: []string{"Breakfast: Oatmeal with walnuts, berries, and hemp seeds",
			"Lunch: Salmon salad with leafy greens and avocado",
			"Dinner: Turkey with sweet potato and steamed broccoli",
			"Evening: Chamomile tea with small piece of dark chocolate"},
		Supplements: []string{"Magnesium glycinate (400mg)", "Omega-3 (1000mg)", "Probiotics", "L-theanine (200mg)", "Ashwagandha (300mg)"},
	}},
	{Keyword: "insomnia", Record: DietaryRecord{
		Consume: []string{"Tryptophan foods (turkey, milk, bananas)", "Magnesium-rich foods (almonds, spinach)",
			"Tart cherry juice", "Herbal teas (chamomile, valerian)", "Complex carbs (whole grains)",
			"Calcium sources (sesame seeds, dairy)", "Glycine-rich foods (bone broth)"},
		Avoid: []string{"Caffeine after 2 PM", "Large meals before bed", "Alcohol", "Spicy foods",
			"High-sugar foods", "Excessive fluids before bed", "Blue light exposure", "Heavy proteins at dinner"},
		Focus: []string{"Sleep-promoting nutrients", "Evening meal timing", "Melatonin precursors", "Circadian rhythm support"},
		Meals: []string{"Dinner: Grilled chicken with quinoa (3 hours before bed)",
			"Evening snack: Small banana with almond butter",
			"Bedtime: Chamomile tea with honey",
			"Alternative: Tart cherry juice (1 hour before bed)"},
		Supplements: []string{"Melatonin (0.5-3mg)", "Magnesium glycinate (400mg)", "L-theanine (200mg)", "Valerian root (300mg)"},
	}},
}

var defaultDiet = DietaryRecord{
	Consume: []string{"Anti-inflammatory foods (turmeric, berries)", "Plenty of water",
		"Whole grains", "Lean proteins", "Fresh fruits and vegetables",
		"Probiotic foods (yogurt, kefir)", "Nuts and seeds", "Green tea"},
	Avoid: []string{"Processed foods", "Excessive sugar", "Trans fats", "Excessive alcohol",
		"Highly processed meats", "Artificial additives", "Refined carbohydrates"},
	Focus: []string{"Balanced nutrition", "Regular meal timing", "Portion control", "Nutrient density"},
	Meals: []string{"Focus on whole, unprocessed foods", "Include protein at each meal",
		"Eat plenty of colorful vegetables", "Stay hydrated throughout the day"},
	Supplements: []string{"Multivitamin", "Omega-3", "Vitamin D3", "Probiotics"},
}

// DietKeywords returns the symptom keywords of the dietary table in match order.
func DietKeywords() []string {
	keys := make([]string, 0, len(dietTable))
	for _, e := range dietTable {
		keys = append(keys, e.Keyword)
	}
	return keys
}

// LookupDiet returns the dietary record for the first table keyword found in
// symptom, personalized for ctx. The default record is returned unadjusted
// when nothing matches. The result never aliases table storage.
func LookupDiet(symptom string, ctx Context) DietaryRecord {
	lower := strings.ToLower(symptom)
	for _, e := range dietTable {
		if strings.Contains(lower, e.Keyword) {
			return personalize(e.Record.clone(), ctx)
		}
	}
	return defaultDiet.clone()
}

func personalize(rec DietaryRecord, ctx Context) DietaryRecord {
	if ctx.Age != nil && *ctx.Age > seniorAgeThreshold {
		if !anyContains(rec.Consume, "Calcium sources") {
			rec.Consume = append(rec.Consume, calciumNote)
		}
		rec.Supplements = append(rec.Supplements, vitaminDNote)
	}
	if strings.EqualFold(strings.TrimSpace(ctx.Gender), "female") {
		if !anyContains(rec.Consume, "Iron") {
			rec.Consume = append(rec.Consume, ironNote)
		}
	}
	return rec
}

func (r DietaryRecord) clone() DietaryRecord {
	return DietaryRecord{
		Consume:     cloneStrings(r.Consume),
		Avoid:       cloneStrings(r.Avoid),
		Focus:       cloneStrings(r.Focus),
		Meals:       cloneStrings(r.Meals),
		Supplements: cloneStrings(r.Supplements),
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
