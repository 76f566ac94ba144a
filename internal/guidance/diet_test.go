package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLookupDietMatchesAnyCase(t *testing.T) {
	tests := []struct {
		name    string
		symptom string
		want    string
	}{
		{"lower", "headache", "Water (8-10 glasses daily)"},
		{"upper", "HEADACHE since noon", "Water (8-10 glasses daily)"},
		{"embedded", "terrible Headaches at night", "Water (8-10 glasses daily)"},
		{"nausea", "Nausea after meals", "Ginger root tea (fresh or dried)"},
		{"insomnia", "chronic insomnia", "Tryptophan foods (turkey, milk, bananas)"},
		{"no match", "xyz123", "Anti-inflammatory foods (turmeric, berries)"},
		{"empty", "", "Anti-inflammatory foods (turmeric, berries)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := LookupDiet(tt.symptom, Context{})
			require.NotEmpty(t, rec.Consume)
			assert.Equal(t, tt.want, rec.Consume[0])
		})
	}
}

func TestLookupDietFirstMatchWins(t *testing.T) {
	// "anxiety" is declared after "headache" and "fatigue".
	rec := LookupDiet("anxiety, fatigue and a headache", Context{})
	assert.Equal(t, dietTable[0].Record.Supplements, rec.Supplements)

	rec = LookupDiet("anxiety and fatigue", Context{})
	assert.Equal(t, "Iron-rich foods (lean red meat, spinach)", rec.Consume[0])
}

func TestLookupDietDefaultIsUnadjusted(t *testing.T) {
	rec := LookupDiet("xyz123", Context{Age: intPtr(70), Gender: "female"})
	assert.Equal(t, defaultDiet, rec)
}

func TestLookupDietSeniorAdjustment(t *testing.T) {
	rec := LookupDiet("headache", Context{Age: intPtr(65)})
	assert.Contains(t, rec.Consume, calciumNote)
	assert.Equal(t, vitaminDNote, rec.Supplements[len(rec.Supplements)-1])
	assert.Len(t, rec.Supplements, len(dietTable[0].Record.Supplements)+1)

	// insomnia already lists calcium sources
	rec = LookupDiet("insomnia", Context{Age: intPtr(65)})
	assert.NotContains(t, rec.Consume, calciumNote)
	assert.Contains(t, rec.Supplements, vitaminDNote)

	rec = LookupDiet("headache", Context{Age: intPtr(50)})
	assert.NotContains(t, rec.Consume, calciumNote)
}

func TestLookupDietFemaleAdjustment(t *testing.T) {
	rec := LookupDiet("nausea", Context{Gender: " Female "})
	assert.Equal(t, ironNote, rec.Consume[len(rec.Consume)-1])

	// fatigue already lists iron-rich foods
	rec = LookupDiet("fatigue", Context{Gender: "female"})
	assert.NotContains(t, rec.Consume, ironNote)

	rec = LookupDiet("nausea", Context{Gender: "male"})
	assert.NotContains(t, rec.Consume, ironNote)
}

func TestLookupDietDoesNotMutateTable(t *testing.T) {
	before := dietTable[0].Record.clone()
	ctx := Context{Age: intPtr(80), Gender: "female"}

	first := LookupDiet("headache", ctx)
	second := LookupDiet("headache", ctx)

	assert.Equal(t, first, second)
	assert.Equal(t, before, dietTable[0].Record)

	first.Consume[0] = "changed"
	assert.Equal(t, "Water (8-10 glasses daily)", LookupDiet("headache", Context{}).Consume[0])
}

func TestDietTableEntriesAreComplete(t *testing.T) {
	records := []DietaryRecord{defaultDiet}
	for _, e := range dietTable {
		records = append(records, e.Record)
	}
	for _, r := range records {
		assert.NotEmpty(t, r.Consume)
		assert.NotEmpty(t, r.Avoid)
		assert.NotEmpty(t, r.Focus)
		assert.NotEmpty(t, r.Meals)
		assert.NotEmpty(t, r.Supplements)
	}
	assert.Equal(t, []string{"headache", "nausea", "fatigue", "anxiety", "insomnia"}, DietKeywords())
}
