package dri

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateNutritionalGuideline_Complete verifies that every nutrient in
// the report matches its standalone generator fed the same computed EER.
func TestGenerateNutritionalGuideline_Complete(t *testing.T) {
	g, err := GenerateNutritionalGuideline(25, 170, 70, GenderMale, ActivityActive)
	require.NoError(t, err)

	eer, err := CalculateEER(25, 170, 70, GenderMale, ActivityActive)
	require.NoError(t, err)

	fat, err := GenerateFatOutline(25, GenderMale, ActivityActive, eer)
	require.NoError(t, err)
	assert.Equal(t, fat, g.Macronutrients.Fat)

	vitD, err := GenerateVitaminDOutline(25, GenderMale, ActivityActive, eer)
	require.NoError(t, err)
	assert.Equal(t, vitD, g.Vitamins.VitaminD)

	zinc, err := GenerateZincOutline(25, GenderMale, ActivityActive, eer)
	require.NoError(t, err)
	assert.Equal(t, zinc, g.Minerals.Zinc)
}

// TestGenerateNutritionalGuideline_InvalidProfile verifies that a bad profile
// aborts the whole report.
func TestGenerateNutritionalGuideline_InvalidProfile(t *testing.T) {
	cases := []struct {
		name     string
		age      float64
		height   float64
		weight   float64
		gender   Gender
		activity ActivityLevel
	}{
		{"age below 14", 10, 170, 70, GenderMale, ActivityActive},
		{"zero height", 25, 0, 70, GenderMale, ActivityActive},
		{"zero weight", 25, 170, 0, GenderMale, ActivityActive},
		{"unknown gender", 25, 170, 70, Gender("other"), ActivityActive},
		{"unknown activity", 25, 170, 70, GenderMale, ActivityLevel("moderate")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := GenerateNutritionalGuideline(tc.age, tc.height, tc.weight, tc.gender, tc.activity)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, g)
		})
	}
}

// TestGuideline_JSONShape verifies the exact key sets of the serialized
// report: four macronutrients, fourteen vitamins, fifteen minerals, and the
// per-nutrient outline fields.
func TestGuideline_JSONShape(t *testing.T) {
	g, err := GenerateNutritionalGuideline(40, 165, 62, GenderFemale, ActivityLowActive)
	require.NoError(t, err)

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var doc map[string]map[string]json.RawMessage
	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &top))
	assert.ElementsMatch(t, []string{"macronutrients", "vitamins", "minerals"}, keysOf(top))

	doc = map[string]map[string]json.RawMessage{}
	for _, section := range []string{"macronutrients", "vitamins", "minerals"} {
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(top[section], &m))
		doc[section] = m
	}

	assert.ElementsMatch(t,
		[]string{"carbohydrates", "fiber", "protein", "fat"},
		keysOf(doc["macronutrients"]))
	assert.ElementsMatch(t,
		[]string{"vitamin_a", "vitamin_c", "vitamin_d", "vitamin_b6", "vitamin_e", "vitamin_k",
			"thiamin", "vitamin_b12", "riboflavin", "folate", "niacin", "choline",
			"pantothenic_acid", "biotin"},
		keysOf(doc["vitamins"]))
	assert.ElementsMatch(t,
		[]string{"calcium", "chloride", "chromium", "copper", "fluoride", "iodine", "iron",
			"magnesium", "manganese", "molybdenum", "phosphorus", "potassium", "selenium",
			"sodium", "zinc"},
		keysOf(doc["minerals"]))

	var outline map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["macronutrients"]["protein"], &outline))
	assert.ElementsMatch(t,
		[]string{"recommended_intake", "lower_limit", "upper_limit", "units"},
		keysOf(outline))
}

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
