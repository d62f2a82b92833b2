package dri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateIronOutline_MenstrualBand verifies the elevated female RDA for
// ages 19-50 and the drop to the shared value at 51.
func TestGenerateIronOutline_MenstrualBand(t *testing.T) {
	younger, err := GenerateIronOutline(30, GenderFemale, ActivityInactive, 2000)
	require.NoError(t, err)
	older, err := GenerateIronOutline(51, GenderFemale, ActivityInactive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 18.0, younger.RecommendedIntake)
	assert.Equal(t, 8.1, younger.LowerLimit)
	assert.Equal(t, 8.0, older.RecommendedIntake)
	assert.Equal(t, 6.0, older.LowerLimit)
	assert.Equal(t, 45.0, younger.UpperLimit)
	assert.Equal(t, 45.0, older.UpperLimit)
}

// TestGenerateSodiumOutline_ActivityScaling verifies the electrolyte scaling
// curve: a very active adult gets 20% over the AI, still under the 2300 mg
// limit.
func TestGenerateSodiumOutline_ActivityScaling(t *testing.T) {
	out, err := GenerateSodiumOutline(30, GenderMale, ActivityVeryActive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 1800.0, out.RecommendedIntake)
	assert.Equal(t, 1200.0, out.LowerLimit)
	assert.Equal(t, 2300.0, out.UpperLimit)
}

// TestGenerateSodiumOutline_WideClamp verifies sodium's 0.85-1.15 energy
// clamp, the widest in the mineral set.
//
// 30y male inactive at 1500 kcal: ratio 0.6 clamps to 0.85 -> 1500*0.85 = 1275.
func TestGenerateSodiumOutline_WideClamp(t *testing.T) {
	out, err := GenerateSodiumOutline(30, GenderMale, ActivityInactive, 1500)
	require.NoError(t, err)

	assert.Equal(t, 1275.0, out.RecommendedIntake)
}

// TestGenerateSodiumOutline_AgeBands verifies the AI step-down at 51 and 71.
func TestGenerateSodiumOutline_AgeBands(t *testing.T) {
	adult, err := GenerateSodiumOutline(50, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)
	senior, err := GenerateSodiumOutline(60, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)
	elder, err := GenerateSodiumOutline(75, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 1500.0, adult.RecommendedIntake)
	assert.Equal(t, 1300.0, senior.RecommendedIntake)
	assert.Equal(t, 1200.0, elder.RecommendedIntake)
}

// TestGenerateCalciumOutline_GenderedSeniorBand verifies that the female RDA
// rises to 1200 mg at 51 while the male value stays at 1000 mg until 71, and
// that the UL falls with age.
func TestGenerateCalciumOutline_GenderedSeniorBand(t *testing.T) {
	male, err := GenerateCalciumOutline(60, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)
	female, err := GenerateCalciumOutline(60, GenderFemale, ActivityInactive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, male.RecommendedIntake)
	assert.Equal(t, 1200.0, female.RecommendedIntake)
	assert.Equal(t, 2000.0, male.UpperLimit)
	assert.Equal(t, 2000.0, female.UpperLimit)
}

// TestGeneratePhosphorusOutline_ULDropsAfter70 verifies the upper limit
// reduction for elders with declining renal clearance.
func TestGeneratePhosphorusOutline_ULDropsAfter70(t *testing.T) {
	adult, err := GeneratePhosphorusOutline(60, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)
	elder, err := GeneratePhosphorusOutline(75, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 700.0, adult.RecommendedIntake)
	assert.Equal(t, 4000.0, adult.UpperLimit)
	assert.Equal(t, 3000.0, elder.UpperLimit)
}

// TestGenerateZincOutline_SingleDecimal verifies one-decimal reporting on a
// scaled recommendation.
//
// 30y female active at 2000 kcal: 8*1.07 = 8.56 -> 8.6.
func TestGenerateZincOutline_SingleDecimal(t *testing.T) {
	out, err := GenerateZincOutline(30, GenderFemale, ActivityActive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 8.6, out.RecommendedIntake)
	assert.Equal(t, 6.8, out.LowerLimit)
	assert.Equal(t, 40.0, out.UpperLimit)
	assert.Equal(t, "mg", out.Units)
}

// TestGenerateChromiumOutline_DerivedUpperLimit verifies the 10x ceiling used
// where no UL has been established.
func TestGenerateChromiumOutline_DerivedUpperLimit(t *testing.T) {
	out, err := GenerateChromiumOutline(30, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 35.0, out.RecommendedIntake)
	assert.Equal(t, 350.0, out.UpperLimit)
}
