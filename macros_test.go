package dri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateCarbohydratesOutline_AMDRFractions verifies the 45/55/65%
// energy fractions at a round 2000 kcal requirement.
//
// 0.55*2000/4 = 275, 0.45*2000/4 = 225, 0.65*2000/4 = 325.
func TestGenerateCarbohydratesOutline_AMDRFractions(t *testing.T) {
	out, err := GenerateCarbohydratesOutline(30, GenderMale, ActivityActive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 275.0, out.RecommendedIntake)
	assert.Equal(t, 225.0, out.LowerLimit)
	assert.Equal(t, 325.0, out.UpperLimit)
	assert.Equal(t, "g", out.Units)
}

// TestGenerateFatOutline_AMDRFractions verifies the 20/27.5/35% energy
// fractions against a computed adult male requirement.
//
// EER 2956.17: 0.275*2956.17/9 = 90.33 -> 90, 0.2*2956.17/9 = 65.69 -> 66,
// 0.35*2956.17/9 = 114.96 -> 115.
func TestGenerateFatOutline_AMDRFractions(t *testing.T) {
	out, err := GenerateFatOutline(25, GenderMale, ActivityActive, 2956.17)
	require.NoError(t, err)

	assert.Equal(t, 90.0, out.RecommendedIntake)
	assert.Equal(t, 66.0, out.LowerLimit)
	assert.Equal(t, 115.0, out.UpperLimit)
	assert.Equal(t, "g", out.Units)
}

// TestGenerateFiberOutline_EnergyFloor verifies that the (EER/1000)*14 g
// floor overrides the activity-adjusted base at high energy requirements.
//
// Adult male inactive at 3000 kcal: base 30*0.95 = 28.5, floor 42 -> 42.
func TestGenerateFiberOutline_EnergyFloor(t *testing.T) {
	out, err := GenerateFiberOutline(30, GenderMale, ActivityInactive, 3000)
	require.NoError(t, err)

	assert.Equal(t, 42.0, out.RecommendedIntake)
	assert.Equal(t, 24.0, out.LowerLimit)
	assert.Equal(t, 63.0, out.UpperLimit)
}

// TestGenerateFiberOutline_BaseWins verifies the activity-adjusted base when
// the energy floor is below it, including half-to-even rounding at the
// midpoint the inactive multiplier produces.
//
// Adult male inactive at 2000 kcal: base 30*0.95 = 28.5 -> 28 (ties go to
// even), floor 28; upper 1.5*28 = 42.
func TestGenerateFiberOutline_BaseWins(t *testing.T) {
	out, err := GenerateFiberOutline(30, GenderMale, ActivityInactive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 28.0, out.RecommendedIntake)
	assert.Equal(t, 42.0, out.UpperLimit)
}

// TestGenerateFiberOutline_AgeBands verifies the AI drop at 51 for both
// genders.
func TestGenerateFiberOutline_AgeBands(t *testing.T) {
	younger, err := GenerateFiberOutline(50, GenderFemale, ActivityLowActive, 1500)
	require.NoError(t, err)
	older, err := GenerateFiberOutline(51, GenderFemale, ActivityLowActive, 1500)
	require.NoError(t, err)

	// Base 21 vs 14; the 21 g energy floor (1500/1000*14) applies to both.
	assert.Equal(t, 21.0, younger.RecommendedIntake)
	assert.Equal(t, 21.0, older.RecommendedIntake)
	assert.Equal(t, 17.0, younger.LowerLimit)
	assert.Equal(t, 11.0, older.LowerLimit)
}

// TestGenerateProteinOutline_Baseline verifies the RDA passthrough at
// reference energy intake with no activity scaling.
//
// Adult male inactive at 2500 kcal: 56*1.0*1.0 = 56; ceiling 2.0 g/kg on a
// 70 kg reference weight = 140.
func TestGenerateProteinOutline_Baseline(t *testing.T) {
	out, err := GenerateProteinOutline(30, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 56.0, out.RecommendedIntake)
	assert.Equal(t, 46.0, out.LowerLimit)
	assert.Equal(t, 140.0, out.UpperLimit)
}

// TestGenerateProteinOutline_CeilingFloor verifies that the upper limit is
// floored at twice the recommendation when heavy activity scaling pushes the
// recommendation past half the body-weight ceiling.
//
// Adult male very active at 2500 kcal: 56*1.5 = 84; 2*84 = 168 > 140.
func TestGenerateProteinOutline_CeilingFloor(t *testing.T) {
	out, err := GenerateProteinOutline(30, GenderMale, ActivityVeryActive, 2500)
	require.NoError(t, err)

	assert.Equal(t, 84.0, out.RecommendedIntake)
	assert.Equal(t, 168.0, out.UpperLimit)
}

// TestGenerateProteinOutline_AdolescentWeight verifies the adolescent
// reference weights behind the ceiling (60 kg male, 50 kg female).
func TestGenerateProteinOutline_AdolescentWeight(t *testing.T) {
	male, err := GenerateProteinOutline(15, GenderMale, ActivityInactive, 2500)
	require.NoError(t, err)
	female, err := GenerateProteinOutline(15, GenderFemale, ActivityInactive, 2000)
	require.NoError(t, err)

	assert.Equal(t, 120.0, male.UpperLimit)
	assert.Equal(t, 100.0, female.UpperLimit)
}
