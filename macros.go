package dri

// Macronutrient outlines. Carbohydrate and fat are plain Acceptable
// Macronutrient Distribution Range fractions of EER with no age, gender or
// activity banding; fiber and protein follow the shared banded pattern but
// each carries an extra rule (energy-proportional fiber floor, estimated
// body-weight protein ceiling).

// kcal per gram of carbohydrate and fat, used to convert AMDR energy
// fractions into gram targets.
const (
	kcalPerGramCarbohydrate = 4
	kcalPerGramFat          = 9
)

// GenerateCarbohydratesOutline returns daily carbohydrate targets in grams:
// 45-65% of EER with 55% as the recommendation, per the AMDR.
func GenerateCarbohydratesOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	if err := validateOutlineInputs(age, gender, activityLevel, eer); err != nil {
		return Outline{}, err
	}
	return Outline{
		RecommendedIntake: roundTo(0.55*eer/kcalPerGramCarbohydrate, 0),
		LowerLimit:        roundTo(0.45*eer/kcalPerGramCarbohydrate, 0),
		UpperLimit:        roundTo(0.65*eer/kcalPerGramCarbohydrate, 0),
		Units:             "g",
	}, nil
}

// GenerateFatOutline returns daily fat targets in grams: 20-35% of EER with
// 27.5% as the recommendation, per the AMDR.
func GenerateFatOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	if err := validateOutlineInputs(age, gender, activityLevel, eer); err != nil {
		return Outline{}, err
	}
	return Outline{
		RecommendedIntake: roundTo(0.275*eer/kcalPerGramFat, 0),
		LowerLimit:        roundTo(0.2*eer/kcalPerGramFat, 0),
		UpperLimit:        roundTo(0.35*eer/kcalPerGramFat, 0),
		Units:             "g",
	}, nil
}

/* ─── Fiber ──────────────────────────────────────────────────────────── */

// fiberBase holds the Adequate Intake values (g/day); lower limits are ~80%
// of AI. AI drops at 51 for both genders.
var fiberBase = []intakeBand{
	{minAge: 14, maxAge: 18, male: baseIntake{38, 30}, female: baseIntake{26, 21}},
	{minAge: 0, maxAge: 50, male: baseIntake{30, 24}, female: baseIntake{21, 17}},
	{minAge: 0, maxAge: maxAdultAge, male: baseIntake{21, 17}, female: baseIntake{14, 11}},
}

// fiberActivityScaling is the only multiplier table with a below-1.0 entry:
// inactive individuals get a slight reduction to avoid digestive discomfort.
var fiberActivityScaling = map[ActivityLevel]float64{
	ActivityInactive:   0.95,
	ActivityLowActive:  1.0,
	ActivityActive:     1.1,
	ActivityVeryActive: 1.2,
}

// gramsFiberPerThousandKcal is the energy-proportional fiber guideline used
// as a floor on the recommendation.
const gramsFiberPerThousandKcal = 14

// GenerateFiberOutline returns daily fiber targets in grams. Instead of the
// usual EER-ratio clamp, the activity-adjusted AI is floored at
// (EER/1000)·14 g so the recommendation never lags energy intake. No UL is
// established for fiber; the ceiling is 1.5x the recommendation.
func GenerateFiberOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	if err := validateOutlineInputs(age, gender, activityLevel, eer); err != nil {
		return Outline{}, err
	}

	n := nutrient{bands: fiberBase}
	base := n.lookupBase(age, gender)
	recommended := base.recommended * fiberActivityScaling[activityLevel]
	if floor := eer / 1000 * gramsFiberPerThousandKcal; floor > recommended {
		recommended = floor
	}
	recommended = roundTo(recommended, 0)

	return Outline{
		RecommendedIntake: recommended,
		LowerLimit:        base.lower,
		UpperLimit:        roundTo(1.5*recommended, 0),
		Units:             "g",
	}, nil
}

/* ─── Protein ────────────────────────────────────────────────────────── */

// proteinBase holds RDA/EAR values (g/day).
var proteinBase = []intakeBand{
	{minAge: 14, maxAge: 18, male: baseIntake{52, 43}, female: baseIntake{46, 38}},
	{minAge: 0, maxAge: maxAdultAge, male: baseIntake{56, 46}, female: baseIntake{46, 38}},
}

// proteinActivityScaling follows sports-nutrition guidance (1.2-2.0 g/kg for
// training populations), hence the widest multiplier range in the package.
var proteinActivityScaling = map[ActivityLevel]float64{
	ActivityInactive:   1.0,
	ActivityLowActive:  1.1,
	ActivityActive:     1.3,
	ActivityVeryActive: 1.5,
}

// estimatedProteinWeight returns the reference body weight (kg) used for the
// protein ceiling. The generators deliberately take no body weight input, so
// the 2.0 g/kg cap is computed against population-average weights instead.
func estimatedProteinWeight(age float64, gender Gender) float64 {
	if age >= 14 && age <= 18 {
		if gender == GenderMale {
			return 60
		}
		return 50
	}
	if gender == GenderMale {
		return 70
	}
	return 57
}

// GenerateProteinOutline returns daily protein targets in grams. The upper
// limit is 2.0 g per kg of estimated body weight, floored at twice the
// recommendation so heavy activity multipliers can't squeeze the safe range.
func GenerateProteinOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	if err := validateOutlineInputs(age, gender, activityLevel, eer); err != nil {
		return Outline{}, err
	}

	n := nutrient{bands: proteinBase}
	base := n.lookupBase(age, gender)
	recommended := base.recommended * proteinActivityScaling[activityLevel]
	recommended *= clamp(eer/referenceEER(gender), 0.9, 1.2)
	recommended = roundTo(recommended, 0)

	upper := roundTo(2.0*estimatedProteinWeight(age, gender), 0)
	if floor := 2 * recommended; floor > upper {
		upper = floor
	}

	return Outline{
		RecommendedIntake: recommended,
		LowerLimit:        base.lower,
		UpperLimit:        upper,
		Units:             "g",
	}, nil
}
