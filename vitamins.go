package dri

// Vitamin reference tables and generators. Base values are the National
// Academies RDA/EAR pairs (AI where no RDA exists, with ~80% of AI as the
// minimum); fixed upper limits are the published ULs. All follow the shared
// generator pattern in outline.go.

var vitaminA = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{900, 630}, female: baseIntake{700, 485}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{900, 625}, female: baseIntake{700, 500}},
	},
	// Scaling capped at 10% because of vitamin A's toxicity risk.
	activity: map[ActivityLevel]float64{
		ActivityInactive:   1.0,
		ActivityLowActive:  1.03,
		ActivityActive:     1.06,
		ActivityVeryActive: 1.1,
	},
	eerFloor: 0.85, eerCeil: 1.15,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 2800},
		{minAge: 0, maxAge: maxAdultAge, value: 3000},
	}},
}

var vitaminC = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{75, 63}, female: baseIntake{65, 56}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{90, 75}, female: baseIntake{75, 60}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.1,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 1800},
		{minAge: 0, maxAge: maxAdultAge, value: 2000},
	}},
}

var vitaminD = nutrient{
	units: "mcg",
	// RDA is 15 mcg (600 IU) through age 70, 20 mcg (800 IU) after; the EAR
	// stays at 10 mcg throughout.
	bands: []intakeBand{
		{minAge: 14, maxAge: 70, male: baseIntake{15, 10}, female: baseIntake{15, 10}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{20, 10}, female: baseIntake{20, 10}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.95, eerCeil: 1.1,
	decimals: 0,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 100}}},
}

var vitaminB6 = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{1.3, 1.1}, female: baseIntake{1.2, 1.0}},
		{minAge: 19, maxAge: 50, male: baseIntake{1.3, 1.1}, female: baseIntake{1.3, 1.1}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{1.7, 1.4}, female: baseIntake{1.5, 1.3}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 1,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 100}}},
}

var vitaminE = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{15, 12}, female: baseIntake{15, 12}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 1,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 1000}}},
}

var vitaminK = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{75, 60}, female: baseIntake{75, 60}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{120, 96}, female: baseIntake{90, 72}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 0,
	// No UL established; low toxicity risk.
	upper: upperLimitRule{multiplier: 3},
}

var thiamin = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{1.2, 1.0}, female: baseIntake{1.0, 0.9}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{1.2, 1.0}, female: baseIntake{1.1, 0.9}},
	},
	// Thiamin demand tracks carbohydrate metabolism, hence the widest clamp
	// window among the vitamins.
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.2,
	decimals: 1,
	upper:    upperLimitRule{multiplier: 5},
}

var vitaminB12 = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{2.4, 2.0}, female: baseIntake{2.4, 2.0}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 1,
	upper:    upperLimitRule{multiplier: 10},
}

var riboflavin = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{1.3, 1.1}, female: baseIntake{1.0, 0.9}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{1.3, 1.1}, female: baseIntake{1.1, 0.9}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.2,
	decimals: 1,
	upper:    upperLimitRule{multiplier: 5},
}

var folate = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{400, 320}, female: baseIntake{400, 320}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 800},
		{minAge: 0, maxAge: maxAdultAge, value: 1000},
	}},
}

var niacin = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{16, 12}, female: baseIntake{14, 11}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.2,
	decimals: 1,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 30},
		{minAge: 0, maxAge: maxAdultAge, value: 35},
	}},
}

var choline = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{550, 440}, female: baseIntake{400, 320}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{550, 440}, female: baseIntake{425, 340}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 3000},
		{minAge: 0, maxAge: maxAdultAge, value: 3500},
	}},
}

var pantothenicAcid = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{5, 4}, female: baseIntake{5, 4}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 1,
	upper:    upperLimitRule{multiplier: 5},
}

var biotin = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{25, 20}, female: baseIntake{25, 20}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{30, 24}, female: baseIntake{30, 24}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 0,
	upper:    upperLimitRule{multiplier: 10},
}

// GenerateVitaminAOutline returns daily vitamin A targets in mcg RAE
// (Retinol Activity Equivalents).
func GenerateVitaminAOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminA.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminCOutline returns daily vitamin C targets in mg.
func GenerateVitaminCOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminC.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminDOutline returns daily vitamin D targets in mcg.
func GenerateVitaminDOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminD.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminB6Outline returns daily vitamin B6 targets in mg.
func GenerateVitaminB6Outline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminB6.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminEOutline returns daily vitamin E targets in mg
// alpha-tocopherol.
func GenerateVitaminEOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminE.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminKOutline returns daily vitamin K targets in mcg.
func GenerateVitaminKOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminK.outline(age, gender, activityLevel, eer)
}

// GenerateThiaminOutline returns daily thiamin (vitamin B1) targets in mg.
func GenerateThiaminOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return thiamin.outline(age, gender, activityLevel, eer)
}

// GenerateVitaminB12Outline returns daily vitamin B12 targets in mcg.
func GenerateVitaminB12Outline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return vitaminB12.outline(age, gender, activityLevel, eer)
}

// GenerateRiboflavinOutline returns daily riboflavin (vitamin B2) targets in mg.
func GenerateRiboflavinOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return riboflavin.outline(age, gender, activityLevel, eer)
}

// GenerateFolateOutline returns daily folate targets in mcg DFE
// (Dietary Folate Equivalents).
func GenerateFolateOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return folate.outline(age, gender, activityLevel, eer)
}

// GenerateNiacinOutline returns daily niacin targets in mg NE
// (Niacin Equivalents).
func GenerateNiacinOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return niacin.outline(age, gender, activityLevel, eer)
}

// GenerateCholineOutline returns daily choline targets in mg.
func GenerateCholineOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return choline.outline(age, gender, activityLevel, eer)
}

// GeneratePantothenicAcidOutline returns daily pantothenic acid (vitamin B5)
// targets in mg.
func GeneratePantothenicAcidOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return pantothenicAcid.outline(age, gender, activityLevel, eer)
}

// GenerateBiotinOutline returns daily biotin (vitamin B7) targets in mcg.
func GenerateBiotinOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return biotin.outline(age, gender, activityLevel, eer)
}
