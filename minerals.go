package dri

// Mineral reference tables and generators. Same sourcing as the vitamin
// tables: RDA/EAR pairs (AI-derived where no RDA exists) and published ULs.
// The electrolytes (sodium, chloride, potassium) carry the strongest
// activity scaling since sweat losses dominate their requirement.

var calcium = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{1300, 1000}, female: baseIntake{1300, 1000}},
		{minAge: 19, maxAge: 50, male: baseIntake{1000, 800}, female: baseIntake{1000, 800}},
		{minAge: 0, maxAge: 70, male: baseIntake{1000, 800}, female: baseIntake{1200, 1000}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{1200, 1000}, female: baseIntake{1200, 1000}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 3000},
		{minAge: 19, maxAge: 50, value: 2500},
		{minAge: 0, maxAge: maxAdultAge, value: 2000},
	}},
}

var chloride = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{2300, 1800}, female: baseIntake{2300, 1800}},
		{minAge: 19, maxAge: 50, male: baseIntake{2300, 1800}, female: baseIntake{2300, 1800}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{2000, 1500}, female: baseIntake{2000, 1500}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.1,
	decimals: 0,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 3600}}},
}

var chromium = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{35, 28}, female: baseIntake{24, 19}},
		{minAge: 19, maxAge: 50, male: baseIntake{35, 28}, female: baseIntake{25, 20}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{30, 24}, female: baseIntake{20, 16}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper:    upperLimitRule{multiplier: 10},
}

var copper = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{890, 700}, female: baseIntake{890, 700}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{900, 700}, female: baseIntake{900, 700}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 8000},
		{minAge: 0, maxAge: maxAdultAge, value: 10000},
	}},
}

var fluoride = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{3.0, 2.4}, female: baseIntake{3.0, 2.4}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{4.0, 3.2}, female: baseIntake{3.0, 2.4}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 1,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 10.0}}},
}

var iodine = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{150, 95}, female: baseIntake{150, 95}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 900},
		{minAge: 0, maxAge: maxAdultAge, value: 1100},
	}},
}

var iron = nutrient{
	units: "mg",
	// The female 19-50 RDA of 18 mg covers menstrual losses; it drops to the
	// male level at 51.
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{11, 7.7}, female: baseIntake{15, 7.9}},
		{minAge: 19, maxAge: 50, male: baseIntake{8, 6}, female: baseIntake{18, 8.1}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{8, 6}, female: baseIntake{8, 6}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 1,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 45}}},
}

var magnesium = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{410, 360}, female: baseIntake{360, 300}},
		{minAge: 19, maxAge: 30, male: baseIntake{400, 330}, female: baseIntake{310, 255}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{420, 350}, female: baseIntake{320, 265}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	// The 350 mg UL applies to supplemental magnesium only, so total dietary
	// intake uses a 600 mg ceiling instead.
	upper: upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 600}}},
}

var manganese = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{2.2, 1.8}, female: baseIntake{1.6, 1.3}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{2.3, 1.9}, female: baseIntake{1.8, 1.5}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 1,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 9.0},
		{minAge: 0, maxAge: maxAdultAge, value: 11.0},
	}},
}

var molybdenum = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{43, 34}, female: baseIntake{43, 34}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{45, 34}, female: baseIntake{45, 34}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 1700},
		{minAge: 0, maxAge: maxAdultAge, value: 2000},
	}},
}

var phosphorus = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{1250, 1055}, female: baseIntake{1250, 1055}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{700, 580}, female: baseIntake{700, 580}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 0,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 0, maxAge: 70, value: 4000},
		{minAge: 0, maxAge: maxAdultAge, value: 3000},
	}},
}

var potassium = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{3000, 2400}, female: baseIntake{2300, 1840}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{3400, 2720}, female: baseIntake{2600, 2080}},
	},
	activity: strongActivityScaling,
	eerFloor: 0.9, eerCeil: 1.1,
	decimals: 0,
	// No UL established for potassium from food.
	upper: upperLimitRule{multiplier: 2},
}

var selenium = nutrient{
	units: "mcg",
	bands: []intakeBand{
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{55, 45}, female: baseIntake{55, 45}},
	},
	activity: mildActivityScaling,
	eerFloor: 0.97, eerCeil: 1.03,
	decimals: 0,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 400}}},
}

var sodium = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 50, male: baseIntake{1500, 1200}, female: baseIntake{1500, 1200}},
		{minAge: 51, maxAge: 70, male: baseIntake{1300, 1040}, female: baseIntake{1300, 1040}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{1200, 960}, female: baseIntake{1200, 960}},
	},
	// Heaviest activity scaling in the package: sodium is the dominant sweat
	// electrolyte.
	activity: map[ActivityLevel]float64{
		ActivityInactive:   1.0,
		ActivityLowActive:  1.05,
		ActivityActive:     1.15,
		ActivityVeryActive: 1.2,
	},
	eerFloor: 0.85, eerCeil: 1.15,
	decimals: 0,
	upper:    upperLimitRule{bands: []limitBand{{minAge: 0, maxAge: maxAdultAge, value: 2300}}},
}

var zinc = nutrient{
	units: "mg",
	bands: []intakeBand{
		{minAge: 14, maxAge: 18, male: baseIntake{11, 8.5}, female: baseIntake{9, 7.3}},
		{minAge: 0, maxAge: maxAdultAge, male: baseIntake{11, 9.4}, female: baseIntake{8, 6.8}},
	},
	activity: moderateActivityScaling,
	eerFloor: 0.95, eerCeil: 1.05,
	decimals: 1,
	upper: upperLimitRule{bands: []limitBand{
		{minAge: 14, maxAge: 18, value: 34},
		{minAge: 0, maxAge: maxAdultAge, value: 40},
	}},
}

// GenerateCalciumOutline returns daily calcium targets in mg.
func GenerateCalciumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return calcium.outline(age, gender, activityLevel, eer)
}

// GenerateChlorideOutline returns daily chloride targets in mg.
func GenerateChlorideOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return chloride.outline(age, gender, activityLevel, eer)
}

// GenerateChromiumOutline returns daily chromium targets in mcg.
func GenerateChromiumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return chromium.outline(age, gender, activityLevel, eer)
}

// GenerateCopperOutline returns daily copper targets in mcg.
func GenerateCopperOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return copper.outline(age, gender, activityLevel, eer)
}

// GenerateFluorideOutline returns daily fluoride targets in mg.
func GenerateFluorideOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return fluoride.outline(age, gender, activityLevel, eer)
}

// GenerateIodineOutline returns daily iodine targets in mcg.
func GenerateIodineOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return iodine.outline(age, gender, activityLevel, eer)
}

// GenerateIronOutline returns daily iron targets in mg.
func GenerateIronOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return iron.outline(age, gender, activityLevel, eer)
}

// GenerateMagnesiumOutline returns daily magnesium targets in mg.
func GenerateMagnesiumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return magnesium.outline(age, gender, activityLevel, eer)
}

// GenerateManganeseOutline returns daily manganese targets in mg.
func GenerateManganeseOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return manganese.outline(age, gender, activityLevel, eer)
}

// GenerateMolybdenumOutline returns daily molybdenum targets in mcg.
func GenerateMolybdenumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return molybdenum.outline(age, gender, activityLevel, eer)
}

// GeneratePhosphorusOutline returns daily phosphorus targets in mg.
func GeneratePhosphorusOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return phosphorus.outline(age, gender, activityLevel, eer)
}

// GeneratePotassiumOutline returns daily potassium targets in mg.
func GeneratePotassiumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return potassium.outline(age, gender, activityLevel, eer)
}

// GenerateSeleniumOutline returns daily selenium targets in mcg.
func GenerateSeleniumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return selenium.outline(age, gender, activityLevel, eer)
}

// GenerateSodiumOutline returns daily sodium targets in mg.
func GenerateSodiumOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return sodium.outline(age, gender, activityLevel, eer)
}

// GenerateZincOutline returns daily zinc targets in mg.
func GenerateZincOutline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	return zinc.outline(age, gender, activityLevel, eer)
}
