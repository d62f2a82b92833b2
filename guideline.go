package dri

// Macronutrients groups the four energy-providing nutrient outlines.
type Macronutrients struct {
	Carbohydrates Outline `json:"carbohydrates" yaml:"carbohydrates"`
	Fiber         Outline `json:"fiber" yaml:"fiber"`
	Protein       Outline `json:"protein" yaml:"protein"`
	Fat           Outline `json:"fat" yaml:"fat"`
}

// Vitamins groups the fourteen vitamin outlines.
type Vitamins struct {
	VitaminA        Outline `json:"vitamin_a" yaml:"vitamin_a"`
	VitaminC        Outline `json:"vitamin_c" yaml:"vitamin_c"`
	VitaminD        Outline `json:"vitamin_d" yaml:"vitamin_d"`
	VitaminB6       Outline `json:"vitamin_b6" yaml:"vitamin_b6"`
	VitaminE        Outline `json:"vitamin_e" yaml:"vitamin_e"`
	VitaminK        Outline `json:"vitamin_k" yaml:"vitamin_k"`
	Thiamin         Outline `json:"thiamin" yaml:"thiamin"`
	VitaminB12      Outline `json:"vitamin_b12" yaml:"vitamin_b12"`
	Riboflavin      Outline `json:"riboflavin" yaml:"riboflavin"`
	Folate          Outline `json:"folate" yaml:"folate"`
	Niacin          Outline `json:"niacin" yaml:"niacin"`
	Choline         Outline `json:"choline" yaml:"choline"`
	PantothenicAcid Outline `json:"pantothenic_acid" yaml:"pantothenic_acid"`
	Biotin          Outline `json:"biotin" yaml:"biotin"`
}

// Minerals groups the fifteen mineral outlines.
type Minerals struct {
	Calcium    Outline `json:"calcium" yaml:"calcium"`
	Chloride   Outline `json:"chloride" yaml:"chloride"`
	Chromium   Outline `json:"chromium" yaml:"chromium"`
	Copper     Outline `json:"copper" yaml:"copper"`
	Fluoride   Outline `json:"fluoride" yaml:"fluoride"`
	Iodine     Outline `json:"iodine" yaml:"iodine"`
	Iron       Outline `json:"iron" yaml:"iron"`
	Magnesium  Outline `json:"magnesium" yaml:"magnesium"`
	Manganese  Outline `json:"manganese" yaml:"manganese"`
	Molybdenum Outline `json:"molybdenum" yaml:"molybdenum"`
	Phosphorus Outline `json:"phosphorus" yaml:"phosphorus"`
	Potassium  Outline `json:"potassium" yaml:"potassium"`
	Selenium   Outline `json:"selenium" yaml:"selenium"`
	Sodium     Outline `json:"sodium" yaml:"sodium"`
	Zinc       Outline `json:"zinc" yaml:"zinc"`
}

// Guideline is the complete personalized daily intake report: every nutrient
// outline, grouped by category. The energy requirement itself is not part of
// the report; callers wanting it use CalculateEER directly.
type Guideline struct {
	Macronutrients Macronutrients `json:"macronutrients" yaml:"macronutrients"`
	Vitamins       Vitamins       `json:"vitamins" yaml:"vitamins"`
	Minerals       Minerals       `json:"minerals" yaml:"minerals"`
}

// GenerateNutritionalGuideline computes the EER for the given profile and
// runs every nutrient generator against it. Validation happens once up front
// in CalculateEER; any error aborts the whole report.
func GenerateNutritionalGuideline(age, height, weight float64, gender Gender, activityLevel ActivityLevel) (Guideline, error) {
	eer, err := CalculateEER(age, height, weight, gender, activityLevel)
	if err != nil {
		return Guideline{}, err
	}

	var g Guideline

	// add runs one generator and keeps the first error. Inputs already passed
	// CalculateEER's validation, so failures here would indicate a table bug.
	add := func(dst *Outline, gen func(float64, Gender, ActivityLevel, float64) (Outline, error)) {
		if err != nil {
			return
		}
		*dst, err = gen(age, gender, activityLevel, eer)
	}

	add(&g.Macronutrients.Carbohydrates, GenerateCarbohydratesOutline)
	add(&g.Macronutrients.Fiber, GenerateFiberOutline)
	add(&g.Macronutrients.Protein, GenerateProteinOutline)
	add(&g.Macronutrients.Fat, GenerateFatOutline)

	add(&g.Vitamins.VitaminA, GenerateVitaminAOutline)
	add(&g.Vitamins.VitaminC, GenerateVitaminCOutline)
	add(&g.Vitamins.VitaminD, GenerateVitaminDOutline)
	add(&g.Vitamins.VitaminB6, GenerateVitaminB6Outline)
	add(&g.Vitamins.VitaminE, GenerateVitaminEOutline)
	add(&g.Vitamins.VitaminK, GenerateVitaminKOutline)
	add(&g.Vitamins.Thiamin, GenerateThiaminOutline)
	add(&g.Vitamins.VitaminB12, GenerateVitaminB12Outline)
	add(&g.Vitamins.Riboflavin, GenerateRiboflavinOutline)
	add(&g.Vitamins.Folate, GenerateFolateOutline)
	add(&g.Vitamins.Niacin, GenerateNiacinOutline)
	add(&g.Vitamins.Choline, GenerateCholineOutline)
	add(&g.Vitamins.PantothenicAcid, GeneratePantothenicAcidOutline)
	add(&g.Vitamins.Biotin, GenerateBiotinOutline)

	add(&g.Minerals.Calcium, GenerateCalciumOutline)
	add(&g.Minerals.Chloride, GenerateChlorideOutline)
	add(&g.Minerals.Chromium, GenerateChromiumOutline)
	add(&g.Minerals.Copper, GenerateCopperOutline)
	add(&g.Minerals.Fluoride, GenerateFluorideOutline)
	add(&g.Minerals.Iodine, GenerateIodineOutline)
	add(&g.Minerals.Iron, GenerateIronOutline)
	add(&g.Minerals.Magnesium, GenerateMagnesiumOutline)
	add(&g.Minerals.Manganese, GenerateManganeseOutline)
	add(&g.Minerals.Molybdenum, GenerateMolybdenumOutline)
	add(&g.Minerals.Phosphorus, GeneratePhosphorusOutline)
	add(&g.Minerals.Potassium, GeneratePotassiumOutline)
	add(&g.Minerals.Selenium, GenerateSeleniumOutline)
	add(&g.Minerals.Sodium, GenerateSodiumOutline)
	add(&g.Minerals.Zinc, GenerateZincOutline)

	if err != nil {
		return Guideline{}, err
	}
	return g, nil
}
