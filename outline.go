package dri

import (
	"fmt"
	"math"
)

// Outline is one nutrient's daily intake targets. RecommendedIntake is the
// adjusted RDA/AI, LowerLimit the EAR (or ~80% of AI where no EAR exists),
// UpperLimit the UL or a derived safety ceiling. Units are fixed per nutrient
// (g, mg or mcg); callers must not assume a common unit.
type Outline struct {
	RecommendedIntake float64 `json:"recommended_intake" yaml:"recommended_intake"`
	LowerLimit        float64 `json:"lower_limit" yaml:"lower_limit"`
	UpperLimit        float64 `json:"upper_limit" yaml:"upper_limit"`
	Units             string  `json:"units" yaml:"units"`
}

// referenceEER is the reference energy intake the EER-ratio adjustment is
// computed against: 2500 kcal for males, 2000 kcal for females.
func referenceEER(gender Gender) float64 {
	if gender == GenderMale {
		return 2500
	}
	return 2000
}

// validateOutlineInputs is the shared entry-point validation for every
// outline generator. Any failure aborts before computation; no partial
// results are ever returned.
func validateOutlineInputs(age float64, gender Gender, activityLevel ActivityLevel, eer float64) error {
	if age < 14 {
		return fmt.Errorf("%w: age must be at least 14 years", ErrInvalidArgument)
	}
	if !validGenders[gender] {
		return fmt.Errorf("%w: gender must be 'M' for male or 'F' for female", ErrInvalidArgument)
	}
	if !validActivityLevels[activityLevel] {
		return fmt.Errorf("%w: activity level must be one of: 'inactive', 'low_active', 'active', 'very_active'", ErrInvalidArgument)
	}
	if eer <= 0 {
		return fmt.Errorf("%w: eer must be a positive value", ErrInvalidArgument)
	}
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundTo rounds half to even at the given number of decimal places (0 or 1
// in this package, mirroring conventional reporting precision per nutrient).
// Midpoints occur routinely here (clamp-saturated energy ratios, the fiber
// inactive multiplier), so the tie-breaking mode is load-bearing.
func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*shift) / shift
}

/* ─── Reference-table machinery ──────────────────────────────────────── */

// baseIntake is one (recommended, lower) pair from the DRI tables.
type baseIntake struct {
	recommended float64
	lower       float64
}

// intakeBand is one age band of a nutrient's base-value table. Bands are
// checked in order and the first band with minAge ≤ age ≤ maxAge wins; every
// table ends in a catch-all band (minAge 0, maxAge +Inf). Order matters:
// the banding gaps of the published tables (e.g. 14-18 then 19-50 then 51+)
// deliberately send fractional ages like 18.5 to the final band, matching
// the reference behavior for this dataset.
type intakeBand struct {
	minAge float64
	maxAge float64
	male   baseIntake
	female baseIntake
}

// limitBand is one age band of a fixed Tolerable Upper Intake Level table.
type limitBand struct {
	minAge float64
	maxAge float64
	value  float64
}

// upperLimitRule produces a nutrient's upper limit. Exactly one of the two
// fields is set: bands for nutrients with a published UL, multiplier for
// nutrients without one, where the ceiling is derived from the rounded
// recommended intake (1.5x-10x depending on known toxicity risk).
type upperLimitRule struct {
	multiplier float64
	bands      []limitBand
}

// nutrient bundles everything the shared generator pattern needs: units, the
// age/gender-banded base table, the activity multiplier table, the EER-ratio
// clamp window, reporting precision, and the upper-limit rule.
type nutrient struct {
	units    string
	bands    []intakeBand
	activity map[ActivityLevel]float64
	eerFloor float64
	eerCeil  float64
	decimals int
	upper    upperLimitRule
}

// lookupBase returns the base intake pair for an age and gender: first
// matching band, else the final catch-all.
func (n *nutrient) lookupBase(age float64, gender Gender) baseIntake {
	band := n.bands[len(n.bands)-1]
	for _, b := range n.bands {
		if age >= b.minAge && age <= b.maxAge {
			band = b
			break
		}
	}
	if gender == GenderMale {
		return band.male
	}
	return band.female
}

// lookupLimit returns the fixed UL for an age: first matching band, else the
// final catch-all.
func (r *upperLimitRule) lookupLimit(age float64) float64 {
	limit := r.bands[len(r.bands)-1].value
	for _, b := range r.bands {
		if age >= b.minAge && age <= b.maxAge {
			limit = b.value
			break
		}
	}
	return limit
}

// outline runs the shared generator pattern: validate, look up the base pair,
// scale the recommendation by the activity multiplier and the clamped
// EER ratio, round to the nutrient's precision, then attach the upper limit.
// The lower limit is the banded EAR/AI minimum, never adjusted.
func (n *nutrient) outline(age float64, gender Gender, activityLevel ActivityLevel, eer float64) (Outline, error) {
	if err := validateOutlineInputs(age, gender, activityLevel, eer); err != nil {
		return Outline{}, err
	}

	base := n.lookupBase(age, gender)
	recommended := base.recommended * n.activity[activityLevel]
	recommended *= clamp(eer/referenceEER(gender), n.eerFloor, n.eerCeil)
	recommended = roundTo(recommended, n.decimals)

	out := Outline{
		RecommendedIntake: recommended,
		LowerLimit:        base.lower,
		Units:             n.units,
	}
	if n.upper.multiplier > 0 {
		out.UpperLimit = roundTo(n.upper.multiplier*recommended, n.decimals)
	} else {
		out.UpperLimit = n.upper.lookupLimit(age)
	}
	return out, nil
}

/* ─── Shared adjustment tables ───────────────────────────────────────── */

// Activity multiplier tiers. Most nutrients fall into one of three tiers
// reflecting how strongly the requirement tracks physical activity; the few
// with their own published-rationale curves (vitamin A, sodium, protein,
// fiber) define private tables next to their generators.
var (
	// strongActivityScaling: requirements tied to energy metabolism or
	// sweat electrolyte loss (B vitamins of carbohydrate metabolism,
	// vitamin C/D, chloride, potassium).
	strongActivityScaling = map[ActivityLevel]float64{
		ActivityInactive:   1.0,
		ActivityLowActive:  1.05,
		ActivityActive:     1.1,
		ActivityVeryActive: 1.15,
	}

	// moderateActivityScaling: requirements that rise modestly with tissue
	// turnover and oxidative stress (most minerals, folate, choline).
	moderateActivityScaling = map[ActivityLevel]float64{
		ActivityInactive:   1.0,
		ActivityLowActive:  1.03,
		ActivityActive:     1.07,
		ActivityVeryActive: 1.1,
	}

	// mildActivityScaling: requirements that are essentially stable across
	// activity levels (B12, biotin, trace minerals).
	mildActivityScaling = map[ActivityLevel]float64{
		ActivityInactive:   1.0,
		ActivityLowActive:  1.02,
		ActivityActive:     1.04,
		ActivityVeryActive: 1.05,
	}
)

// maxAdultAge marks the open end of a table's final age band.
var maxAdultAge = math.Inf(1)
