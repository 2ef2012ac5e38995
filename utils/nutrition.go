package utils

import (
	"errors"
	"math"

	"backend/models"
)

// ErrInvalidFoodData is returned when a referenced food carries no nutrient
// profile at all. This is a data-integrity violation, not a user input error,
// and aborts the request.
var ErrInvalidFoodData = errors.New("food has no nutrient profile")

// ScalingRatio maps a consumed amount to the multiplier applied to the food's
// stored nutrient profile.
//
// Discrete units (piece/cup/tbsp/tsp) scale against the declared serving
// count. Mass/volume units use the per-100 convention only when the declared
// serving amount is exactly 100; any other declared serving means the profile
// was stored per-serving and scales against that amount.
func ScalingRatio(spec models.ServingSize, amount float64) float64 {
	ref := spec.Amount
	if ref <= 0 {
		ref = 100
	}
	if models.DiscreteUnits[spec.Unit] {
		return amount / ref
	}
	if ref == 100 {
		return amount / 100
	}
	return amount / ref
}

// ComputeNutrition scales a food's nutrient profile to the consumed amount
// and rounds the result. The output is the snapshot persisted on the meal
// item: computed once at write time, never recomputed on read.
//
// A nil serving spec falls back to the per-100g default rather than failing;
// this masks data-quality problems but matches the stored-food conventions.
func ComputeNutrition(profile *models.NutrientProfile, spec *models.ServingSize, amount float64) (models.NutrientProfile, error) {
	if profile == nil {
		return models.NutrientProfile{}, ErrInvalidFoodData
	}

	s := models.ServingSize{Amount: 100, Unit: models.UnitGram}
	if spec != nil && spec.Unit != "" {
		s = *spec
	}

	ratio := ScalingRatio(s, amount)
	return RoundProfile(models.NutrientProfile{
		Calories: profile.Calories * ratio,
		Protein:  profile.Protein * ratio,
		Carbs:    profile.Carbs * ratio,
		Fat:      profile.Fat * ratio,
		Fiber:    profile.Fiber * ratio,
		Sugar:    profile.Sugar * ratio,
		Sodium:   profile.Sodium * ratio,
	}), nil
}

// SumSnapshots sums item snapshots elementwise and rounds the sum. Rounding
// applies to the sum only; the addends were already rounded at computation
// time, so the bounded accumulation error is accepted as-is.
func SumSnapshots(items []models.MealItem) models.NutrientProfile {
	var t models.NutrientProfile
	for _, it := range items {
		t.Calories += it.Calories
		t.Protein += it.Protein
		t.Carbs += it.Carbs
		t.Fat += it.Fat
		t.Fiber += it.Fiber
		t.Sugar += it.Sugar
		t.Sodium += it.Sodium
	}
	return RoundProfile(t)
}

// SumTotals sums meals' stored totals. Reports read persisted totals rather
// than re-deriving them from raw items.
func SumTotals(meals []models.Meal) models.NutrientProfile {
	var t models.NutrientProfile
	for _, m := range meals {
		t.Calories += m.Totals.Calories
		t.Protein += m.Totals.Protein
		t.Carbs += m.Totals.Carbs
		t.Fat += m.Totals.Fat
		t.Fiber += m.Totals.Fiber
		t.Sugar += m.Totals.Sugar
		t.Sodium += m.Totals.Sodium
	}
	return RoundProfile(t)
}

// RoundProfile applies the fixed precision rules: calories and sodium to the
// nearest integer, gram-denominated fields to one decimal, half-up.
func RoundProfile(p models.NutrientProfile) models.NutrientProfile {
	return models.NutrientProfile{
		Calories: math.Round(p.Calories),
		Protein:  round1(p.Protein),
		Carbs:    round1(p.Carbs),
		Fat:      round1(p.Fat),
		Fiber:    round1(p.Fiber),
		Sugar:    round1(p.Sugar),
		Sodium:   math.Round(p.Sodium),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
