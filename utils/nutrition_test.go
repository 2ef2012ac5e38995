package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() models.NutrientProfile {
	return models.NutrientProfile{
		Calories: 250,
		Protein:  12.5,
		Carbs:    30.2,
		Fat:      8.4,
		Fiber:    3.1,
		Sugar:    5.6,
		Sodium:   320,
	}
}

func TestComputeNutrition_Identity(t *testing.T) {
	p := sampleProfile()
	spec := models.ServingSize{Amount: 100, Unit: models.UnitGram}

	out, err := ComputeNutrition(&p, &spec, 100)
	require.NoError(t, err)
	assert.Equal(t, p, out, "per-100g profile consumed at 100g must come back unchanged")
}

func TestComputeNutrition_LinearScaling(t *testing.T) {
	p := sampleProfile()
	spec := models.ServingSize{Amount: 100, Unit: models.UnitGram}

	half, err := ComputeNutrition(&p, &spec, 50)
	require.NoError(t, err)
	full, err := ComputeNutrition(&p, &spec, 100)
	require.NoError(t, err)

	// Doubling the amount doubles each field within rounding tolerance.
	assert.InDelta(t, full.Calories, 2*half.Calories, 1.0)
	assert.InDelta(t, full.Protein, 2*half.Protein, 0.2)
	assert.InDelta(t, full.Carbs, 2*half.Carbs, 0.2)
	assert.InDelta(t, full.Fat, 2*half.Fat, 0.2)
	assert.InDelta(t, full.Sodium, 2*half.Sodium, 1.0)
}

func TestComputeNutrition_DiscreteUnit(t *testing.T) {
	// Profile declared for a reference serving of 2 pieces.
	p := models.NutrientProfile{Calories: 100, Protein: 4}
	spec := models.ServingSize{Amount: 2, Unit: models.UnitPiece}

	out, err := ComputeNutrition(&p, &spec, 3)
	require.NoError(t, err)
	assert.Equal(t, 150.0, out.Calories)
	assert.Equal(t, 6.0, out.Protein)
}

func TestComputeNutrition_PerServingMassUnit(t *testing.T) {
	// A 30g declared serving means the profile is per-serving, not per-100g:
	// eating 60g is two servings, not 0.6 of the profile.
	p := models.NutrientProfile{Calories: 120, Fat: 5}
	spec := models.ServingSize{Amount: 30, Unit: models.UnitGram}

	out, err := ComputeNutrition(&p, &spec, 60)
	require.NoError(t, err)
	assert.Equal(t, 240.0, out.Calories)
	assert.Equal(t, 10.0, out.Fat)
}

func TestComputeNutrition_DefaultServingSpec(t *testing.T) {
	p := models.NutrientProfile{Calories: 200}

	// Missing spec defaults to per-100g instead of failing.
	out, err := ComputeNutrition(&p, nil, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Calories)
}

func TestComputeNutrition_NilProfile(t *testing.T) {
	spec := models.ServingSize{Amount: 100, Unit: models.UnitGram}
	_, err := ComputeNutrition(nil, &spec, 100)
	assert.ErrorIs(t, err, ErrInvalidFoodData)
}

func TestComputeNutrition_Rounding(t *testing.T) {
	// 99.5 kcal rounds half-up to 100; 1.25g protein rounds half-up to 1.3.
	p := models.NutrientProfile{Calories: 99.5, Protein: 1.25, Sodium: 10.5}
	spec := models.ServingSize{Amount: 100, Unit: models.UnitGram}

	out, err := ComputeNutrition(&p, &spec, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Calories)
	assert.Equal(t, 1.3, out.Protein)
	assert.Equal(t, 11.0, out.Sodium)
}

func TestScalingRatio(t *testing.T) {
	cases := []struct {
		name   string
		spec   models.ServingSize
		amount float64
		want   float64
	}{
		{"per-100g", models.ServingSize{Amount: 100, Unit: models.UnitGram}, 200, 2.0},
		{"per-100ml", models.ServingSize{Amount: 100, Unit: models.UnitMl}, 250, 2.5},
		{"declared 30g serving", models.ServingSize{Amount: 30, Unit: models.UnitGram}, 30, 1.0},
		{"one piece", models.ServingSize{Amount: 1, Unit: models.UnitPiece}, 4, 4.0},
		{"two tbsp reference", models.ServingSize{Amount: 2, Unit: models.UnitTbsp}, 1, 0.5},
		{"zero amount", models.ServingSize{Amount: 100, Unit: models.UnitGram}, 0, 0.0},
		{"bad serving amount falls back to 100", models.ServingSize{Amount: 0, Unit: models.UnitGram}, 50, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ScalingRatio(tc.spec, tc.amount), 1e-9)
		})
	}
}

func TestSumSnapshots_Empty(t *testing.T) {
	totals := SumSnapshots(nil)
	assert.Equal(t, models.NutrientProfile{}, totals)
}

func TestSumSnapshots_Sums(t *testing.T) {
	items := []models.MealItem{
		{NutrientProfile: models.NutrientProfile{Calories: 150, Protein: 10.2, Carbs: 20, Fat: 5.5, Sodium: 100}},
		{NutrientProfile: models.NutrientProfile{Calories: 250, Protein: 4.3, Carbs: 31.1, Fat: 2.1, Sodium: 50}},
	}

	totals := SumSnapshots(items)
	assert.Equal(t, 400.0, totals.Calories)
	assert.Equal(t, 14.5, totals.Protein)
	assert.Equal(t, 51.1, totals.Carbs)
	assert.Equal(t, 7.6, totals.Fat)
	assert.Equal(t, 150.0, totals.Sodium)
}

func TestSumSnapshots_Idempotent(t *testing.T) {
	items := []models.MealItem{
		{NutrientProfile: models.NutrientProfile{Calories: 123, Protein: 3.3}},
		{NutrientProfile: models.NutrientProfile{Calories: 77, Protein: 1.9}},
	}

	first := SumSnapshots(items)
	second := SumSnapshots(items)
	assert.Equal(t, first, second)
}

func TestSumTotals(t *testing.T) {
	meals := []models.Meal{
		{Totals: models.NutrientProfile{Calories: 500, Protein: 30}},
		{Totals: models.NutrientProfile{Calories: 700, Protein: 42.5}},
	}

	totals := SumTotals(meals)
	assert.Equal(t, 1200.0, totals.Calories)
	assert.Equal(t, 72.5, totals.Protein)
}
