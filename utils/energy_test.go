package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCaloriesBurned(t *testing.T) {
	cases := []struct {
		name        string
		met, weight float64
		duration    int
		want        int
	}{
		{"one hour moderate", 5, 70, 60, 350},
		{"half hour vigorous", 10, 80, 30, 400},
		{"short walk", 3.5, 60, 20, 70},
		{"minimum duration", 1, 50, 1, 1}, // round(0.83)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CaloriesBurned(tc.met, tc.weight, tc.duration))
		})
	}
}

func TestBMR_Male(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	bmr, ok := BMR(ptr(30), ptr(models.GenderMale), ptr(175.0), ptr(70.0))
	assert.True(t, ok)
	assert.Equal(t, 1649, bmr)
}

func TestBMR_Female(t *testing.T) {
	// 10*60 + 6.25*165 - 5*30 - 161 = 1320.25
	bmr, ok := BMR(ptr(30), ptr(models.GenderFemale), ptr(165.0), ptr(60.0))
	assert.True(t, ok)
	assert.Equal(t, 1320, bmr)
}

func TestBMR_OtherUsesFemaleConstant(t *testing.T) {
	female, _ := BMR(ptr(30), ptr(models.GenderFemale), ptr(165.0), ptr(60.0))
	other, ok := BMR(ptr(30), ptr(models.GenderOther), ptr(165.0), ptr(60.0))
	assert.True(t, ok)
	assert.Equal(t, female, other)
}

func TestBMR_MissingInputs(t *testing.T) {
	age, gender, height, weight := ptr(30), ptr(models.GenderMale), ptr(175.0), ptr(70.0)

	cases := []struct {
		name string
		age  *int
		gen  *string
		h, w *float64
	}{
		{"nil age", nil, gender, height, weight},
		{"nil gender", age, nil, height, weight},
		{"nil height", age, gender, nil, weight},
		{"nil weight", age, gender, height, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := BMR(tc.age, tc.gen, tc.h, tc.w)
			assert.False(t, ok, "missing input must mean insufficient data, not zero")
		})
	}
}

func TestTDEE(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"sedentary", 1979},   // round(1649*1.2)
		{"light", 2267},       // round(1649*1.375)
		{"moderate", 2556},    // round(1649*1.55)
		{"active", 2845},      // round(1649*1.725)
		{"very_active", 3133}, // round(1649*1.9)
		{"", 2556},            // missing level → moderate
		{"couch", 2556},       // unknown level → moderate
	}

	for _, tc := range cases {
		t.Run("level_"+tc.level, func(t *testing.T) {
			assert.Equal(t, tc.want, TDEE(1649, tc.level))
		})
	}
}

func TestTargetCalories(t *testing.T) {
	assert.Equal(t, 1700, TargetCalories(2000, models.GoalLoseWeight))
	assert.Equal(t, 2300, TargetCalories(2000, models.GoalGainWeight))
	assert.Equal(t, 2000, TargetCalories(2000, models.GoalMaintain))
	assert.Equal(t, 2000, TargetCalories(2000, ""))
}

func TestMacroTargets(t *testing.T) {
	protein, carbs, fat := MacroTargets(2000)
	assert.Equal(t, 125, protein) // 2000*0.25/4
	assert.Equal(t, 225, carbs)   // 2000*0.45/4
	assert.Equal(t, 67, fat)      // round(2000*0.30/9)
}
