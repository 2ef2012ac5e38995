package utils

import (
	"math"

	"backend/models"
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// It is also the source of truth for valid activity levels during profile
// validation.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const defaultActivityMultiplier = 1.55

// Goal adjustment factors applied to TDEE. 15% deficit / surplus.
const (
	loseWeightFactor = 0.85
	gainWeightFactor = 1.15
)

// CaloriesBurned estimates energy expenditure from a MET value, body weight
// and duration: met * kg * hours. Directly measured values supplied by the
// client bypass this entirely.
func CaloriesBurned(met, weightKg float64, durationMin int) int {
	return int(math.Round(met * weightKg * float64(durationMin) / 60))
}

// BMR computes basal metabolic rate via Mifflin-St Jeor, rounded to the
// nearest integer. ok=false when any biometric input is missing; callers must
// treat that as "insufficient profile data", never as zero.
func BMR(age *int, gender *string, heightCm, weightKg *float64) (int, bool) {
	if age == nil || gender == nil || heightCm == nil || weightKg == nil {
		return 0, false
	}
	bmr := 10**weightKg + 6.25**heightCm - 5*float64(*age)
	if *gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr)), true
}

// TDEE scales BMR by the activity level multiplier. Unknown or missing
// levels fall back to the moderate multiplier.
func TDEE(bmr int, activityLevel string) int {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return int(math.Round(float64(bmr) * mult))
}

// TargetCalories adjusts TDEE for the user's goal.
func TargetCalories(tdee int, goal string) int {
	switch goal {
	case models.GoalLoseWeight:
		return int(math.Round(float64(tdee) * loseWeightFactor))
	case models.GoalGainWeight:
		return int(math.Round(float64(tdee) * gainWeightFactor))
	}
	return tdee
}

// MacroTargets splits target calories 25/45/30 across protein, carbs and fat
// at 4/4/9 kcal per gram, each rounded independently to whole grams.
func MacroTargets(calories int) (proteinG, carbsG, fatG int) {
	c := float64(calories)
	proteinG = int(math.Round(c * 0.25 / 4))
	carbsG = int(math.Round(c * 0.45 / 4))
	fatG = int(math.Round(c * 0.30 / 9))
	return proteinG, carbsG, fatG
}
