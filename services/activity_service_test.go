package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validActivityInput() ActivityInput {
	return ActivityInput{
		Name:        "Morning run",
		Type:        "cardio",
		Intensity:   "moderate",
		DurationMin: 45,
		MET:         8,
	}
}

func TestValidateActivityInput_OK(t *testing.T) {
	in := validActivityInput()
	assert.NoError(t, validateActivityInput(&in))
}

func TestValidateActivityInput_BadType(t *testing.T) {
	in := validActivityInput()
	in.Type = "napping"
	assert.Error(t, validateActivityInput(&in))
}

func TestValidateActivityInput_BadIntensity(t *testing.T) {
	in := validActivityInput()
	in.Intensity = "extreme"
	assert.Error(t, validateActivityInput(&in))
}

func TestValidateActivityInput_DurationBounds(t *testing.T) {
	in := validActivityInput()

	in.DurationMin = 0
	assert.Error(t, validateActivityInput(&in))

	in.DurationMin = 1441
	assert.Error(t, validateActivityInput(&in))

	in.DurationMin = 1440
	assert.NoError(t, validateActivityInput(&in))
}

func TestValidateActivityInput_METOnlyCheckedWhenEstimating(t *testing.T) {
	in := validActivityInput()
	in.MET = 0
	assert.Error(t, validateActivityInput(&in))

	// With a directly measured value the MET bounds no longer apply.
	measured := 320
	in.CaloriesBurned = &measured
	assert.NoError(t, validateActivityInput(&in))
}

func TestValidateActivityInput_NegativeManualCalories(t *testing.T) {
	in := validActivityInput()
	bad := -5
	in.CaloriesBurned = &bad
	assert.Error(t, validateActivityInput(&in))
}
