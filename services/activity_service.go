package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ActivityInput struct {
	Name           string    `json:"name" binding:"required"`
	Type           string    `json:"type" binding:"required"`
	Intensity      string    `json:"intensity"`
	DurationMin    int       `json:"duration_min"`
	MET            float64   `json:"met"`
	CaloriesBurned *int      `json:"calories_burned"`
	PerformedAt    time.Time `json:"performed_at"`
	Notes          string    `json:"notes"`
}

func validateActivityInput(in *ActivityInput) error {
	if !models.ValidActivityTypes[in.Type] {
		return fmt.Errorf("invalid activity type %q", in.Type)
	}
	if in.Intensity != "" && !models.ValidIntensities[in.Intensity] {
		return fmt.Errorf("invalid intensity %q", in.Intensity)
	}
	if in.DurationMin < models.MinDurationMin || in.DurationMin > models.MaxDurationMin {
		return fmt.Errorf("duration must be between %d and %d minutes",
			models.MinDurationMin, models.MaxDurationMin)
	}
	// MET only matters on the estimation path.
	if in.CaloriesBurned == nil && (in.MET < models.MinMET || in.MET > models.MaxMET) {
		return fmt.Errorf("met must be between %v and %v", models.MinMET, models.MaxMET)
	}
	if in.CaloriesBurned != nil && *in.CaloriesBurned < 0 {
		return errors.New("calories_burned must be non-negative")
	}
	return nil
}

func userWeight(userID uint) (float64, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return 0, err
	}
	if user.WeightKg == nil || *user.WeightKg <= 0 {
		return 0, errors.New("body weight required for calorie estimation; set it on your profile or supply calories_burned")
	}
	return *user.WeightKg, nil
}

func AddActivity(userID uint, in ActivityInput) (*models.Activity, error) {
	if err := validateActivityInput(&in); err != nil {
		return nil, err
	}
	if in.PerformedAt.IsZero() {
		in.PerformedAt = time.Now()
	}

	act := models.Activity{
		UserID:      userID,
		Name:        in.Name,
		Type:        in.Type,
		Intensity:   in.Intensity,
		DurationMin: in.DurationMin,
		MET:         in.MET,
		PerformedAt: in.PerformedAt,
		Notes:       in.Notes,
	}

	if in.CaloriesBurned != nil {
		// Direct measurement always wins over MET-based estimation.
		act.CaloriesBurned = *in.CaloriesBurned
		act.ManualCalories = true
	} else {
		weight, err := userWeight(userID)
		if err != nil {
			return nil, err
		}
		act.CaloriesBurned = utils.CaloriesBurned(in.MET, weight, in.DurationMin)
	}

	if err := config.DB.Create(&act).Error; err != nil {
		return nil, err
	}
	return &act, nil
}

// UpdateActivity applies the input and recomputes calories from the new MET
// and duration against the user's current weight, never from a stale cached
// value. A direct calories_burned in the input switches the activity to
// manual and skips estimation.
func UpdateActivity(userID, activityID uint, in ActivityInput) (*models.Activity, error) {
	if err := validateActivityInput(&in); err != nil {
		return nil, err
	}

	var act models.Activity
	if err := config.DB.
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&act).Error; err != nil {
		return nil, err
	}

	act.Name = in.Name
	act.Type = in.Type
	act.Intensity = in.Intensity
	act.DurationMin = in.DurationMin
	act.MET = in.MET
	if !in.PerformedAt.IsZero() {
		act.PerformedAt = in.PerformedAt
	}
	act.Notes = in.Notes

	if in.CaloriesBurned != nil {
		act.CaloriesBurned = *in.CaloriesBurned
		act.ManualCalories = true
	} else {
		weight, err := userWeight(userID)
		if err != nil {
			return nil, err
		}
		act.CaloriesBurned = utils.CaloriesBurned(act.MET, weight, act.DurationMin)
		act.ManualCalories = false
	}

	if err := config.DB.Save(&act).Error; err != nil {
		return nil, err
	}
	return &act, nil
}

func GetActivity(userID, activityID uint) (*models.Activity, error) {
	var act models.Activity
	err := config.DB.
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&act).Error
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func ListActivities(userID uint, from, to *time.Time) ([]models.Activity, error) {
	q := config.DB.Where("user_id = ?", userID).Order("performed_at DESC")
	if from != nil && to != nil {
		q = q.Where("performed_at >= ? AND performed_at < ?", *from, *to)
	}
	var acts []models.Activity
	err := q.Find(&acts).Error
	return acts, err
}

func DeleteActivity(userID, activityID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", activityID, userID).
		Delete(&models.Activity{}).Error
}
