package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Age            *int     `json:"age"`
	Gender         *string  `json:"gender"`
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	ActivityLevel  *string  `json:"activity_level"`
	Goal           *string  `json:"goal"`
	ProfilePicture string   `json:"profile_picture"` // base64 data URL
}

// GoalSuggestion is the BMR/TDEE-derived set of daily targets.
type GoalSuggestion struct {
	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// ProfileResponse is the typed profile payload. Optional values are pointers;
// absence means the user has not provided them yet.
type ProfileResponse struct {
	ID             uint            `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Age            *int            `json:"age"`
	Gender         *string         `json:"gender"`
	HeightCm       *float64        `json:"height_cm"`
	WeightKg       *float64        `json:"weight_kg"`
	ActivityLevel  string          `json:"activity_level,omitempty"`
	Goal           string          `json:"goal,omitempty"`
	ProfilePicture string          `json:"profile_picture,omitempty"`
	BMI            *float64        `json:"bmi,omitempty"`
	BMICategory    string          `json:"bmi_category,omitempty"`
	SuggestedGoals *GoalSuggestion `json:"suggested_goals,omitempty"`
}

// SuggestGoals computes the user's daily targets from their biometrics.
// ok=false means the profile is incomplete, not that the targets are zero.
func SuggestGoals(u *models.User) (*GoalSuggestion, bool) {
	bmr, ok := utils.BMR(u.Age, u.Gender, u.HeightCm, u.WeightKg)
	if !ok {
		return nil, false
	}
	tdee := utils.TDEE(bmr, u.ActivityLevel)
	target := utils.TargetCalories(tdee, u.Goal)
	protein, carbs, fat := utils.MacroTargets(target)
	return &GoalSuggestion{
		BMR:      bmr,
		TDEE:     tdee,
		Calories: target,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}, true
}

// bmiFor computes BMI from the optional biometrics. ok=false when either
// value is missing or outside a plausible human range.
func bmiFor(heightCm, weightKg *float64) (float64, bool) {
	if heightCm == nil || weightKg == nil {
		return 0, false
	}
	h, w := *heightCm, *weightKg
	if h < 50 || h > 250 || w < 10 || w > 400 {
		return 0, false
	}
	m := h / 100
	return w / (m * m), true
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func buildProfileResponse(user *models.User) *ProfileResponse {
	resp := &ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Age:            user.Age,
		Gender:         user.Gender,
		HeightCm:       user.HeightCm,
		WeightKg:       user.WeightKg,
		ActivityLevel:  user.ActivityLevel,
		Goal:           user.Goal,
		ProfilePicture: user.ProfilePicture,
	}

	if bmi, ok := bmiFor(user.HeightCm, user.WeightKg); ok {
		resp.BMI = &bmi
		resp.BMICategory = bmiCategory(bmi)
	}

	if g, ok := SuggestGoals(user); ok {
		resp.SuggestedGoals = g
	}

	return resp
}

func GetUserProfile(userID uint) (*ProfileResponse, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}
	return buildProfileResponse(&user), nil
}

func UpdateUserProfile(userID uint, input ProfileInput) (*ProfileResponse, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Age != nil {
		if *input.Age < 1 || *input.Age > 130 {
			return nil, errors.New("age out of range")
		}
		user.Age = input.Age
	}
	if input.Gender != nil {
		if !models.ValidGenders[*input.Gender] {
			return nil, fmt.Errorf("invalid gender %q", *input.Gender)
		}
		user.Gender = input.Gender
	}
	if input.HeightCm != nil {
		if *input.HeightCm <= 0 {
			return nil, errors.New("height must be positive")
		}
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg != nil {
		if *input.WeightKg <= 0 {
			return nil, errors.New("weight must be positive")
		}
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != nil {
		if _, ok := utils.ActivityMultipliers[*input.ActivityLevel]; !ok {
			return nil, fmt.Errorf("invalid activity level %q", *input.ActivityLevel)
		}
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.Goal != nil {
		if !models.ValidGoals[*input.Goal] {
			return nil, fmt.Errorf("invalid goal %q", *input.Goal)
		}
		user.Goal = *input.Goal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	// Refresh stored goal targets whenever the biometrics are complete.
	if g, ok := SuggestGoals(&user); ok {
		if err := upsertNutritionGoal(user.ID, g); err != nil {
			return nil, err
		}
	}

	return buildProfileResponse(&user), nil
}

func upsertNutritionGoal(userID uint, g *GoalSuggestion) error {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutritionGoal{
			UserID:   userID,
			BMR:      g.BMR,
			TDEE:     g.TDEE,
			Calories: g.Calories,
			Protein:  g.ProteinG,
			Carbs:    g.CarbsG,
			Fat:      g.FatG,
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.BMR = g.BMR
	goal.TDEE = g.TDEE
	goal.Calories = g.Calories
	goal.Protein = g.ProteinG
	goal.Carbs = g.CarbsG
	goal.Fat = g.FatG
	return config.DB.Save(&goal).Error
}

// GetNutritionGoal returns the stored targets, or nil when the profile has
// never been complete enough to compute them.
func GetNutritionGoal(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteUser disables the account; records are kept.
func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
