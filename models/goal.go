package models

import "gorm.io/gorm"

// NutritionGoal stores the most recent BMR/TDEE-derived daily targets for a
// user. Refreshed whenever the profile biometrics change.
type NutritionGoal struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`

	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	Calories int `json:"calories"`
	Protein  int `json:"protein"` // g
	Carbs    int `json:"carbs"`   // g
	Fat      int `json:"fat"`     // g
}
