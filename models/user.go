package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	GoalLoseWeight = "lose_weight"
	GoalMaintain   = "maintain"
	GoalGainWeight = "gain_weight"
)

var ValidGenders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

var ValidGoals = map[string]bool{
	GoalLoseWeight: true,
	GoalMaintain:   true,
	GoalGainWeight: true,
}

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Role      string `gorm:"default:user"`
	Disabled  bool

	// Biometrics used as calculator input; nil means not provided yet.
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel string // sedentary|light|moderate|active|very_active
	Goal          string // lose_weight|maintain|gain_weight

	ProfilePicture string

	ResetToken    string
	ResetTokenExp time.Time
}
