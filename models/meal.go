package models

import (
	"time"

	"gorm.io/gorm"
)

var ValidMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// One Meal (breakfast/lunch/dinner/snack).
type Meal struct {
	gorm.Model
	UserID uint       `gorm:"index;not null" json:"user_id"`
	Type   string     `gorm:"not null" json:"type"`
	AteAt  time.Time  `gorm:"index;not null" json:"ate_at"`
	Notes  string     `json:"notes"`
	Items  []MealItem `json:"items"`

	// Totals is the rounded elementwise sum of the items' snapshots.
	// Recomputed synchronously before every items-changing write; a persisted
	// meal never disagrees with its items.
	Totals NutrientProfile `gorm:"embedded;embeddedPrefix:total_" json:"totals"`
}

// MealItem stores the consumed amount plus a nutrition snapshot computed
// once from the food's profile at logging time; it is never recomputed.
type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index" json:"meal_id"`

	FoodID   uint    `gorm:"not null" json:"food_id"`
	FoodName string  `json:"food_name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"` // in the food's serving unit
	Unit     string  `json:"unit"`

	NutrientProfile `json:"nutrition"`
}
