package models

import (
	"time"

	"gorm.io/gorm"
)

var ValidActivityTypes = map[string]bool{
	"cardio":   true,
	"strength": true,
	"sports":   true,
	"daily":    true,
	"other":    true,
}

var ValidIntensities = map[string]bool{
	"low":      true,
	"moderate": true,
	"high":     true,
}

const (
	MinMET         = 1.0
	MaxMET         = 25.0
	MinDurationMin = 1
	MaxDurationMin = 1440
)

type Activity struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	Name        string  `gorm:"not null" json:"name"`
	Type        string  `json:"type"`
	DurationMin int     `json:"duration_min"`
	Intensity   string  `json:"intensity"`
	MET         float64 `json:"met"`

	CaloriesBurned int `json:"calories_burned"`
	// ManualCalories marks values supplied directly by the client (e.g. a
	// wearable); these always win and are never overwritten by MET-based
	// recomputation.
	ManualCalories bool `json:"manual_calories"`

	PerformedAt time.Time `gorm:"index" json:"performed_at"`
	Notes       string    `json:"notes"`
}
