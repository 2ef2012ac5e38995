package models

import "gorm.io/gorm"

// NutrientProfile holds nutrient quantities for a reference amount of food:
// per 100 g/ml, or per one declared serving, depending on the owning food's
// serving definition. Copies are embedded into meal items at logging time, so
// later food edits never change historical records.
type NutrientProfile struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Fiber    float64 `json:"fiber"`    // g
	Sugar    float64 `json:"sugar"`    // g
	Sodium   float64 `json:"sodium"`   // mg
}

// ServingSize declares the reference quantity the nutrient profile describes.
type ServingSize struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

const (
	UnitGram  = "g"
	UnitMl    = "ml"
	UnitPiece = "piece"
	UnitCup   = "cup"
	UnitTbsp  = "tbsp"
	UnitTsp   = "tsp"
)

// DiscreteUnits are serving units counted in wholes rather than mass/volume.
var DiscreteUnits = map[string]bool{
	UnitPiece: true,
	UnitCup:   true,
	UnitTbsp:  true,
	UnitTsp:   true,
}

var ValidUnits = map[string]bool{
	UnitGram:  true,
	UnitMl:    true,
	UnitPiece: true,
	UnitCup:   true,
	UnitTbsp:  true,
	UnitTsp:   true,
}

var ValidCategories = map[string]bool{
	"fruits":     true,
	"vegetables": true,
	"grains":     true,
	"protein":    true,
	"dairy":      true,
	"snacks":     true,
	"beverages":  true,
	"other":      true,
}

type Food struct {
	gorm.Model
	Name     string `gorm:"not null;index" json:"name"`
	Category string `gorm:"not null" json:"category"`

	NutrientProfile `json:"nutrition"`
	Serving         ServingSize `gorm:"embedded;embeddedPrefix:serving_" json:"serving"`

	Public    bool `json:"public"`
	CreatedBy uint `gorm:"index" json:"created_by"`
}
