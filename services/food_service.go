package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
)

type FoodInput struct {
	Name      string                 `json:"name" binding:"required"`
	Category  string                 `json:"category" binding:"required"`
	Nutrition models.NutrientProfile `json:"nutrition"`
	Serving   models.ServingSize     `json:"serving"`
	Public    bool                   `json:"public"`
}

func validateFoodInput(in *FoodInput) error {
	if !models.ValidCategories[in.Category] {
		return fmt.Errorf("invalid category %q", in.Category)
	}
	if in.Serving.Unit == "" {
		// An omitted serving spec means per-100g.
		in.Serving = models.ServingSize{Amount: 100, Unit: models.UnitGram}
	}
	if !models.ValidUnits[in.Serving.Unit] {
		return fmt.Errorf("invalid serving unit %q", in.Serving.Unit)
	}
	if in.Serving.Amount <= 0 {
		return errors.New("serving amount must be positive")
	}
	for _, v := range []float64{
		in.Nutrition.Calories, in.Nutrition.Protein, in.Nutrition.Carbs,
		in.Nutrition.Fat, in.Nutrition.Fiber, in.Nutrition.Sugar, in.Nutrition.Sodium,
	} {
		if v < 0 {
			return errors.New("nutrient values must be non-negative")
		}
	}
	return nil
}

func CreateFood(userID uint, in FoodInput) (*models.Food, error) {
	if err := validateFoodInput(&in); err != nil {
		return nil, err
	}

	food := models.Food{
		Name:            in.Name,
		Category:        in.Category,
		NutrientProfile: in.Nutrition,
		Serving:         in.Serving,
		Public:          in.Public,
		CreatedBy:       userID,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns foods visible to the user: public plus their own.
// An optional query filters by name, case-insensitive.
func ListFoods(userID uint, query string) ([]models.Food, error) {
	q := config.DB.Where("public = ? OR created_by = ?", true, userID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	var foods []models.Food
	err := q.Order("name ASC").Find(&foods).Error
	return foods, err
}

func GetFood(userID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := config.DB.
		Where("id = ? AND (public = ? OR created_by = ?)", foodID, true, userID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// UpdateFood edits a food in place. Only the owner or an admin may edit.
// Historical meal snapshots keep the values recorded when the meal was logged.
func UpdateFood(userID uint, isAdmin bool, foodID uint, in FoodInput) (*models.Food, error) {
	if err := validateFoodInput(&in); err != nil {
		return nil, err
	}

	var food models.Food
	if err := config.DB.First(&food, foodID).Error; err != nil {
		return nil, err
	}
	if food.CreatedBy != userID && !isAdmin {
		return nil, errors.New("not allowed to edit this food")
	}

	food.Name = in.Name
	food.Category = in.Category
	food.NutrientProfile = in.Nutrition
	food.Serving = in.Serving
	food.Public = in.Public

	if err := config.DB.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func DeleteFood(userID uint, isAdmin bool, foodID uint) error {
	var food models.Food
	if err := config.DB.First(&food, foodID).Error; err != nil {
		return err
	}
	if food.CreatedBy != userID && !isAdmin {
		return errors.New("not allowed to delete this food")
	}
	return config.DB.Delete(&food).Error
}
