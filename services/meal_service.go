package services

import (
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	if db == nil {
		db = config.DB
	}
	return &MealService{db: db}
}

type MealItemRequest struct {
	FoodID uint    `json:"food_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// buildItems resolves each requested food and computes its nutrition
// snapshot. The snapshot is taken from the food's profile at this moment;
// later food edits never touch it.
func (s *MealService) buildItems(userID uint, reqs []MealItemRequest) ([]models.MealItem, error) {
	items := make([]models.MealItem, 0, len(reqs))
	for _, r := range reqs {
		var food models.Food
		err := s.db.
			Where("id = ? AND (public = ? OR created_by = ?)", r.FoodID, true, userID).
			First(&food).Error
		if err != nil {
			return nil, fmt.Errorf("food %d: %w", r.FoodID, err)
		}

		snapshot, err := utils.ComputeNutrition(&food.NutrientProfile, &food.Serving, r.Amount)
		if err != nil {
			return nil, err
		}

		items = append(items, models.MealItem{
			FoodID:          food.ID,
			FoodName:        food.Name,
			Category:        food.Category,
			Amount:          r.Amount,
			Unit:            food.Serving.Unit,
			NutrientProfile: snapshot,
		})
	}
	return items, nil
}

func (s *MealService) AddMeal(
	userID uint,
	mealType string,
	ateAt time.Time,
	notes string,
	reqs []MealItemRequest,
) (*models.Meal, error) {
	if !models.ValidMealTypes[mealType] {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	items, err := s.buildItems(userID, reqs)
	if err != nil {
		return nil, err
	}

	// Totals are derived before the write; a persisted meal never disagrees
	// with its items.
	meal := &models.Meal{
		UserID: userID,
		Type:   mealType,
		AteAt:  ateAt,
		Notes:  notes,
		Items:  items,
		Totals: utils.SumSnapshots(items),
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) UpdateMeal(
	userID, mealID uint,
	mealType string,
	ateAt time.Time,
	notes string,
	reqs []MealItemRequest,
) (*models.Meal, error) {
	if !models.ValidMealTypes[mealType] {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}

	items, err := s.buildItems(userID, reqs)
	if err != nil {
		return nil, err
	}

	var meal models.Meal
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			return err
		}

		// Items are replaced wholesale; the totals follow in the same write.
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].MealID = meal.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		meal.Type = mealType
		if !ateAt.IsZero() {
			meal.AteAt = ateAt
		}
		meal.Notes = notes
		meal.Items = nil
		meal.Totals = utils.SumSnapshots(items)
		return tx.Save(&meal).Error
	})
	if err != nil {
		return nil, err
	}

	var updated models.Meal
	if err := s.db.Preload("Items").First(&updated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
