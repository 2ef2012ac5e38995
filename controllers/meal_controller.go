package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MealController struct {
	Meals   *services.MealService
	Summary *services.SummaryService
	RT      *services.RealtimeHub
}

func NewMealController(meals *services.MealService, summary *services.SummaryService, rt *services.RealtimeHub) *MealController {
	return &MealController{Meals: meals, Summary: summary, RT: rt}
}

type mealBody struct {
	Type  string                     `json:"type" binding:"required"`
	AteAt time.Time                  `json:"ate_at"`
	Notes string                     `json:"notes"`
	Items []services.MealItemRequest `json:"items"`
}

// pushDailySummary streams the refreshed day totals to the user's open
// websocket connections. Best effort.
func (mc *MealController) pushDailySummary(userID uint, date time.Time) {
	if mc.RT == nil || mc.Summary == nil {
		return
	}
	sum, err := mc.Summary.DailySummary(userID, date)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("daily summary push failed")
		return
	}
	mc.RT.BroadcastSummary(userID, gin.H{"type": "daily_summary", "data": sum})
}

// POST /meals
func (mc *MealController) LogMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.AddMeal(userID, body.Type, body.AteAt, body.Notes, body.Items)
	if err != nil {
		mealError(c, err)
		return
	}

	mc.pushDailySummary(userID, meal.AteAt)
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?from=YYYY-MM-DD&to=YYYY-MM-DD
func (mc *MealController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err1 := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		to, err2 := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		meals, err := mc.Meals.ListMealsByDateRange(userID, from, to.AddDate(0, 0, 1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mc.Meals.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/:id
func (mc *MealController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := idParam(c)
	if !ok {
		return
	}

	meal, err := mc.Meals.GetMeal(userID, mealID)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// PUT /meals/:id
func (mc *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := idParam(c)
	if !ok {
		return
	}

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.UpdateMeal(userID, mealID, body.Type, body.AteAt, body.Notes, body.Items)
	if err != nil {
		mealError(c, err)
		return
	}

	mc.pushDailySummary(userID, meal.AteAt)
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := idParam(c)
	if !ok {
		return
	}

	if err := mc.Meals.DeleteMeal(userID, mealID); err != nil {
		mealError(c, err)
		return
	}

	mc.pushDailySummary(userID, time.Now())
	c.Status(http.StatusNoContent)
}

// mealError maps service failures onto status codes: missing records to 404,
// broken food data to 422, anything else from user input to 400.
func mealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, utils.ErrInvalidFoodData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
