// controllers/activity_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityController struct {
	Summary *services.SummaryService
	RT      *services.RealtimeHub
}

func NewActivityController(summary *services.SummaryService, rt *services.RealtimeHub) *ActivityController {
	return &ActivityController{Summary: summary, RT: rt}
}

func (ac *ActivityController) pushDailySummary(userID uint, date time.Time) {
	if ac.RT == nil || ac.Summary == nil {
		return
	}
	if sum, err := ac.Summary.DailySummary(userID, date); err == nil {
		ac.RT.BroadcastSummary(userID, gin.H{"type": "daily_summary", "data": sum})
	}
}

// POST /activities
func (ac *ActivityController) LogActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	act, err := services.AddActivity(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ac.pushDailySummary(userID, act.PerformedAt)
	c.JSON(http.StatusCreated, act)
}

// GET /activities?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ac *ActivityController) ListActivities(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var from, to *time.Time
	if fromStr, toStr := c.Query("from"), c.Query("to"); fromStr != "" && toStr != "" {
		f, err1 := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		t, err2 := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		t = t.AddDate(0, 0, 1)
		from, to = &f, &t
	}

	acts, err := services.ListActivities(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, acts)
}

// GET /activities/:id
func (ac *ActivityController) GetActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	activityID, ok := idParam(c)
	if !ok {
		return
	}

	act, err := services.GetActivity(userID, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// PUT /activities/:id
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	activityID, ok := idParam(c)
	if !ok {
		return
	}

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	act, err := services.UpdateActivity(userID, activityID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ac.pushDailySummary(userID, act.PerformedAt)
	c.JSON(http.StatusOK, act)
}

// DELETE /activities/:id
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	activityID, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteActivity(userID, activityID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ac.pushDailySummary(userID, time.Now())
	c.Status(http.StatusNoContent)
}
