package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDay(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestBuildRangeStatistics_AveragesOverDaysWithData(t *testing.T) {
	from := localDay(2025, time.March, 1, 0)
	to := localDay(2025, time.March, 7, 0)

	// Three meals on two distinct days inside a seven day window. The
	// averages divide by 2, not 7.
	meals := []models.Meal{
		{
			AteAt:  localDay(2025, time.March, 2, 8),
			Totals: models.NutrientProfile{Calories: 500, Protein: 30, Carbs: 50, Fat: 15},
		},
		{
			AteAt:  localDay(2025, time.March, 2, 19),
			Totals: models.NutrientProfile{Calories: 300, Protein: 20, Carbs: 30, Fat: 10},
		},
		{
			AteAt:  localDay(2025, time.March, 5, 12),
			Totals: models.NutrientProfile{Calories: 400, Protein: 25, Carbs: 40, Fat: 12},
		},
	}

	stats := buildRangeStatistics(meals, from, to)

	assert.Equal(t, 2, stats.DaysWithData)
	assert.Equal(t, 3, stats.MealCount)

	require.Len(t, stats.Days, 2)
	assert.Equal(t, "2025-03-02", stats.Days[0].Date)
	assert.Equal(t, "2025-03-05", stats.Days[1].Date)
	assert.Equal(t, 800.0, stats.Days[0].Calories)
	assert.Equal(t, 2, stats.Days[0].MealCount)
	assert.Equal(t, 400.0, stats.Days[1].Calories)

	// (800 + 400) / 2
	assert.Equal(t, 600.0, stats.Averages.Calories)
	assert.Equal(t, 37.5, stats.Averages.Protein)
	assert.Equal(t, 60.0, stats.Averages.Carbs)
	assert.Equal(t, 18.5, stats.Averages.Fat)
}

func TestBuildRangeStatistics_FoodFrequencyAndCategories(t *testing.T) {
	from := localDay(2025, time.March, 1, 0)
	to := localDay(2025, time.March, 3, 0)

	meals := []models.Meal{
		{
			AteAt: localDay(2025, time.March, 1, 8),
			Items: []models.MealItem{
				{FoodName: "Oatmeal", Category: "grains", Amount: 150},
				{FoodName: "Apple", Category: "fruits", Amount: 120},
			},
		},
		{
			AteAt: localDay(2025, time.March, 2, 8),
			Items: []models.MealItem{
				{FoodName: "Oatmeal", Category: "grains", Amount: 50},
			},
		},
	}

	stats := buildRangeStatistics(meals, from, to)

	assert.Equal(t, 2, stats.FoodFrequency["Oatmeal"])
	assert.Equal(t, 1, stats.FoodFrequency["Apple"])

	// Breakdown keys accumulate consumed amount, not item count.
	assert.Equal(t, 200.0, stats.CategoryBreakdown["grains"])
	assert.Equal(t, 120.0, stats.CategoryBreakdown["fruits"])
}

func TestBuildRangeStatistics_Empty(t *testing.T) {
	from := localDay(2025, time.March, 1, 0)
	to := localDay(2025, time.March, 7, 0)

	stats := buildRangeStatistics(nil, from, to)

	assert.Equal(t, 0, stats.DaysWithData)
	assert.Equal(t, 0, stats.MealCount)
	assert.Empty(t, stats.Days)
	assert.Equal(t, DailyAverage{}, stats.Averages)
	assert.Equal(t, "2025-03-01", stats.From)
	assert.Equal(t, "2025-03-07", stats.To)
}

func TestBuildRangeStatistics_DayBoundary(t *testing.T) {
	from := localDay(2025, time.June, 1, 0)
	to := localDay(2025, time.June, 2, 0)

	meals := []models.Meal{
		{AteAt: time.Date(2025, time.June, 1, 23, 59, 0, 0, time.Local), Totals: models.NutrientProfile{Calories: 100}},
		{AteAt: time.Date(2025, time.June, 2, 0, 0, 1, 0, time.Local), Totals: models.NutrientProfile{Calories: 200}},
	}

	stats := buildRangeStatistics(meals, from, to)

	require.Len(t, stats.Days, 2)
	assert.Equal(t, "2025-06-01", stats.Days[0].Date)
	assert.Equal(t, "2025-06-02", stats.Days[1].Date)
	assert.Equal(t, 100.0, stats.Days[0].Calories)
	assert.Equal(t, 200.0, stats.Days[1].Calories)
}
