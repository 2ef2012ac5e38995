package services

import (
	"math"
	"sort"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	if db == nil {
		db = config.DB
	}
	return &SummaryService{db: db}
}

// ---------- Daily summary ----------

type DailySummary struct {
	Date           string                 `json:"date"`
	Totals         models.NutrientProfile `json:"totals"`
	MealCount      int                    `json:"meal_count"`
	CaloriesBurned int                    `json:"calories_burned"`
	NetCalories    float64                `json:"net_calories"`
}

// DailySummary sums the day's persisted meal totals (not raw items) and the
// day's activity burn. The calendar day runs local midnight to local
// midnight.
func (s *SummaryService) DailySummary(userID uint, date time.Time) (*DailySummary, error) {
	start := dayStart(date)
	end := start.AddDate(0, 0, 1)

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var acts []models.Activity
	if err := s.db.
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, start, end).
		Find(&acts).Error; err != nil {
		return nil, err
	}

	burned := 0
	for _, a := range acts {
		burned += a.CaloriesBurned
	}

	totals := utils.SumTotals(meals)
	return &DailySummary{
		Date:           start.Format("2006-01-02"),
		Totals:         totals,
		MealCount:      len(meals),
		CaloriesBurned: burned,
		NetCalories:    totals.Calories - float64(burned),
	}, nil
}

// ---------- Range statistics ----------

type DayBucket struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	MealCount int     `json:"meal_count"`
}

type DailyAverage struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type RangeStatistics struct {
	From string `json:"from"`
	To   string `json:"to"`

	Days []DayBucket `json:"days"`

	// DaysWithData is the averages' denominator: days with at least one
	// logged meal. Zero-meal days inside the window do not dilute the
	// average.
	DaysWithData int          `json:"days_with_data"`
	MealCount    int          `json:"meal_count"`
	Averages     DailyAverage `json:"averages"`

	FoodFrequency     map[string]int     `json:"food_frequency"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

func (s *SummaryService) RangeStatistics(userID uint, from, to time.Time) (*RangeStatistics, error) {
	start := dayStart(from)
	end := dayStart(to).AddDate(0, 0, 1)

	var meals []models.Meal
	if err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	return buildRangeStatistics(meals, start, dayStart(to)), nil
}

// buildRangeStatistics is pure over the loaded meals so the bucketing and
// averaging rules can be exercised without a database.
func buildRangeStatistics(meals []models.Meal, from, to time.Time) *RangeStatistics {
	buckets := map[string]*DayBucket{}
	foodFreq := map[string]int{}
	categories := map[string]float64{}

	for _, m := range meals {
		key := dayStart(m.AteAt).Format("2006-01-02")
		b := buckets[key]
		if b == nil {
			b = &DayBucket{Date: key}
			buckets[key] = b
		}
		b.Calories += m.Totals.Calories
		b.Protein += m.Totals.Protein
		b.Carbs += m.Totals.Carbs
		b.Fat += m.Totals.Fat
		b.MealCount++

		for _, it := range m.Items {
			// Frequency counts occurrences; the category breakdown
			// accumulates consumed amount, not item count.
			foodFreq[it.FoodName]++
			categories[it.Category] += it.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// "YYYY-MM-DD" keys sort lexicographically in date order.
	sort.Strings(keys)

	out := &RangeStatistics{
		From:              from.Format("2006-01-02"),
		To:                to.Format("2006-01-02"),
		Days:              make([]DayBucket, 0, len(keys)),
		DaysWithData:      len(keys),
		MealCount:         len(meals),
		FoodFrequency:     foodFreq,
		CategoryBreakdown: categories,
	}

	var sumCal, sumProt, sumCarb, sumFat float64
	for _, k := range keys {
		b := buckets[k]
		b.Calories = round2(b.Calories)
		b.Protein = round2(b.Protein)
		b.Carbs = round2(b.Carbs)
		b.Fat = round2(b.Fat)
		out.Days = append(out.Days, *b)
		sumCal += b.Calories
		sumProt += b.Protein
		sumCarb += b.Carbs
		sumFat += b.Fat
	}

	out.Averages = DailyAverage{
		Calories: avg(sumCal, out.DaysWithData),
		Protein:  avg(sumProt, out.DaysWithData),
		Carbs:    avg(sumCarb, out.DaysWithData),
		Fat:      avg(sumFat, out.DaysWithData),
	}
	return out
}

// ---------- internals ----------

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
