package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	rt := services.NewRealtimeHub()
	mealSvc := services.NewMealService(config.DB)
	summarySvc := services.NewSummaryService(config.DB)

	mealCtl := controllers.NewMealController(mealSvc, summarySvc, rt)
	activityCtl := controllers.NewActivityController(summarySvc, rt)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	realtimeCtl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetNutritionGoals)
		user.DELETE("", controllers.DeleteAccount)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.POST("", controllers.CreateFood)
		foods.GET("", controllers.ListFoods)
		foods.GET("/:id", controllers.GetFood)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.PUT("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	activities := r.Group("/activities")
	activities.Use(middlewares.AuthMiddleware())
	{
		activities.POST("", activityCtl.LogActivity)
		activities.GET("", activityCtl.ListActivities)
		activities.GET("/:id", activityCtl.GetActivity)
		activities.PUT("/:id", activityCtl.UpdateActivity)
		activities.DELETE("/:id", activityCtl.DeleteActivity)
	}

	summary := r.Group("/summary")
	summary.Use(middlewares.AuthMiddleware())
	{
		summary.GET("/daily", summaryCtl.GetDailySummary)
		summary.GET("/range", summaryCtl.GetRangeStatistics)
	}

	realtime := r.Group("/realtime")
	realtime.Use(middlewares.AuthMiddleware())
	{
		realtime.GET("/ws", realtimeCtl.SummaryWS)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/users", controllers.ListUsers)
		admin.PUT("/users/:id/disabled", controllers.SetUserDisabled)
	}

	return r
}
