package routes

import (
	"net/http"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middlewares, services and controllers around the
// injected store.
func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// services
	hub := services.NewRealtimeHub()
	trackerSvc := services.NewTrackerService(store, cfg.Location)
	summarySvc := services.NewSummaryService(store, cfg.Location)
	goalSvc := services.NewGoalService(store, summarySvc, cfg.GoalDefaults)
	authSvc := services.NewAuthService(store, cfg.JWTSecret)
	foodSvc := services.NewFoodService(store)
	userSvc := services.NewUserService(store)

	// controllers
	authCtl := controllers.NewAuthController(authSvc)
	mealCtl := controllers.NewMealController(trackerSvc, goalSvc, hub)
	exerciseCtl := controllers.NewExerciseController(trackerSvc, goalSvc, hub)
	sleepCtl := controllers.NewSleepController(trackerSvc, goalSvc, hub)
	weightCtl := controllers.NewWeightController(trackerSvc)
	waterCtl := controllers.NewWaterController(trackerSvc, goalSvc, hub)
	dashCtl := controllers.NewDashboardController(goalSvc, trackerSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	userCtl := controllers.NewUserController(userSvc)
	realtimeCtl := controllers.NewRealtimeController(hub, goalSvc)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.POST("/exercises", exerciseCtl.LogExercise)
		api.GET("/exercises", exerciseCtl.ListExercises)
		api.DELETE("/exercises/:id", exerciseCtl.DeleteExercise)

		api.POST("/sleep", sleepCtl.LogSleep)
		api.GET("/sleep", sleepCtl.ListSleep)

		api.POST("/weight", weightCtl.LogWeight)
		api.GET("/weight", weightCtl.ListWeights)

		api.POST("/water", waterCtl.LogWater)
		api.GET("/water", waterCtl.ListWater)

		api.GET("/dashboard", dashCtl.GetDashboard)
		api.PUT("/goals", dashCtl.UpdateGoals)
		api.GET("/recent", dashCtl.GetRecent)

		api.GET("/foods/search", foodCtl.SearchFoods)

		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		ws.GET("/dashboard", realtimeCtl.DashboardWS)
	}

	return r
}
