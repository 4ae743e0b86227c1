package routes

import (
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/controllers"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/middlewares"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto the Gin engine.
func SetupRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	hub := services.NewRealtimeHub()

	userSvc := services.NewUserService(db, logger)
	waterSvc := services.NewWaterService(db, hub)
	stepSvc := services.NewStepService(db, hub)
	healthSvc := services.NewHealthService(db)
	summarySvc := services.NewSummaryService(waterSvc, stepSvc, healthSvc)
	tipSvc := services.NewTipService(db, logger, cfg.ShareBaseURL)
	wellnessSvc := services.NewWellnessService(cfg.WellnessBaseURL, logger)
	commandSvc := services.NewCommandService(userSvc, waterSvc, stepSvc, healthSvc, summarySvc, tipSvc, cfg.WaterGoalML, cfg.StepGoal)

	auth := controllers.NewAuthController(userSvc, cfg.JWTSecret)
	user := controllers.NewUserController(userSvc)
	bmi := controllers.NewBMIController()
	tracker := controllers.NewTrackerController(userSvc, waterSvc, stepSvc, cfg)
	health := controllers.NewHealthController(userSvc, healthSvc, summarySvc, cfg)
	tips := controllers.NewTipController(tipSvc)
	command := controllers.NewCommandController(commandSvc, cfg)
	wellness := controllers.NewWellnessController(wellnessSvc)
	realtime := controllers.NewRealtimeController(userSvc, hub, cfg.JWTSecret)

	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/login", auth.Login)
		api.POST("/bmi/calculate", bmi.Calculate)
		api.GET("/tips/generate", tips.Generate)
		api.POST("/tips/:slug/share", tips.Share)
		api.GET("/validate", command.Validate)
		api.GET("/wellness/tips", wellness.Tips)
		api.GET("/wellness/diet", wellness.DietPlan)

		api.POST("/command", middlewares.OptionalAuth(cfg.JWTSecret), command.Dispatch)

		protected := api.Group("")
		protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
		{
			protected.GET("/user/profile", user.GetProfile)
			protected.POST("/user/profile", user.UpdateProfile)
			protected.POST("/water/log", tracker.LogWater)
			protected.GET("/water/today", tracker.WaterToday)
			protected.POST("/steps/log", tracker.LogSteps)
			protected.GET("/steps/today", tracker.StepsToday)
			protected.POST("/health/log", health.LogRecord)
			protected.GET("/health/summary", health.Summary)
		}
	}

	r.GET("/ws/progress", realtime.Progress)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
