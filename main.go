package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hirescreen/config"
	"hirescreen/controllers"
	"hirescreen/database"
	"hirescreen/middleware"
	"hirescreen/models"
	"hirescreen/parsers"
	"hirescreen/services"
	"hirescreen/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	userModel := models.NewUserModel(db)
	jobModel := models.NewJobModel(db)
	candidateModel := models.NewCandidateModel(db)
	reportModel := models.NewReportModel(db)

	jwtService := services.NewJWTService(cfg.JWTSecret)

	s3Service, err := services.NewS3Service(cfg.Storage)
	if err != nil {
		// CVs are screened and scored either way, just not retrievable.
		utils.LogWarn("S3 storage disabled", map[string]interface{}{"error": err.Error()})
		s3Service = nil
	}

	taxonomy := parsers.DefaultTaxonomy()
	var screeningService *services.ScreeningService
	if s3Service != nil {
		screeningService = services.NewScreeningService(taxonomy, candidateModel, reportModel, s3Service, cfg.WorkerCount)
	} else {
		screeningService = services.NewScreeningService(taxonomy, candidateModel, reportModel, nil, cfg.WorkerCount)
	}

	authController := controllers.NewAuthController(userModel, jwtService)
	userController := controllers.NewUserController(userModel)
	jobController := controllers.NewJobController(jobModel)
	screeningController := controllers.NewScreeningController(screeningService, jobModel, candidateModel, reportModel, s3Service)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.SanitizeInput())

	limiters := middleware.CreateRateLimiters()
	caches := middleware.CreateCaches()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())

	auth := api.Group("/auth")
	auth.Use(limiters["auth"].Limit())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Candidates look themselves up with resume code plus phone number.
	// No account needed.
	api.POST("/lookup", screeningController.Lookup)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtService))
	{
		protected.GET("/me", userController.GetProfile)

		jobs := protected.Group("/jobs")
		{
			jobs.POST("", jobController.CreateJob)
			jobs.GET("", jobController.ListJobs)
			jobs.GET("/:id", jobController.GetJob)
			jobs.DELETE("/:id", jobController.DeleteJob)

			jobs.POST("/:id/screen",
				limiters["screening"].Limit(),
				middleware.MaxRequestSize(cfg.MaxUploadBytes),
				middleware.ValidateUploads("documents"),
				screeningController.ScreenBatch)

			jobs.GET("/:id/reports", caches["reports"].Cache(), screeningController.ListReports)
			jobs.GET("/:id/reports/:code", screeningController.GetReport)
			jobs.GET("/:id/stats", caches["reports"].Cache(), screeningController.JobStats)
			jobs.DELETE("/:id/candidates/:code", screeningController.DeleteCandidate)
		}

		protected.POST("/screen/text",
			limiters["screening"].Limit(),
			screeningController.ScreenText)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleSuperadmin))
		{
			admin.GET("/users", userController.ListUsers)
			admin.PUT("/users/:id/active", userController.SetUserActive)
		}
	}

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "environment": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
