package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobtrackr/internal/config"
	"jobtrackr/internal/handlers"
	"jobtrackr/internal/middleware"
	"jobtrackr/internal/repositories"
	"jobtrackr/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxUploadSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor()
	analyzer := services.NewContentAnalyzer()
	prompts := services.NewPromptBuilder()
	assembler := services.NewResponseAssembler(analyzer)
	fallback := services.NewFallbackGenerator(analyzer)
	analyticsService := services.NewAnalyticsService()
	jobSearchService := services.NewJobSearchService(cfg.JSearch)
	log.Println("✅ Services initialized successfully")

	// Initialize generation gateway
	generator, err := services.NewGenerationGateway(cfg.Gemini, fallback)
	if err != nil {
		log.Fatalf("❌ Failed to initialize generation gateway: %v", err)
	}
	log.Println("✅ Generation gateway initialized successfully")

	// Initialize auth
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, authMiddleware)
	userHandler := handlers.NewUserHandler(userRepo, storageService)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, userRepo, analyticsService)
	jobHandler := handlers.NewJobHandler(jobRepo, userRepo, jobSearchService)
	analyticsHandler := handlers.NewAnalyticsHandler(applicationRepo, userRepo, analyticsService)
	aiHandler := handlers.NewAIHandler(extractor, analyzer, prompts, generator, assembler, storageService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JobTrackr API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxUploadSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authMiddleware.RequireAuth(), authHandler.Me)

	// Users
	users := api.Group("/users", authMiddleware.RequireAuth())
	users.Get("/profile", userHandler.GetProfile)
	users.Put("/profile", userHandler.UpdatePersonalInfo)
	users.Put("/skills", userHandler.SetSkills)
	users.Post("/skills", userHandler.AddSkill)
	users.Delete("/skills/:skill", userHandler.RemoveSkill)
	users.Post("/experience", userHandler.AddExperience)
	users.Delete("/experience/:id", userHandler.DeleteExperience)
	users.Put("/preferences", userHandler.UpdatePreferences)
	users.Put("/goals", userHandler.UpdateGoals)
	users.Post("/goals/reset", userHandler.ResetWeeklyGoal)
	users.Post("/documents/resume", userHandler.UploadResume)
	users.Post("/documents/cover-letter", userHandler.UploadCoverLetter)
	users.Get("/documents", userHandler.GetDocuments)
	users.Delete("/documents/:filename", userHandler.DeleteDocument)
	users.Get("/notifications", userHandler.GetNotifications)
	users.Put("/notifications/:id/read", userHandler.MarkNotificationRead)

	// Applications
	applications := api.Group("/applications", authMiddleware.RequireAuth())
	applications.Post("/", applicationHandler.Create)
	applications.Get("/", applicationHandler.List)
	applications.Get("/:id", applicationHandler.Get)
	applications.Get("/:id/timeline", applicationHandler.Timeline)
	applications.Put("/", applicationHandler.Update)
	applications.Put("/status", applicationHandler.UpdateStatus)
	applications.Put("/notes", applicationHandler.AddNotes)
	applications.Post("/reminders", applicationHandler.AddReminder)
	applications.Put("/:id/reminders", applicationHandler.UpdateReminderStatus)
	applications.Delete("/:id", applicationHandler.Delete)

	// Jobs
	jobs := api.Group("/jobs", authMiddleware.RequireAuth())
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/search", jobHandler.Search)
	jobs.Get("/search/preferences", jobHandler.SearchByPreferences)
	jobs.Get("/recommendations", jobHandler.Recommendations)
	jobs.Get("/salary", jobHandler.SalaryData)
	jobs.Get("/company", jobHandler.CompanyInsights)
	jobs.Get("/:id", jobHandler.Get)
	jobs.Delete("/:id", jobHandler.Delete)

	// Analytics
	analytics := api.Group("/analytics", authMiddleware.RequireAuth())
	analytics.Get("/stats", analyticsHandler.Stats)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)

	// Generation endpoints
	ai := api.Group("/ai", authMiddleware.RequireAuth())
	ai.Post("/analyze-resume", aiHandler.AnalyzeResume)
	ai.Post("/cover-letter", aiHandler.GenerateCoverLetter)
	ai.Post("/interview-questions", aiHandler.GenerateInterviewQuestions)
	ai.Post("/success-probability", aiHandler.AnalyzeSuccessProbability)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "JobTrackr API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/signup",
				"POST /api/v1/auth/login",
				"GET /api/v1/applications",
				"GET /api/v1/jobs/search",
				"GET /api/v1/analytics/dashboard",
				"POST /api/v1/ai/analyze-resume",
				"POST /api/v1/ai/cover-letter",
				"POST /api/v1/ai/interview-questions",
				"POST /api/v1/ai/success-probability",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
