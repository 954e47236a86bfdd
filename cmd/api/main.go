package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"gestion-talento/internal/config"
	"gestion-talento/internal/domain"
	"gestion-talento/internal/handler"
	"gestion-talento/internal/middleware"
	"gestion-talento/internal/repository"
	"gestion-talento/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (certificate upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Extract the real client IP (behind Cloudflare) and User-Agent for
	// audit records.
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(services.Auth, services.Authz))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)
	users.Post("/assign-level", middleware.RequireCapability(domain.CapabilityAdmin), h.User.AssignLevel)
	users.Get("/:id/level-history", middleware.RequireAnyCapability(domain.CapabilityAdmin, domain.CapabilityPeopleLead), h.User.LevelHistory)

	users.Get("/me/skills", h.Profile.ListSkills)
	users.Post("/me/skills", h.Profile.AddSkill)
	users.Put("/me/skills/:skillId", h.Profile.UpdateSkill)
	users.Delete("/me/skills/:skillId", h.Profile.DeleteSkill)

	users.Get("/me/experience", h.Profile.ListExperience)
	users.Post("/me/experience", h.Profile.AddExperience)
	users.Put("/me/experience/:entryId", h.Profile.UpdateExperience)
	users.Delete("/me/experience/:entryId", h.Profile.DeleteExperience)

	certificates := protected.Group("/certificates")
	certificates.Post("/", h.Certificate.Upload)
	certificates.Get("/", h.Certificate.List)
	certificates.Get("/:certId", h.Certificate.Get)
	certificates.Delete("/:certId", h.Certificate.Delete)

	projects := protected.Group("/projects")
	projects.Post("/", middleware.RequireCapability(domain.CapabilityProjectManager), h.Project.Create)
	projects.Get("/", h.Project.List)
	projects.Get("/:projectId", h.Project.Get)
	projects.Put("/:projectId", middleware.RequireCapability(domain.CapabilityProjectManager), h.Project.Update)
	projects.Get("/:projectId/assignments", h.Project.ListAssignments)
	projects.Post("/:projectId/assignments", middleware.RequireAnyCapability(domain.CapabilityProjectLead, domain.CapabilityProjectManager), h.Project.Assign)
	projects.Delete("/:projectId/assignments/:assignmentId", middleware.RequireAnyCapability(domain.CapabilityProjectLead, domain.CapabilityProjectManager), h.Project.Unassign)

	workload := protected.Group("/workload")
	workload.Get("/me", h.Workload.CurrentLoad)
	workload.Post("/me/snapshot", h.Workload.Snapshot)
	workload.Get("/me/history", h.Workload.History)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	// Engine triggers. Sweep and cleanup are admin-only; welcome allows
	// self-targeting without admin, so the gate lives in the service.
	engine := protected.Group("/engine")
	engine.Post("/sweep", middleware.RequireCapability(domain.CapabilityAdmin), h.Engine.TriggerDeadlineSweep)
	engine.Post("/cleanup", middleware.RequireCapability(domain.CapabilityAdmin), h.Engine.TriggerRetentionCleanup)
	engine.Post("/welcome", h.Engine.TriggerWelcome)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.GetStats)

	audit := protected.Group("/audit")
	audit.Get("/recent", middleware.RequireCapability(domain.CapabilityAdmin), h.Audit.GetRecentActivities)
}
