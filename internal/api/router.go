package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/torch-group/torch-api/docs"
	"github.com/torch-group/torch-api/internal/api/handler"
	"github.com/torch-group/torch-api/internal/api/middleware"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/service"
	"github.com/torch-group/torch-api/internal/infrastructure/analytics"
	mongodb "github.com/torch-group/torch-api/internal/infrastructure/db/mongo"
	redisdb "github.com/torch-group/torch-api/internal/infrastructure/db/redis"
	"github.com/torch-group/torch-api/internal/pkg/config"
	"github.com/torch-group/torch-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("torch"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewAnalyticsRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	talentRepo := mongodb.NewTalentRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	newsletterRepo := mongodb.NewNewsletterRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)
	codeStore := redisdb.NewCodeStore(rdb)
	fallbackStore := analytics.NewFileStore(cfg.AnalyticsDir, log)

	// --- Services ---
	tokens := service.NewSessionTokens(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, log)
	analyticsService := service.NewAnalyticsService(eventRepo, fallbackStore, log)
	blogService := service.NewBlogService(blogRepo, log)
	talentService := service.NewTalentService(talentRepo, log)
	contentService := service.NewContentService(teamRepo, serviceRepo, projectRepo, brandRepo, log)
	intakeService := service.NewIntakeService(contactRepo, newsletterRepo, log)
	siteService := service.NewSiteService(settingsRepo, statsRepo, log)
	verifyService := service.NewVerificationService(codeStore, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, tokens, cfg.IsProduction(), cfg.JWTSecret != "")
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, log)
	blogHandler := handler.NewBlogHandler(blogService)
	talentHandler := handler.NewTalentHandler(talentService)
	contentHandler := handler.NewContentHandler(contentService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	siteHandler := handler.NewSiteHandler(siteService)
	verifyHandler := handler.NewVerificationHandler(verifyService)

	// Session identity is resolved globally so every handler can see who is
	// asking; it never rejects on its own.
	e.Use(middleware.Session(tokens, log))

	// --- Auth ---
	e.POST("/api/auth/signin", authHandler.Signin)
	e.POST("/api/auth/signout", authHandler.Signout)
	e.GET("/api/auth/check", authHandler.Check)
	e.GET("/api/check-session", authHandler.CheckSession)

	// --- Analytics ---
	e.POST("/api/analytics/event", analyticsHandler.Record)

	// --- Public content ---
	e.GET("/api/blog", blogHandler.ListPublic)
	e.GET("/api/blog/:slug", blogHandler.GetBySlug)
	e.GET("/api/talents", talentHandler.ListPublic)
	e.GET("/api/talents/:slug", talentHandler.GetBySlug)
	e.GET("/api/team", contentHandler.ListTeam)
	e.GET("/api/services", contentHandler.ListServices)
	e.GET("/api/projects", contentHandler.ListProjects)
	e.GET("/api/brands", contentHandler.ListBrands)
	e.GET("/api/settings", siteHandler.GetSettings)

	// --- Public intake ---
	e.POST("/api/contact", intakeHandler.SubmitContact)
	e.POST("/api/newsletter/subscribe", intakeHandler.Subscribe)
	e.POST("/api/newsletter/unsubscribe", intakeHandler.Unsubscribe)
	e.POST("/api/verification/send", verifyHandler.SendCode)
	e.POST("/api/verification/verify", verifyHandler.CheckCode)

	// --- Admin: editors can read everything ---
	admin := e.Group("/api/admin", middleware.RequireAuth())
	admin.GET("/dashboard", siteHandler.Dashboard)
	admin.GET("/settings", siteHandler.GetSettings)
	admin.GET("/blog", blogHandler.ListAdmin)
	admin.GET("/talents", talentHandler.ListAdmin)
	admin.GET("/projects", contentHandler.ListProjectsAdmin)
	admin.GET("/brands", contentHandler.ListBrandsAdmin)
	admin.GET("/contacts", intakeHandler.ListContacts)
	admin.GET("/newsletter", intakeHandler.ListSubscribers)

	// --- Admin: mutations, user management, and settings need ADMIN ---
	elevated := admin.Group("", middleware.RequireRole(domain.RoleAdmin))
	elevated.POST("/users", authHandler.CreateUser)
	elevated.PUT("/settings", siteHandler.UpdateSettings)

	elevated.POST("/blog", blogHandler.Create)
	elevated.PUT("/blog/:id", blogHandler.Update)
	elevated.DELETE("/blog/:id", blogHandler.Delete)

	elevated.POST("/talents", talentHandler.Create)
	elevated.PUT("/talents/:id", talentHandler.Update)
	elevated.DELETE("/talents/:id", talentHandler.Delete)

	elevated.POST("/team", contentHandler.CreateTeamMember)
	elevated.PUT("/team/:id", contentHandler.UpdateTeamMember)
	elevated.DELETE("/team/:id", contentHandler.DeleteTeamMember)

	elevated.POST("/services", contentHandler.CreateService)
	elevated.PUT("/services/:id", contentHandler.UpdateService)
	elevated.DELETE("/services/:id", contentHandler.DeleteService)

	elevated.POST("/projects", contentHandler.CreateProject)
	elevated.PUT("/projects/:id", contentHandler.UpdateProject)
	elevated.DELETE("/projects/:id", contentHandler.DeleteProject)

	elevated.POST("/brands", contentHandler.CreateBrand)
	elevated.PUT("/brands/:id", contentHandler.UpdateBrand)
	elevated.DELETE("/brands/:id", contentHandler.DeleteBrand)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, cfg.AnalyticsDir)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
