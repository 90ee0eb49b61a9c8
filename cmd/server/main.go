package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alimgiray/folio/internal/handlers"
	"github.com/alimgiray/folio/internal/middleware"
	"github.com/alimgiray/folio/internal/repositories"
	"github.com/alimgiray/folio/internal/services"
	"github.com/alimgiray/folio/pkg/config"
	"github.com/alimgiray/folio/pkg/database"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init()
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	if err := database.Init(cfg.Database.Path, cfg.Database.MigrationsDir); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Project feed
	githubClient, err := services.NewGitHubClient(cfg.GitHub.Token, cfg.GitHub.APIURL)
	if err != nil {
		logger.Fatalf("Failed to create GitHub client: %v", err)
	}
	feedService := services.NewProjectFeedService(githubClient, cfg.Feed)

	contentService, err := services.NewContentService(cfg.Content.Path)
	if err != nil {
		logger.Fatalf("Failed to load site content: %v", err)
	}

	// Contact relay
	contactRepo := repositories.NewContactMessageRepository(database.DB)
	relay := services.NewEmailJSRelay(cfg.Email, nil)
	contactService := services.NewContactService(contactRepo, relay, cfg.Email)
	if !cfg.Email.Configured() {
		logger.Warnf("Email relay is not configured; the contact form is hidden")
	}
	if !cfg.Session.Configured() {
		logger.Warnf("SESSION_SECRET is not set; owner login and inbox are disabled")
	}

	githubService := services.NewGitHubService(cfg.GitHub, cfg.Feed.Account)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SessionMiddleware())

	router.Static("/static", "./web/static")

	setupRoutes(router, routeDeps{
		home:    handlers.NewHomeHandler(contentService, cfg.Email.Configured()),
		project: handlers.NewProjectHandler(feedService),
		contact: handlers.NewContactHandler(contactService),
		auth:    handlers.NewAuthHandler(githubService),
		inbox:   handlers.NewInboxHandler(contactService, exportService),
		health:  handlers.NewHealthHandler(database.DB),

		ownerLogin:   cfg.Feed.Account,
		ownerEnabled: cfg.Session.Configured(),
	})
	loadTemplates(router)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s (feed account %s)", cfg.Server.Port, cfg.Feed.Account)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shut down: %v", err)
	}
	logger.Info("Server stopped")
}

type routeDeps struct {
	home    *handlers.HomeHandler
	project *handlers.ProjectHandler
	contact *handlers.ContactHandler
	auth    *handlers.AuthHandler
	inbox   *handlers.InboxHandler
	health  *handlers.HealthHandler

	ownerLogin   string
	ownerEnabled bool
}

func setupRoutes(router *gin.Engine, deps routeDeps) {
	notFoundHandler := handlers.NewNotFoundHandler()

	// Public pages
	router.GET("/", deps.home.Index)
	router.GET("/projects", deps.project.ProjectsPage)
	router.POST("/contact", deps.contact.Submit)

	// Project feed
	router.GET("/api/projects", deps.project.ListProjects)
	router.GET("/ws/projects", deps.project.Stream)

	// Health check endpoint
	router.GET("/health", deps.health.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)

	// Sessions cannot be signed without a secret, so the owner surface stays unregistered
	if !deps.ownerEnabled {
		return
	}

	// Auth routes
	router.GET("/login", deps.auth.Login)
	router.GET("/logout", deps.auth.Logout)
	router.GET("/auth/github", deps.auth.GitHubLogin)
	router.GET("/auth/github/callback", deps.auth.GitHubCallback)

	// Owner-only routes
	admin := router.Group("/admin")
	admin.Use(middleware.OwnerRequired(deps.ownerLogin))
	{
		admin.GET("/inbox", deps.inbox.Inbox)
		admin.GET("/inbox/export", deps.inbox.Export)
	}
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatalf("Couldn't get working directory: %v", err)
	}
	logger.WithField("cwd", cwd).Debug("Loading templates")

	router.LoadHTMLFiles(handlers.TemplateFiles(filepath.Join(cwd, "web/templates"))...)
}
