package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitstandup/gitstandup/internal/handlers"
	"github.com/gitstandup/gitstandup/internal/repositories"
	"github.com/gitstandup/gitstandup/internal/services"
	"github.com/gitstandup/gitstandup/internal/workers"
	"github.com/gitstandup/gitstandup/pkg/config"
	"github.com/gitstandup/gitstandup/pkg/database"
	"github.com/gitstandup/gitstandup/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize dependencies
	reportRepo := repositories.NewReportRepository(db)
	historyService := services.NewReportHistoryService(reportRepo)
	githubService := services.NewGitHubService(cfg)
	activityService := services.NewActivityService(githubService, cfg)
	reportService := services.NewReportService(cfg)
	geminiService := services.NewGeminiService(cfg)
	repositoryService := services.NewRepositoryService(cfg)
	standupService := services.NewStandupService(activityService, reportService, geminiService, historyService, cfg)

	// Start the history retention worker
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	retentionWorker := workers.NewRetentionWorker("retention-1", historyService,
		cfg.History.RetentionDays, time.Duration(cfg.History.PruneIntervalHours)*time.Hour)
	go func() {
		if err := retentionWorker.Start(workerCtx); err != nil && err != context.Canceled {
			logger.WithError(err).Error("Retention worker stopped")
		}
	}()
	defer retentionWorker.Stop()

	// Initialize router
	router := gin.Default()
	setupRoutes(router, cfg, standupService, repositoryService, historyService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, cfg *config.Config, standupService *services.StandupService, repositoryService *services.RepositoryService, historyService *services.ReportHistoryService) {
	// Initialize handlers
	reportHandler := handlers.NewReportHandler(standupService, repositoryService, historyService)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Report generation
	router.POST("/generate-report", reportHandler.GenerateReport)
	router.POST("/validate-repo", reportHandler.ValidateRepo)

	// Report history
	router.GET("/reports", reportHandler.ListReports)
	router.GET("/reports/export", reportHandler.ExportReports)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
