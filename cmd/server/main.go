package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"

	"phaseplan/internal/config"
	"phaseplan/internal/database"
	"phaseplan/internal/handlers"
	"phaseplan/internal/repository"
	"phaseplan/internal/security"
	"phaseplan/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load templates
	templates, err := handlers.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize services
	stateRepo := repository.NewStateRepository(db, cfg.StateKey)
	stateService := service.NewStateService(stateRepo)
	backupService := service.NewBackupService(stateService)
	reportService := service.NewReportService()

	state := stateService.State()
	log.Printf("State loaded from %q: %d weeks, %d log entries", stateRepo.Key(), len(state.Weeks), len(state.Logs))

	// Scheduled snapshots
	scheduler, err := startSnapshots(backupService, cfg.BackupSchedule, cfg.BackupDir)
	if err != nil {
		log.Fatalf("Failed to schedule backups: %v", err)
	}

	// Initialize handlers
	limiter := security.NewRateLimiter(cfg.WriteRateLimit, cfg.WriteWindow)
	defer limiter.Stop()

	planHandler := handlers.NewPlanHandler(stateService, backupService, reportService, templates)

	// Wrap with logging middleware
	handler := handlers.Logging(planHandler.Routes(limiter))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// startSnapshots exports the state into dir on schedule. An empty schedule disables it.
func startSnapshots(backupService *service.BackupService, schedule, dir string) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	err := c.AddFunc(schedule, func() {
		path, err := backupService.Snapshot(dir)
		if err != nil {
			log.Printf("Error writing scheduled backup: %v", err)
			return
		}
		log.Printf("Scheduled backup written to %s", path)
	})
	if err != nil {
		return nil, err
	}
	c.Start()

	log.Printf("Scheduled backups enabled (%s) into %s", schedule, dir)
	return c, nil
}
