package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"projectcenter/internal/audit"
	"projectcenter/internal/config"
	"projectcenter/internal/db"
	"projectcenter/internal/db/migrations"
	"projectcenter/internal/interfaces"
	"projectcenter/internal/repository"
	"projectcenter/internal/routes"
	"projectcenter/internal/seed"
	"projectcenter/internal/services"
	"projectcenter/internal/tracker"
)

// @title Project Center API
// @version 1.0
// @description Milestones, punch lists, change log and schedule for substation projects.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	projects := repository.NewProjectRepository(database.DB)
	changeLog := repository.NewChangeLogRepository(database.DB)

	ctx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if cfg.SeedFile != "" {
		seeded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to read seed file: %v", err)
		}
		n, err := seed.Apply(ctx, projects, seeded)
		if err != nil {
			log.Fatalf("Failed to seed projects: %v", err)
		}
		if n > 0 {
			log.Printf("Seeded %d projects from %s", n, cfg.SeedFile)
		}
	}

	// Attachments are optional; without a bucket or credentials the upload
	// endpoints answer 503.
	var blobs interfaces.BlobStore
	s3Config, err := config.NewS3Config(ctx)
	if err != nil {
		log.Printf("Attachment storage disabled: %v", err)
	} else {
		blobs = services.NewS3BlobStore(s3Config)
	}

	t := tracker.New(projects, audit.NewLog(changeLog), blobs, cfg.MaxAttachments)
	if err := t.Load(ctx); err != nil {
		log.Fatalf("Failed to load projects: %v", err)
	}

	identity, err := services.NewIdentity(cfg.AuthEmail, cfg.AuthPasswordHash, cfg.AuthPassword, cfg.AuthAllowedDomain)
	if err != nil {
		log.Fatalf("Failed to configure sign-in: %v", err)
	}

	router := routes.SetupRoutes(database.DB, cfg, t, identity)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
