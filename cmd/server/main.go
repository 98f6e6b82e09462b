package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cenit-labs.backend/internal/config"
	"cenit-labs.backend/internal/infrastructure/models"
	"cenit-labs.backend/internal/infrastructure/repositories"
	"cenit-labs.backend/internal/interfaces/http/handlers"
	"cenit-labs.backend/internal/interfaces/http/middleware"
	"cenit-labs.backend/pkg/logger"
	"cenit-labs.backend/pkg/mediahost"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newUploader = func(cfg config.MediaConfig) (mediahost.Uploader, error) {
		return mediahost.NewCloudinaryHost(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	}

	variant := resolveSchemaVariant(db)

	uploader, err := newUploader(cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media host: %w", err)
	}
	if !uploader.Configured() {
		logger.Warn(context.Background(),
			"Media host not configured, uploads fall back to inline data URLs")
	}

	teamRepo := repositories.NewTeamMemberRepository(db, variant)
	jobRepo := repositories.NewJobRepository(db, variant)

	teamHandler := handlers.NewTeamHandler(teamRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	uploadHandler := handlers.NewUploadHandler(uploader)

	adminGate := middleware.AdminGate(cfg.Admin.PasswordHash)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r, cfg.CORS.FrontendURL)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		teamHandler:   teamHandler,
		jobHandler:    jobHandler,
		uploadHandler: uploadHandler,
		adminGate:     adminGate,
	})

	log.Printf("Backend starting on port %s (schema variant: %s)", cfg.Server.Port, variant)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// resolveSchemaVariant probes the store once at boot. A fresh store with no
// tables at all gets the canonical layout created for it; an unreachable
// store leaves the variant unresolved so the repositories latch it on first
// use.
func resolveSchemaVariant(db *gorm.DB) repositories.SchemaVariant {
	variant, err := detectOrBootstrap(db)
	if err != nil {
		logger.Warn(context.Background(),
			"Schema probe failed, variant will resolve on first use", zap.Error(err))
	}
	logger.Info(context.Background(), "Store schema resolved", zap.String("variant", variant.String()))
	return variant
}

// detectOrBootstrap probes for the active column layout and, when the team
// table does not exist yet, creates the canonical layout.
func detectOrBootstrap(db *gorm.DB) (repositories.SchemaVariant, error) {
	if !db.Migrator().HasTable(&models.TeamMember{}) {
		if err := db.AutoMigrate(&models.TeamMember{}, &models.Job{}); err != nil {
			return repositories.SchemaAuto, fmt.Errorf("bootstrap store: %w", err)
		}
		return repositories.SchemaCanonical, nil
	}
	return repositories.DetectVariant(db)
}
