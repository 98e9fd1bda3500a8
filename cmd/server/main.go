package main

import (
	"log"
	"net/http"
	"os"

	_ "brigade/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"brigade/internal/auth"
	"brigade/internal/cache"
	"brigade/internal/config"
	"brigade/internal/db"
	"brigade/internal/handler"
	"brigade/internal/model"
	"brigade/internal/repository"
	"brigade/internal/router"
	"brigade/internal/service"
	"brigade/internal/storage"
)

// @title Brigade Web Service API
// @version 1.0
// @description Volunteer brigade support site: vacancies, donation campaigns, usage reports, image uploads and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Report{},
			&model.Donation{},
			&model.Vacancy{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	vacancyRepo := repository.New[model.Vacancy](gormDB)
	donationRepo := repository.New[model.Donation](gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTLifetime)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	vacancyService := service.NewVacancyService(vacancyRepo, cacheClient)
	reportService := service.NewReportService(reportRepo, cacheClient)
	donationService := service.NewDonationService(donationRepo, reportService, cacheClient)

	uploadStore := storage.New(cfg.WebRoot, storage.Options{
		BaseFolder:        cfg.UploadBaseFolder,
		MaxSizeBytes:      cfg.UploadMaxBytes,
		AllowedExtensions: cfg.UploadExtensions,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	vacancyHandler := handler.NewVacancyHandler(vacancyService)
	donationHandler := handler.NewDonationHandler(donationService, uploadStore)
	reportHandler := handler.NewReportHandler(reportService, uploadStore)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		vacancyHandler,
		donationHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
