package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"brigade/internal/config"
	"brigade/internal/db"
	"brigade/internal/model"
	"brigade/internal/repository"
)

const bcryptCost = 11

// Bootstraps the admin credential. The production schema carries no seed
// user, so the first admin has to come from outside the API.
func main() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByUsername(ctx, username)
	if err != nil {
		log.Fatalf("Failed to look up user: %v", err)
	}

	uow := users.NewUnitOfWork()
	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.Role = model.RoleAdmin
		users.Update(uow, existing)
	} else {
		users.Create(uow, &model.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		})
	}
	if _, err := uow.Save(ctx); err != nil {
		log.Fatalf("Failed to save admin user: %v", err)
	}

	if existing != nil {
		log.Printf("Admin user %q updated", username)
	} else {
		log.Printf("Admin user %q created", username)
	}
}
