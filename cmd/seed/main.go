package main

import (
	"log"
	"log/slog"
	"os"

	"storehub/database"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"
	"storehub/internal/auth"
	"storehub/internal/config"
)

// Seeds the bootstrap admin account. Safe to run repeatedly: it does nothing
// when the admin already exists.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	email := envOrDefault("SEED_ADMIN_EMAIL", "admin@example.com")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is not set")
	}

	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.FindByEmail(email); err == nil {
		logger.Info("admin already exists", "email", email)
		return
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("could not hash password: %v", err)
	}

	admin := &models.User{
		Name:     "System Administrator Account",
		Email:    email,
		Password: hashedPassword,
		Address:  envOrDefault("SEED_ADMIN_ADDRESS", "Head Office"),
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("could not create admin: %v", err)
	}

	logger.Info("admin created", "email", email)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
