package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"storehub/database"
	"storehub/internal/api/handler"
	"storehub/internal/api/middleware"
	"storehub/internal/api/repository"
	"storehub/internal/api/service"
	"storehub/internal/auth"
	"storehub/internal/config"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	if err := middleware.SetupValidator(); err != nil {
		log.Fatalf("could not set up validator: %v", err)
	}

	// Connect to the database (runs migrations)
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Token revocation is optional: without Redis, password changes simply
	// leave old tokens valid until expiry.
	var blacklist auth.TokenBlacklist
	if cfg.RedisAddr != "" {
		bl, err := auth.NewRedisTokenBlacklist(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unavailable, token revocation disabled", "error", err)
		} else {
			blacklist = bl
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, blacklist, cfg, logger)
	userService := service.NewUserService(userRepo)
	storeService := service.NewStoreService(storeRepo, userRepo)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)
	dashboardService := service.NewDashboardService(userRepo, storeRepo, ratingRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	storeHandler := handler.NewStoreHandler(storeService, logger)
	ratingHandler := handler.NewRatingHandler(ratingService, storeService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := r.Group("/api")

	// Public auth routes are rate limited; everything else requires a token.
	authPublic := api.Group("/auth", limiter.Middleware())
	authProtected := api.Group("/auth", middleware.AuthMiddleware(authService, blacklist))
	authHandler.RegisterRoutes(authPublic, authProtected)

	protected := api.Group("", middleware.AuthMiddleware(authService, blacklist))
	userHandler.RegisterRoutes(protected)
	storeHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("HTTP server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
