package main

import (
	"context"
	"log"

	"guess_the_word/internal/api"
	"guess_the_word/internal/config"
	"guess_the_word/internal/middleware"
	"guess_the_word/internal/repository/mysql"
	"guess_the_word/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig()

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(gormmysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories and services
	userRepo := mysql.NewUserRepo(db)
	sessionRepo := mysql.NewSessionRepo(db)
	reportRepo := mysql.NewReportRepo(db)

	authService := service.NewAuthService(userRepo)
	gameService := service.NewGameService(sessionRepo)
	reportService := service.NewReportService(userRepo, reportRepo)

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(authService))
	r.GET("/user", api.LoginHandler(authService, cfg.JWTSecret))

	// Game routes (players only)
	gameGroup := r.Group("/game")
	gameGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.PlayerOnlyMiddleware(db))
	gameGroup.POST("", api.StartGameHandler(gameService))
	gameGroup.GET("/quota", api.GetQuotaHandler(gameService))
	gameGroup.GET("/:id", api.GetSessionHandler(gameService))
	gameGroup.POST("/:id/guess", api.SubmitGuessHandler(gameService, userRepo, redisClient))

	// Admin routes (reports)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(userRepo, redisClient))
	adminGroup.GET("/reports/daily", api.DailyReportHandler(reportService, redisClient))
	adminGroup.GET("/reports/user", api.UserHistoryHandler(reportService, redisClient))

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort)
}
