package main

import (
	"log"
	"log/slog"

	"quizforge/config"
	"quizforge/handlers"
	"quizforge/logging"
	"quizforge/middleware"
	"quizforge/models"
	"quizforge/routes"
	"quizforge/services"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Section{},
		&models.Question{},
		&models.Answer{},
		&models.Record{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis-backed quiz detail cache
	redisClient := config.InitRedis(cfg)
	quizCache := services.NewQuizCache(redisClient, cfg.QuizCacheTTL)

	// Initialize services
	quizService := services.NewQuizService(db, quizCache)
	sectionService := services.NewSectionService(db)
	questionService := services.NewQuestionService(db)
	recordService := services.NewRecordService(db)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService)
	sectionHandler := handlers.NewSectionHandler(quizService, sectionService)
	questionHandler := handlers.NewQuestionHandler(quizService, sectionService, questionService)
	recordHandler := handlers.NewRecordHandler(quizService, questionService, recordService)

	// Identity resolution strategy
	var resolver middleware.Resolver = middleware.NewMockResolver()
	if cfg.AuthMode == "jwt" {
		resolver = middleware.NewJWTResolver(cfg.JWTSecret)
	}

	// Setup Gin router
	router := gin.Default()
	routes.SetupRoutes(router, resolver, quizHandler, sectionHandler, questionHandler, recordHandler)

	// Start server
	slog.Info("server starting", "port", cfg.Port, "authMode", cfg.AuthMode)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
