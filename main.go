package main

import (
	"log"

	"quizboard/config"
	"quizboard/handlers"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/routes"
	"quizboard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Game{},
		&models.Category{},
		&models.Question{},
		&models.Team{},
	)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	cache := services.NewViewCache(redisClient, logger)
	gameService := services.NewGameService(db, cache, logger)
	categoryService := services.NewCategoryService(db, cache, logger)
	teamService := services.NewTeamService(db, cache, logger)
	questionService := services.NewQuestionService(db, cache, teamService, logger)

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(gameService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, gameHandler, categoryHandler, questionHandler, teamHandler)

	// Start server
	addr := cfg.BindAddress + ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
