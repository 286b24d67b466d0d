package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/database"
	_ "github.com/lshigami/trivia/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/trivia/internal/controller"
	"github.com/lshigami/trivia/internal/logger"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/router"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Trivia API
// @version 1.0
// @description Categories, paginated questions, search and randomized quizzes for the trivia game.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	app := fx.New(
		// Core Application Components
		fx.Provide(
			newConfig,
			database.NewDatabase,
			router.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewCategoryRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewQuizService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewCategoryController,
			controller.NewQuestionController,
			controller.NewQuizController,
			controller.NewHealthController,
		),

		// Migrations run before the server hook is appended.
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedCategories),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// newConfig loads configuration and initializes the global logger from it.
func newConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}

// StartServer manages the HTTP server lifecycle.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Trivia API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Category{}, &model.Question{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedCategories(cfg *config.Config, categories service.CategoryService) error {
	if !cfg.SeedCategories {
		return nil
	}
	_, err := categories.SeedDefaults(context.Background())
	return err
}
