package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/recipe-directory/internal/api/http"
	"github.com/spec-kit/recipe-directory/internal/api/http/handlers"
	"github.com/spec-kit/recipe-directory/internal/config"
	"github.com/spec-kit/recipe-directory/internal/observability"
	"github.com/spec-kit/recipe-directory/internal/persistence"
	"github.com/spec-kit/recipe-directory/internal/repository"
	"github.com/spec-kit/recipe-directory/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongo", zap.Error(err))
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)

	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(service.RecipeDependencies{
		RecipeRepo:  recipeRepo,
		UserRepo:    userRepo,
		ArchiveRepo: archiveRepo,
	})
	analyticsService := service.NewAnalyticsService(userRepo, recipeRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db),
		Users:     handlers.NewUsersHandler(userService),
		Recipes:   handlers.NewRecipesHandler(recipeService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
