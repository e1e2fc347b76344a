package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-directory/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Recipes   *handlers.RecipesHandler
	Analytics *handlers.AnalyticsHandler
}

// RegisterRoutes wires HTTP routes. A catch-all 404 must be registered after
// every route, so it lives here rather than with the other middlewares.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/add-user", cfg.Users.Create)

	app.Post("/add-recipe", cfg.Recipes.Create)
	app.Put("/update-recipe/:recipeId", cfg.Recipes.Update)
	app.Delete("/delete-recipe/:recipeId", cfg.Recipes.Delete)
	app.Get("/recipes/view/:recipeId", cfg.Recipes.IncrementView)
	app.Get("/recipes", cfg.Recipes.List)
	app.Get("/recipe/:recipeId", cfg.Recipes.Get)
	app.Get("/user-recipes/:userId", cfg.Recipes.ListByUser)
	app.Get("/user/:userId/views", cfg.Recipes.TotalViews)
	app.Get("/user/:userId/highestviews", cfg.Recipes.MostViewed)

	app.Get("/analytics", cfg.Analytics.Snapshot)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "route not found",
		})
	})
}
