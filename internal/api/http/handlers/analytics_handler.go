package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-directory/internal/api/dto"
	"github.com/spec-kit/recipe-directory/internal/service"
)

// Sentinel returned in place of an extremal recipe when none exist.
const noRecipesSentinel = "no recipes yet"

// AnalyticsHandler exposes aggregate statistics.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Snapshot handles GET /analytics. Counts are JSON integers while the
// average is a two-decimal string; the mixed typing is part of the contract.
func (h *AnalyticsHandler) Snapshot(c *fiber.Ctx) error {
	snapshot, err := h.analytics.Snapshot(c.Context())
	if err != nil {
		return err
	}

	var mostViewed any = noRecipesSentinel
	if snapshot.MostViewed != nil {
		mostViewed = dto.NewRecipeResponse(snapshot.MostViewed)
	}
	var leastViewed any = noRecipesSentinel
	if snapshot.LeastViewed != nil {
		leastViewed = dto.NewRecipeResponse(snapshot.LeastViewed)
	}

	return c.JSON(fiber.Map{
		"totalUsers":        snapshot.TotalUsers,
		"totalRecipes":      snapshot.TotalRecipes,
		"avgRecipesPerUser": snapshot.AvgRecipesPerUser,
		"mostViewedRecipe":  mostViewed,
		"leastViewedRecipe": leastViewed,
	})
}
