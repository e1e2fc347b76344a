package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-directory/internal/api/dto"
	"github.com/spec-kit/recipe-directory/internal/service"
)

// RecipesHandler exposes recipe CRUD and view-counter endpoints.
type RecipesHandler struct {
	recipes *service.RecipeService
}

// NewRecipesHandler constructs handler.
func NewRecipesHandler(recipes *service.RecipeService) *RecipesHandler {
	return &RecipesHandler{recipes: recipes}
}

// Create handles POST /add-recipe. Field presence is left to schema
// validation in the service layer.
func (h *RecipesHandler) Create(c *fiber.Ctx) error {
	var req dto.RecipeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	recipe, err := h.recipes.Create(c.Context(), service.RecipeCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Author:       req.Author,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewRecipeResponse(recipe))
}

// Update handles PUT /update-recipe/:recipeId.
func (h *RecipesHandler) Update(c *fiber.Ctx) error {
	var req dto.RecipeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	recipe, err := h.recipes.Update(c.Context(), c.Params("recipeId"), service.RecipeUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Author:       req.Author,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.NewRecipeResponse(recipe))
}

// Delete handles DELETE /delete-recipe/:recipeId.
func (h *RecipesHandler) Delete(c *fiber.Ctx) error {
	if err := h.recipes.Delete(c.Context(), c.Params("recipeId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "recipe deleted and archived"})
}

// List handles GET /recipes?title=.
func (h *RecipesHandler) List(c *fiber.Ctx) error {
	recipes, err := h.recipes.List(c.Context(), c.Query("title"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPopulatedRecipeResponses(recipes))
}

// Get handles GET /recipe/:recipeId. Fetching a recipe counts as a view.
func (h *RecipesHandler) Get(c *fiber.Ctx) error {
	recipe, err := h.recipes.Get(c.Context(), c.Params("recipeId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPopulatedRecipeResponse(recipe))
}

// IncrementView handles GET /recipes/view/:recipeId.
func (h *RecipesHandler) IncrementView(c *fiber.Ctx) error {
	views, err := h.recipes.IncrementView(c.Context(), c.Params("recipeId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "view recorded",
		"views":   views,
	})
}

// ListByUser handles GET /user-recipes/:userId.
func (h *RecipesHandler) ListByUser(c *fiber.Ctx) error {
	recipes, err := h.recipes.ListByAuthor(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRecipeResponses(recipes))
}

// TotalViews handles GET /user/:userId/views.
func (h *RecipesHandler) TotalViews(c *fiber.Ctx) error {
	total, err := h.recipes.TotalViews(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"totalViews": total})
}

// MostViewed handles GET /user/:userId/highestviews.
func (h *RecipesHandler) MostViewed(c *fiber.Ctx) error {
	recipe, err := h.recipes.MostViewed(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRecipeResponse(recipe))
}
