package dto

import (
	"time"

	"github.com/spec-kit/recipe-directory/internal/domain"
)

// RecipeCreateRequest payload for new recipes.
type RecipeCreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Author       string   `json:"author"`
}

// RecipeUpdateRequest payload for partial updates. Absent fields stay nil
// and leave the stored value untouched.
type RecipeUpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Author       *string   `json:"author"`
}

// RecipeResponse is the projection of a recipe with the raw author reference.
type RecipeResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Author       string    `json:"author"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthorRef is the resolved author projection used by populated responses.
type AuthorRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PopulatedRecipeResponse is the projection of a recipe with its author
// resolved. Author is null when the referenced user no longer exists.
type PopulatedRecipeResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	Author       *AuthorRef `json:"author"`
	Views        int64      `json:"views"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewRecipeResponse projects a domain recipe.
func NewRecipeResponse(r *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           r.ID.Hex(),
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Author:       r.Author.Hex(),
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
	}
}

// NewRecipeResponses projects a batch of domain recipes.
func NewRecipeResponses(recipes []domain.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

// NewPopulatedRecipeResponse projects a recipe with its resolved author.
func NewPopulatedRecipeResponse(rw *domain.RecipeWithAuthor) PopulatedRecipeResponse {
	resp := PopulatedRecipeResponse{
		ID:           rw.Recipe.ID.Hex(),
		Title:        rw.Recipe.Title,
		Description:  rw.Recipe.Description,
		Ingredients:  rw.Recipe.Ingredients,
		Instructions: rw.Recipe.Instructions,
		Views:        rw.Recipe.Views,
		CreatedAt:    rw.Recipe.CreatedAt,
	}
	if rw.Author != nil {
		resp.Author = &AuthorRef{Name: rw.Author.Name, Email: rw.Author.Email}
	}
	return resp
}

// NewPopulatedRecipeResponses projects a batch of populated recipes.
func NewPopulatedRecipeResponses(rws []domain.RecipeWithAuthor) []PopulatedRecipeResponse {
	out := make([]PopulatedRecipeResponse, 0, len(rws))
	for i := range rws {
		out = append(out, NewPopulatedRecipeResponse(&rws[i]))
	}
	return out
}
