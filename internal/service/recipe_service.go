package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/recipe-directory/internal/domain"
	"github.com/spec-kit/recipe-directory/internal/repository"
	"github.com/spec-kit/recipe-directory/pkg/util"
)

// RecipeService coordinates recipe workflows.
type RecipeService struct {
	recipes repository.RecipeRepository
	users   repository.UserRepository
	archive repository.ArchiveRepository
}

// RecipeDependencies bundles repositories for the recipe service.
type RecipeDependencies struct {
	RecipeRepo  repository.RecipeRepository
	UserRepo    repository.UserRepository
	ArchiveRepo repository.ArchiveRepository
}

// RecipeCreateInput describes the recipe creation payload.
type RecipeCreateInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions string
	Author       string
}

// RecipeUpdateInput describes a partial update payload. Nil fields are left
// untouched on the stored document.
type RecipeUpdateInput struct {
	Title        *string
	Description  *string
	Ingredients  *[]string
	Instructions *string
	Author       *string
}

// NewRecipeService constructs the service.
func NewRecipeService(deps RecipeDependencies) *RecipeService {
	return &RecipeService{
		recipes: deps.RecipeRepo,
		users:   deps.UserRepo,
		archive: deps.ArchiveRepo,
	}
}

// Create validates and persists a new recipe with the views counter at zero.
// The author reference is required but not checked for existence.
func (s *RecipeService) Create(ctx context.Context, input RecipeCreateInput) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Views:        0,
		CreatedAt:    time.Now().UTC(),
	}

	violations := domain.Violations{}
	if input.Author != "" {
		author, err := primitive.ObjectIDFromHex(input.Author)
		if err != nil {
			violations.Add("author", "author must be a valid id")
		} else {
			recipe.Author = author
		}
	}
	for field, message := range recipe.Validate() {
		if _, seen := violations[field]; !seen {
			violations.Add(field, message)
		}
	}
	if !violations.OK() {
		return nil, util.NewValidationError("recipe validation failed", violations.Details())
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a partial field overwrite, re-validating the merged result.
func (s *RecipeService) Update(ctx context.Context, id string, input RecipeUpdateInput) (*domain.Recipe, error) {
	oid, err := parseRecipeID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.recipes.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("recipe", map[string]any{"id": id})
		}
		return nil, err
	}

	update := domain.RecipeUpdate{
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if input.Author != nil {
		author, err := primitive.ObjectIDFromHex(*input.Author)
		if err != nil {
			return nil, util.NewValidationError("recipe validation failed",
				map[string]any{"author": "author must be a valid id"})
		}
		update.Author = &author
	}

	merged := existing.Apply(update)
	if violations := merged.Validate(); !violations.OK() {
		return nil, util.NewValidationError("recipe validation failed", violations.Details())
	}

	if err := s.recipes.Replace(ctx, &merged); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("recipe", map[string]any{"id": id})
		}
		return nil, err
	}
	return &merged, nil
}

// Delete archives the recipe, then removes it. The archive copy is written
// as soon as the lookup succeeds; if a concurrent delete wins the race the
// archive entry still stands. That window is accepted, not corrected.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	oid, err := parseRecipeID(id)
	if err != nil {
		return err
	}

	recipe, err := s.recipes.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return util.NewNotFound("recipe", map[string]any{"id": id})
		}
		return err
	}

	archived := domain.NewArchivedRecipe(recipe, time.Now().UTC())
	if err := s.archive.Create(ctx, archived); err != nil {
		return err
	}

	deleted, err := s.recipes.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.NewNotFound("recipe", map[string]any{"id": id})
	}
	return nil
}

// List returns all recipes, optionally filtered by a case-insensitive title
// substring, with authors resolved. Unpaginated.
func (s *RecipeService) List(ctx context.Context, titleFilter string) ([]domain.RecipeWithAuthor, error) {
	recipes, err := s.recipes.List(ctx, titleFilter)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, recipes)
}

// Get increments the views counter atomically and returns the post-increment
// recipe with its author resolved.
func (s *RecipeService) Get(ctx context.Context, id string) (*domain.RecipeWithAuthor, error) {
	oid, err := parseRecipeID(id)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.IncrementViews(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("recipe", map[string]any{"id": id})
		}
		return nil, err
	}

	result := &domain.RecipeWithAuthor{Recipe: *recipe}
	author, err := s.users.GetByID(ctx, recipe.Author)
	if err == nil {
		result.Author = author
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return result, nil
}

// IncrementView bumps the views counter and returns only the new value.
// Kept separate from Get on purpose: consumers depend on both shapes.
func (s *RecipeService) IncrementView(ctx context.Context, id string) (int64, error) {
	oid, err := parseRecipeID(id)
	if err != nil {
		return 0, err
	}

	recipe, err := s.recipes.IncrementViews(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, util.NewNotFound("recipe", map[string]any{"id": id})
		}
		return 0, err
	}
	return recipe.Views, nil
}

// ListByAuthor returns all recipes authored by the given user, unfiltered.
func (s *RecipeService) ListByAuthor(ctx context.Context, userID string) ([]domain.Recipe, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.recipes.ListByAuthor(ctx, oid)
}

// TotalViews sums the views counters of the user's recipes in-process.
func (s *RecipeService) TotalViews(ctx context.Context, userID string) (int64, error) {
	recipes, err := s.ListByAuthor(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, recipe := range recipes {
		total += recipe.Views
	}
	return total, nil
}

// MostViewed returns the user's single highest-views recipe.
func (s *RecipeService) MostViewed(ctx context.Context, userID string) (*domain.Recipe, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.MostViewedByAuthor(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("recipe", map[string]any{"userId": userID})
		}
		return nil, err
	}
	return recipe, nil
}

// populate resolves authors for a batch of recipes with a single lookup.
func (s *RecipeService) populate(ctx context.Context, recipes []domain.Recipe) ([]domain.RecipeWithAuthor, error) {
	ids := make([]primitive.ObjectID, 0, len(recipes))
	seen := map[primitive.ObjectID]bool{}
	for _, recipe := range recipes {
		if !seen[recipe.Author] {
			seen[recipe.Author] = true
			ids = append(ids, recipe.Author)
		}
	}

	authors, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeWithAuthor, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, domain.RecipeWithAuthor{
			Recipe: recipe,
			Author: authors[recipe.Author],
		})
	}
	return result, nil
}

func parseRecipeID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, util.NewValidationError("invalid recipe id", map[string]any{"id": id})
	}
	return oid, nil
}

func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, util.NewValidationError("invalid user id", map[string]any{"id": id})
	}
	return oid, nil
}
