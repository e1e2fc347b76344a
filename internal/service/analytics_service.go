package service

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/recipe-directory/internal/domain"
	"github.com/spec-kit/recipe-directory/internal/repository"
)

// AnalyticsSnapshot aggregates directory-wide statistics. Counts are plain
// integers while the average is a pre-formatted two-decimal string; the
// response intentionally mixes numeric representations.
type AnalyticsSnapshot struct {
	TotalUsers        int64
	TotalRecipes      int64
	AvgRecipesPerUser string
	MostViewed        *domain.Recipe
	LeastViewed       *domain.Recipe
}

// AnalyticsService computes aggregate statistics.
type AnalyticsService struct {
	users   repository.UserRepository
	recipes repository.RecipeRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(users repository.UserRepository, recipes repository.RecipeRepository) *AnalyticsService {
	return &AnalyticsService{users: users, recipes: recipes}
}

// Snapshot computes the current aggregate view. The extremal lookups are two
// independent store queries; MostViewed and LeastViewed are nil when the
// directory holds no recipes.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*AnalyticsSnapshot, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalRecipes, err := s.recipes.Count(ctx)
	if err != nil {
		return nil, err
	}

	avg := "0.00"
	if totalUsers > 0 {
		avg = strconv.FormatFloat(float64(totalRecipes)/float64(totalUsers), 'f', 2, 64)
	}

	snapshot := &AnalyticsSnapshot{
		TotalUsers:        totalUsers,
		TotalRecipes:      totalRecipes,
		AvgRecipesPerUser: avg,
	}

	snapshot.MostViewed, err = s.extreme(ctx, false)
	if err != nil {
		return nil, err
	}
	snapshot.LeastViewed, err = s.extreme(ctx, true)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *AnalyticsService) extreme(ctx context.Context, ascending bool) (*domain.Recipe, error) {
	recipe, err := s.recipes.ExtremeByViews(ctx, ascending)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return recipe, nil
}
