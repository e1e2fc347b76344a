package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/recipe-directory/internal/domain"
)

func TestAnalyticsSnapshotEmptyDirectory(t *testing.T) {
	svc := NewAnalyticsService(newFakeUserRepo(), newFakeRecipeRepo())

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), snapshot.TotalUsers)
	assert.Equal(t, int64(0), snapshot.TotalRecipes)
	assert.Equal(t, "0.00", snapshot.AvgRecipesPerUser)
	assert.Nil(t, snapshot.MostViewed)
	assert.Nil(t, snapshot.LeastViewed)
}

func TestAnalyticsSnapshotAverageAndExtremes(t *testing.T) {
	users := newFakeUserRepo()
	recipes := newFakeRecipeRepo()
	svc := NewAnalyticsService(users, recipes)

	alice := &domain.User{Name: "Alice", Email: "alice@example.com"}
	bob := &domain.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, users.Create(context.Background(), alice))
	require.NoError(t, users.Create(context.Background(), bob))

	seed := func(title string, views int64) {
		recipe := &domain.Recipe{
			Title:        title,
			Ingredients:  []string{"x"},
			Instructions: "cook",
			Author:       alice.ID,
			Views:        views,
		}
		require.NoError(t, recipes.Create(context.Background(), recipe))
	}
	seed("First", 10)
	seed("Second", 2)
	seed("Third", 5)
	seed("Fourth", 0)
	seed("Fifth", 1)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), snapshot.TotalUsers)
	assert.Equal(t, int64(5), snapshot.TotalRecipes)
	assert.Equal(t, "2.50", snapshot.AvgRecipesPerUser)
	require.NotNil(t, snapshot.MostViewed)
	assert.Equal(t, "First", snapshot.MostViewed.Title)
	require.NotNil(t, snapshot.LeastViewed)
	assert.Equal(t, "Fourth", snapshot.LeastViewed.Title)
}

func TestAnalyticsSnapshotUsersWithoutRecipes(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAnalyticsService(users, newFakeRecipeRepo())

	alice := &domain.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(context.Background(), alice))

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.00", snapshot.AvgRecipesPerUser)
	assert.Nil(t, snapshot.MostViewed)
}
