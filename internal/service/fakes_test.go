package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/recipe-directory/internal/domain"
)

// -------- test fakes --------

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
	order []primitive.ObjectID

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	user.ID = primitive.NewObjectID()
	copied := *user
	f.users[user.ID] = &copied
	f.order = append(f.order, user.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.User, error) {
	found := map[primitive.ObjectID]*domain.User{}
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			copied := *user
			found[id] = &copied
		}
	}
	return found, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeRecipeRepo struct {
	recipes map[primitive.ObjectID]*domain.Recipe
	order   []primitive.ObjectID
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: map[primitive.ObjectID]*domain.Recipe{}}
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) error {
	recipe.ID = primitive.NewObjectID()
	copied := *recipe
	f.recipes[recipe.ID] = &copied
	f.order = append(f.order, recipe.ID)
	return nil
}

func (f *fakeRecipeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *recipe
	return &copied, nil
}

func (f *fakeRecipeRepo) Replace(ctx context.Context, recipe *domain.Recipe) error {
	if _, ok := f.recipes[recipe.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *recipe
	f.recipes[recipe.ID] = &copied
	return nil
}

func (f *fakeRecipeRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.recipes[id]; !ok {
		return 0, nil
	}
	delete(f.recipes, id)
	return 1, nil
}

func (f *fakeRecipeRepo) List(ctx context.Context, titleFilter string) ([]domain.Recipe, error) {
	needle := strings.ToLower(titleFilter)
	out := []domain.Recipe{}
	for _, id := range f.order {
		recipe, ok := f.recipes[id]
		if !ok {
			continue
		}
		if needle == "" || strings.Contains(strings.ToLower(recipe.Title), needle) {
			out = append(out, *recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]domain.Recipe, error) {
	out := []domain.Recipe{}
	for _, id := range f.order {
		recipe, ok := f.recipes[id]
		if !ok {
			continue
		}
		if recipe.Author == author {
			out = append(out, *recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	recipe.Views++
	copied := *recipe
	return &copied, nil
}

func (f *fakeRecipeRepo) MostViewedByAuthor(ctx context.Context, author primitive.ObjectID) (*domain.Recipe, error) {
	var best *domain.Recipe
	for _, id := range f.order {
		recipe, ok := f.recipes[id]
		if !ok || recipe.Author != author {
			continue
		}
		if best == nil || recipe.Views > best.Views {
			best = recipe
		}
	}
	if best == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *best
	return &copied, nil
}

func (f *fakeRecipeRepo) ExtremeByViews(ctx context.Context, ascending bool) (*domain.Recipe, error) {
	var best *domain.Recipe
	for _, id := range f.order {
		recipe, ok := f.recipes[id]
		if !ok {
			continue
		}
		if best == nil {
			best = recipe
			continue
		}
		if ascending && recipe.Views < best.Views {
			best = recipe
		}
		if !ascending && recipe.Views > best.Views {
			best = recipe
		}
	}
	if best == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *best
	return &copied, nil
}

func (f *fakeRecipeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

type fakeArchiveRepo struct {
	archived  []*domain.ArchivedRecipe
	createErr error
}

func (f *fakeArchiveRepo) Create(ctx context.Context, archived *domain.ArchivedRecipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *archived
	f.archived = append(f.archived, &copied)
	return nil
}
