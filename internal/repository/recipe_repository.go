package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/recipe-directory/internal/domain"
	"github.com/spec-kit/recipe-directory/internal/persistence"
)

// RecipeRepository defines persistence access for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error)
	Replace(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	List(ctx context.Context, titleFilter string) ([]domain.Recipe, error)
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]domain.Recipe, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error)
	MostViewedByAuthor(ctx context.Context, author primitive.ObjectID) (*domain.Recipe, error)
	ExtremeByViews(ctx context.Context, ascending bool) (*domain.Recipe, error)
	Count(ctx context.Context) (int64, error)
}

type recipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository returns a Mongo-backed implementation.
func NewRecipeRepository(db *persistence.Mongo) RecipeRepository {
	return &recipeRepository{coll: db.Database.Collection(persistence.RecipesCollection)}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	res, err := r.coll.InsertOne(ctx, recipe)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = oid
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Replace(ctx context.Context, recipe *domain.Recipe) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *recipeRepository) List(ctx context.Context, titleFilter string) ([]domain.Recipe, error) {
	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(titleFilter),
			Options: "i",
		}}
	}
	return r.find(ctx, filter)
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{"author": author})
}

// IncrementViews bumps the views counter atomically and returns the
// post-increment document.
func (r *recipeRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var recipe domain.Recipe
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&recipe)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// MostViewedByAuthor returns the author's highest-views recipe.
// Tie-break between equal counters follows the store's default ordering.
func (r *recipeRepository) MostViewedByAuthor(ctx context.Context, author primitive.ObjectID) (*domain.Recipe, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "views", Value: -1}})

	var recipe domain.Recipe
	if err := r.coll.FindOne(ctx, bson.M{"author": author}, opts).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ExtremeByViews(ctx context.Context, ascending bool) (*domain.Recipe, error) {
	direction := -1
	if ascending {
		direction = 1
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "views", Value: direction}})

	var recipe domain.Recipe
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *recipeRepository) find(ctx context.Context, filter bson.M) ([]domain.Recipe, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []domain.Recipe{}
	for cursor.Next(ctx) {
		var recipe domain.Recipe
		if err := cursor.Decode(&recipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, cursor.Err()
}
