package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is the domain model for a published recipe.
// Author references a User by id; the reference is not checked at write time.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Instructions string             `bson:"instructions" json:"instructions"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// RecipeUpdate describes a partial field overwrite. Nil fields stay untouched.
type RecipeUpdate struct {
	Title        *string
	Description  *string
	Ingredients  *[]string
	Instructions *string
	Author       *primitive.ObjectID
}

// RecipeWithAuthor pairs a recipe with its resolved author.
// Author is nil when the referenced user no longer exists.
type RecipeWithAuthor struct {
	Recipe Recipe
	Author *User
}

// Validate checks the declarative field constraints for a Recipe.
func (r *Recipe) Validate() Violations {
	v := Violations{}
	switch {
	case r.Title == "":
		v.Add("title", "title is required")
	case len(r.Title) < 3:
		v.Add("title", "title must be at least 3 characters")
	}
	if r.Ingredients == nil {
		v.Add("ingredients", "ingredients are required")
	}
	if r.Instructions == "" {
		v.Add("instructions", "instructions are required")
	}
	if r.Author.IsZero() {
		v.Add("author", "author is required")
	}
	return v
}

// Apply merges a partial update into a copy of the recipe.
func (r Recipe) Apply(update RecipeUpdate) Recipe {
	if update.Title != nil {
		r.Title = *update.Title
	}
	if update.Description != nil {
		r.Description = *update.Description
	}
	if update.Ingredients != nil {
		r.Ingredients = *update.Ingredients
	}
	if update.Instructions != nil {
		r.Instructions = *update.Instructions
	}
	if update.Author != nil {
		r.Author = *update.Author
	}
	return r
}
