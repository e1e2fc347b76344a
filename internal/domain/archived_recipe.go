package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArchivedRecipe is an independent copy of a deleted recipe, kept as a
// write-only audit trail. It is never updated or read back by the API.
type ArchivedRecipe struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Instructions string             `bson:"instructions" json:"instructions"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	ArchivedAt   time.Time          `bson:"archived_at" json:"archivedAt"`
}

// NewArchivedRecipe copies a recipe into its archival form.
func NewArchivedRecipe(r *Recipe, archivedAt time.Time) *ArchivedRecipe {
	return &ArchivedRecipe{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Author:       r.Author,
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
		ArchivedAt:   archivedAt,
	}
}
