package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name   string
		user   User
		fields []string
	}{
		{"valid", User{Name: "Alice", Email: "alice@example.com"}, nil},
		{"name too short", User{Name: "Al", Email: "alice@example.com"}, []string{"name"}},
		{"name missing", User{Email: "alice@example.com"}, []string{"name"}},
		{"email missing", User{Name: "Alice"}, []string{"email"}},
		{"email malformed", User{Name: "Alice", Email: "nope"}, []string{"email"}},
		{"email with spaces", User{Name: "Alice", Email: "a b@example.com"}, []string{"email"}},
		{"both invalid", User{}, []string{"name", "email"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			violations := tc.user.Validate()
			assert.Len(t, violations, len(tc.fields))
			for _, field := range tc.fields {
				assert.Contains(t, violations, field)
			}
		})
	}
}

func TestRecipeValidate(t *testing.T) {
	author := primitive.NewObjectID()
	valid := Recipe{
		Title:        "Chocolate Cake",
		Ingredients:  []string{"flour"},
		Instructions: "bake",
		Author:       author,
	}

	assert.True(t, valid.Validate().OK())

	// empty ingredient list is allowed, a missing one is not
	withEmpty := valid
	withEmpty.Ingredients = []string{}
	assert.True(t, withEmpty.Validate().OK())

	missing := valid
	missing.Ingredients = nil
	assert.Contains(t, missing.Validate(), "ingredients")

	shortTitle := valid
	shortTitle.Title = "ab"
	assert.Contains(t, shortTitle.Validate(), "title")

	noInstructions := valid
	noInstructions.Instructions = ""
	assert.Contains(t, noInstructions.Validate(), "instructions")

	noAuthor := valid
	noAuthor.Author = primitive.NilObjectID
	assert.Contains(t, noAuthor.Validate(), "author")
}

func TestRecipeApplyMergesOnlyProvidedFields(t *testing.T) {
	original := Recipe{
		Title:        "Chocolate Cake",
		Description:  "dark",
		Ingredients:  []string{"flour"},
		Instructions: "bake",
		Author:       primitive.NewObjectID(),
	}

	title := "Carrot Cake"
	merged := original.Apply(RecipeUpdate{Title: &title})

	assert.Equal(t, "Carrot Cake", merged.Title)
	assert.Equal(t, original.Description, merged.Description)
	assert.Equal(t, original.Ingredients, merged.Ingredients)
	assert.Equal(t, original.Instructions, merged.Instructions)
	assert.Equal(t, original.Author, merged.Author)
}
