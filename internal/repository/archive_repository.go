package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/recipe-directory/internal/domain"
	"github.com/spec-kit/recipe-directory/internal/persistence"
)

// ArchiveRepository persists copies of deleted recipes. The archive is a
// write-only audit trail; no read path is exposed.
type ArchiveRepository interface {
	Create(ctx context.Context, archived *domain.ArchivedRecipe) error
}

type archiveRepository struct {
	coll *mongo.Collection
}

// NewArchiveRepository returns a Mongo-backed implementation.
func NewArchiveRepository(db *persistence.Mongo) ArchiveRepository {
	return &archiveRepository{coll: db.Database.Collection(persistence.ArchivesCollection)}
}

func (r *archiveRepository) Create(ctx context.Context, archived *domain.ArchivedRecipe) error {
	_, err := r.coll.InsertOne(ctx, archived)
	return err
}
