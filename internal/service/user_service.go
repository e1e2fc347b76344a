package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/recipe-directory/internal/domain"
	"github.com/spec-kit/recipe-directory/internal/repository"
	"github.com/spec-kit/recipe-directory/pkg/util"
)

// UserService coordinates user workflows.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create validates and persists a new user. Email uniqueness is enforced by
// the store's unique index and surfaced as a validation failure.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if violations := user.Validate(); !violations.OK() {
		return nil, util.NewValidationError("user validation failed", violations.Details())
	}

	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, util.NewValidationError("email already registered", map[string]any{"email": email})
		}
		return nil, err
	}
	return user, nil
}
