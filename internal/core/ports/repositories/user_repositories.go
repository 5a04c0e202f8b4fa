package repositories

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// UserFilter narrows a user listing.
type UserFilter struct {
	Role   *domain.Role
	Search string
	Limit  int
	Offset int
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a specific user by their login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a paginated, optionally filtered list of users.
	FindUsers(ctx context.Context, filter UserFilter) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
