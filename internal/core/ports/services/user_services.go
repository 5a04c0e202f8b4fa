package services

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a filtered, paginated list of users.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user on behalf of an hr actor.
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password pair.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
