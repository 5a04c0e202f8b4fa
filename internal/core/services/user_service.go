package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/utils"
	"github.com/google/uuid"
)

// UserService provides business logic for user operations.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{BaseService: newBaseService(), userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	filter := portsrepo.UserFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Role != "" {
		role, err := domain.ParseRole(params.Role)
		if err != nil {
			return nil, err
		}
		filter.Role = &role
	}

	users, err := s.userRepo.FindUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.RequireRole(ctx, actor, "create users", domain.RoleHR); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: password cannot be hashed: %v", apperrors.ErrValidation, err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// AuthenticateUser returns apperrors.ErrUnauthorized for any unknown username or wrong password.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.BurnPasswordCheck(password)
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}
