package dto

import (
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"required,plan_role"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role   string `form:"role" binding:"omitempty,plan_role"`
	Search string `form:"search" binding:"max=200"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// UserResponse defines the visible data of a user. Credentials are never included.
type UserResponse struct {
	UserID    string      `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     string      `json:"email,omitempty"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
