package dto

import (
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// CreateCommentRequest defines data for commenting on a plan.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// CommentResponse defines a comment with its author resolved.
type CommentResponse struct {
	CommentID string       `json:"id"`
	PlanID    string       `json:"planId"`
	Author    UserResponse `json:"author"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ToCommentResponse converts domain.CommentDetails to DTO.
func ToCommentResponse(c *domain.CommentDetails) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		PlanID:    c.PlanID,
		Author:    ToUserResponse(&c.Author),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

// ToListCommentResponse converts a slice of domain.CommentDetails to DTOs.
func ToListCommentResponse(cs []domain.CommentDetails) []CommentResponse {
	list := make([]CommentResponse, len(cs))
	for i := range cs {
		list[i] = ToCommentResponse(&cs[i])
	}
	return list
}
