package repositories

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// CommentRepositoryFacade defines operations for plan comments
type CommentRepositoryFacade interface {
	// FindCommentsByPlanID retrieves a plan's comments, oldest first, with authors resolved.
	FindCommentsByPlanID(ctx context.Context, planID string) ([]domain.CommentDetails, error)

	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error
}
