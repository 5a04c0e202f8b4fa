package repositories

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// PositionReader defines read operations for position data
type PositionReader interface {
	// FindPositionByID retrieves a specific position by its ID.
	FindPositionByID(ctx context.Context, positionID string) (*domain.Position, error)

	// ListPositions retrieves all positions ordered by name.
	ListPositions(ctx context.Context) ([]domain.Position, error)
}

// PositionWriter defines write operations for position data
type PositionWriter interface {
	// SavePosition persists a new position.
	SavePosition(ctx context.Context, position domain.Position) error
}

// PositionRepositoryFacade combines all position-related repository interfaces
type PositionRepositoryFacade interface {
	PositionReader
	PositionWriter
}
