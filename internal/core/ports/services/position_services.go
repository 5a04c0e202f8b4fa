package services

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
)

// PositionSvcFacade defines operations on positions
type PositionSvcFacade interface {
	GetPosition(ctx context.Context, positionID string) (*domain.Position, error)
	ListPositions(ctx context.Context) ([]domain.Position, error)
	CreatePosition(ctx context.Context, actor domain.Actor, req dto.CreatePositionRequest) (*domain.Position, error)
}
