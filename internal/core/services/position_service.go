package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/google/uuid"
)

// PositionService manages the positions plans are created for.
type PositionService struct {
	BaseService
	positionRepo portsrepo.PositionRepositoryFacade
}

func NewPositionService(positionRepo portsrepo.PositionRepositoryFacade) *PositionService {
	return &PositionService{BaseService: newBaseService(), positionRepo: positionRepo}
}

var _ portssvc.PositionSvcFacade = (*PositionService)(nil)

func (s *PositionService) GetPosition(ctx context.Context, positionID string) (*domain.Position, error) {
	position, err := s.positionRepo.FindPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get position %s: %w", positionID, err)
	}
	return position, nil
}

func (s *PositionService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	positions, err := s.positionRepo.ListPositions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list positions")
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

func (s *PositionService) CreatePosition(ctx context.Context, actor domain.Actor, req dto.CreatePositionRequest) (*domain.Position, error) {
	if err := s.RequireRole(ctx, actor, "create positions", domain.RoleHR); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: position name is required", apperrors.ErrValidation)
	}

	now := s.now()
	position := domain.Position{
		PositionID:  uuid.NewString(),
		Name:        name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.positionRepo.SavePosition(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	s.LogInfo(ctx, "Position created", slog.String("position_id", position.PositionID))
	return &position, nil
}
