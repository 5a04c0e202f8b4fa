package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultPlanPageSize = 10
	maxPlanPageSize     = 100
)

// PlanService implements portssvc.PlanSvcFacade.
type PlanService struct {
	BaseService
	planRepo     portsrepo.PlanRepositoryWithTx
	taskRepo     portsrepo.TaskRepositoryFacade
	commentRepo  portsrepo.CommentRepositoryFacade
	userRepo     portsrepo.UserReader
	positionRepo portsrepo.PositionReader
}

// NewPlanService creates a new PlanService.
func NewPlanService(
	planRepo portsrepo.PlanRepositoryWithTx,
	taskRepo portsrepo.TaskRepositoryFacade,
	commentRepo portsrepo.CommentRepositoryFacade,
	userRepo portsrepo.UserReader,
	positionRepo portsrepo.PositionReader,
) *PlanService {
	return &PlanService{
		BaseService:  newBaseService(),
		planRepo:     planRepo,
		taskRepo:     taskRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		positionRepo: positionRepo,
	}
}

var _ portssvc.PlanSvcFacade = (*PlanService)(nil)

func (s *PlanService) GetPlan(ctx context.Context, planID string) (*domain.PlanDetails, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get plan", slog.String("plan_id", planID))
		}
		return nil, fmt.Errorf("failed to get plan %s: %w", planID, err)
	}
	return plan, nil
}

func (s *PlanService) ListPlans(ctx context.Context, actor domain.Actor, params dto.ListPlansParams) (*dto.ListPlansResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultPlanPageSize
	}
	params.Limit = min(params.Limit, maxPlanPageSize)

	filter := domain.PlanFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: pagination.Offset(params.Page, params.Limit),
	}
	if actor.Role != domain.RoleHR {
		filter.ParticipantID = actor.UserID
		filter.ParticipantRole = actor.Role
	}

	plans, total, err := s.planRepo.FindPlans(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list plans", slog.String("user_id", actor.UserID))
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	resp := dto.ToListPlansResponse(plans, total, params, actor.Role)
	return &resp, nil
}

func (s *PlanService) CreatePlan(ctx context.Context, actor domain.Actor, req dto.CreatePlanRequest) (*domain.PlanDetails, error) {
	if err := s.RequireRole(ctx, actor, "create plans", domain.RoleHR); err != nil {
		return nil, err
	}
	if req.AdaptationStart == nil {
		return nil, fmt.Errorf("%w: adaptationStart is required", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, req.EmployeeID, req.SupervisorID, req.PositionID); err != nil {
		return nil, err
	}

	start := dto.NewDate(req.AdaptationStart.Time).Time
	end := start.AddDate(0, domain.DefaultAdaptationPeriod, 0)
	if req.AdaptationEnd != nil {
		end = dto.NewDate(req.AdaptationEnd.Time).Time
	}

	now := s.now()
	plan := domain.Plan{
		PlanID:          uuid.NewString(),
		EmployeeID:      req.EmployeeID,
		SupervisorID:    req.SupervisorID,
		HRID:            actor.UserID,
		PositionID:      req.PositionID,
		Stage:           domain.StageEmployeeFilling,
		AdaptationStart: start,
		AdaptationEnd:   end,
		Completed:       false,
		Rate:            domain.RateAbsent,
		TaskIDs:         []string{},
		CommentIDs:      []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to save plan", slog.String("plan_id", plan.PlanID))
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	s.LogInfo(ctx, "Plan created",
		slog.String("plan_id", plan.PlanID),
		slog.String("employee_id", plan.EmployeeID))

	return s.GetPlan(ctx, plan.PlanID)
}

func (s *PlanService) UpdatePlan(ctx context.Context, actor domain.Actor, planID string, req dto.UpdatePlanRequest) (*domain.PlanDetails, error) {
	if err := s.RequireRole(ctx, actor, "edit plans", domain.RoleSupervisor, domain.RoleHR); err != nil {
		return nil, err
	}
	if req.AdaptationStart == nil || req.AdaptationEnd == nil {
		return nil, fmt.Errorf("%w: adaptationStart and adaptationEnd are required", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, req.EmployeeID, req.SupervisorID, req.PositionID); err != nil {
		return nil, err
	}

	_, err := s.planRepo.UpdatePlanLocked(ctx, planID, func(current domain.Plan) (domain.Plan, error) {
		if err := s.requireParticipant(actor, current); err != nil {
			return current, err
		}
		next := current
		if req.Stage != nil {
			dir, changed, err := domain.DirectionBetween(current.Stage, domain.Stage(*req.Stage))
			if err != nil {
				return current, err
			}
			if changed {
				if next, err = current.Transition(actor.Role, dir); err != nil {
					return current, err
				}
			}
		}

		next.EmployeeID = req.EmployeeID
		next.SupervisorID = req.SupervisorID
		next.PositionID = req.PositionID
		next.AdaptationStart = dto.NewDate(req.AdaptationStart.Time).Time
		next.AdaptationEnd = dto.NewDate(req.AdaptationEnd.Time).Time
		if req.Completed != nil {
			next.Completed = *req.Completed
		}
		if req.Rate != nil {
			next.Rate = *req.Rate
		}
		next.LastUpdatedAt = s.now()
		next.LastUpdatedBy = actor.UserID
		return next, nil
	})
	if err != nil {
		s.logWriteFailure(ctx, err, "Failed to update plan", planID)
		return nil, fmt.Errorf("failed to update plan %s: %w", planID, err)
	}

	s.LogInfo(ctx, "Plan updated", slog.String("plan_id", planID))
	return s.GetPlan(ctx, planID)
}

func (s *PlanService) DeletePlan(ctx context.Context, actor domain.Actor, planID string) error {
	if err := s.RequireRole(ctx, actor, "delete plans", domain.RoleSupervisor, domain.RoleHR); err != nil {
		return err
	}
	if actor.Role != domain.RoleHR {
		plan, err := s.planRepo.FindPlanByID(ctx, planID)
		if err != nil {
			return fmt.Errorf("failed to delete plan %s: %w", planID, err)
		}
		if err := s.requireParticipant(actor, plan.Plan); err != nil {
			return err
		}
	}
	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		s.logWriteFailure(ctx, err, "Failed to delete plan", planID)
		return fmt.Errorf("failed to delete plan %s: %w", planID, err)
	}
	s.LogInfo(ctx, "Plan deleted", slog.String("plan_id", planID))
	return nil
}

func (s *PlanService) TransitionPlan(ctx context.Context, actor domain.Actor, planID string, dir domain.Direction, expectedStage *domain.Stage) (*domain.PlanDetails, error) {
	if _, err := domain.ParseDirection(string(dir)); err != nil {
		return nil, err
	}

	var from domain.Stage
	updated, err := s.planRepo.UpdatePlanLocked(ctx, planID, func(current domain.Plan) (domain.Plan, error) {
		if err := s.requireParticipant(actor, current); err != nil {
			return current, err
		}
		if expectedStage != nil && current.Stage != *expectedStage {
			return current, fmt.Errorf("%w: plan is at stage %d, expected %d", apperrors.ErrConflict, current.Stage, *expectedStage)
		}
		next, err := current.Transition(actor.Role, dir)
		if err != nil {
			return current, err
		}
		from = current.Stage
		next.LastUpdatedAt = s.now()
		next.LastUpdatedBy = actor.UserID
		return next, nil
	})
	if err != nil {
		s.logWriteFailure(ctx, err, "Failed to transition plan", planID)
		return nil, fmt.Errorf("failed to %s plan %s: %w", dir, planID, err)
	}

	s.LogInfo(ctx, "Plan stage changed",
		slog.String("plan_id", planID),
		slog.Int("from", int(from)),
		slog.Int("to", int(updated.Stage)))
	return s.GetPlan(ctx, planID)
}

// checkReferences verifies that the named users exist in the expected roles
// and that the position exists.
func (s *PlanService) checkReferences(ctx context.Context, employeeID, supervisorID, positionID string) error {
	if err := s.checkUserRole(ctx, "employee", employeeID, domain.RoleEmployee); err != nil {
		return err
	}
	if err := s.checkUserRole(ctx, "supervisor", supervisorID, domain.RoleSupervisor); err != nil {
		return err
	}
	if _, err := s.positionRepo.FindPositionByID(ctx, positionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: position %s does not exist", apperrors.ErrValidation, positionID)
		}
		return fmt.Errorf("failed to look up position %s: %w", positionID, err)
	}
	return nil
}

func (s *PlanService) checkUserRole(ctx context.Context, field, userID string, role domain.Role) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, field, userID)
		}
		return fmt.Errorf("failed to look up %s %s: %w", field, userID, err)
	}
	if user.Role != role {
		return fmt.Errorf("%w: %s %s has role %q", apperrors.ErrValidation, field, userID, user.Role)
	}
	return nil
}

// requireParticipant lets hr act on any plan; everyone else must be named on it.
func (s *PlanService) requireParticipant(actor domain.Actor, plan domain.Plan) error {
	if actor.Role == domain.RoleHR || plan.IsParticipant(actor.UserID) {
		return nil
	}
	return fmt.Errorf("%w: user %s is not a participant of plan %s", apperrors.ErrPermissionDenied, actor.UserID, plan.PlanID)
}

// logWriteFailure logs unexpected failures; expected client errors are left to the handler.
func (s *PlanService) logWriteFailure(ctx context.Context, err error, msg, planID string) {
	for _, expected := range []error{
		apperrors.ErrNotFound, apperrors.ErrValidation, apperrors.ErrPermissionDenied,
		apperrors.ErrInvalidState, apperrors.ErrConflict,
	} {
		if errors.Is(err, expected) {
			s.LogDebug(ctx, msg, slog.String("plan_id", planID), slog.String("reason", err.Error()))
			return
		}
	}
	s.LogError(ctx, err, msg, slog.String("plan_id", planID))
}
