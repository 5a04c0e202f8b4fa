package services

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
)

// PlanReaderSvc defines read operations for plans
type PlanReaderSvc interface {
	// GetPlan retrieves a plan with its references resolved.
	GetPlan(ctx context.Context, planID string) (*domain.PlanDetails, error)

	// ListPlans retrieves a page of plans visible to the actor.
	ListPlans(ctx context.Context, actor domain.Actor, params dto.ListPlansParams) (*dto.ListPlansResponse, error)
}

// PlanWriterSvc defines write operations for plans
type PlanWriterSvc interface {
	// CreatePlan creates a plan owned by the acting hr user.
	CreatePlan(ctx context.Context, actor domain.Actor, req dto.CreatePlanRequest) (*domain.PlanDetails, error)

	// UpdatePlan applies a full-field edit on behalf of a supervisor or hr user.
	UpdatePlan(ctx context.Context, actor domain.Actor, planID string, req dto.UpdatePlanRequest) (*domain.PlanDetails, error)

	// DeletePlan removes a plan on behalf of a supervisor or hr user.
	DeletePlan(ctx context.Context, actor domain.Actor, planID string) error
}

// PlanWorkflowSvc defines stage transitions
type PlanWorkflowSvc interface {
	// TransitionPlan moves a plan one stage in dir. When expectedStage is not
	// nil the transition only applies if the stored stage still equals it.
	TransitionPlan(ctx context.Context, actor domain.Actor, planID string, dir domain.Direction, expectedStage *domain.Stage) (*domain.PlanDetails, error)
}

// PlanContentSvc defines operations on a plan's tasks and comments
type PlanContentSvc interface {
	ListPlanTasks(ctx context.Context, planID string) ([]domain.Task, error)
	AddTask(ctx context.Context, actor domain.Actor, planID string, req dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, planID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor domain.Actor, planID, taskID string) error

	ListPlanComments(ctx context.Context, planID string) ([]domain.CommentDetails, error)
	AddComment(ctx context.Context, actor domain.Actor, planID string, req dto.CreateCommentRequest) (*domain.CommentDetails, error)
}

// PlanSvcFacade combines all plan-related service interfaces
type PlanSvcFacade interface {
	PlanReaderSvc
	PlanWriterSvc
	PlanWorkflowSvc
	PlanContentSvc
}
