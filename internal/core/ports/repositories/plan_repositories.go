package repositories

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// PlanMutator computes the new state of a locked plan. Returning an error
// aborts the surrounding transaction and leaves the stored plan untouched.
type PlanMutator func(current domain.Plan) (domain.Plan, error)

// PlanReader defines read operations for plan data
type PlanReader interface {
	// FindPlanByID retrieves a plan with its references resolved.
	FindPlanByID(ctx context.Context, planID string) (*domain.PlanDetails, error)

	// FindPlans retrieves one page of resolved plans matching the filter and the total match count.
	FindPlans(ctx context.Context, filter domain.PlanFilter) ([]domain.PlanDetails, int, error)
}

// PlanWriter defines write operations for plan data
type PlanWriter interface {
	// SavePlan persists a new plan.
	SavePlan(ctx context.Context, plan domain.Plan) error

	// UpdatePlanLocked locks the plan row, applies mutate and writes the result
	// in a single transaction.
	UpdatePlanLocked(ctx context.Context, planID string, mutate PlanMutator) (*domain.Plan, error)

	// DeletePlan removes a plan together with its tasks and comments.
	DeletePlan(ctx context.Context, planID string) error
}

// PlanRepositoryFacade combines all plan-related repository interfaces
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}

// PlanRepositoryWithTx extends PlanRepositoryFacade with transaction capabilities
type PlanRepositoryWithTx interface {
	PlanRepositoryFacade
	TransactionManager
}
