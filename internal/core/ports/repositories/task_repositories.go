package repositories

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// TaskReader defines read operations for plan tasks
type TaskReader interface {
	// FindTaskByID retrieves a task belonging to the given plan.
	FindTaskByID(ctx context.Context, planID, taskID string) (*domain.Task, error)

	// FindTasksByPlanID retrieves a plan's tasks in display order.
	FindTasksByPlanID(ctx context.Context, planID string) ([]domain.Task, error)
}

// TaskWriter defines write operations for plan tasks
type TaskWriter interface {
	// SaveTask persists a new task, appending it after the plan's existing tasks.
	SaveTask(ctx context.Context, task *domain.Task) error

	// UpdateTask updates an existing task.
	UpdateTask(ctx context.Context, task domain.Task) error

	// DeleteTask removes a task from its plan.
	DeleteTask(ctx context.Context, planID, taskID string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
