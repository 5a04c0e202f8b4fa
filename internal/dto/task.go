package dto

import (
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// CreateTaskRequest defines data for adding a task to a plan.
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=4000"`
	Result      string `json:"result" binding:"max=4000"`
}

// UpdateTaskRequest defines the editable task fields. Omitted fields are kept.
type UpdateTaskRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=4000"`
	Result      *string `json:"result" binding:"omitempty,max=4000"`
	Completed   *bool   `json:"completed"`
	SortOrder   *int    `json:"sortOrder" binding:"omitempty,min=0"`
}

// TaskResponse defines data returned for a task.
type TaskResponse struct {
	TaskID      string    `json:"id"`
	PlanID      string    `json:"planId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Result      string    `json:"result"`
	Completed   bool      `json:"completed"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:      t.TaskID,
		PlanID:      t.PlanID,
		Name:        t.Name,
		Description: t.Description,
		Result:      t.Result,
		Completed:   t.Completed,
		SortOrder:   t.SortOrder,
		CreatedAt:   t.CreatedAt,
	}
}

// ToListTaskResponse converts a slice of domain.Task to DTOs.
func ToListTaskResponse(ts []domain.Task) []TaskResponse {
	list := make([]TaskResponse, len(ts))
	for i := range ts {
		list[i] = ToTaskResponse(&ts[i])
	}
	return list
}
