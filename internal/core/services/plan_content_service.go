package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/google/uuid"
)

// writablePlan loads a plan and checks the actor may change its content.
func (s *PlanService) writablePlan(ctx context.Context, actor domain.Actor, planID string) (*domain.PlanDetails, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(actor, plan.Plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) ListPlanTasks(ctx context.Context, planID string) ([]domain.Task, error) {
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.FindTasksByPlanID(ctx, planID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to list tasks of plan %s: %w", planID, err)
	}
	return tasks, nil
}

func (s *PlanService) AddTask(ctx context.Context, actor domain.Actor, planID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	if _, err := s.writablePlan(ctx, actor, planID); err != nil {
		return nil, err
	}

	now := s.now()
	task := domain.Task{
		TaskID:      uuid.NewString(),
		PlanID:      planID,
		Name:        req.Name,
		Description: req.Description,
		Result:      req.Result,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.taskRepo.SaveTask(ctx, &task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to add task to plan %s: %w", planID, err)
	}
	s.LogInfo(ctx, "Task added", slog.String("plan_id", planID), slog.String("task_id", task.TaskID))
	return &task, nil
}

func (s *PlanService) UpdateTask(ctx context.Context, actor domain.Actor, planID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	if _, err := s.writablePlan(ctx, actor, planID); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.FindTaskByID(ctx, planID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Result != nil {
		task.Result = *req.Result
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}
	task.LastUpdatedAt = s.now()
	task.LastUpdatedBy = actor.UserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *PlanService) DeleteTask(ctx context.Context, actor domain.Actor, planID, taskID string) error {
	if err := s.RequireRole(ctx, actor, "delete tasks", domain.RoleSupervisor, domain.RoleHR); err != nil {
		return err
	}
	if _, err := s.writablePlan(ctx, actor, planID); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, planID, taskID); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	s.LogInfo(ctx, "Task deleted", slog.String("plan_id", planID), slog.String("task_id", taskID))
	return nil
}

func (s *PlanService) ListPlanComments(ctx context.Context, planID string) ([]domain.CommentDetails, error) {
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindCommentsByPlanID(ctx, planID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list comments", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to list comments of plan %s: %w", planID, err)
	}
	return comments, nil
}

func (s *PlanService) AddComment(ctx context.Context, actor domain.Actor, planID string, req dto.CreateCommentRequest) (*domain.CommentDetails, error) {
	if _, err := s.writablePlan(ctx, actor, planID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment author %s: %w", actor.UserID, err)
	}

	comment := domain.Comment{
		CommentID: uuid.NewString(),
		PlanID:    planID,
		AuthorID:  actor.UserID,
		Text:      req.Text,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to save comment", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to comment on plan %s: %w", planID, err)
	}
	return &domain.CommentDetails{Comment: comment, Author: *author}, nil
}
