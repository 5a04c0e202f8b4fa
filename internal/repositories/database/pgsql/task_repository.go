package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	"github.com/SscSPs/adaptation_plan_app/internal/models"
	"github.com/SscSPs/adaptation_plan_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskSelectQuery = `
SELECT task_id, plan_id, name, description, result, completed, sort_order,
       created_at, created_by, last_updated_at, last_updated_by
FROM tasks
`

func scanTask(row pgx.Row) (domain.Task, error) {
	var m models.Task
	err := row.Scan(
		&m.TaskID, &m.PlanID, &m.Name, &m.Description, &m.Result, &m.Completed, &m.SortOrder,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return mapping.ToDomainTask(m), err
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, planID, taskID string) (*domain.Task, error) {
	task, err := scanTask(r.Pool.QueryRow(ctx, taskSelectQuery+"WHERE plan_id = $1 AND task_id = $2", planID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) FindTasksByPlanID(ctx context.Context, planID string) ([]domain.Task, error) {
	rows, err := r.Pool.Query(ctx, taskSelectQuery+"WHERE plan_id = $1 ORDER BY sort_order, created_at", planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	m := mapping.ToModelTask(*task)
	query := `
		INSERT INTO tasks (
			task_id, plan_id, name, description, result, completed, sort_order,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6,
		        (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM tasks WHERE plan_id = $2),
		        $7, $8, $9, $10)
		RETURNING sort_order;
	`
	var sortOrder int32
	err := r.Pool.QueryRow(ctx, query,
		m.TaskID, m.PlanID, m.Name, m.Description, m.Result, m.Completed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&sortOrder)
	if err != nil {
		return translateWriteError(err, "task "+task.TaskID)
	}
	task.SortOrder = int(sortOrder)
	return nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	m := mapping.ToModelTask(task)
	query := `
		UPDATE tasks
		SET name = $1, description = $2, result = $3, completed = $4, sort_order = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE plan_id = $8 AND task_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Description, m.Result, m.Completed, m.SortOrder,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PlanID, m.TaskID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, planID, taskID string) error {
	cmdTag, err := r.Pool.Exec(ctx, "DELETE FROM tasks WHERE plan_id = $1 AND task_id = $2", planID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
