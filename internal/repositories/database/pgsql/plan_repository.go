package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	"github.com/SscSPs/adaptation_plan_app/internal/models"
	"github.com/SscSPs/adaptation_plan_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlanRepository struct {
	BaseRepository
}

func newPgxPlanRepository(pool *pgxpool.Pool) portsrepo.PlanRepositoryWithTx {
	return &PgxPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPlanRepository implements portsrepo.PlanRepositoryWithTx
var _ portsrepo.PlanRepositoryWithTx = (*PgxPlanRepository)(nil)

const planColumns = `
	p.plan_id, p.employee_id, p.supervisor_id, p.hr_id, p.position_id, p.stage,
	p.adaptation_start, p.adaptation_end, p.completed, p.rate,
	ARRAY(SELECT t.task_id FROM tasks t WHERE t.plan_id = p.plan_id ORDER BY t.sort_order, t.created_at) AS task_ids,
	ARRAY(SELECT c.comment_id FROM comments c WHERE c.plan_id = p.plan_id ORDER BY c.created_at, c.comment_id) AS comment_ids,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

const planJoins = `
FROM plans p
JOIN users e ON e.user_id = p.employee_id
JOIN users s ON s.user_id = p.supervisor_id
JOIN users h ON h.user_id = p.hr_id
JOIN positions pos ON pos.position_id = p.position_id
`

var planDetailsSelectQuery = `SELECT` + planColumns + `,
	e.user_id, e.username, e.name, e.email, e.role,
	s.user_id, s.username, s.name, s.email, s.role,
	h.user_id, h.username, h.name, h.email, h.role,
	pos.position_id, pos.name, pos.description` + planJoins

func planDest(m *models.Plan) []any {
	return []any{
		&m.PlanID, &m.EmployeeID, &m.SupervisorID, &m.HRID, &m.PositionID, &m.Stage,
		&m.AdaptationStart, &m.AdaptationEnd, &m.Completed, &m.Rate,
		&m.TaskIDs, &m.CommentIDs,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

func userRefDest(m *models.User) []any {
	return []any{&m.UserID, &m.Username, &m.Name, &m.Email, &m.Role}
}

func scanPlanDetails(row pgx.Row) (domain.PlanDetails, error) {
	var (
		plan                 models.Plan
		employee, sup, hrRef models.User
		position             models.Position
	)
	dest := planDest(&plan)
	dest = append(dest, userRefDest(&employee)...)
	dest = append(dest, userRefDest(&sup)...)
	dest = append(dest, userRefDest(&hrRef)...)
	dest = append(dest, &position.PositionID, &position.Name, &position.Description)
	if err := row.Scan(dest...); err != nil {
		return domain.PlanDetails{}, err
	}
	return domain.PlanDetails{
		Plan:       mapping.ToDomainPlan(plan),
		Employee:   mapping.ToDomainUser(employee),
		Supervisor: mapping.ToDomainUser(sup),
		HR:         mapping.ToDomainUser(hrRef),
		Position:   mapping.ToDomainPosition(position),
	}, nil
}

func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.PlanDetails, error) {
	details, err := scanPlanDetails(r.Pool.QueryRow(ctx, planDetailsSelectQuery+"WHERE p.plan_id = $1", planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}
	return &details, nil
}

// planFilterClause builds the WHERE clause shared by the page and count queries.
func planFilterClause(filter domain.PlanFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.ParticipantID != "" {
		args = append(args, filter.ParticipantID)
		switch filter.ParticipantRole {
		case domain.RoleEmployee:
			conds = append(conds, fmt.Sprintf("p.employee_id = $%d", len(args)))
		case domain.RoleSupervisor:
			conds = append(conds, fmt.Sprintf("p.supervisor_id = $%d", len(args)))
		default:
			conds = append(conds, fmt.Sprintf("$%d IN (p.employee_id, p.supervisor_id, p.hr_id)", len(args)))
		}
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(e.name ILIKE $%d OR s.name ILIKE $%d OR pos.name ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND ") + "\n", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern (backslash is the default escape).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *PgxPlanRepository) FindPlans(ctx context.Context, filter domain.PlanFilter) ([]domain.PlanDetails, int, error) {
	where, args := planFilterClause(filter)

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT count(*)"+planJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	pageArgs := append(append([]any{}, args...), limit, max(filter.Offset, 0))
	query := planDetailsSelectQuery + where +
		fmt.Sprintf("ORDER BY p.created_at DESC, p.plan_id LIMIT $%d OFFSET $%d", len(pageArgs)-1, len(pageArgs))

	rows, err := r.Pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.PlanDetails{}
	for rows.Next() {
		details, err := scanPlanDetails(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, details)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating plan rows: %w", rows.Err())
	}
	return plans, total, nil
}

func (r *PgxPlanRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	m := mapping.ToModelPlan(plan)
	query := `
		INSERT INTO plans (
			plan_id, employee_id, supervisor_id, hr_id, position_id, stage,
			adaptation_start, adaptation_end, completed, rate,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PlanID, m.EmployeeID, m.SupervisorID, m.HRID, m.PositionID, m.Stage,
		m.AdaptationStart, m.AdaptationEnd, m.Completed, m.Rate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "plan "+plan.PlanID)
	}
	return nil
}

// UpdatePlanLocked holds a row lock on the plan while mutate runs, so concurrent
// updates of the same plan are applied one after another against fresh state.
func (r *PgxPlanRepository) UpdatePlanLocked(ctx context.Context, planID string, mutate portsrepo.PlanMutator) (*domain.Plan, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	var current models.Plan
	err = tx.QueryRow(ctx, "SELECT"+planColumns+"\nFROM plans p WHERE p.plan_id = $1 FOR UPDATE", planID).
		Scan(planDest(&current)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock plan %s: %w", planID, err)
	}

	updated, err := mutate(mapping.ToDomainPlan(current))
	if err != nil {
		return nil, err
	}
	updated.PlanID = current.PlanID

	m := mapping.ToModelPlan(updated)
	query := `
		UPDATE plans
		SET employee_id = $1, supervisor_id = $2, hr_id = $3, position_id = $4, stage = $5,
		    adaptation_start = $6, adaptation_end = $7, completed = $8, rate = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE plan_id = $12;
	`
	_, err = tx.Exec(ctx, query,
		m.EmployeeID, m.SupervisorID, m.HRID, m.PositionID, m.Stage,
		m.AdaptationStart, m.AdaptationEnd, m.Completed, m.Rate,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PlanID,
	)
	if err != nil {
		return nil, translateWriteError(err, "plan "+planID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PgxPlanRepository) DeletePlan(ctx context.Context, planID string) error {
	cmdTag, err := r.Pool.Exec(ctx, "DELETE FROM plans WHERE plan_id = $1", planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", planID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
