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

type PgxPositionRepository struct {
	BaseRepository
}

func newPgxPositionRepository(pool *pgxpool.Pool) portsrepo.PositionRepositoryFacade {
	return &PgxPositionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PositionRepositoryFacade = (*PgxPositionRepository)(nil)

const positionSelectQuery = `
SELECT position_id, name, description, created_at, created_by, last_updated_at, last_updated_by
FROM positions
`

func scanPosition(row pgx.Row) (domain.Position, error) {
	var m models.Position
	err := row.Scan(&m.PositionID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainPosition(m), err
}

func (r *PgxPositionRepository) FindPositionByID(ctx context.Context, positionID string) (*domain.Position, error) {
	position, err := scanPosition(r.Pool.QueryRow(ctx, positionSelectQuery+"WHERE position_id = $1", positionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find position %s: %w", positionID, err)
	}
	return &position, nil
}

func (r *PgxPositionRepository) ListPositions(ctx context.Context) ([]domain.Position, error) {
	rows, err := r.Pool.Query(ctx, positionSelectQuery+"ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := []domain.Position{}
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position row: %w", err)
		}
		positions = append(positions, position)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating position rows: %w", rows.Err())
	}
	return positions, nil
}

func (r *PgxPositionRepository) SavePosition(ctx context.Context, position domain.Position) error {
	m := mapping.ToModelPosition(position)
	query := `
		INSERT INTO positions (position_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.PositionID, m.Name, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "position "+position.Name)
	}
	return nil
}
