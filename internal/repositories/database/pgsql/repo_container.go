package pgsql

import (
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PlanRepo:     newPgxPlanRepository(dbPool),
		TaskRepo:     newPgxTaskRepository(dbPool),
		CommentRepo:  newPgxCommentRepository(dbPool),
		PositionRepo: newPgxPositionRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
