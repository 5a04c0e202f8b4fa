package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	"github.com/SscSPs/adaptation_plan_app/internal/models"
	"github.com/SscSPs/adaptation_plan_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(pool *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) FindCommentsByPlanID(ctx context.Context, planID string) ([]domain.CommentDetails, error) {
	query := `
		SELECT c.comment_id, c.plan_id, c.author_id, c.text, c.created_at,
		       u.user_id, u.username, u.name, u.email, u.role
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.plan_id = $1
		ORDER BY c.created_at, c.comment_id;
	`
	rows, err := r.Pool.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentDetails{}
	for rows.Next() {
		var c models.Comment
		var author models.User
		dest := append([]any{&c.CommentID, &c.PlanID, &c.AuthorID, &c.Text, &c.CreatedAt}, userRefDest(&author)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, domain.CommentDetails{
			Comment: mapping.ToDomainComment(c),
			Author:  mapping.ToDomainUser(author),
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	_, err := r.Pool.Exec(ctx,
		"INSERT INTO comments (comment_id, plan_id, author_id, text, created_at) VALUES ($1, $2, $3, $4, $5);",
		m.CommentID, m.PlanID, m.AuthorID, m.Text, m.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "comment "+comment.CommentID)
	}
	return nil
}
