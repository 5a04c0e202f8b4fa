package models

import "time"

// Comment represents a row of the comments table.
type Comment struct {
	CommentID string    `db:"comment_id"`
	PlanID    string    `db:"plan_id"`
	AuthorID  string    `db:"author_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
