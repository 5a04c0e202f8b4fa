package domain

import "time"

// Comment is a note left on a plan by one of its participants.
type Comment struct {
	CommentID string    `json:"commentID"`
	PlanID    string    `json:"planID"`
	AuthorID  string    `json:"authorID"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentDetails is a comment with its author resolved.
type CommentDetails struct {
	Comment
	Author User
}
