package entity

import (
	"context"
	"time"
)

// CollabSubmission is an append-only collaboration idea. Rows are never
// mutated or deleted after insert.
type CollabSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	IdeaType    string    `json:"idea_type"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Timestamp   time.Time `json:"timestamp"`
}

type SubmissionRepositoryInterface interface {
	Insert(ctx context.Context, s *CollabSubmission) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]CollabSubmission, error)
}
