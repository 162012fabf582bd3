package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Insert appends a submission with a server-assigned timestamp and returns
// the generated row id.
func (r *SubmissionRepository) Insert(ctx context.Context, s *entity.CollabSubmission) (int64, error) {
	query := `
		INSERT INTO collab_submissions (name, idea_type, description, priority)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.DB.ExecContext(ctx, query, s.Name, s.IdeaType, s.Description, s.Priority)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.ID = id

	return id, nil
}

// ListRecent returns the newest submissions first, capped at limit. The id
// tiebreak keeps the order deterministic when timestamps collide within the
// same second.
func (r *SubmissionRepository) ListRecent(ctx context.Context, limit int) ([]entity.CollabSubmission, error) {
	query := `
		SELECT id, name, idea_type, description, priority, timestamp
		FROM collab_submissions
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []entity.CollabSubmission
	for rows.Next() {
		var s entity.CollabSubmission
		var ts string
		if err := rows.Scan(&s.ID, &s.Name, &s.IdeaType, &s.Description, &s.Priority, &ts); err != nil {
			return nil, err
		}
		s.Timestamp = parseTimestamp(ts)
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

// parseTimestamp handles the formats SQLite hands back for CURRENT_TIMESTAMP
// defaults ("2006-01-02 15:04:05") and for values written as RFC 3339.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02T15:04:05Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
