package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

func newSubmissionRepo(t *testing.T) *SubmissionRepository {
	t.Helper()

	db, err := NewDBConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSubmissionRepository(db)
}

func TestInsertReturnsGeneratedID(t *testing.T) {
	repo := newSubmissionRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, &entity.CollabSubmission{
		Name: "Dana", IdeaType: "feature", Description: "follow-up tracking", Priority: "high",
	})
	require.NoError(t, err)

	second, err := repo.Insert(ctx, &entity.CollabSubmission{
		Name: "Lee", IdeaType: "process", Description: "weekly report email", Priority: "low",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestListRecentCapsAtNewestTwenty(t *testing.T) {
	repo := newSubmissionRepo(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		_, err := repo.Insert(ctx, &entity.CollabSubmission{
			Name:        fmt.Sprintf("user-%d", i),
			IdeaType:    "feature",
			Description: fmt.Sprintf("idea %d", i),
			Priority:    "medium",
		})
		require.NoError(t, err)
	}

	submissions, err := repo.ListRecent(ctx, 20)
	require.NoError(t, err)
	require.Len(t, submissions, 20)

	// Newest first: ids 25 down to 6.
	assert.Equal(t, "user-25", submissions[0].Name)
	assert.Equal(t, "user-6", submissions[19].Name)
	for i := 1; i < len(submissions); i++ {
		assert.Greater(t, submissions[i-1].ID, submissions[i].ID)
	}
}

func TestListRecentTimestampAssigned(t *testing.T) {
	repo := newSubmissionRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &entity.CollabSubmission{
		Name: "Dana", IdeaType: "feature", Description: "x", Priority: "high",
	})
	require.NoError(t, err)

	submissions, err := repo.ListRecent(ctx, 20)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.False(t, submissions[0].Timestamp.IsZero())
}
