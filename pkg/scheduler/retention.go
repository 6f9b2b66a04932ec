package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	entmatch "github.com/reddalert/reddalert/ent/match"
)

// RetentionResult reports what the cleanup removed.
type RetentionResult struct {
	MatchesDeleted int `json:"matches_deleted"`
	ContentDeleted int `json:"content_deleted"`
}

// CleanupOldData permanently deletes matches and content older than
// retentionDays. Matches go first since they reference content.
func CleanupOldData(ctx context.Context, db *ent.Client, retentionDays int) (RetentionResult, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	matchesDeleted, err := db.Match.Delete().
		Where(entmatch.DetectedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return RetentionResult{}, fmt.Errorf("failed to delete old matches: %w", err)
	}

	contentDeleted, err := db.ContentItem.Delete().
		Where(contentitem.FetchedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return RetentionResult{MatchesDeleted: matchesDeleted},
			fmt.Errorf("failed to delete old content: %w", err)
	}

	return RetentionResult{
		MatchesDeleted: matchesDeleted,
		ContentDeleted: contentDeleted,
	}, nil
}
