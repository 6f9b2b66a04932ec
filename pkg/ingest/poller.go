// Package ingest polls monitored communities, normalizes and
// deduplicates fetched content, and persists new items.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/pkg/normalize"
	"github.com/reddalert/reddalert/pkg/reddit"
)

// Poller fetches recent posts and comments for monitored communities
// and stores the ones not seen before.
type Poller struct {
	db         *ent.Client
	reddit     *reddit.Client
	fetchLimit int
	logger     *slog.Logger
}

// NewPoller creates a poller backed by the given upstream client.
func NewPoller(db *ent.Client, redditClient *reddit.Client, fetchLimit int) *Poller {
	if fetchLimit <= 0 {
		fetchLimit = 25
	}
	return &Poller{
		db:         db,
		reddit:     redditClient,
		fetchLimit: fetchLimit,
		logger:     slog.Default().With("component", "poller"),
	}
}

// PollCommunity fetches new posts and top-level comments for one
// community and persists the items that survive deduplication. The
// whole community batch commits as one transaction.
func (p *Poller) PollCommunity(ctx context.Context, name string) ([]*ent.ContentItem, error) {
	posts, err := p.reddit.FetchNewPosts(ctx, name, p.fetchLimit)
	if err != nil {
		return nil, err
	}
	comments, err := p.reddit.FetchComments(ctx, name, p.fetchLimit)
	if err != nil {
		return nil, err
	}

	created, err := p.storeItems(ctx, append(posts, comments...))
	if err != nil {
		return nil, err
	}

	if err := p.markPolled(ctx, name); err != nil {
		p.logger.Warn("Failed to record poll time", "community", name, "error", err)
	}

	p.logger.Info("Polled community",
		"community", name,
		"fetched", len(posts)+len(comments),
		"stored", len(created))
	return created, nil
}

// PollAllActive polls every community that has at least one active
// monitor. Failures are logged per community and never propagate.
func (p *Poller) PollAllActive(ctx context.Context) (map[string][]*ent.ContentItem, error) {
	names, err := p.db.MonitoredCommunity.Query().
		Where(monitoredcommunity.StatusEQ(monitoredcommunity.StatusActive)).
		Unique(true).
		Select(monitoredcommunity.FieldName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active communities: %w", err)
	}

	results := make(map[string][]*ent.ContentItem, len(names))
	for _, name := range names {
		created, err := p.PollCommunity(ctx, name)
		if err != nil {
			p.logger.Error("Failed to poll community", "community", name, "error", err)
			results[name] = nil
			continue
		}
		results[name] = created
	}
	return results, nil
}

// storeItems normalizes, deduplicates, and persists raw items. Dedup
// guards, in order: digest already seen in this batch, digest already
// persisted, source id already persisted.
func (p *Poller) storeItems(ctx context.Context, items []reddit.Item) ([]*ent.ContentItem, error) {
	tx, err := p.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seenDigests := make(map[string]struct{})
	var created []*ent.ContentItem

	for _, item := range items {
		raw := item.Body
		if item.Title != "" {
			raw = item.Title + " " + item.Body
		}

		norm := normalize.Normalize(raw)
		if norm.Text == "" {
			continue
		}
		digest := Digest(norm.Text)

		if _, ok := seenDigests[digest]; ok {
			continue
		}
		exists, err := tx.ContentItem.Query().
			Where(contentitem.DigestEQ(digest)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check digest: %w", err)
		}
		if exists {
			continue
		}
		exists, err = tx.ContentItem.Query().
			Where(contentitem.SourceIDEQ(item.SourceID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check source id: %w", err)
		}
		if exists {
			continue
		}

		builder := tx.ContentItem.Create().
			SetID(uuid.New().String()).
			SetSourceID(item.SourceID).
			SetCommunity(item.Community).
			SetKind(contentitem.Kind(item.Kind)).
			SetBody(item.Body).
			SetAuthor(item.Author).
			SetNormalizedText(norm.Text).
			SetDigest(digest).
			SetSourceCreatedAt(item.CreatedAt)
		if item.Kind == reddit.KindPost {
			builder.SetTitle(item.Title)
		}

		row, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to store content %s: %w", item.SourceID, err)
		}
		seenDigests[digest] = struct{}{}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit content batch: %w", err)
	}
	return created, nil
}

// MarkDeleted flags content removed upstream. The row and its matches
// stay for history; only the flag flips.
func (p *Poller) MarkDeleted(ctx context.Context, sourceID string) error {
	n, err := p.db.ContentItem.Update().
		Where(contentitem.SourceIDEQ(sourceID)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark content deleted: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no content with source id %s", sourceID)
	}
	return nil
}

// markPolled stamps last_polled_at on every monitor of this community.
func (p *Poller) markPolled(ctx context.Context, name string) error {
	_, err := p.db.MonitoredCommunity.Update().
		Where(monitoredcommunity.NameEQ(name)).
		SetLastPolledAt(time.Now().UTC()).
		Save(ctx)
	return err
}
