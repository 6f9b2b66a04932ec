// Package engine fans newly ingested content out to every tenant
// monitoring its community, runs the matcher per keyword rule, and
// persists the resulting matches.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/keywordrule"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/pkg/matcher"
	"github.com/reddalert/reddalert/pkg/normalize"
)

// Engine runs new content against tenant keyword rules and persists
// matches with alert_status pending.
type Engine struct {
	db     *ent.Client
	logger *slog.Logger
}

// NewEngine creates a match engine.
func NewEngine(db *ent.Client) *Engine {
	return &Engine{
		db:     db,
		logger: slog.Default().With("component", "match-engine"),
	}
}

// ruleHit pairs a rule with one matcher result for a single tenant.
type ruleHit struct {
	rule   *ent.KeywordRule
	result matcher.Result
}

// ProcessContent runs a single item against all relevant rules.
// Matches for all tenants of this item commit in one transaction, and
// only when there is at least one match.
func (e *Engine) ProcessContent(ctx context.Context, item *ent.ContentItem) ([]*ent.Match, error) {
	tenantIDs, err := e.db.MonitoredCommunity.Query().
		Where(
			monitoredcommunity.NameEQ(item.Community),
			monitoredcommunity.StatusEQ(monitoredcommunity.StatusActive),
		).
		Unique(true).
		Select(monitoredcommunity.FieldTenantID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query monitors for r/%s: %w", item.Community, err)
	}
	if len(tenantIDs) == 0 {
		return nil, nil
	}

	// Re-materialize the normalized result from the stored text. The
	// matcher only needs text and tokens.
	content := normalize.Result{
		Text:   item.NormalizedText,
		Tokens: strings.Fields(item.NormalizedText),
	}

	now := time.Now().UTC()
	tenantHits := make(map[string][]ruleHit)

	for _, tenantID := range tenantIDs {
		rules, err := e.db.KeywordRule.Query().
			Where(
				keywordrule.TenantIDEQ(tenantID),
				keywordrule.IsActive(true),
				keywordrule.Or(
					keywordrule.SilencedUntilIsNil(),
					keywordrule.SilencedUntilLTE(now),
				),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules for tenant %s: %w", tenantID, err)
		}

		for _, rule := range rules {
			results := matcher.Find(content, toMatcherRule(rule))
			for _, r := range results {
				tenantHits[tenantID] = append(tenantHits[tenantID], ruleHit{rule: rule, result: r})
			}
		}
	}
	if len(tenantHits) == 0 {
		return nil, nil
	}

	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	redditURL := fmt.Sprintf("https://reddit.com/r/%s/comments/%s", item.Community, item.SourceID)
	var created []*ent.Match

	for tenantID, hits := range tenantHits {
		allPhrases := distinctPhrases(hits)

		for _, hit := range hits {
			also := make([]string, 0, len(allPhrases))
			for _, p := range allPhrases {
				if p != hit.result.MatchedPhrase {
					also = append(also, p)
				}
			}

			row, err := tx.Match.Create().
				SetID(uuid.New().String()).
				SetTenantID(tenantID).
				SetRuleID(hit.rule.ID).
				SetContentID(item.ID).
				SetKind(entmatch.Kind(item.Kind)).
				SetCommunity(item.Community).
				SetMatchedPhrase(hit.result.MatchedPhrase).
				SetAlsoMatched(also).
				SetSnippet(hit.result.Snippet).
				SetProximityScore(hit.result.ProximityScore).
				SetRedditURL(redditURL).
				SetAuthor(item.Author).
				SetIsDeleted(item.IsDeleted).
				SetDetectedAt(now).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create match: %w", err)
			}
			created = append(created, row)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit matches: %w", err)
	}

	e.logger.Info("Created matches", "content", item.SourceID, "count", len(created))
	return created, nil
}

// ProcessBatch runs every item and returns all created matches.
func (e *Engine) ProcessBatch(ctx context.Context, items []*ent.ContentItem) ([]*ent.Match, error) {
	var all []*ent.Match
	for _, item := range items {
		matches, err := e.ProcessContent(ctx, item)
		if err != nil {
			return all, err
		}
		all = append(all, matches...)
	}
	return all, nil
}

// toMatcherRule converts a stored rule into matcher configuration.
// Phrases persist as flat strings and are tokenized here.
func toMatcherRule(rule *ent.KeywordRule) matcher.Rule {
	phrases := make([][]string, 0, len(rule.Phrases))
	for _, p := range rule.Phrases {
		if tokens := strings.Fields(p); len(tokens) > 0 {
			phrases = append(phrases, tokens)
		}
	}
	return matcher.Rule{
		Phrases:         phrases,
		Exclusions:      rule.Exclusions,
		ProximityWindow: rule.ProximityWindow,
		RequireOrder:    rule.RequireOrder,
		UseStemming:     rule.UseStemming,
		ExclusionScope:  matcher.ExclusionScope(rule.ExclusionScope),
	}
}

// distinctPhrases returns the unique matched phrases of one tenant's
// hits, preserving first-seen order.
func distinctPhrases(hits []ruleHit) []string {
	seen := make(map[string]struct{}, len(hits))
	var phrases []string
	for _, hit := range hits {
		if _, ok := seen[hit.result.MatchedPhrase]; ok {
			continue
		}
		seen[hit.result.MatchedPhrase] = struct{}{}
		phrases = append(phrases, hit.result.MatchedPhrase)
	}
	return phrases
}
