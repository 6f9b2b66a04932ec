package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/keywordrule"
	entmatch "github.com/reddalert/reddalert/ent/match"
)

// MatchFilter narrows a match listing. Zero values mean no filter.
type MatchFilter struct {
	Community   string
	RuleID      string
	AlertStatus string
	Since       time.Time
	Until       time.Time
}

// MatchPage is one page of a match listing.
type MatchPage struct {
	Items   []*ent.Match `json:"items"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}

// RuleStat is one entry of the top-rules leaderboard.
type RuleStat struct {
	RuleID     string   `json:"rule_id"`
	Phrases    []string `json:"phrases"`
	MatchCount int      `json:"match_count"`
}

// CommunityStat is one entry of the top-communities leaderboard.
type CommunityStat struct {
	Community  string `json:"community"`
	MatchCount int    `json:"match_count"`
}

// Stats summarizes a tenant's matching activity.
type Stats struct {
	TotalMatches   int             `json:"total_matches"`
	MatchesLast24h int             `json:"matches_last_24h"`
	MatchesLast7d  int             `json:"matches_last_7d"`
	TopRules       []RuleStat      `json:"top_rules"`
	TopCommunities []CommunityStat `json:"top_communities"`
}

// MatchService reads a tenant's matches.
type MatchService struct {
	client *ent.Client
}

// NewMatchService creates a new MatchService.
func NewMatchService(client *ent.Client) *MatchService {
	if client == nil {
		panic("NewMatchService: client must not be nil")
	}
	return &MatchService{client: client}
}

// List returns one page of the tenant's matches, newest first.
func (s *MatchService) List(ctx context.Context, tenantID string, filter MatchFilter, page, perPage int) (*MatchPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	query := s.client.Match.Query().
		Where(entmatch.TenantIDEQ(tenantID))
	if filter.Community != "" {
		query = query.Where(entmatch.CommunityEQ(filter.Community))
	}
	if filter.RuleID != "" {
		query = query.Where(entmatch.RuleIDEQ(filter.RuleID))
	}
	if filter.AlertStatus != "" {
		status := entmatch.AlertStatus(filter.AlertStatus)
		if err := entmatch.AlertStatusValidator(status); err != nil {
			return nil, NewValidationError("alert_status", "must be 'pending', 'sent' or 'failed'")
		}
		query = query.Where(entmatch.AlertStatusEQ(status))
	}
	if !filter.Since.IsZero() {
		query = query.Where(entmatch.DetectedAtGTE(filter.Since))
	}
	if !filter.Until.IsZero() {
		query = query.Where(entmatch.DetectedAtLTE(filter.Until))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	items, err := query.
		Order(ent.Desc(entmatch.FieldDetectedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return &MatchPage{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Get returns one match, scoped to its owner.
func (s *MatchService) Get(ctx context.Context, tenantID, matchID string) (*ent.Match, error) {
	match, err := s.client.Match.Query().
		Where(
			entmatch.IDEQ(matchID),
			entmatch.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// Stats aggregates match counts and per-rule/per-community
// leaderboards for one tenant.
func (s *MatchService) Stats(ctx context.Context, tenantID string) (*Stats, error) {
	now := time.Now().UTC()

	total, err := s.client.Match.Query().
		Where(entmatch.TenantIDEQ(tenantID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	last24h, err := s.client.Match.Query().
		Where(
			entmatch.TenantIDEQ(tenantID),
			entmatch.DetectedAtGTE(now.Add(-24*time.Hour)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent matches: %w", err)
	}
	last7d, err := s.client.Match.Query().
		Where(
			entmatch.TenantIDEQ(tenantID),
			entmatch.DetectedAtGTE(now.AddDate(0, 0, -7)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count weekly matches: %w", err)
	}

	topRules, err := s.topRules(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	topCommunities, err := s.topCommunities(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalMatches:   total,
		MatchesLast24h: last24h,
		MatchesLast7d:  last7d,
		TopRules:       topRules,
		TopCommunities: topCommunities,
	}, nil
}

func (s *MatchService) topRules(ctx context.Context, tenantID string) ([]RuleStat, error) {
	var rows []struct {
		RuleID string `json:"rule_id"`
		Count  int    `json:"count"`
	}
	err := s.client.Match.Query().
		Where(entmatch.TenantIDEQ(tenantID)).
		GroupBy(entmatch.FieldRuleID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rule stats: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if len(rows) > 10 {
		rows = rows[:10]
	}

	stats := make([]RuleStat, 0, len(rows))
	for _, row := range rows {
		rule, err := s.client.KeywordRule.Query().
			Where(keywordrule.IDEQ(row.RuleID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load rule %s: %w", row.RuleID, err)
		}
		stats = append(stats, RuleStat{
			RuleID:     rule.ID,
			Phrases:    rule.Phrases,
			MatchCount: row.Count,
		})
	}
	return stats, nil
}

func (s *MatchService) topCommunities(ctx context.Context, tenantID string) ([]CommunityStat, error) {
	var rows []struct {
		Community string `json:"community"`
		Count     int    `json:"count"`
	}
	err := s.client.Match.Query().
		Where(entmatch.TenantIDEQ(tenantID)).
		GroupBy(entmatch.FieldCommunity).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate community stats: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if len(rows) > 10 {
		rows = rows[:10]
	}

	stats := make([]CommunityStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, CommunityStat{
			Community:  row.Community,
			MatchCount: row.Count,
		})
	}
	return stats, nil
}
