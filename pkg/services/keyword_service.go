package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/keywordrule"
)

// CreateKeywordRuleInput carries a validated rule definition. Phrases
// arrive in wire form: flat strings, whitespace-separated tokens.
type CreateKeywordRuleInput struct {
	Phrases         []string
	Exclusions      []string
	ProximityWindow int
	RequireOrder    bool
	UseStemming     bool
	ExclusionScope  string
}

// UpdateKeywordRuleInput holds partial updates; nil fields stay
// untouched.
type UpdateKeywordRuleInput struct {
	Phrases         []string
	Exclusions      []string
	ProximityWindow *int
	RequireOrder    *bool
	UseStemming     *bool
	ExclusionScope  *string
}

// KeywordService manages a tenant's keyword rules.
type KeywordService struct {
	client *ent.Client
}

// NewKeywordService creates a new KeywordService.
func NewKeywordService(client *ent.Client) *KeywordService {
	if client == nil {
		panic("NewKeywordService: client must not be nil")
	}
	return &KeywordService{client: client}
}

// List returns the tenant's active rules, newest first.
func (s *KeywordService) List(ctx context.Context, tenantID string) ([]*ent.KeywordRule, error) {
	rules, err := s.client.KeywordRule.Query().
		Where(
			keywordrule.TenantIDEQ(tenantID),
			keywordrule.IsActive(true),
		).
		Order(ent.Desc(keywordrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keyword rules: %w", err)
	}
	return rules, nil
}

// Create persists a new rule for the tenant.
func (s *KeywordService) Create(ctx context.Context, tenantID string, input CreateKeywordRuleInput) (*ent.KeywordRule, error) {
	if len(input.Phrases) == 0 {
		return nil, NewValidationError("phrases", "at least one phrase is required")
	}
	window := input.ProximityWindow
	if window == 0 {
		window = 15
	}
	if window < 1 {
		return nil, NewValidationError("proximity_window", "must be a positive integer")
	}
	scope := keywordrule.ExclusionScopeAnywhere
	if input.ExclusionScope != "" {
		scope = keywordrule.ExclusionScope(input.ExclusionScope)
		if err := keywordrule.ExclusionScopeValidator(scope); err != nil {
			return nil, NewValidationError("exclusion_scope", "must be 'anywhere' or 'proximity'")
		}
	}

	rule, err := s.client.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPhrases(input.Phrases).
		SetExclusions(input.Exclusions).
		SetProximityWindow(window).
		SetRequireOrder(input.RequireOrder).
		SetUseStemming(input.UseStemming).
		SetExclusionScope(scope).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword rule: %w", err)
	}
	return rule, nil
}

// Get returns one rule, scoped to its owner.
func (s *KeywordService) Get(ctx context.Context, tenantID, ruleID string) (*ent.KeywordRule, error) {
	rule, err := s.client.KeywordRule.Query().
		Where(
			keywordrule.IDEQ(ruleID),
			keywordrule.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get keyword rule: %w", err)
	}
	return rule, nil
}

// Update applies a partial update to a rule.
func (s *KeywordService) Update(ctx context.Context, tenantID, ruleID string, input UpdateKeywordRuleInput) (*ent.KeywordRule, error) {
	if _, err := s.Get(ctx, tenantID, ruleID); err != nil {
		return nil, err
	}

	builder := s.client.KeywordRule.UpdateOneID(ruleID)
	if input.Phrases != nil {
		if len(input.Phrases) == 0 {
			return nil, NewValidationError("phrases", "at least one phrase is required")
		}
		builder.SetPhrases(input.Phrases)
	}
	if input.Exclusions != nil {
		builder.SetExclusions(input.Exclusions)
	}
	if input.ProximityWindow != nil {
		if *input.ProximityWindow < 1 {
			return nil, NewValidationError("proximity_window", "must be a positive integer")
		}
		builder.SetProximityWindow(*input.ProximityWindow)
	}
	if input.RequireOrder != nil {
		builder.SetRequireOrder(*input.RequireOrder)
	}
	if input.UseStemming != nil {
		builder.SetUseStemming(*input.UseStemming)
	}
	if input.ExclusionScope != nil {
		scope := keywordrule.ExclusionScope(*input.ExclusionScope)
		if err := keywordrule.ExclusionScopeValidator(scope); err != nil {
			return nil, NewValidationError("exclusion_scope", "must be 'anywhere' or 'proximity'")
		}
		builder.SetExclusionScope(scope)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update keyword rule: %w", err)
	}
	return rule, nil
}

// SoftDelete deactivates a rule. Its historical matches stay.
func (s *KeywordService) SoftDelete(ctx context.Context, tenantID, ruleID string) error {
	if _, err := s.Get(ctx, tenantID, ruleID); err != nil {
		return err
	}
	if err := s.client.KeywordRule.UpdateOneID(ruleID).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to deactivate keyword rule: %w", err)
	}
	return nil
}

// Silence mutes a rule until the given time. A zero time unsilences
// immediately.
func (s *KeywordService) Silence(ctx context.Context, tenantID, ruleID string, until time.Time) (*ent.KeywordRule, error) {
	if _, err := s.Get(ctx, tenantID, ruleID); err != nil {
		return nil, err
	}

	builder := s.client.KeywordRule.UpdateOneID(ruleID)
	if until.IsZero() {
		builder.ClearSilencedUntil()
	} else {
		builder.SetSilencedUntil(until)
	}
	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to silence keyword rule: %w", err)
	}
	return rule, nil
}
