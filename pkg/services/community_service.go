package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
)

// CreateCommunityInput carries a validated monitor definition. Name is
// already lowercased with the r/ prefix stripped.
type CreateCommunityInput struct {
	Name              string
	IncludeMediaPosts *bool
	DedupeCrossposts  *bool
	FilterBots        *bool
}

// UpdateCommunityInput holds partial updates; nil fields stay
// untouched.
type UpdateCommunityInput struct {
	Status            *string
	IncludeMediaPosts *bool
	DedupeCrossposts  *bool
	FilterBots        *bool
}

// CommunityService manages a tenant's monitored communities.
type CommunityService struct {
	client *ent.Client
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(client *ent.Client) *CommunityService {
	if client == nil {
		panic("NewCommunityService: client must not be nil")
	}
	return &CommunityService{client: client}
}

// List returns the tenant's monitors, newest first.
func (s *CommunityService) List(ctx context.Context, tenantID string) ([]*ent.MonitoredCommunity, error) {
	communities, err := s.client.MonitoredCommunity.Query().
		Where(monitoredcommunity.TenantIDEQ(tenantID)).
		Order(ent.Desc(monitoredcommunity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	return communities, nil
}

// Create adds a monitor. (tenant, name) is unique, so a second
// subscription to the same community returns ErrAlreadyExists.
func (s *CommunityService) Create(ctx context.Context, tenantID string, input CreateCommunityInput) (*ent.MonitoredCommunity, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "community name is required")
	}

	builder := s.client.MonitoredCommunity.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(input.Name)
	if input.IncludeMediaPosts != nil {
		builder.SetIncludeMediaPosts(*input.IncludeMediaPosts)
	}
	if input.DedupeCrossposts != nil {
		builder.SetDedupeCrossposts(*input.DedupeCrossposts)
	}
	if input.FilterBots != nil {
		builder.SetFilterBots(*input.FilterBots)
	}

	community, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}
	return community, nil
}

// Get returns one monitor, scoped to its owner.
func (s *CommunityService) Get(ctx context.Context, tenantID, communityID string) (*ent.MonitoredCommunity, error) {
	community, err := s.client.MonitoredCommunity.Query().
		Where(
			monitoredcommunity.IDEQ(communityID),
			monitoredcommunity.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return community, nil
}

// Update applies a partial update to a monitor.
func (s *CommunityService) Update(ctx context.Context, tenantID, communityID string, input UpdateCommunityInput) (*ent.MonitoredCommunity, error) {
	if _, err := s.Get(ctx, tenantID, communityID); err != nil {
		return nil, err
	}

	builder := s.client.MonitoredCommunity.UpdateOneID(communityID)
	if input.Status != nil {
		status := monitoredcommunity.Status(*input.Status)
		if err := monitoredcommunity.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be 'active', 'inaccessible' or 'private'")
		}
		builder.SetStatus(status)
	}
	if input.IncludeMediaPosts != nil {
		builder.SetIncludeMediaPosts(*input.IncludeMediaPosts)
	}
	if input.DedupeCrossposts != nil {
		builder.SetDedupeCrossposts(*input.DedupeCrossposts)
	}
	if input.FilterBots != nil {
		builder.SetFilterBots(*input.FilterBots)
	}

	community, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update community: %w", err)
	}
	return community, nil
}

// Delete removes a monitor.
func (s *CommunityService) Delete(ctx context.Context, tenantID, communityID string) error {
	if _, err := s.Get(ctx, tenantID, communityID); err != nil {
		return err
	}
	if err := s.client.MonitoredCommunity.DeleteOneID(communityID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete community: %w", err)
	}
	return nil
}
