// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/schema"
	"github.com/reddalert/reddalert/ent/tenant"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescNormalizedText is the schema descriptor for normalized_text field.
	contentitemDescNormalizedText := contentitemFields[7].Descriptor()
	// contentitem.NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	contentitem.NormalizedTextValidator = contentitemDescNormalizedText.Validators[0].(func(string) error)
	// contentitemDescFetchedAt is the schema descriptor for fetched_at field.
	contentitemDescFetchedAt := contentitemFields[10].Descriptor()
	// contentitem.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	contentitem.DefaultFetchedAt = contentitemDescFetchedAt.Default.(func() time.Time)
	// contentitemDescIsDeleted is the schema descriptor for is_deleted field.
	contentitemDescIsDeleted := contentitemFields[11].Descriptor()
	// contentitem.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	contentitem.DefaultIsDeleted = contentitemDescIsDeleted.Default.(bool)
	keywordruleFields := schema.KeywordRule{}.Fields()
	_ = keywordruleFields
	// keywordruleDescProximityWindow is the schema descriptor for proximity_window field.
	keywordruleDescProximityWindow := keywordruleFields[4].Descriptor()
	// keywordrule.DefaultProximityWindow holds the default value on creation for the proximity_window field.
	keywordrule.DefaultProximityWindow = keywordruleDescProximityWindow.Default.(int)
	// keywordrule.ProximityWindowValidator is a validator for the "proximity_window" field. It is called by the builders before save.
	keywordrule.ProximityWindowValidator = keywordruleDescProximityWindow.Validators[0].(func(int) error)
	// keywordruleDescRequireOrder is the schema descriptor for require_order field.
	keywordruleDescRequireOrder := keywordruleFields[5].Descriptor()
	// keywordrule.DefaultRequireOrder holds the default value on creation for the require_order field.
	keywordrule.DefaultRequireOrder = keywordruleDescRequireOrder.Default.(bool)
	// keywordruleDescUseStemming is the schema descriptor for use_stemming field.
	keywordruleDescUseStemming := keywordruleFields[6].Descriptor()
	// keywordrule.DefaultUseStemming holds the default value on creation for the use_stemming field.
	keywordrule.DefaultUseStemming = keywordruleDescUseStemming.Default.(bool)
	// keywordruleDescIsActive is the schema descriptor for is_active field.
	keywordruleDescIsActive := keywordruleFields[8].Descriptor()
	// keywordrule.DefaultIsActive holds the default value on creation for the is_active field.
	keywordrule.DefaultIsActive = keywordruleDescIsActive.Default.(bool)
	// keywordruleDescCreatedAt is the schema descriptor for created_at field.
	keywordruleDescCreatedAt := keywordruleFields[10].Descriptor()
	// keywordrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	keywordrule.DefaultCreatedAt = keywordruleDescCreatedAt.Default.(func() time.Time)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescSnippet is the schema descriptor for snippet field.
	matchDescSnippet := matchFields[8].Descriptor()
	// match.SnippetValidator is a validator for the "snippet" field. It is called by the builders before save.
	match.SnippetValidator = matchDescSnippet.Validators[0].(func(string) error)
	// matchDescIsDeleted is the schema descriptor for is_deleted field.
	matchDescIsDeleted := matchFields[12].Descriptor()
	// match.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	match.DefaultIsDeleted = matchDescIsDeleted.Default.(bool)
	// matchDescDetectedAt is the schema descriptor for detected_at field.
	matchDescDetectedAt := matchFields[13].Descriptor()
	// match.DefaultDetectedAt holds the default value on creation for the detected_at field.
	match.DefaultDetectedAt = matchDescDetectedAt.Default.(func() time.Time)
	monitoredcommunityFields := schema.MonitoredCommunity{}.Fields()
	_ = monitoredcommunityFields
	// monitoredcommunityDescIncludeMediaPosts is the schema descriptor for include_media_posts field.
	monitoredcommunityDescIncludeMediaPosts := monitoredcommunityFields[4].Descriptor()
	// monitoredcommunity.DefaultIncludeMediaPosts holds the default value on creation for the include_media_posts field.
	monitoredcommunity.DefaultIncludeMediaPosts = monitoredcommunityDescIncludeMediaPosts.Default.(bool)
	// monitoredcommunityDescDedupeCrossposts is the schema descriptor for dedupe_crossposts field.
	monitoredcommunityDescDedupeCrossposts := monitoredcommunityFields[5].Descriptor()
	// monitoredcommunity.DefaultDedupeCrossposts holds the default value on creation for the dedupe_crossposts field.
	monitoredcommunity.DefaultDedupeCrossposts = monitoredcommunityDescDedupeCrossposts.Default.(bool)
	// monitoredcommunityDescFilterBots is the schema descriptor for filter_bots field.
	monitoredcommunityDescFilterBots := monitoredcommunityFields[6].Descriptor()
	// monitoredcommunity.DefaultFilterBots holds the default value on creation for the filter_bots field.
	monitoredcommunity.DefaultFilterBots = monitoredcommunityDescFilterBots.Default.(bool)
	// monitoredcommunityDescCreatedAt is the schema descriptor for created_at field.
	monitoredcommunityDescCreatedAt := monitoredcommunityFields[8].Descriptor()
	// monitoredcommunity.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoredcommunity.DefaultCreatedAt = monitoredcommunityDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescPollIntervalMinutes is the schema descriptor for poll_interval_minutes field.
	tenantDescPollIntervalMinutes := tenantFields[3].Descriptor()
	// tenant.DefaultPollIntervalMinutes holds the default value on creation for the poll_interval_minutes field.
	tenant.DefaultPollIntervalMinutes = tenantDescPollIntervalMinutes.Default.(int)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[4].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescIsPrimary is the schema descriptor for is_primary field.
	webhookendpointDescIsPrimary := webhookendpointFields[4].Descriptor()
	// webhookendpoint.DefaultIsPrimary holds the default value on creation for the is_primary field.
	webhookendpoint.DefaultIsPrimary = webhookendpointDescIsPrimary.Default.(bool)
	// webhookendpointDescIsActive is the schema descriptor for is_active field.
	webhookendpointDescIsActive := webhookendpointFields[5].Descriptor()
	// webhookendpoint.DefaultIsActive holds the default value on creation for the is_active field.
	webhookendpoint.DefaultIsActive = webhookendpointDescIsActive.Default.(bool)
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointFields[7].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
}
