// Code generated by ent, DO NOT EDIT.

package match

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldTenantID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRuleID, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldContentID, v))
}

// Community applies equality check predicate on the "community" field. It's identical to CommunityEQ.
func Community(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCommunity, v))
}

// MatchedPhrase applies equality check predicate on the "matched_phrase" field. It's identical to MatchedPhraseEQ.
func MatchedPhrase(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldMatchedPhrase, v))
}

// Snippet applies equality check predicate on the "snippet" field. It's identical to SnippetEQ.
func Snippet(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSnippet, v))
}

// ProximityScore applies equality check predicate on the "proximity_score" field. It's identical to ProximityScoreEQ.
func ProximityScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldProximityScore, v))
}

// RedditURL applies equality check predicate on the "reddit_url" field. It's identical to RedditURLEQ.
func RedditURL(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRedditURL, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldAuthor, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldIsDeleted, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldDetectedAt, v))
}

// AlertSentAt applies equality check predicate on the "alert_sent_at" field. It's identical to AlertSentAtEQ.
func AlertSentAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldAlertSentAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldTenantID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldRuleID, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldContentID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldKind, vs...))
}

// CommunityEQ applies the EQ predicate on the "community" field.
func CommunityEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCommunity, v))
}

// CommunityNEQ applies the NEQ predicate on the "community" field.
func CommunityNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldCommunity, v))
}

// CommunityIn applies the In predicate on the "community" field.
func CommunityIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldCommunity, vs...))
}

// CommunityNotIn applies the NotIn predicate on the "community" field.
func CommunityNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldCommunity, vs...))
}

// CommunityGT applies the GT predicate on the "community" field.
func CommunityGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldCommunity, v))
}

// CommunityGTE applies the GTE predicate on the "community" field.
func CommunityGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldCommunity, v))
}

// CommunityLT applies the LT predicate on the "community" field.
func CommunityLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldCommunity, v))
}

// CommunityLTE applies the LTE predicate on the "community" field.
func CommunityLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldCommunity, v))
}

// CommunityContains applies the Contains predicate on the "community" field.
func CommunityContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldCommunity, v))
}

// CommunityHasPrefix applies the HasPrefix predicate on the "community" field.
func CommunityHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldCommunity, v))
}

// CommunityHasSuffix applies the HasSuffix predicate on the "community" field.
func CommunityHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldCommunity, v))
}

// CommunityEqualFold applies the EqualFold predicate on the "community" field.
func CommunityEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldCommunity, v))
}

// CommunityContainsFold applies the ContainsFold predicate on the "community" field.
func CommunityContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldCommunity, v))
}

// MatchedPhraseEQ applies the EQ predicate on the "matched_phrase" field.
func MatchedPhraseEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldMatchedPhrase, v))
}

// MatchedPhraseNEQ applies the NEQ predicate on the "matched_phrase" field.
func MatchedPhraseNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldMatchedPhrase, v))
}

// MatchedPhraseIn applies the In predicate on the "matched_phrase" field.
func MatchedPhraseIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldMatchedPhrase, vs...))
}

// MatchedPhraseNotIn applies the NotIn predicate on the "matched_phrase" field.
func MatchedPhraseNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldMatchedPhrase, vs...))
}

// MatchedPhraseGT applies the GT predicate on the "matched_phrase" field.
func MatchedPhraseGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldMatchedPhrase, v))
}

// MatchedPhraseGTE applies the GTE predicate on the "matched_phrase" field.
func MatchedPhraseGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldMatchedPhrase, v))
}

// MatchedPhraseLT applies the LT predicate on the "matched_phrase" field.
func MatchedPhraseLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldMatchedPhrase, v))
}

// MatchedPhraseLTE applies the LTE predicate on the "matched_phrase" field.
func MatchedPhraseLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldMatchedPhrase, v))
}

// MatchedPhraseContains applies the Contains predicate on the "matched_phrase" field.
func MatchedPhraseContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldMatchedPhrase, v))
}

// MatchedPhraseHasPrefix applies the HasPrefix predicate on the "matched_phrase" field.
func MatchedPhraseHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldMatchedPhrase, v))
}

// MatchedPhraseHasSuffix applies the HasSuffix predicate on the "matched_phrase" field.
func MatchedPhraseHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldMatchedPhrase, v))
}

// MatchedPhraseEqualFold applies the EqualFold predicate on the "matched_phrase" field.
func MatchedPhraseEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldMatchedPhrase, v))
}

// MatchedPhraseContainsFold applies the ContainsFold predicate on the "matched_phrase" field.
func MatchedPhraseContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldMatchedPhrase, v))
}

// AlsoMatchedIsNil applies the IsNil predicate on the "also_matched" field.
func AlsoMatchedIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldAlsoMatched))
}

// AlsoMatchedNotNil applies the NotNil predicate on the "also_matched" field.
func AlsoMatchedNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldAlsoMatched))
}

// SnippetEQ applies the EQ predicate on the "snippet" field.
func SnippetEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSnippet, v))
}

// SnippetNEQ applies the NEQ predicate on the "snippet" field.
func SnippetNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldSnippet, v))
}

// SnippetIn applies the In predicate on the "snippet" field.
func SnippetIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldSnippet, vs...))
}

// SnippetNotIn applies the NotIn predicate on the "snippet" field.
func SnippetNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldSnippet, vs...))
}

// SnippetGT applies the GT predicate on the "snippet" field.
func SnippetGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldSnippet, v))
}

// SnippetGTE applies the GTE predicate on the "snippet" field.
func SnippetGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldSnippet, v))
}

// SnippetLT applies the LT predicate on the "snippet" field.
func SnippetLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldSnippet, v))
}

// SnippetLTE applies the LTE predicate on the "snippet" field.
func SnippetLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldSnippet, v))
}

// SnippetContains applies the Contains predicate on the "snippet" field.
func SnippetContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldSnippet, v))
}

// SnippetHasPrefix applies the HasPrefix predicate on the "snippet" field.
func SnippetHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldSnippet, v))
}

// SnippetHasSuffix applies the HasSuffix predicate on the "snippet" field.
func SnippetHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldSnippet, v))
}

// SnippetEqualFold applies the EqualFold predicate on the "snippet" field.
func SnippetEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldSnippet, v))
}

// SnippetContainsFold applies the ContainsFold predicate on the "snippet" field.
func SnippetContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldSnippet, v))
}

// ProximityScoreEQ applies the EQ predicate on the "proximity_score" field.
func ProximityScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldProximityScore, v))
}

// ProximityScoreNEQ applies the NEQ predicate on the "proximity_score" field.
func ProximityScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldProximityScore, v))
}

// ProximityScoreIn applies the In predicate on the "proximity_score" field.
func ProximityScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldProximityScore, vs...))
}

// ProximityScoreNotIn applies the NotIn predicate on the "proximity_score" field.
func ProximityScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldProximityScore, vs...))
}

// ProximityScoreGT applies the GT predicate on the "proximity_score" field.
func ProximityScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldProximityScore, v))
}

// ProximityScoreGTE applies the GTE predicate on the "proximity_score" field.
func ProximityScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldProximityScore, v))
}

// ProximityScoreLT applies the LT predicate on the "proximity_score" field.
func ProximityScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldProximityScore, v))
}

// ProximityScoreLTE applies the LTE predicate on the "proximity_score" field.
func ProximityScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldProximityScore, v))
}

// RedditURLEQ applies the EQ predicate on the "reddit_url" field.
func RedditURLEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRedditURL, v))
}

// RedditURLNEQ applies the NEQ predicate on the "reddit_url" field.
func RedditURLNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldRedditURL, v))
}

// RedditURLIn applies the In predicate on the "reddit_url" field.
func RedditURLIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldRedditURL, vs...))
}

// RedditURLNotIn applies the NotIn predicate on the "reddit_url" field.
func RedditURLNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldRedditURL, vs...))
}

// RedditURLGT applies the GT predicate on the "reddit_url" field.
func RedditURLGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldRedditURL, v))
}

// RedditURLGTE applies the GTE predicate on the "reddit_url" field.
func RedditURLGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldRedditURL, v))
}

// RedditURLLT applies the LT predicate on the "reddit_url" field.
func RedditURLLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldRedditURL, v))
}

// RedditURLLTE applies the LTE predicate on the "reddit_url" field.
func RedditURLLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldRedditURL, v))
}

// RedditURLContains applies the Contains predicate on the "reddit_url" field.
func RedditURLContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldRedditURL, v))
}

// RedditURLHasPrefix applies the HasPrefix predicate on the "reddit_url" field.
func RedditURLHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldRedditURL, v))
}

// RedditURLHasSuffix applies the HasSuffix predicate on the "reddit_url" field.
func RedditURLHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldRedditURL, v))
}

// RedditURLEqualFold applies the EqualFold predicate on the "reddit_url" field.
func RedditURLEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldRedditURL, v))
}

// RedditURLContainsFold applies the ContainsFold predicate on the "reddit_url" field.
func RedditURLContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldRedditURL, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldAuthor, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldIsDeleted, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldDetectedAt, v))
}

// AlertSentAtEQ applies the EQ predicate on the "alert_sent_at" field.
func AlertSentAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldAlertSentAt, v))
}

// AlertSentAtNEQ applies the NEQ predicate on the "alert_sent_at" field.
func AlertSentAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldAlertSentAt, v))
}

// AlertSentAtIn applies the In predicate on the "alert_sent_at" field.
func AlertSentAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldAlertSentAt, vs...))
}

// AlertSentAtNotIn applies the NotIn predicate on the "alert_sent_at" field.
func AlertSentAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldAlertSentAt, vs...))
}

// AlertSentAtGT applies the GT predicate on the "alert_sent_at" field.
func AlertSentAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldAlertSentAt, v))
}

// AlertSentAtGTE applies the GTE predicate on the "alert_sent_at" field.
func AlertSentAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldAlertSentAt, v))
}

// AlertSentAtLT applies the LT predicate on the "alert_sent_at" field.
func AlertSentAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldAlertSentAt, v))
}

// AlertSentAtLTE applies the LTE predicate on the "alert_sent_at" field.
func AlertSentAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldAlertSentAt, v))
}

// AlertSentAtIsNil applies the IsNil predicate on the "alert_sent_at" field.
func AlertSentAtIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldAlertSentAt))
}

// AlertSentAtNotNil applies the NotNil predicate on the "alert_sent_at" field.
func AlertSentAtNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldAlertSentAt))
}

// AlertStatusEQ applies the EQ predicate on the "alert_status" field.
func AlertStatusEQ(v AlertStatus) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldAlertStatus, v))
}

// AlertStatusNEQ applies the NEQ predicate on the "alert_status" field.
func AlertStatusNEQ(v AlertStatus) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldAlertStatus, v))
}

// AlertStatusIn applies the In predicate on the "alert_status" field.
func AlertStatusIn(vs ...AlertStatus) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldAlertStatus, vs...))
}

// AlertStatusNotIn applies the NotIn predicate on the "alert_status" field.
func AlertStatusNotIn(vs ...AlertStatus) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldAlertStatus, vs...))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRule applies the HasEdge predicate on the "rule" edge.
func HasRule() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleWith applies the HasEdge predicate on the "rule" edge with a given conditions (other predicates).
func HasRuleWith(preds ...predicate.KeywordRule) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newRuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContent applies the HasEdge predicate on the "content" edge.
func HasContent() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentWith applies the HasEdge predicate on the "content" edge with a given conditions (other predicates).
func HasContentWith(preds ...predicate.ContentItem) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Match) predicate.Match {
	return predicate.Match(sql.NotPredicates(p))
}
