// Code generated by ent, DO NOT EDIT.

package contentitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldSourceID, v))
}

// Community applies equality check predicate on the "community" field. It's identical to CommunityEQ.
func Community(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldCommunity, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldBody, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldAuthor, v))
}

// NormalizedText applies equality check predicate on the "normalized_text" field. It's identical to NormalizedTextEQ.
func NormalizedText(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldNormalizedText, v))
}

// Digest applies equality check predicate on the "digest" field. It's identical to DigestEQ.
func Digest(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldDigest, v))
}

// SourceCreatedAt applies equality check predicate on the "source_created_at" field. It's identical to SourceCreatedAtEQ.
func SourceCreatedAt(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldSourceCreatedAt, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldFetchedAt, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldIsDeleted, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldSourceID, v))
}

// CommunityEQ applies the EQ predicate on the "community" field.
func CommunityEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldCommunity, v))
}

// CommunityNEQ applies the NEQ predicate on the "community" field.
func CommunityNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldCommunity, v))
}

// CommunityIn applies the In predicate on the "community" field.
func CommunityIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldCommunity, vs...))
}

// CommunityNotIn applies the NotIn predicate on the "community" field.
func CommunityNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldCommunity, vs...))
}

// CommunityGT applies the GT predicate on the "community" field.
func CommunityGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldCommunity, v))
}

// CommunityGTE applies the GTE predicate on the "community" field.
func CommunityGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldCommunity, v))
}

// CommunityLT applies the LT predicate on the "community" field.
func CommunityLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldCommunity, v))
}

// CommunityLTE applies the LTE predicate on the "community" field.
func CommunityLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldCommunity, v))
}

// CommunityContains applies the Contains predicate on the "community" field.
func CommunityContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldCommunity, v))
}

// CommunityHasPrefix applies the HasPrefix predicate on the "community" field.
func CommunityHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldCommunity, v))
}

// CommunityHasSuffix applies the HasSuffix predicate on the "community" field.
func CommunityHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldCommunity, v))
}

// CommunityEqualFold applies the EqualFold predicate on the "community" field.
func CommunityEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldCommunity, v))
}

// CommunityContainsFold applies the ContainsFold predicate on the "community" field.
func CommunityContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldCommunity, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldKind, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldBody, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldAuthor, v))
}

// NormalizedTextEQ applies the EQ predicate on the "normalized_text" field.
func NormalizedTextEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldNormalizedText, v))
}

// NormalizedTextNEQ applies the NEQ predicate on the "normalized_text" field.
func NormalizedTextNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldNormalizedText, v))
}

// NormalizedTextIn applies the In predicate on the "normalized_text" field.
func NormalizedTextIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldNormalizedText, vs...))
}

// NormalizedTextNotIn applies the NotIn predicate on the "normalized_text" field.
func NormalizedTextNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldNormalizedText, vs...))
}

// NormalizedTextGT applies the GT predicate on the "normalized_text" field.
func NormalizedTextGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldNormalizedText, v))
}

// NormalizedTextGTE applies the GTE predicate on the "normalized_text" field.
func NormalizedTextGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldNormalizedText, v))
}

// NormalizedTextLT applies the LT predicate on the "normalized_text" field.
func NormalizedTextLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldNormalizedText, v))
}

// NormalizedTextLTE applies the LTE predicate on the "normalized_text" field.
func NormalizedTextLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldNormalizedText, v))
}

// NormalizedTextContains applies the Contains predicate on the "normalized_text" field.
func NormalizedTextContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldNormalizedText, v))
}

// NormalizedTextHasPrefix applies the HasPrefix predicate on the "normalized_text" field.
func NormalizedTextHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldNormalizedText, v))
}

// NormalizedTextHasSuffix applies the HasSuffix predicate on the "normalized_text" field.
func NormalizedTextHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldNormalizedText, v))
}

// NormalizedTextEqualFold applies the EqualFold predicate on the "normalized_text" field.
func NormalizedTextEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldNormalizedText, v))
}

// NormalizedTextContainsFold applies the ContainsFold predicate on the "normalized_text" field.
func NormalizedTextContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldNormalizedText, v))
}

// DigestEQ applies the EQ predicate on the "digest" field.
func DigestEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldDigest, v))
}

// DigestNEQ applies the NEQ predicate on the "digest" field.
func DigestNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldDigest, v))
}

// DigestIn applies the In predicate on the "digest" field.
func DigestIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldDigest, vs...))
}

// DigestNotIn applies the NotIn predicate on the "digest" field.
func DigestNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldDigest, vs...))
}

// DigestGT applies the GT predicate on the "digest" field.
func DigestGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldDigest, v))
}

// DigestGTE applies the GTE predicate on the "digest" field.
func DigestGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldDigest, v))
}

// DigestLT applies the LT predicate on the "digest" field.
func DigestLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldDigest, v))
}

// DigestLTE applies the LTE predicate on the "digest" field.
func DigestLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldDigest, v))
}

// DigestContains applies the Contains predicate on the "digest" field.
func DigestContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldDigest, v))
}

// DigestHasPrefix applies the HasPrefix predicate on the "digest" field.
func DigestHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldDigest, v))
}

// DigestHasSuffix applies the HasSuffix predicate on the "digest" field.
func DigestHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldDigest, v))
}

// DigestEqualFold applies the EqualFold predicate on the "digest" field.
func DigestEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldDigest, v))
}

// DigestContainsFold applies the ContainsFold predicate on the "digest" field.
func DigestContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldDigest, v))
}

// SourceCreatedAtEQ applies the EQ predicate on the "source_created_at" field.
func SourceCreatedAtEQ(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldSourceCreatedAt, v))
}

// SourceCreatedAtNEQ applies the NEQ predicate on the "source_created_at" field.
func SourceCreatedAtNEQ(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldSourceCreatedAt, v))
}

// SourceCreatedAtIn applies the In predicate on the "source_created_at" field.
func SourceCreatedAtIn(vs ...time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldSourceCreatedAt, vs...))
}

// SourceCreatedAtNotIn applies the NotIn predicate on the "source_created_at" field.
func SourceCreatedAtNotIn(vs ...time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldSourceCreatedAt, vs...))
}

// SourceCreatedAtGT applies the GT predicate on the "source_created_at" field.
func SourceCreatedAtGT(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldSourceCreatedAt, v))
}

// SourceCreatedAtGTE applies the GTE predicate on the "source_created_at" field.
func SourceCreatedAtGTE(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldSourceCreatedAt, v))
}

// SourceCreatedAtLT applies the LT predicate on the "source_created_at" field.
func SourceCreatedAtLT(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldSourceCreatedAt, v))
}

// SourceCreatedAtLTE applies the LTE predicate on the "source_created_at" field.
func SourceCreatedAtLTE(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldSourceCreatedAt, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldFetchedAt, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldIsDeleted, v))
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.ContentItem {
	return predicate.ContentItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.ContentItem {
	return predicate.ContentItem(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.NotPredicates(p))
}
