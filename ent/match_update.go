// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/predicate"
)

// MatchUpdate is the builder for updating Match entities.
type MatchUpdate struct {
	config
	hooks    []Hook
	mutation *MatchMutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdate) Where(ps ...predicate.Match) *MatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMatchedPhrase sets the "matched_phrase" field.
func (_u *MatchUpdate) SetMatchedPhrase(v string) *MatchUpdate {
	_u.mutation.SetMatchedPhrase(v)
	return _u
}

// SetNillableMatchedPhrase sets the "matched_phrase" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableMatchedPhrase(v *string) *MatchUpdate {
	if v != nil {
		_u.SetMatchedPhrase(*v)
	}
	return _u
}

// SetAlsoMatched sets the "also_matched" field.
func (_u *MatchUpdate) SetAlsoMatched(v []string) *MatchUpdate {
	_u.mutation.SetAlsoMatched(v)
	return _u
}

// AppendAlsoMatched appends value to the "also_matched" field.
func (_u *MatchUpdate) AppendAlsoMatched(v []string) *MatchUpdate {
	_u.mutation.AppendAlsoMatched(v)
	return _u
}

// ClearAlsoMatched clears the value of the "also_matched" field.
func (_u *MatchUpdate) ClearAlsoMatched() *MatchUpdate {
	_u.mutation.ClearAlsoMatched()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *MatchUpdate) SetSnippet(v string) *MatchUpdate {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableSnippet(v *string) *MatchUpdate {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// SetProximityScore sets the "proximity_score" field.
func (_u *MatchUpdate) SetProximityScore(v float64) *MatchUpdate {
	_u.mutation.ResetProximityScore()
	_u.mutation.SetProximityScore(v)
	return _u
}

// SetNillableProximityScore sets the "proximity_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableProximityScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetProximityScore(*v)
	}
	return _u
}

// AddProximityScore adds value to the "proximity_score" field.
func (_u *MatchUpdate) AddProximityScore(v float64) *MatchUpdate {
	_u.mutation.AddProximityScore(v)
	return _u
}

// SetRedditURL sets the "reddit_url" field.
func (_u *MatchUpdate) SetRedditURL(v string) *MatchUpdate {
	_u.mutation.SetRedditURL(v)
	return _u
}

// SetNillableRedditURL sets the "reddit_url" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableRedditURL(v *string) *MatchUpdate {
	if v != nil {
		_u.SetRedditURL(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *MatchUpdate) SetAuthor(v string) *MatchUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableAuthor(v *string) *MatchUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *MatchUpdate) SetIsDeleted(v bool) *MatchUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableIsDeleted(v *bool) *MatchUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetAlertSentAt sets the "alert_sent_at" field.
func (_u *MatchUpdate) SetAlertSentAt(v time.Time) *MatchUpdate {
	_u.mutation.SetAlertSentAt(v)
	return _u
}

// SetNillableAlertSentAt sets the "alert_sent_at" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableAlertSentAt(v *time.Time) *MatchUpdate {
	if v != nil {
		_u.SetAlertSentAt(*v)
	}
	return _u
}

// ClearAlertSentAt clears the value of the "alert_sent_at" field.
func (_u *MatchUpdate) ClearAlertSentAt() *MatchUpdate {
	_u.mutation.ClearAlertSentAt()
	return _u
}

// SetAlertStatus sets the "alert_status" field.
func (_u *MatchUpdate) SetAlertStatus(v match.AlertStatus) *MatchUpdate {
	_u.mutation.SetAlertStatus(v)
	return _u
}

// SetNillableAlertStatus sets the "alert_status" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableAlertStatus(v *match.AlertStatus) *MatchUpdate {
	if v != nil {
		_u.SetAlertStatus(*v)
	}
	return _u
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdate) Mutation() *MatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdate) check() error {
	if v, ok := _u.mutation.Snippet(); ok {
		if err := match.SnippetValidator(v); err != nil {
			return &ValidationError{Name: "snippet", err: fmt.Errorf(`ent: validator failed for field "Match.snippet": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlertStatus(); ok {
		if err := match.AlertStatusValidator(v); err != nil {
			return &ValidationError{Name: "alert_status", err: fmt.Errorf(`ent: validator failed for field "Match.alert_status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.tenant"`)
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.rule"`)
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.content"`)
	}
	return nil
}

func (_u *MatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MatchedPhrase(); ok {
		_spec.SetField(match.FieldMatchedPhrase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlsoMatched(); ok {
		_spec.SetField(match.FieldAlsoMatched, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlsoMatched(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, match.FieldAlsoMatched, value)
		})
	}
	if _u.mutation.AlsoMatchedCleared() {
		_spec.ClearField(match.FieldAlsoMatched, field.TypeJSON)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(match.FieldSnippet, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProximityScore(); ok {
		_spec.SetField(match.FieldProximityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProximityScore(); ok {
		_spec.AddField(match.FieldProximityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RedditURL(); ok {
		_spec.SetField(match.FieldRedditURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(match.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(match.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AlertSentAt(); ok {
		_spec.SetField(match.FieldAlertSentAt, field.TypeTime, value)
	}
	if _u.mutation.AlertSentAtCleared() {
		_spec.ClearField(match.FieldAlertSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AlertStatus(); ok {
		_spec.SetField(match.FieldAlertStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchUpdateOne is the builder for updating a single Match entity.
type MatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchMutation
}

// SetMatchedPhrase sets the "matched_phrase" field.
func (_u *MatchUpdateOne) SetMatchedPhrase(v string) *MatchUpdateOne {
	_u.mutation.SetMatchedPhrase(v)
	return _u
}

// SetNillableMatchedPhrase sets the "matched_phrase" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableMatchedPhrase(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetMatchedPhrase(*v)
	}
	return _u
}

// SetAlsoMatched sets the "also_matched" field.
func (_u *MatchUpdateOne) SetAlsoMatched(v []string) *MatchUpdateOne {
	_u.mutation.SetAlsoMatched(v)
	return _u
}

// AppendAlsoMatched appends value to the "also_matched" field.
func (_u *MatchUpdateOne) AppendAlsoMatched(v []string) *MatchUpdateOne {
	_u.mutation.AppendAlsoMatched(v)
	return _u
}

// ClearAlsoMatched clears the value of the "also_matched" field.
func (_u *MatchUpdateOne) ClearAlsoMatched() *MatchUpdateOne {
	_u.mutation.ClearAlsoMatched()
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *MatchUpdateOne) SetSnippet(v string) *MatchUpdateOne {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableSnippet(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// SetProximityScore sets the "proximity_score" field.
func (_u *MatchUpdateOne) SetProximityScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetProximityScore()
	_u.mutation.SetProximityScore(v)
	return _u
}

// SetNillableProximityScore sets the "proximity_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableProximityScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetProximityScore(*v)
	}
	return _u
}

// AddProximityScore adds value to the "proximity_score" field.
func (_u *MatchUpdateOne) AddProximityScore(v float64) *MatchUpdateOne {
	_u.mutation.AddProximityScore(v)
	return _u
}

// SetRedditURL sets the "reddit_url" field.
func (_u *MatchUpdateOne) SetRedditURL(v string) *MatchUpdateOne {
	_u.mutation.SetRedditURL(v)
	return _u
}

// SetNillableRedditURL sets the "reddit_url" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableRedditURL(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetRedditURL(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *MatchUpdateOne) SetAuthor(v string) *MatchUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableAuthor(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *MatchUpdateOne) SetIsDeleted(v bool) *MatchUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableIsDeleted(v *bool) *MatchUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetAlertSentAt sets the "alert_sent_at" field.
func (_u *MatchUpdateOne) SetAlertSentAt(v time.Time) *MatchUpdateOne {
	_u.mutation.SetAlertSentAt(v)
	return _u
}

// SetNillableAlertSentAt sets the "alert_sent_at" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableAlertSentAt(v *time.Time) *MatchUpdateOne {
	if v != nil {
		_u.SetAlertSentAt(*v)
	}
	return _u
}

// ClearAlertSentAt clears the value of the "alert_sent_at" field.
func (_u *MatchUpdateOne) ClearAlertSentAt() *MatchUpdateOne {
	_u.mutation.ClearAlertSentAt()
	return _u
}

// SetAlertStatus sets the "alert_status" field.
func (_u *MatchUpdateOne) SetAlertStatus(v match.AlertStatus) *MatchUpdateOne {
	_u.mutation.SetAlertStatus(v)
	return _u
}

// SetNillableAlertStatus sets the "alert_status" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableAlertStatus(v *match.AlertStatus) *MatchUpdateOne {
	if v != nil {
		_u.SetAlertStatus(*v)
	}
	return _u
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdateOne) Mutation() *MatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdateOne) Where(ps ...predicate.Match) *MatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchUpdateOne) Select(field string, fields ...string) *MatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Match entity.
func (_u *MatchUpdateOne) Save(ctx context.Context) (*Match, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdateOne) SaveX(ctx context.Context) *Match {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdateOne) check() error {
	if v, ok := _u.mutation.Snippet(); ok {
		if err := match.SnippetValidator(v); err != nil {
			return &ValidationError{Name: "snippet", err: fmt.Errorf(`ent: validator failed for field "Match.snippet": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlertStatus(); ok {
		if err := match.AlertStatusValidator(v); err != nil {
			return &ValidationError{Name: "alert_status", err: fmt.Errorf(`ent: validator failed for field "Match.alert_status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.tenant"`)
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.rule"`)
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.content"`)
	}
	return nil
}

func (_u *MatchUpdateOne) sqlSave(ctx context.Context) (_node *Match, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Match.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, match.FieldID)
		for _, f := range fields {
			if !match.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != match.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MatchedPhrase(); ok {
		_spec.SetField(match.FieldMatchedPhrase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlsoMatched(); ok {
		_spec.SetField(match.FieldAlsoMatched, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlsoMatched(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, match.FieldAlsoMatched, value)
		})
	}
	if _u.mutation.AlsoMatchedCleared() {
		_spec.ClearField(match.FieldAlsoMatched, field.TypeJSON)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(match.FieldSnippet, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProximityScore(); ok {
		_spec.SetField(match.FieldProximityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProximityScore(); ok {
		_spec.AddField(match.FieldProximityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RedditURL(); ok {
		_spec.SetField(match.FieldRedditURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(match.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(match.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AlertSentAt(); ok {
		_spec.SetField(match.FieldAlertSentAt, field.TypeTime, value)
	}
	if _u.mutation.AlertSentAtCleared() {
		_spec.ClearField(match.FieldAlertSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AlertStatus(); ok {
		_spec.SetField(match.FieldAlertStatus, field.TypeEnum, value)
	}
	_node = &Match{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
