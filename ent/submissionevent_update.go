// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smahajan/codequarry/ent/predicate"
	"github.com/smahajan/codequarry/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdate) SetSessionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSessionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *SubmissionEventUpdate) SetProblemID(v int) *SubmissionEventUpdate {
	_u.mutation.ResetProblemID()
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableProblemID(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// AddProblemID adds value to the "problem_id" field.
func (_u *SubmissionEventUpdate) AddProblemID(v int) *SubmissionEventUpdate {
	_u.mutation.AddProblemID(v)
	return _u
}

// SetProblemTitle sets the "problem_title" field.
func (_u *SubmissionEventUpdate) SetProblemTitle(v string) *SubmissionEventUpdate {
	_u.mutation.SetProblemTitle(v)
	return _u
}

// SetNillableProblemTitle sets the "problem_title" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableProblemTitle(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetProblemTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SubmissionEventUpdate) SetLanguage(v string) *SubmissionEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableLanguage(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SubmissionEventUpdate) SetCode(v string) *SubmissionEventUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCode(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdate) SetCorrect(v bool) *SubmissionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCorrect(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionEventUpdate) SetFeedback(v string) *SubmissionEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableFeedback(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetBatch sets the "batch" field.
func (_u *SubmissionEventUpdate) SetBatch(v bool) *SubmissionEventUpdate {
	_u.mutation.SetBatch(v)
	return _u
}

// SetNillableBatch sets the "batch" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableBatch(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetBatch(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdate) SetLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableLatencyMs(v *int64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdate) AddLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(submissionevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemID(); ok {
		_spec.AddField(submissionevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemTitle(); ok {
		_spec.SetField(submissionevent.FieldProblemTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(submissionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(submissionevent.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submissionevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Batch(); ok {
		_spec.SetField(submissionevent.FieldBatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdateOne) SetSessionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSessionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *SubmissionEventUpdateOne) SetProblemID(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetProblemID()
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableProblemID(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// AddProblemID adds value to the "problem_id" field.
func (_u *SubmissionEventUpdateOne) AddProblemID(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddProblemID(v)
	return _u
}

// SetProblemTitle sets the "problem_title" field.
func (_u *SubmissionEventUpdateOne) SetProblemTitle(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetProblemTitle(v)
	return _u
}

// SetNillableProblemTitle sets the "problem_title" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableProblemTitle(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetProblemTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SubmissionEventUpdateOne) SetLanguage(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableLanguage(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SubmissionEventUpdateOne) SetCode(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCode(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdateOne) SetCorrect(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCorrect(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionEventUpdateOne) SetFeedback(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableFeedback(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetBatch sets the "batch" field.
func (_u *SubmissionEventUpdateOne) SetBatch(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetBatch(v)
	return _u
}

// SetNillableBatch sets the "batch" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableBatch(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetBatch(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) SetLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableLatencyMs(v *int64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) AddLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(submissionevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemID(); ok {
		_spec.AddField(submissionevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemTitle(); ok {
		_spec.SetField(submissionevent.FieldProblemTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(submissionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(submissionevent.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submissionevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Batch(); ok {
		_spec.SetField(submissionevent.FieldBatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
