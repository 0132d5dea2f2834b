// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smahajan/codequarry/ent/askevent"
	"github.com/smahajan/codequarry/ent/predicate"
)

// AskEventUpdate is the builder for updating AskEvent entities.
type AskEventUpdate struct {
	config
	hooks    []Hook
	mutation *AskEventMutation
}

// Where appends a list predicates to the AskEventUpdate builder.
func (_u *AskEventUpdate) Where(ps ...predicate.AskEvent) *AskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AskEventUpdate) SetSessionID(v string) *AskEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AskEventUpdate) SetNillableSessionID(v *string) *AskEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AskEventUpdate) SetProblemID(v int) *AskEventUpdate {
	_u.mutation.ResetProblemID()
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AskEventUpdate) SetNillableProblemID(v *int) *AskEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// AddProblemID adds value to the "problem_id" field.
func (_u *AskEventUpdate) AddProblemID(v int) *AskEventUpdate {
	_u.mutation.AddProblemID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AskEventUpdate) SetQuestion(v string) *AskEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AskEventUpdate) SetNillableQuestion(v *string) *AskEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AskEventUpdate) SetAnswered(v bool) *AskEventUpdate {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AskEventUpdate) SetNillableAnswered(v *bool) *AskEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AskEventUpdate) SetErrorMessage(v string) *AskEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AskEventUpdate) SetNillableErrorMessage(v *string) *AskEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AskEventMutation object of the builder.
func (_u *AskEventUpdate) Mutation() *AskEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AskEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := askevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AskEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := askevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AskEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *AskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(askevent.Table, askevent.Columns, sqlgraph.NewFieldSpec(askevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(askevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(askevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemID(); ok {
		_spec.AddField(askevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(askevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(askevent.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(askevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{askevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AskEventUpdateOne is the builder for updating a single AskEvent entity.
type AskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AskEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AskEventUpdateOne) SetSessionID(v string) *AskEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AskEventUpdateOne) SetNillableSessionID(v *string) *AskEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AskEventUpdateOne) SetProblemID(v int) *AskEventUpdateOne {
	_u.mutation.ResetProblemID()
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AskEventUpdateOne) SetNillableProblemID(v *int) *AskEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// AddProblemID adds value to the "problem_id" field.
func (_u *AskEventUpdateOne) AddProblemID(v int) *AskEventUpdateOne {
	_u.mutation.AddProblemID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AskEventUpdateOne) SetQuestion(v string) *AskEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AskEventUpdateOne) SetNillableQuestion(v *string) *AskEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AskEventUpdateOne) SetAnswered(v bool) *AskEventUpdateOne {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AskEventUpdateOne) SetNillableAnswered(v *bool) *AskEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AskEventUpdateOne) SetErrorMessage(v string) *AskEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AskEventUpdateOne) SetNillableErrorMessage(v *string) *AskEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AskEventMutation object of the builder.
func (_u *AskEventUpdateOne) Mutation() *AskEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AskEventUpdate builder.
func (_u *AskEventUpdateOne) Where(ps ...predicate.AskEvent) *AskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AskEventUpdateOne) Select(field string, fields ...string) *AskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AskEvent entity.
func (_u *AskEventUpdateOne) Save(ctx context.Context) (*AskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AskEventUpdateOne) SaveX(ctx context.Context) *AskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AskEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := askevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AskEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := askevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AskEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *AskEventUpdateOne) sqlSave(ctx context.Context) (_node *AskEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(askevent.Table, askevent.Columns, sqlgraph.NewFieldSpec(askevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, askevent.FieldID)
		for _, f := range fields {
			if !askevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != askevent.FieldID {
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
		_spec.SetField(askevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(askevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemID(); ok {
		_spec.AddField(askevent.FieldProblemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(askevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(askevent.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(askevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &AskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{askevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
