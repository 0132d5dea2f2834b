// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smahajan/codequarry/ent/placementevent"
	"github.com/smahajan/codequarry/ent/predicate"
)

// PlacementEventUpdate is the builder for updating PlacementEvent entities.
type PlacementEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlacementEventMutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdate) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlacementEventUpdate) SetSessionID(v string) *PlacementEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableSessionID(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *PlacementEventUpdate) SetSkillLevel(v string) *PlacementEventUpdate {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableSkillLevel(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetTopicStrength sets the "topic_strength" field.
func (_u *PlacementEventUpdate) SetTopicStrength(v map[string]float64) *PlacementEventUpdate {
	_u.mutation.SetTopicStrength(v)
	return _u
}

// ClearTopicStrength clears the value of the "topic_strength" field.
func (_u *PlacementEventUpdate) ClearTopicStrength() *PlacementEventUpdate {
	_u.mutation.ClearTopicStrength()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PlacementEventUpdate) SetFeedback(v string) *PlacementEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableFeedback(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdate) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlacementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlacementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := placementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(placementevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(placementevent.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicStrength(); ok {
		_spec.SetField(placementevent.FieldTopicStrength, field.TypeJSON, value)
	}
	if _u.mutation.TopicStrengthCleared() {
		_spec.ClearField(placementevent.FieldTopicStrength, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(placementevent.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlacementEventUpdateOne is the builder for updating a single PlacementEvent entity.
type PlacementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlacementEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PlacementEventUpdateOne) SetSessionID(v string) *PlacementEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableSessionID(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *PlacementEventUpdateOne) SetSkillLevel(v string) *PlacementEventUpdateOne {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableSkillLevel(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetTopicStrength sets the "topic_strength" field.
func (_u *PlacementEventUpdateOne) SetTopicStrength(v map[string]float64) *PlacementEventUpdateOne {
	_u.mutation.SetTopicStrength(v)
	return _u
}

// ClearTopicStrength clears the value of the "topic_strength" field.
func (_u *PlacementEventUpdateOne) ClearTopicStrength() *PlacementEventUpdateOne {
	_u.mutation.ClearTopicStrength()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PlacementEventUpdateOne) SetFeedback(v string) *PlacementEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableFeedback(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdateOne) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdateOne) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlacementEventUpdateOne) Select(field string, fields ...string) *PlacementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlacementEvent entity.
func (_u *PlacementEventUpdateOne) Save(ctx context.Context) (*PlacementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) SaveX(ctx context.Context) *PlacementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlacementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := placementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdateOne) sqlSave(ctx context.Context) (_node *PlacementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlacementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, placementevent.FieldID)
		for _, f := range fields {
			if !placementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != placementevent.FieldID {
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
		_spec.SetField(placementevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(placementevent.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicStrength(); ok {
		_spec.SetField(placementevent.FieldTopicStrength, field.TypeJSON, value)
	}
	if _u.mutation.TopicStrengthCleared() {
		_spec.ClearField(placementevent.FieldTopicStrength, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(placementevent.FieldFeedback, field.TypeString, value)
	}
	_node = &PlacementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
