// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smahajan/codequarry/ent/askevent"
)

// AskEventCreate is the builder for creating a AskEvent entity.
type AskEventCreate struct {
	config
	mutation *AskEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AskEventCreate) SetSequence(v int64) *AskEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AskEventCreate) SetTimestamp(v time.Time) *AskEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AskEventCreate) SetNillableTimestamp(v *time.Time) *AskEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AskEventCreate) SetSessionID(v string) *AskEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *AskEventCreate) SetProblemID(v int) *AskEventCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *AskEventCreate) SetQuestion(v string) *AskEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *AskEventCreate) SetAnswered(v bool) *AskEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AskEventCreate) SetErrorMessage(v string) *AskEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AskEventCreate) SetNillableErrorMessage(v *string) *AskEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AskEventMutation object of the builder.
func (_c *AskEventCreate) Mutation() *AskEventMutation {
	return _c.mutation
}

// Save creates the AskEvent in the database.
func (_c *AskEventCreate) Save(ctx context.Context) (*AskEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AskEventCreate) SaveX(ctx context.Context) *AskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AskEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AskEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AskEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := askevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := askevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AskEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AskEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AskEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AskEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := askevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AskEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "AskEvent.problem_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "AskEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := askevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AskEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "AskEvent.answered"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AskEvent.error_message"`)}
	}
	return nil
}

func (_c *AskEventCreate) sqlSave(ctx context.Context) (*AskEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AskEventCreate) createSpec() (*AskEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AskEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(askevent.Table, sqlgraph.NewFieldSpec(askevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(askevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(askevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(askevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(askevent.FieldProblemID, field.TypeInt, value)
		_node.ProblemID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(askevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(askevent.FieldAnswered, field.TypeBool, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(askevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// AskEventCreateBulk is the builder for creating many AskEvent entities in bulk.
type AskEventCreateBulk struct {
	config
	err      error
	builders []*AskEventCreate
}

// Save creates the AskEvent entities in the database.
func (_c *AskEventCreateBulk) Save(ctx context.Context) ([]*AskEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AskEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AskEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AskEventCreateBulk) SaveX(ctx context.Context) []*AskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AskEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AskEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
