// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/punch"
)

// PunchCreate is the builder for creating a Punch entity.
type PunchCreate struct {
	config
	mutation *PunchMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PunchCreate) SetTaskID(v string) *PunchCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPunchType sets the "punch_type" field.
func (_c *PunchCreate) SetPunchType(v punch.PunchType) *PunchCreate {
	_c.mutation.SetPunchType(v)
	return _c
}

// SetPunchKey sets the "punch_key" field.
func (_c *PunchCreate) SetPunchKey(v string) *PunchCreate {
	_c.mutation.SetPunchKey(v)
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *PunchCreate) SetObservedAt(v time.Time) *PunchCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_c *PunchCreate) SetNillableObservedAt(v *time.Time) *PunchCreate {
	if v != nil {
		_c.SetObservedAt(*v)
	}
	return _c
}

// SetSourceHash sets the "source_hash" field.
func (_c *PunchCreate) SetSourceHash(v string) *PunchCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *PunchCreate) SetContentHash(v string) *PunchCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *PunchCreate) SetNillableContentHash(v *string) *PunchCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *PunchCreate) SetCost(v float64) *PunchCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *PunchCreate) SetNillableCost(v *float64) *PunchCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetTokensInput sets the "tokens_input" field.
func (_c *PunchCreate) SetTokensInput(v int64) *PunchCreate {
	_c.mutation.SetTokensInput(v)
	return _c
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_c *PunchCreate) SetNillableTokensInput(v *int64) *PunchCreate {
	if v != nil {
		_c.SetTokensInput(*v)
	}
	return _c
}

// SetTokensOutput sets the "tokens_output" field.
func (_c *PunchCreate) SetTokensOutput(v int64) *PunchCreate {
	_c.mutation.SetTokensOutput(v)
	return _c
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_c *PunchCreate) SetNillableTokensOutput(v *int64) *PunchCreate {
	if v != nil {
		_c.SetTokensOutput(*v)
	}
	return _c
}

// SetTokensReasoning sets the "tokens_reasoning" field.
func (_c *PunchCreate) SetTokensReasoning(v int64) *PunchCreate {
	_c.mutation.SetTokensReasoning(v)
	return _c
}

// SetNillableTokensReasoning sets the "tokens_reasoning" field if the given value is not nil.
func (_c *PunchCreate) SetNillableTokensReasoning(v *int64) *PunchCreate {
	if v != nil {
		_c.SetTokensReasoning(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PunchCreate) SetID(v string) *PunchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PunchMutation object of the builder.
func (_c *PunchCreate) Mutation() *PunchMutation {
	return _c.mutation
}

// Save creates the Punch in the database.
func (_c *PunchCreate) Save(ctx context.Context) (*Punch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PunchCreate) SaveX(ctx context.Context) *Punch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PunchCreate) defaults() {
	if _, ok := _c.mutation.ObservedAt(); !ok {
		v := punch.DefaultObservedAt()
		_c.mutation.SetObservedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PunchCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Punch.task_id"`)}
	}
	if _, ok := _c.mutation.PunchType(); !ok {
		return &ValidationError{Name: "punch_type", err: errors.New(`ent: missing required field "Punch.punch_type"`)}
	}
	if v, ok := _c.mutation.PunchType(); ok {
		if err := punch.PunchTypeValidator(v); err != nil {
			return &ValidationError{Name: "punch_type", err: fmt.Errorf(`ent: validator failed for field "Punch.punch_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PunchKey(); !ok {
		return &ValidationError{Name: "punch_key", err: errors.New(`ent: missing required field "Punch.punch_key"`)}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "Punch.observed_at"`)}
	}
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "Punch.source_hash"`)}
	}
	if v, ok := _c.mutation.SourceHash(); ok {
		if err := punch.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "Punch.source_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := punch.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Punch.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_c *PunchCreate) sqlSave(ctx context.Context) (*Punch, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Punch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PunchCreate) createSpec() (*Punch, *sqlgraph.CreateSpec) {
	var (
		_node = &Punch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(punch.Table, sqlgraph.NewFieldSpec(punch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(punch.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.PunchType(); ok {
		_spec.SetField(punch.FieldPunchType, field.TypeEnum, value)
		_node.PunchType = value
	}
	if value, ok := _c.mutation.PunchKey(); ok {
		_spec.SetField(punch.FieldPunchKey, field.TypeString, value)
		_node.PunchKey = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(punch.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(punch.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(punch.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(punch.FieldCost, field.TypeFloat64, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.TokensInput(); ok {
		_spec.SetField(punch.FieldTokensInput, field.TypeInt64, value)
		_node.TokensInput = &value
	}
	if value, ok := _c.mutation.TokensOutput(); ok {
		_spec.SetField(punch.FieldTokensOutput, field.TypeInt64, value)
		_node.TokensOutput = &value
	}
	if value, ok := _c.mutation.TokensReasoning(); ok {
		_spec.SetField(punch.FieldTokensReasoning, field.TypeInt64, value)
		_node.TokensReasoning = &value
	}
	return _node, _spec
}

// PunchCreateBulk is the builder for creating many Punch entities in bulk.
type PunchCreateBulk struct {
	config
	err      error
	builders []*PunchCreate
}

// Save creates the Punch entities in the database.
func (_c *PunchCreateBulk) Save(ctx context.Context) ([]*Punch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Punch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PunchMutation)
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
func (_c *PunchCreateBulk) SaveX(ctx context.Context) []*Punch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
