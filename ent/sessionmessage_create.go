// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/sessionmessage"
)

// SessionMessageCreate is the builder for creating a SessionMessage entity.
type SessionMessageCreate struct {
	config
	mutation *SessionMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionMessageCreate) SetSessionID(v string) *SessionMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SessionMessageCreate) SetRole(v string) *SessionMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *SessionMessageCreate) SetContentType(v string) *SessionMessageCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetContentPreview sets the "content_preview" field.
func (_c *SessionMessageCreate) SetContentPreview(v string) *SessionMessageCreate {
	_c.mutation.SetContentPreview(v)
	return _c
}

// SetTs sets the "ts" field.
func (_c *SessionMessageCreate) SetTs(v time.Time) *SessionMessageCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableTs(v *time.Time) *SessionMessageCreate {
	if v != nil {
		_c.SetTs(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *SessionMessageCreate) SetCost(v float64) *SessionMessageCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableCost(v *float64) *SessionMessageCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *SessionMessageCreate) SetTokensIn(v int64) *SessionMessageCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableTokensIn(v *int64) *SessionMessageCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *SessionMessageCreate) SetTokensOut(v int64) *SessionMessageCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableTokensOut(v *int64) *SessionMessageCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMessageCreate) SetID(v string) *SessionMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMessageMutation object of the builder.
func (_c *SessionMessageCreate) Mutation() *SessionMessageMutation {
	return _c.mutation
}

// Save creates the SessionMessage in the database.
func (_c *SessionMessageCreate) Save(ctx context.Context) (*SessionMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMessageCreate) SaveX(ctx context.Context) *SessionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMessageCreate) defaults() {
	if _, ok := _c.mutation.Ts(); !ok {
		v := sessionmessage.DefaultTs()
		_c.mutation.SetTs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionMessage.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "SessionMessage.role"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "SessionMessage.content_type"`)}
	}
	if _, ok := _c.mutation.ContentPreview(); !ok {
		return &ValidationError{Name: "content_preview", err: errors.New(`ent: missing required field "SessionMessage.content_preview"`)}
	}
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "SessionMessage.ts"`)}
	}
	return nil
}

func (_c *SessionMessageCreate) sqlSave(ctx context.Context) (*SessionMessage, error) {
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
			return nil, fmt.Errorf("unexpected SessionMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMessageCreate) createSpec() (*SessionMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmessage.Table, sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionmessage.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(sessionmessage.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(sessionmessage.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ContentPreview(); ok {
		_spec.SetField(sessionmessage.FieldContentPreview, field.TypeString, value)
		_node.ContentPreview = value
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(sessionmessage.FieldTs, field.TypeTime, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(sessionmessage.FieldCost, field.TypeFloat64, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(sessionmessage.FieldTokensIn, field.TypeInt64, value)
		_node.TokensIn = &value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(sessionmessage.FieldTokensOut, field.TypeInt64, value)
		_node.TokensOut = &value
	}
	return _node, _spec
}

// SessionMessageCreateBulk is the builder for creating many SessionMessage entities in bulk.
type SessionMessageCreateBulk struct {
	config
	err      error
	builders []*SessionMessageCreate
}

// Save creates the SessionMessage entities in the database.
func (_c *SessionMessageCreateBulk) Save(ctx context.Context) ([]*SessionMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMessageMutation)
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
func (_c *SessionMessageCreateBulk) SaveX(ctx context.Context) []*SessionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
