// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
)

// PunchCardRequirementCreate is the builder for creating a PunchCardRequirement entity.
type PunchCardRequirementCreate struct {
	config
	mutation *PunchCardRequirementMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *PunchCardRequirementCreate) SetCardID(v string) *PunchCardRequirementCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetPunchType sets the "punch_type" field.
func (_c *PunchCardRequirementCreate) SetPunchType(v punchcardrequirement.PunchType) *PunchCardRequirementCreate {
	_c.mutation.SetPunchType(v)
	return _c
}

// SetPunchKeyPattern sets the "punch_key_pattern" field.
func (_c *PunchCardRequirementCreate) SetPunchKeyPattern(v string) *PunchCardRequirementCreate {
	_c.mutation.SetPunchKeyPattern(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *PunchCardRequirementCreate) SetRequired(v bool) *PunchCardRequirementCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *PunchCardRequirementCreate) SetNillableRequired(v *bool) *PunchCardRequirementCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetForbidden sets the "forbidden" field.
func (_c *PunchCardRequirementCreate) SetForbidden(v bool) *PunchCardRequirementCreate {
	_c.mutation.SetForbidden(v)
	return _c
}

// SetNillableForbidden sets the "forbidden" field if the given value is not nil.
func (_c *PunchCardRequirementCreate) SetNillableForbidden(v *bool) *PunchCardRequirementCreate {
	if v != nil {
		_c.SetForbidden(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *PunchCardRequirementCreate) SetDescription(v string) *PunchCardRequirementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PunchCardRequirementCreate) SetNillableDescription(v *string) *PunchCardRequirementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PunchCardRequirementCreate) SetID(v string) *PunchCardRequirementCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PunchCardRequirementMutation object of the builder.
func (_c *PunchCardRequirementCreate) Mutation() *PunchCardRequirementMutation {
	return _c.mutation
}

// Save creates the PunchCardRequirement in the database.
func (_c *PunchCardRequirementCreate) Save(ctx context.Context) (*PunchCardRequirement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PunchCardRequirementCreate) SaveX(ctx context.Context) *PunchCardRequirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunchCardRequirementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunchCardRequirementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PunchCardRequirementCreate) defaults() {
	if _, ok := _c.mutation.Required(); !ok {
		v := punchcardrequirement.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Forbidden(); !ok {
		v := punchcardrequirement.DefaultForbidden
		_c.mutation.SetForbidden(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PunchCardRequirementCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "PunchCardRequirement.card_id"`)}
	}
	if _, ok := _c.mutation.PunchType(); !ok {
		return &ValidationError{Name: "punch_type", err: errors.New(`ent: missing required field "PunchCardRequirement.punch_type"`)}
	}
	if v, ok := _c.mutation.PunchType(); ok {
		if err := punchcardrequirement.PunchTypeValidator(v); err != nil {
			return &ValidationError{Name: "punch_type", err: fmt.Errorf(`ent: validator failed for field "PunchCardRequirement.punch_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PunchKeyPattern(); !ok {
		return &ValidationError{Name: "punch_key_pattern", err: errors.New(`ent: missing required field "PunchCardRequirement.punch_key_pattern"`)}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "PunchCardRequirement.required"`)}
	}
	if _, ok := _c.mutation.Forbidden(); !ok {
		return &ValidationError{Name: "forbidden", err: errors.New(`ent: missing required field "PunchCardRequirement.forbidden"`)}
	}
	return nil
}

func (_c *PunchCardRequirementCreate) sqlSave(ctx context.Context) (*PunchCardRequirement, error) {
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
			return nil, fmt.Errorf("unexpected PunchCardRequirement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PunchCardRequirementCreate) createSpec() (*PunchCardRequirement, *sqlgraph.CreateSpec) {
	var (
		_node = &PunchCardRequirement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(punchcardrequirement.Table, sqlgraph.NewFieldSpec(punchcardrequirement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(punchcardrequirement.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.PunchType(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchType, field.TypeEnum, value)
		_node.PunchType = value
	}
	if value, ok := _c.mutation.PunchKeyPattern(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchKeyPattern, field.TypeString, value)
		_node.PunchKeyPattern = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(punchcardrequirement.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Forbidden(); ok {
		_spec.SetField(punchcardrequirement.FieldForbidden, field.TypeBool, value)
		_node.Forbidden = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(punchcardrequirement.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// PunchCardRequirementCreateBulk is the builder for creating many PunchCardRequirement entities in bulk.
type PunchCardRequirementCreateBulk struct {
	config
	err      error
	builders []*PunchCardRequirementCreate
}

// Save creates the PunchCardRequirement entities in the database.
func (_c *PunchCardRequirementCreateBulk) Save(ctx context.Context) ([]*PunchCardRequirement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PunchCardRequirement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PunchCardRequirementMutation)
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
func (_c *PunchCardRequirementCreateBulk) SaveX(ctx context.Context) []*PunchCardRequirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PunchCardRequirementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PunchCardRequirementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
