// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/childrelation"
)

// ChildRelationCreate is the builder for creating a ChildRelation entity.
type ChildRelationCreate struct {
	config
	mutation *ChildRelationMutation
	hooks    []Hook
}

// SetParentID sets the "parent_id" field.
func (_c *ChildRelationCreate) SetParentID(v string) *ChildRelationCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *ChildRelationCreate) SetChildID(v string) *ChildRelationCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChildRelationCreate) SetCreatedAt(v time.Time) *ChildRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChildRelationCreate) SetNillableCreatedAt(v *time.Time) *ChildRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChildRelationCreate) SetID(v string) *ChildRelationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChildRelationMutation object of the builder.
func (_c *ChildRelationCreate) Mutation() *ChildRelationMutation {
	return _c.mutation
}

// Save creates the ChildRelation in the database.
func (_c *ChildRelationCreate) Save(ctx context.Context) (*ChildRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChildRelationCreate) SaveX(ctx context.Context) *ChildRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChildRelationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := childrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChildRelationCreate) check() error {
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "ChildRelation.parent_id"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ChildRelation.child_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChildRelation.created_at"`)}
	}
	return nil
}

func (_c *ChildRelationCreate) sqlSave(ctx context.Context) (*ChildRelation, error) {
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
			return nil, fmt.Errorf("unexpected ChildRelation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChildRelationCreate) createSpec() (*ChildRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &ChildRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(childrelation.Table, sqlgraph.NewFieldSpec(childrelation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(childrelation.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(childrelation.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(childrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChildRelationCreateBulk is the builder for creating many ChildRelation entities in bulk.
type ChildRelationCreateBulk struct {
	config
	err      error
	builders []*ChildRelationCreate
}

// Save creates the ChildRelation entities in the database.
func (_c *ChildRelationCreateBulk) Save(ctx context.Context) ([]*ChildRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChildRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChildRelationMutation)
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
func (_c *ChildRelationCreateBulk) SaveX(ctx context.Context) []*ChildRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
