// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/predicate"
	"github.com/punchd-io/punchd/ent/punch"
)

// PunchUpdate is the builder for updating Punch entities.
type PunchUpdate struct {
	config
	hooks    []Hook
	mutation *PunchMutation
}

// Where appends a list predicates to the PunchUpdate builder.
func (_u *PunchUpdate) Where(ps ...predicate.Punch) *PunchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PunchMutation object of the builder.
func (_u *PunchUpdate) Mutation() *PunchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PunchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PunchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PunchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(punch.Table, punch.Columns, sqlgraph.NewFieldSpec(punch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(punch.FieldContentHash, field.TypeString)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(punch.FieldCost, field.TypeFloat64)
	}
	if _u.mutation.TokensInputCleared() {
		_spec.ClearField(punch.FieldTokensInput, field.TypeInt64)
	}
	if _u.mutation.TokensOutputCleared() {
		_spec.ClearField(punch.FieldTokensOutput, field.TypeInt64)
	}
	if _u.mutation.TokensReasoningCleared() {
		_spec.ClearField(punch.FieldTokensReasoning, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{punch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PunchUpdateOne is the builder for updating a single Punch entity.
type PunchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PunchMutation
}

// Mutation returns the PunchMutation object of the builder.
func (_u *PunchUpdateOne) Mutation() *PunchMutation {
	return _u.mutation
}

// Where appends a list predicates to the PunchUpdate builder.
func (_u *PunchUpdateOne) Where(ps ...predicate.Punch) *PunchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PunchUpdateOne) Select(field string, fields ...string) *PunchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Punch entity.
func (_u *PunchUpdateOne) Save(ctx context.Context) (*Punch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunchUpdateOne) SaveX(ctx context.Context) *Punch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PunchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PunchUpdateOne) sqlSave(ctx context.Context) (_node *Punch, err error) {
	_spec := sqlgraph.NewUpdateSpec(punch.Table, punch.Columns, sqlgraph.NewFieldSpec(punch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Punch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, punch.FieldID)
		for _, f := range fields {
			if !punch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != punch.FieldID {
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
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(punch.FieldContentHash, field.TypeString)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(punch.FieldCost, field.TypeFloat64)
	}
	if _u.mutation.TokensInputCleared() {
		_spec.ClearField(punch.FieldTokensInput, field.TypeInt64)
	}
	if _u.mutation.TokensOutputCleared() {
		_spec.ClearField(punch.FieldTokensOutput, field.TypeInt64)
	}
	if _u.mutation.TokensReasoningCleared() {
		_spec.ClearField(punch.FieldTokensReasoning, field.TypeInt64)
	}
	_node = &Punch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{punch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
