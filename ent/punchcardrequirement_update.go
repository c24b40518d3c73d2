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
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
)

// PunchCardRequirementUpdate is the builder for updating PunchCardRequirement entities.
type PunchCardRequirementUpdate struct {
	config
	hooks    []Hook
	mutation *PunchCardRequirementMutation
}

// Where appends a list predicates to the PunchCardRequirementUpdate builder.
func (_u *PunchCardRequirementUpdate) Where(ps ...predicate.PunchCardRequirement) *PunchCardRequirementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *PunchCardRequirementUpdate) SetCardID(v string) *PunchCardRequirementUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillableCardID(v *string) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetPunchType sets the "punch_type" field.
func (_u *PunchCardRequirementUpdate) SetPunchType(v punchcardrequirement.PunchType) *PunchCardRequirementUpdate {
	_u.mutation.SetPunchType(v)
	return _u
}

// SetNillablePunchType sets the "punch_type" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillablePunchType(v *punchcardrequirement.PunchType) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetPunchType(*v)
	}
	return _u
}

// SetPunchKeyPattern sets the "punch_key_pattern" field.
func (_u *PunchCardRequirementUpdate) SetPunchKeyPattern(v string) *PunchCardRequirementUpdate {
	_u.mutation.SetPunchKeyPattern(v)
	return _u
}

// SetNillablePunchKeyPattern sets the "punch_key_pattern" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillablePunchKeyPattern(v *string) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetPunchKeyPattern(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *PunchCardRequirementUpdate) SetRequired(v bool) *PunchCardRequirementUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillableRequired(v *bool) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetForbidden sets the "forbidden" field.
func (_u *PunchCardRequirementUpdate) SetForbidden(v bool) *PunchCardRequirementUpdate {
	_u.mutation.SetForbidden(v)
	return _u
}

// SetNillableForbidden sets the "forbidden" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillableForbidden(v *bool) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetForbidden(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PunchCardRequirementUpdate) SetDescription(v string) *PunchCardRequirementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PunchCardRequirementUpdate) SetNillableDescription(v *string) *PunchCardRequirementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PunchCardRequirementUpdate) ClearDescription() *PunchCardRequirementUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the PunchCardRequirementMutation object of the builder.
func (_u *PunchCardRequirementUpdate) Mutation() *PunchCardRequirementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PunchCardRequirementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunchCardRequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PunchCardRequirementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunchCardRequirementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PunchCardRequirementUpdate) check() error {
	if v, ok := _u.mutation.PunchType(); ok {
		if err := punchcardrequirement.PunchTypeValidator(v); err != nil {
			return &ValidationError{Name: "punch_type", err: fmt.Errorf(`ent: validator failed for field "PunchCardRequirement.punch_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PunchCardRequirementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(punchcardrequirement.Table, punchcardrequirement.Columns, sqlgraph.NewFieldSpec(punchcardrequirement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(punchcardrequirement.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PunchType(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PunchKeyPattern(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchKeyPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(punchcardrequirement.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Forbidden(); ok {
		_spec.SetField(punchcardrequirement.FieldForbidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(punchcardrequirement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(punchcardrequirement.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{punchcardrequirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PunchCardRequirementUpdateOne is the builder for updating a single PunchCardRequirement entity.
type PunchCardRequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PunchCardRequirementMutation
}

// SetCardID sets the "card_id" field.
func (_u *PunchCardRequirementUpdateOne) SetCardID(v string) *PunchCardRequirementUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillableCardID(v *string) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetPunchType sets the "punch_type" field.
func (_u *PunchCardRequirementUpdateOne) SetPunchType(v punchcardrequirement.PunchType) *PunchCardRequirementUpdateOne {
	_u.mutation.SetPunchType(v)
	return _u
}

// SetNillablePunchType sets the "punch_type" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillablePunchType(v *punchcardrequirement.PunchType) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetPunchType(*v)
	}
	return _u
}

// SetPunchKeyPattern sets the "punch_key_pattern" field.
func (_u *PunchCardRequirementUpdateOne) SetPunchKeyPattern(v string) *PunchCardRequirementUpdateOne {
	_u.mutation.SetPunchKeyPattern(v)
	return _u
}

// SetNillablePunchKeyPattern sets the "punch_key_pattern" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillablePunchKeyPattern(v *string) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetPunchKeyPattern(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *PunchCardRequirementUpdateOne) SetRequired(v bool) *PunchCardRequirementUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillableRequired(v *bool) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetForbidden sets the "forbidden" field.
func (_u *PunchCardRequirementUpdateOne) SetForbidden(v bool) *PunchCardRequirementUpdateOne {
	_u.mutation.SetForbidden(v)
	return _u
}

// SetNillableForbidden sets the "forbidden" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillableForbidden(v *bool) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetForbidden(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PunchCardRequirementUpdateOne) SetDescription(v string) *PunchCardRequirementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PunchCardRequirementUpdateOne) SetNillableDescription(v *string) *PunchCardRequirementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PunchCardRequirementUpdateOne) ClearDescription() *PunchCardRequirementUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the PunchCardRequirementMutation object of the builder.
func (_u *PunchCardRequirementUpdateOne) Mutation() *PunchCardRequirementMutation {
	return _u.mutation
}

// Where appends a list predicates to the PunchCardRequirementUpdate builder.
func (_u *PunchCardRequirementUpdateOne) Where(ps ...predicate.PunchCardRequirement) *PunchCardRequirementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PunchCardRequirementUpdateOne) Select(field string, fields ...string) *PunchCardRequirementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PunchCardRequirement entity.
func (_u *PunchCardRequirementUpdateOne) Save(ctx context.Context) (*PunchCardRequirement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunchCardRequirementUpdateOne) SaveX(ctx context.Context) *PunchCardRequirement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PunchCardRequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunchCardRequirementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PunchCardRequirementUpdateOne) check() error {
	if v, ok := _u.mutation.PunchType(); ok {
		if err := punchcardrequirement.PunchTypeValidator(v); err != nil {
			return &ValidationError{Name: "punch_type", err: fmt.Errorf(`ent: validator failed for field "PunchCardRequirement.punch_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PunchCardRequirementUpdateOne) sqlSave(ctx context.Context) (_node *PunchCardRequirement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(punchcardrequirement.Table, punchcardrequirement.Columns, sqlgraph.NewFieldSpec(punchcardrequirement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PunchCardRequirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, punchcardrequirement.FieldID)
		for _, f := range fields {
			if !punchcardrequirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != punchcardrequirement.FieldID {
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
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(punchcardrequirement.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PunchType(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PunchKeyPattern(); ok {
		_spec.SetField(punchcardrequirement.FieldPunchKeyPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(punchcardrequirement.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Forbidden(); ok {
		_spec.SetField(punchcardrequirement.FieldForbidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(punchcardrequirement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(punchcardrequirement.FieldDescription, field.TypeString)
	}
	_node = &PunchCardRequirement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{punchcardrequirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
