// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AgentSessionUpdate) SetTaskID(v string) *AgentSessionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTaskID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentSessionUpdate) ClearTaskID() *AgentSessionUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *AgentSessionUpdate) SetMode(v string) *AgentSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableMode(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *AgentSessionUpdate) ClearMode() *AgentSessionUpdate {
	_u.mutation.ClearMode()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdate) SetModel(v string) *AgentSessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableModel(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentSessionUpdate) ClearModel() *AgentSessionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentSessionUpdate) SetTotalCost(v float64) *AgentSessionUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTotalCost(v *float64) *AgentSessionUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentSessionUpdate) AddTotalCost(v float64) *AgentSessionUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentSessionUpdate) SetTokensIn(v int64) *AgentSessionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTokensIn(v *int64) *AgentSessionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentSessionUpdate) AddTokensIn(v int64) *AgentSessionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentSessionUpdate) SetTokensOut(v int64) *AgentSessionUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTokensOut(v *int64) *AgentSessionUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentSessionUpdate) AddTokensOut(v int64) *AgentSessionUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetTokensReasoning sets the "tokens_reasoning" field.
func (_u *AgentSessionUpdate) SetTokensReasoning(v int64) *AgentSessionUpdate {
	_u.mutation.ResetTokensReasoning()
	_u.mutation.SetTokensReasoning(v)
	return _u
}

// SetNillableTokensReasoning sets the "tokens_reasoning" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTokensReasoning(v *int64) *AgentSessionUpdate {
	if v != nil {
		_u.SetTokensReasoning(*v)
	}
	return _u
}

// AddTokensReasoning adds value to the "tokens_reasoning" field.
func (_u *AgentSessionUpdate) AddTokensReasoning(v int64) *AgentSessionUpdate {
	_u.mutation.AddTokensReasoning(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdate) SetStartedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStartedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentSessionUpdate) SetCompletedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableCompletedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentSessionUpdate) ClearCompletedAt() *AgentSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AgentSessionUpdate) SetOutcome(v string) *AgentSessionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableOutcome(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *AgentSessionUpdate) ClearOutcome() *AgentSessionUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(agentsession.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agentsession.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(agentsession.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(agentsession.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentsession.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentsession.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentsession.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentsession.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentsession.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentsession.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentsession.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensReasoning(); ok {
		_spec.SetField(agentsession.FieldTokensReasoning, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensReasoning(); ok {
		_spec.AddField(agentsession.FieldTokensReasoning, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(agentsession.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(agentsession.FieldOutcome, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AgentSessionUpdateOne) SetTaskID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTaskID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentSessionUpdateOne) ClearTaskID() *AgentSessionUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *AgentSessionUpdateOne) SetMode(v string) *AgentSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableMode(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *AgentSessionUpdateOne) ClearMode() *AgentSessionUpdateOne {
	_u.mutation.ClearMode()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdateOne) SetModel(v string) *AgentSessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableModel(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentSessionUpdateOne) ClearModel() *AgentSessionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentSessionUpdateOne) SetTotalCost(v float64) *AgentSessionUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTotalCost(v *float64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentSessionUpdateOne) AddTotalCost(v float64) *AgentSessionUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentSessionUpdateOne) SetTokensIn(v int64) *AgentSessionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTokensIn(v *int64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentSessionUpdateOne) AddTokensIn(v int64) *AgentSessionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentSessionUpdateOne) SetTokensOut(v int64) *AgentSessionUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTokensOut(v *int64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentSessionUpdateOne) AddTokensOut(v int64) *AgentSessionUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetTokensReasoning sets the "tokens_reasoning" field.
func (_u *AgentSessionUpdateOne) SetTokensReasoning(v int64) *AgentSessionUpdateOne {
	_u.mutation.ResetTokensReasoning()
	_u.mutation.SetTokensReasoning(v)
	return _u
}

// SetNillableTokensReasoning sets the "tokens_reasoning" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTokensReasoning(v *int64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTokensReasoning(*v)
	}
	return _u
}

// AddTokensReasoning adds value to the "tokens_reasoning" field.
func (_u *AgentSessionUpdateOne) AddTokensReasoning(v int64) *AgentSessionUpdateOne {
	_u.mutation.AddTokensReasoning(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdateOne) SetStartedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentSessionUpdateOne) SetCompletedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentSessionUpdateOne) ClearCompletedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AgentSessionUpdateOne) SetOutcome(v string) *AgentSessionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableOutcome(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *AgentSessionUpdateOne) ClearOutcome() *AgentSessionUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(agentsession.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agentsession.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(agentsession.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(agentsession.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentsession.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentsession.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentsession.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentsession.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentsession.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentsession.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentsession.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensReasoning(); ok {
		_spec.SetField(agentsession.FieldTokensReasoning, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensReasoning(); ok {
		_spec.AddField(agentsession.FieldTokensReasoning, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(agentsession.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(agentsession.FieldOutcome, field.TypeString)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
