// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/childrelation"
	"github.com/punchd-io/punchd/ent/predicate"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
	"github.com/punchd-io/punchd/ent/sessionmessage"
	"github.com/punchd-io/punchd/ent/toolcall"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession         = "AgentSession"
	TypeChildRelation        = "ChildRelation"
	TypePunch                = "Punch"
	TypePunchCardRequirement = "PunchCardRequirement"
	TypeSessionMessage       = "SessionMessage"
	TypeToolCall             = "ToolCall"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	task_id             *string
	mode                *string
	model               *string
	status              *agentsession.Status
	total_cost          *float64
	addtotal_cost       *float64
	tokens_in           *int64
	addtokens_in        *int64
	tokens_out          *int64
	addtokens_out       *int64
	tokens_reasoning    *int64
	addtokens_reasoning *int64
	started_at          *time.Time
	completed_at        *time.Time
	outcome             *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentSession, error)
	predicates          []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AgentSessionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentSessionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AgentSessionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[agentsession.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AgentSessionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentSessionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, agentsession.FieldTaskID)
}

// SetMode sets the "mode" field.
func (m *AgentSessionMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *AgentSessionMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ClearMode clears the value of the "mode" field.
func (m *AgentSessionMutation) ClearMode() {
	m.mode = nil
	m.clearedFields[agentsession.FieldMode] = struct{}{}
}

// ModeCleared returns if the "mode" field was cleared in this mutation.
func (m *AgentSessionMutation) ModeCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldMode]
	return ok
}

// ResetMode resets all changes to the "mode" field.
func (m *AgentSessionMutation) ResetMode() {
	m.mode = nil
	delete(m.clearedFields, agentsession.FieldMode)
}

// SetModel sets the "model" field.
func (m *AgentSessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentSessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentSessionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentsession.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentSessionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentSessionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentsession.FieldModel)
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *AgentSessionMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *AgentSessionMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *AgentSessionMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *AgentSessionMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *AgentSessionMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *AgentSessionMutation) SetTokensIn(i int64) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *AgentSessionMutation) TokensIn() (r int64, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTokensIn(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *AgentSessionMutation) AddTokensIn(i int64) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *AgentSessionMutation) AddedTokensIn() (r int64, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *AgentSessionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *AgentSessionMutation) SetTokensOut(i int64) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *AgentSessionMutation) TokensOut() (r int64, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTokensOut(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *AgentSessionMutation) AddTokensOut(i int64) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *AgentSessionMutation) AddedTokensOut() (r int64, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *AgentSessionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetTokensReasoning sets the "tokens_reasoning" field.
func (m *AgentSessionMutation) SetTokensReasoning(i int64) {
	m.tokens_reasoning = &i
	m.addtokens_reasoning = nil
}

// TokensReasoning returns the value of the "tokens_reasoning" field in the mutation.
func (m *AgentSessionMutation) TokensReasoning() (r int64, exists bool) {
	v := m.tokens_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensReasoning returns the old "tokens_reasoning" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTokensReasoning(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensReasoning: %w", err)
	}
	return oldValue.TokensReasoning, nil
}

// AddTokensReasoning adds i to the "tokens_reasoning" field.
func (m *AgentSessionMutation) AddTokensReasoning(i int64) {
	if m.addtokens_reasoning != nil {
		*m.addtokens_reasoning += i
	} else {
		m.addtokens_reasoning = &i
	}
}

// AddedTokensReasoning returns the value that was added to the "tokens_reasoning" field in this mutation.
func (m *AgentSessionMutation) AddedTokensReasoning() (r int64, exists bool) {
	v := m.addtokens_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensReasoning resets all changes to the "tokens_reasoning" field.
func (m *AgentSessionMutation) ResetTokensReasoning() {
	m.tokens_reasoning = nil
	m.addtokens_reasoning = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentsession.FieldCompletedAt)
}

// SetOutcome sets the "outcome" field.
func (m *AgentSessionMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AgentSessionMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldOutcome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *AgentSessionMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[agentsession.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *AgentSessionMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AgentSessionMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, agentsession.FieldOutcome)
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task_id != nil {
		fields = append(fields, agentsession.FieldTaskID)
	}
	if m.mode != nil {
		fields = append(fields, agentsession.FieldMode)
	}
	if m.model != nil {
		fields = append(fields, agentsession.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.total_cost != nil {
		fields = append(fields, agentsession.FieldTotalCost)
	}
	if m.tokens_in != nil {
		fields = append(fields, agentsession.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, agentsession.FieldTokensOut)
	}
	if m.tokens_reasoning != nil {
		fields = append(fields, agentsession.FieldTokensReasoning)
	}
	if m.started_at != nil {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentsession.FieldCompletedAt)
	}
	if m.outcome != nil {
		fields = append(fields, agentsession.FieldOutcome)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldTaskID:
		return m.TaskID()
	case agentsession.FieldMode:
		return m.Mode()
	case agentsession.FieldModel:
		return m.Model()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldTotalCost:
		return m.TotalCost()
	case agentsession.FieldTokensIn:
		return m.TokensIn()
	case agentsession.FieldTokensOut:
		return m.TokensOut()
	case agentsession.FieldTokensReasoning:
		return m.TokensReasoning()
	case agentsession.FieldStartedAt:
		return m.StartedAt()
	case agentsession.FieldCompletedAt:
		return m.CompletedAt()
	case agentsession.FieldOutcome:
		return m.Outcome()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldTaskID:
		return m.OldTaskID(ctx)
	case agentsession.FieldMode:
		return m.OldMode(ctx)
	case agentsession.FieldModel:
		return m.OldModel(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case agentsession.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case agentsession.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case agentsession.FieldTokensReasoning:
		return m.OldTokensReasoning(ctx)
	case agentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentsession.FieldOutcome:
		return m.OldOutcome(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agentsession.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case agentsession.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case agentsession.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case agentsession.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case agentsession.FieldTokensReasoning:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensReasoning(v)
		return nil
	case agentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentsession.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cost != nil {
		fields = append(fields, agentsession.FieldTotalCost)
	}
	if m.addtokens_in != nil {
		fields = append(fields, agentsession.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, agentsession.FieldTokensOut)
	}
	if m.addtokens_reasoning != nil {
		fields = append(fields, agentsession.FieldTokensReasoning)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldTotalCost:
		return m.AddedTotalCost()
	case agentsession.FieldTokensIn:
		return m.AddedTokensIn()
	case agentsession.FieldTokensOut:
		return m.AddedTokensOut()
	case agentsession.FieldTokensReasoning:
		return m.AddedTokensReasoning()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	case agentsession.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case agentsession.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case agentsession.FieldTokensReasoning:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldTaskID) {
		fields = append(fields, agentsession.FieldTaskID)
	}
	if m.FieldCleared(agentsession.FieldMode) {
		fields = append(fields, agentsession.FieldMode)
	}
	if m.FieldCleared(agentsession.FieldModel) {
		fields = append(fields, agentsession.FieldModel)
	}
	if m.FieldCleared(agentsession.FieldCompletedAt) {
		fields = append(fields, agentsession.FieldCompletedAt)
	}
	if m.FieldCleared(agentsession.FieldOutcome) {
		fields = append(fields, agentsession.FieldOutcome)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldTaskID:
		m.ClearTaskID()
		return nil
	case agentsession.FieldMode:
		m.ClearMode()
		return nil
	case agentsession.FieldModel:
		m.ClearModel()
		return nil
	case agentsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentsession.FieldOutcome:
		m.ClearOutcome()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agentsession.FieldMode:
		m.ResetMode()
		return nil
	case agentsession.FieldModel:
		m.ResetModel()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case agentsession.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case agentsession.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case agentsession.FieldTokensReasoning:
		m.ResetTokensReasoning()
		return nil
	case agentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentsession.FieldOutcome:
		m.ResetOutcome()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// ChildRelationMutation represents an operation that mutates the ChildRelation nodes in the graph.
type ChildRelationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	parent_id     *string
	child_id      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChildRelation, error)
	predicates    []predicate.ChildRelation
}

var _ ent.Mutation = (*ChildRelationMutation)(nil)

// childrelationOption allows management of the mutation configuration using functional options.
type childrelationOption func(*ChildRelationMutation)

// newChildRelationMutation creates new mutation for the ChildRelation entity.
func newChildRelationMutation(c config, op Op, opts ...childrelationOption) *ChildRelationMutation {
	m := &ChildRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeChildRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChildRelationID sets the ID field of the mutation.
func withChildRelationID(id string) childrelationOption {
	return func(m *ChildRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *ChildRelation
		)
		m.oldValue = func(ctx context.Context) (*ChildRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChildRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChildRelation sets the old ChildRelation of the mutation.
func withChildRelation(node *ChildRelation) childrelationOption {
	return func(m *ChildRelationMutation) {
		m.oldValue = func(context.Context) (*ChildRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChildRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChildRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChildRelation entities.
func (m *ChildRelationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChildRelationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChildRelationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChildRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentID sets the "parent_id" field.
func (m *ChildRelationMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ChildRelationMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the ChildRelation entity.
// If the ChildRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildRelationMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ChildRelationMutation) ResetParentID() {
	m.parent_id = nil
}

// SetChildID sets the "child_id" field.
func (m *ChildRelationMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *ChildRelationMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the ChildRelation entity.
// If the ChildRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildRelationMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *ChildRelationMutation) ResetChildID() {
	m.child_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChildRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChildRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChildRelation entity.
// If the ChildRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChildRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChildRelationMutation builder.
func (m *ChildRelationMutation) Where(ps ...predicate.ChildRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChildRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChildRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChildRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChildRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChildRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChildRelation).
func (m *ChildRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChildRelationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.parent_id != nil {
		fields = append(fields, childrelation.FieldParentID)
	}
	if m.child_id != nil {
		fields = append(fields, childrelation.FieldChildID)
	}
	if m.created_at != nil {
		fields = append(fields, childrelation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChildRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case childrelation.FieldParentID:
		return m.ParentID()
	case childrelation.FieldChildID:
		return m.ChildID()
	case childrelation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChildRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case childrelation.FieldParentID:
		return m.OldParentID(ctx)
	case childrelation.FieldChildID:
		return m.OldChildID(ctx)
	case childrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChildRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case childrelation.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case childrelation.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case childrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChildRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChildRelationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChildRelationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChildRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChildRelationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChildRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChildRelationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChildRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChildRelationMutation) ResetField(name string) error {
	switch name {
	case childrelation.FieldParentID:
		m.ResetParentID()
		return nil
	case childrelation.FieldChildID:
		m.ResetChildID()
		return nil
	case childrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChildRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChildRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChildRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChildRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChildRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChildRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChildRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChildRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChildRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChildRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChildRelation edge %s", name)
}

// PunchMutation represents an operation that mutates the Punch nodes in the graph.
type PunchMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	task_id             *string
	punch_type          *punch.PunchType
	punch_key           *string
	observed_at         *time.Time
	source_hash         *string
	content_hash        *string
	cost                *float64
	addcost             *float64
	tokens_input        *int64
	addtokens_input     *int64
	tokens_output       *int64
	addtokens_output    *int64
	tokens_reasoning    *int64
	addtokens_reasoning *int64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Punch, error)
	predicates          []predicate.Punch
}

var _ ent.Mutation = (*PunchMutation)(nil)

// punchOption allows management of the mutation configuration using functional options.
type punchOption func(*PunchMutation)

// newPunchMutation creates new mutation for the Punch entity.
func newPunchMutation(c config, op Op, opts ...punchOption) *PunchMutation {
	m := &PunchMutation{
		config:        c,
		op:            op,
		typ:           TypePunch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPunchID sets the ID field of the mutation.
func withPunchID(id string) punchOption {
	return func(m *PunchMutation) {
		var (
			err   error
			once  sync.Once
			value *Punch
		)
		m.oldValue = func(ctx context.Context) (*Punch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Punch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPunch sets the old Punch of the mutation.
func withPunch(node *Punch) punchOption {
	return func(m *PunchMutation) {
		m.oldValue = func(context.Context) (*Punch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PunchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PunchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Punch entities.
func (m *PunchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PunchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PunchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Punch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PunchMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PunchMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PunchMutation) ResetTaskID() {
	m.task_id = nil
}

// SetPunchType sets the "punch_type" field.
func (m *PunchMutation) SetPunchType(pt punch.PunchType) {
	m.punch_type = &pt
}

// PunchType returns the value of the "punch_type" field in the mutation.
func (m *PunchMutation) PunchType() (r punch.PunchType, exists bool) {
	v := m.punch_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPunchType returns the old "punch_type" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldPunchType(ctx context.Context) (v punch.PunchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPunchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPunchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPunchType: %w", err)
	}
	return oldValue.PunchType, nil
}

// ResetPunchType resets all changes to the "punch_type" field.
func (m *PunchMutation) ResetPunchType() {
	m.punch_type = nil
}

// SetPunchKey sets the "punch_key" field.
func (m *PunchMutation) SetPunchKey(s string) {
	m.punch_key = &s
}

// PunchKey returns the value of the "punch_key" field in the mutation.
func (m *PunchMutation) PunchKey() (r string, exists bool) {
	v := m.punch_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPunchKey returns the old "punch_key" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldPunchKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPunchKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPunchKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPunchKey: %w", err)
	}
	return oldValue.PunchKey, nil
}

// ResetPunchKey resets all changes to the "punch_key" field.
func (m *PunchMutation) ResetPunchKey() {
	m.punch_key = nil
}

// SetObservedAt sets the "observed_at" field.
func (m *PunchMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *PunchMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *PunchMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetSourceHash sets the "source_hash" field.
func (m *PunchMutation) SetSourceHash(s string) {
	m.source_hash = &s
}

// SourceHash returns the value of the "source_hash" field in the mutation.
func (m *PunchMutation) SourceHash() (r string, exists bool) {
	v := m.source_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHash returns the old "source_hash" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldSourceHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHash: %w", err)
	}
	return oldValue.SourceHash, nil
}

// ResetSourceHash resets all changes to the "source_hash" field.
func (m *PunchMutation) ResetSourceHash() {
	m.source_hash = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PunchMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PunchMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *PunchMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[punch.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *PunchMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[punch.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PunchMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, punch.FieldContentHash)
}

// SetCost sets the "cost" field.
func (m *PunchMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *PunchMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *PunchMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *PunchMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *PunchMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[punch.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *PunchMutation) CostCleared() bool {
	_, ok := m.clearedFields[punch.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *PunchMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, punch.FieldCost)
}

// SetTokensInput sets the "tokens_input" field.
func (m *PunchMutation) SetTokensInput(i int64) {
	m.tokens_input = &i
	m.addtokens_input = nil
}

// TokensInput returns the value of the "tokens_input" field in the mutation.
func (m *PunchMutation) TokensInput() (r int64, exists bool) {
	v := m.tokens_input
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensInput returns the old "tokens_input" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldTokensInput(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensInput: %w", err)
	}
	return oldValue.TokensInput, nil
}

// AddTokensInput adds i to the "tokens_input" field.
func (m *PunchMutation) AddTokensInput(i int64) {
	if m.addtokens_input != nil {
		*m.addtokens_input += i
	} else {
		m.addtokens_input = &i
	}
}

// AddedTokensInput returns the value that was added to the "tokens_input" field in this mutation.
func (m *PunchMutation) AddedTokensInput() (r int64, exists bool) {
	v := m.addtokens_input
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensInput clears the value of the "tokens_input" field.
func (m *PunchMutation) ClearTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
	m.clearedFields[punch.FieldTokensInput] = struct{}{}
}

// TokensInputCleared returns if the "tokens_input" field was cleared in this mutation.
func (m *PunchMutation) TokensInputCleared() bool {
	_, ok := m.clearedFields[punch.FieldTokensInput]
	return ok
}

// ResetTokensInput resets all changes to the "tokens_input" field.
func (m *PunchMutation) ResetTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
	delete(m.clearedFields, punch.FieldTokensInput)
}

// SetTokensOutput sets the "tokens_output" field.
func (m *PunchMutation) SetTokensOutput(i int64) {
	m.tokens_output = &i
	m.addtokens_output = nil
}

// TokensOutput returns the value of the "tokens_output" field in the mutation.
func (m *PunchMutation) TokensOutput() (r int64, exists bool) {
	v := m.tokens_output
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOutput returns the old "tokens_output" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldTokensOutput(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOutput: %w", err)
	}
	return oldValue.TokensOutput, nil
}

// AddTokensOutput adds i to the "tokens_output" field.
func (m *PunchMutation) AddTokensOutput(i int64) {
	if m.addtokens_output != nil {
		*m.addtokens_output += i
	} else {
		m.addtokens_output = &i
	}
}

// AddedTokensOutput returns the value that was added to the "tokens_output" field in this mutation.
func (m *PunchMutation) AddedTokensOutput() (r int64, exists bool) {
	v := m.addtokens_output
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensOutput clears the value of the "tokens_output" field.
func (m *PunchMutation) ClearTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
	m.clearedFields[punch.FieldTokensOutput] = struct{}{}
}

// TokensOutputCleared returns if the "tokens_output" field was cleared in this mutation.
func (m *PunchMutation) TokensOutputCleared() bool {
	_, ok := m.clearedFields[punch.FieldTokensOutput]
	return ok
}

// ResetTokensOutput resets all changes to the "tokens_output" field.
func (m *PunchMutation) ResetTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
	delete(m.clearedFields, punch.FieldTokensOutput)
}

// SetTokensReasoning sets the "tokens_reasoning" field.
func (m *PunchMutation) SetTokensReasoning(i int64) {
	m.tokens_reasoning = &i
	m.addtokens_reasoning = nil
}

// TokensReasoning returns the value of the "tokens_reasoning" field in the mutation.
func (m *PunchMutation) TokensReasoning() (r int64, exists bool) {
	v := m.tokens_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensReasoning returns the old "tokens_reasoning" field's value of the Punch entity.
// If the Punch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchMutation) OldTokensReasoning(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensReasoning: %w", err)
	}
	return oldValue.TokensReasoning, nil
}

// AddTokensReasoning adds i to the "tokens_reasoning" field.
func (m *PunchMutation) AddTokensReasoning(i int64) {
	if m.addtokens_reasoning != nil {
		*m.addtokens_reasoning += i
	} else {
		m.addtokens_reasoning = &i
	}
}

// AddedTokensReasoning returns the value that was added to the "tokens_reasoning" field in this mutation.
func (m *PunchMutation) AddedTokensReasoning() (r int64, exists bool) {
	v := m.addtokens_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensReasoning clears the value of the "tokens_reasoning" field.
func (m *PunchMutation) ClearTokensReasoning() {
	m.tokens_reasoning = nil
	m.addtokens_reasoning = nil
	m.clearedFields[punch.FieldTokensReasoning] = struct{}{}
}

// TokensReasoningCleared returns if the "tokens_reasoning" field was cleared in this mutation.
func (m *PunchMutation) TokensReasoningCleared() bool {
	_, ok := m.clearedFields[punch.FieldTokensReasoning]
	return ok
}

// ResetTokensReasoning resets all changes to the "tokens_reasoning" field.
func (m *PunchMutation) ResetTokensReasoning() {
	m.tokens_reasoning = nil
	m.addtokens_reasoning = nil
	delete(m.clearedFields, punch.FieldTokensReasoning)
}

// Where appends a list predicates to the PunchMutation builder.
func (m *PunchMutation) Where(ps ...predicate.Punch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PunchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PunchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Punch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PunchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PunchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Punch).
func (m *PunchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PunchMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task_id != nil {
		fields = append(fields, punch.FieldTaskID)
	}
	if m.punch_type != nil {
		fields = append(fields, punch.FieldPunchType)
	}
	if m.punch_key != nil {
		fields = append(fields, punch.FieldPunchKey)
	}
	if m.observed_at != nil {
		fields = append(fields, punch.FieldObservedAt)
	}
	if m.source_hash != nil {
		fields = append(fields, punch.FieldSourceHash)
	}
	if m.content_hash != nil {
		fields = append(fields, punch.FieldContentHash)
	}
	if m.cost != nil {
		fields = append(fields, punch.FieldCost)
	}
	if m.tokens_input != nil {
		fields = append(fields, punch.FieldTokensInput)
	}
	if m.tokens_output != nil {
		fields = append(fields, punch.FieldTokensOutput)
	}
	if m.tokens_reasoning != nil {
		fields = append(fields, punch.FieldTokensReasoning)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PunchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case punch.FieldTaskID:
		return m.TaskID()
	case punch.FieldPunchType:
		return m.PunchType()
	case punch.FieldPunchKey:
		return m.PunchKey()
	case punch.FieldObservedAt:
		return m.ObservedAt()
	case punch.FieldSourceHash:
		return m.SourceHash()
	case punch.FieldContentHash:
		return m.ContentHash()
	case punch.FieldCost:
		return m.Cost()
	case punch.FieldTokensInput:
		return m.TokensInput()
	case punch.FieldTokensOutput:
		return m.TokensOutput()
	case punch.FieldTokensReasoning:
		return m.TokensReasoning()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PunchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case punch.FieldTaskID:
		return m.OldTaskID(ctx)
	case punch.FieldPunchType:
		return m.OldPunchType(ctx)
	case punch.FieldPunchKey:
		return m.OldPunchKey(ctx)
	case punch.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case punch.FieldSourceHash:
		return m.OldSourceHash(ctx)
	case punch.FieldContentHash:
		return m.OldContentHash(ctx)
	case punch.FieldCost:
		return m.OldCost(ctx)
	case punch.FieldTokensInput:
		return m.OldTokensInput(ctx)
	case punch.FieldTokensOutput:
		return m.OldTokensOutput(ctx)
	case punch.FieldTokensReasoning:
		return m.OldTokensReasoning(ctx)
	}
	return nil, fmt.Errorf("unknown Punch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case punch.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case punch.FieldPunchType:
		v, ok := value.(punch.PunchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPunchType(v)
		return nil
	case punch.FieldPunchKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPunchKey(v)
		return nil
	case punch.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case punch.FieldSourceHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHash(v)
		return nil
	case punch.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case punch.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case punch.FieldTokensInput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensInput(v)
		return nil
	case punch.FieldTokensOutput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOutput(v)
		return nil
	case punch.FieldTokensReasoning:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown Punch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PunchMutation) AddedFields() []string {
	var fields []string
	if m.addcost != nil {
		fields = append(fields, punch.FieldCost)
	}
	if m.addtokens_input != nil {
		fields = append(fields, punch.FieldTokensInput)
	}
	if m.addtokens_output != nil {
		fields = append(fields, punch.FieldTokensOutput)
	}
	if m.addtokens_reasoning != nil {
		fields = append(fields, punch.FieldTokensReasoning)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PunchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case punch.FieldCost:
		return m.AddedCost()
	case punch.FieldTokensInput:
		return m.AddedTokensInput()
	case punch.FieldTokensOutput:
		return m.AddedTokensOutput()
	case punch.FieldTokensReasoning:
		return m.AddedTokensReasoning()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case punch.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case punch.FieldTokensInput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensInput(v)
		return nil
	case punch.FieldTokensOutput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOutput(v)
		return nil
	case punch.FieldTokensReasoning:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown Punch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PunchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(punch.FieldContentHash) {
		fields = append(fields, punch.FieldContentHash)
	}
	if m.FieldCleared(punch.FieldCost) {
		fields = append(fields, punch.FieldCost)
	}
	if m.FieldCleared(punch.FieldTokensInput) {
		fields = append(fields, punch.FieldTokensInput)
	}
	if m.FieldCleared(punch.FieldTokensOutput) {
		fields = append(fields, punch.FieldTokensOutput)
	}
	if m.FieldCleared(punch.FieldTokensReasoning) {
		fields = append(fields, punch.FieldTokensReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PunchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PunchMutation) ClearField(name string) error {
	switch name {
	case punch.FieldContentHash:
		m.ClearContentHash()
		return nil
	case punch.FieldCost:
		m.ClearCost()
		return nil
	case punch.FieldTokensInput:
		m.ClearTokensInput()
		return nil
	case punch.FieldTokensOutput:
		m.ClearTokensOutput()
		return nil
	case punch.FieldTokensReasoning:
		m.ClearTokensReasoning()
		return nil
	}
	return fmt.Errorf("unknown Punch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PunchMutation) ResetField(name string) error {
	switch name {
	case punch.FieldTaskID:
		m.ResetTaskID()
		return nil
	case punch.FieldPunchType:
		m.ResetPunchType()
		return nil
	case punch.FieldPunchKey:
		m.ResetPunchKey()
		return nil
	case punch.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case punch.FieldSourceHash:
		m.ResetSourceHash()
		return nil
	case punch.FieldContentHash:
		m.ResetContentHash()
		return nil
	case punch.FieldCost:
		m.ResetCost()
		return nil
	case punch.FieldTokensInput:
		m.ResetTokensInput()
		return nil
	case punch.FieldTokensOutput:
		m.ResetTokensOutput()
		return nil
	case punch.FieldTokensReasoning:
		m.ResetTokensReasoning()
		return nil
	}
	return fmt.Errorf("unknown Punch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PunchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PunchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PunchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PunchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PunchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PunchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PunchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Punch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PunchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Punch edge %s", name)
}

// PunchCardRequirementMutation represents an operation that mutates the PunchCardRequirement nodes in the graph.
type PunchCardRequirementMutation struct {
	config
	op                Op
	typ               string
	id                *string
	card_id           *string
	punch_type        *punchcardrequirement.PunchType
	punch_key_pattern *string
	required          *bool
	forbidden         *bool
	description       *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PunchCardRequirement, error)
	predicates        []predicate.PunchCardRequirement
}

var _ ent.Mutation = (*PunchCardRequirementMutation)(nil)

// punchcardrequirementOption allows management of the mutation configuration using functional options.
type punchcardrequirementOption func(*PunchCardRequirementMutation)

// newPunchCardRequirementMutation creates new mutation for the PunchCardRequirement entity.
func newPunchCardRequirementMutation(c config, op Op, opts ...punchcardrequirementOption) *PunchCardRequirementMutation {
	m := &PunchCardRequirementMutation{
		config:        c,
		op:            op,
		typ:           TypePunchCardRequirement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPunchCardRequirementID sets the ID field of the mutation.
func withPunchCardRequirementID(id string) punchcardrequirementOption {
	return func(m *PunchCardRequirementMutation) {
		var (
			err   error
			once  sync.Once
			value *PunchCardRequirement
		)
		m.oldValue = func(ctx context.Context) (*PunchCardRequirement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PunchCardRequirement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPunchCardRequirement sets the old PunchCardRequirement of the mutation.
func withPunchCardRequirement(node *PunchCardRequirement) punchcardrequirementOption {
	return func(m *PunchCardRequirementMutation) {
		m.oldValue = func(context.Context) (*PunchCardRequirement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PunchCardRequirementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PunchCardRequirementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PunchCardRequirement entities.
func (m *PunchCardRequirementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PunchCardRequirementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PunchCardRequirementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PunchCardRequirement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *PunchCardRequirementMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *PunchCardRequirementMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *PunchCardRequirementMutation) ResetCardID() {
	m.card_id = nil
}

// SetPunchType sets the "punch_type" field.
func (m *PunchCardRequirementMutation) SetPunchType(pt punchcardrequirement.PunchType) {
	m.punch_type = &pt
}

// PunchType returns the value of the "punch_type" field in the mutation.
func (m *PunchCardRequirementMutation) PunchType() (r punchcardrequirement.PunchType, exists bool) {
	v := m.punch_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPunchType returns the old "punch_type" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldPunchType(ctx context.Context) (v punchcardrequirement.PunchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPunchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPunchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPunchType: %w", err)
	}
	return oldValue.PunchType, nil
}

// ResetPunchType resets all changes to the "punch_type" field.
func (m *PunchCardRequirementMutation) ResetPunchType() {
	m.punch_type = nil
}

// SetPunchKeyPattern sets the "punch_key_pattern" field.
func (m *PunchCardRequirementMutation) SetPunchKeyPattern(s string) {
	m.punch_key_pattern = &s
}

// PunchKeyPattern returns the value of the "punch_key_pattern" field in the mutation.
func (m *PunchCardRequirementMutation) PunchKeyPattern() (r string, exists bool) {
	v := m.punch_key_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPunchKeyPattern returns the old "punch_key_pattern" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldPunchKeyPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPunchKeyPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPunchKeyPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPunchKeyPattern: %w", err)
	}
	return oldValue.PunchKeyPattern, nil
}

// ResetPunchKeyPattern resets all changes to the "punch_key_pattern" field.
func (m *PunchCardRequirementMutation) ResetPunchKeyPattern() {
	m.punch_key_pattern = nil
}

// SetRequired sets the "required" field.
func (m *PunchCardRequirementMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *PunchCardRequirementMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *PunchCardRequirementMutation) ResetRequired() {
	m.required = nil
}

// SetForbidden sets the "forbidden" field.
func (m *PunchCardRequirementMutation) SetForbidden(b bool) {
	m.forbidden = &b
}

// Forbidden returns the value of the "forbidden" field in the mutation.
func (m *PunchCardRequirementMutation) Forbidden() (r bool, exists bool) {
	v := m.forbidden
	if v == nil {
		return
	}
	return *v, true
}

// OldForbidden returns the old "forbidden" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldForbidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForbidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForbidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForbidden: %w", err)
	}
	return oldValue.Forbidden, nil
}

// ResetForbidden resets all changes to the "forbidden" field.
func (m *PunchCardRequirementMutation) ResetForbidden() {
	m.forbidden = nil
}

// SetDescription sets the "description" field.
func (m *PunchCardRequirementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PunchCardRequirementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PunchCardRequirement entity.
// If the PunchCardRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunchCardRequirementMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PunchCardRequirementMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[punchcardrequirement.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PunchCardRequirementMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[punchcardrequirement.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PunchCardRequirementMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, punchcardrequirement.FieldDescription)
}

// Where appends a list predicates to the PunchCardRequirementMutation builder.
func (m *PunchCardRequirementMutation) Where(ps ...predicate.PunchCardRequirement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PunchCardRequirementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PunchCardRequirementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PunchCardRequirement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PunchCardRequirementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PunchCardRequirementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PunchCardRequirement).
func (m *PunchCardRequirementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PunchCardRequirementMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.card_id != nil {
		fields = append(fields, punchcardrequirement.FieldCardID)
	}
	if m.punch_type != nil {
		fields = append(fields, punchcardrequirement.FieldPunchType)
	}
	if m.punch_key_pattern != nil {
		fields = append(fields, punchcardrequirement.FieldPunchKeyPattern)
	}
	if m.required != nil {
		fields = append(fields, punchcardrequirement.FieldRequired)
	}
	if m.forbidden != nil {
		fields = append(fields, punchcardrequirement.FieldForbidden)
	}
	if m.description != nil {
		fields = append(fields, punchcardrequirement.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PunchCardRequirementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case punchcardrequirement.FieldCardID:
		return m.CardID()
	case punchcardrequirement.FieldPunchType:
		return m.PunchType()
	case punchcardrequirement.FieldPunchKeyPattern:
		return m.PunchKeyPattern()
	case punchcardrequirement.FieldRequired:
		return m.Required()
	case punchcardrequirement.FieldForbidden:
		return m.Forbidden()
	case punchcardrequirement.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PunchCardRequirementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case punchcardrequirement.FieldCardID:
		return m.OldCardID(ctx)
	case punchcardrequirement.FieldPunchType:
		return m.OldPunchType(ctx)
	case punchcardrequirement.FieldPunchKeyPattern:
		return m.OldPunchKeyPattern(ctx)
	case punchcardrequirement.FieldRequired:
		return m.OldRequired(ctx)
	case punchcardrequirement.FieldForbidden:
		return m.OldForbidden(ctx)
	case punchcardrequirement.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown PunchCardRequirement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunchCardRequirementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case punchcardrequirement.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case punchcardrequirement.FieldPunchType:
		v, ok := value.(punchcardrequirement.PunchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPunchType(v)
		return nil
	case punchcardrequirement.FieldPunchKeyPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPunchKeyPattern(v)
		return nil
	case punchcardrequirement.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case punchcardrequirement.FieldForbidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForbidden(v)
		return nil
	case punchcardrequirement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown PunchCardRequirement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PunchCardRequirementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PunchCardRequirementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunchCardRequirementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PunchCardRequirement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PunchCardRequirementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(punchcardrequirement.FieldDescription) {
		fields = append(fields, punchcardrequirement.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PunchCardRequirementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PunchCardRequirementMutation) ClearField(name string) error {
	switch name {
	case punchcardrequirement.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PunchCardRequirement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PunchCardRequirementMutation) ResetField(name string) error {
	switch name {
	case punchcardrequirement.FieldCardID:
		m.ResetCardID()
		return nil
	case punchcardrequirement.FieldPunchType:
		m.ResetPunchType()
		return nil
	case punchcardrequirement.FieldPunchKeyPattern:
		m.ResetPunchKeyPattern()
		return nil
	case punchcardrequirement.FieldRequired:
		m.ResetRequired()
		return nil
	case punchcardrequirement.FieldForbidden:
		m.ResetForbidden()
		return nil
	case punchcardrequirement.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown PunchCardRequirement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PunchCardRequirementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PunchCardRequirementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PunchCardRequirementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PunchCardRequirementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PunchCardRequirementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PunchCardRequirementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PunchCardRequirementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PunchCardRequirement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PunchCardRequirementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PunchCardRequirement edge %s", name)
}

// SessionMessageMutation represents an operation that mutates the SessionMessage nodes in the graph.
type SessionMessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	session_id      *string
	role            *string
	content_type    *string
	content_preview *string
	ts              *time.Time
	cost            *float64
	addcost         *float64
	tokens_in       *int64
	addtokens_in    *int64
	tokens_out      *int64
	addtokens_out   *int64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SessionMessage, error)
	predicates      []predicate.SessionMessage
}

var _ ent.Mutation = (*SessionMessageMutation)(nil)

// sessionmessageOption allows management of the mutation configuration using functional options.
type sessionmessageOption func(*SessionMessageMutation)

// newSessionMessageMutation creates new mutation for the SessionMessage entity.
func newSessionMessageMutation(c config, op Op, opts ...sessionmessageOption) *SessionMessageMutation {
	m := &SessionMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMessageID sets the ID field of the mutation.
func withSessionMessageID(id string) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMessage
		)
		m.oldValue = func(ctx context.Context) (*SessionMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMessage sets the old SessionMessage of the mutation.
func withSessionMessage(node *SessionMessage) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		m.oldValue = func(context.Context) (*SessionMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMessage entities.
func (m *SessionMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMessageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMessageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMessageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *SessionMessageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *SessionMessageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *SessionMessageMutation) ResetRole() {
	m.role = nil
}

// SetContentType sets the "content_type" field.
func (m *SessionMessageMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *SessionMessageMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *SessionMessageMutation) ResetContentType() {
	m.content_type = nil
}

// SetContentPreview sets the "content_preview" field.
func (m *SessionMessageMutation) SetContentPreview(s string) {
	m.content_preview = &s
}

// ContentPreview returns the value of the "content_preview" field in the mutation.
func (m *SessionMessageMutation) ContentPreview() (r string, exists bool) {
	v := m.content_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPreview returns the old "content_preview" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldContentPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPreview: %w", err)
	}
	return oldValue.ContentPreview, nil
}

// ResetContentPreview resets all changes to the "content_preview" field.
func (m *SessionMessageMutation) ResetContentPreview() {
	m.content_preview = nil
}

// SetTs sets the "ts" field.
func (m *SessionMessageMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *SessionMessageMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *SessionMessageMutation) ResetTs() {
	m.ts = nil
}

// SetCost sets the "cost" field.
func (m *SessionMessageMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *SessionMessageMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *SessionMessageMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *SessionMessageMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *SessionMessageMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[sessionmessage.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *SessionMessageMutation) CostCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *SessionMessageMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, sessionmessage.FieldCost)
}

// SetTokensIn sets the "tokens_in" field.
func (m *SessionMessageMutation) SetTokensIn(i int64) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *SessionMessageMutation) TokensIn() (r int64, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldTokensIn(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *SessionMessageMutation) AddTokensIn(i int64) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *SessionMessageMutation) AddedTokensIn() (r int64, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (m *SessionMessageMutation) ClearTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	m.clearedFields[sessionmessage.FieldTokensIn] = struct{}{}
}

// TokensInCleared returns if the "tokens_in" field was cleared in this mutation.
func (m *SessionMessageMutation) TokensInCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldTokensIn]
	return ok
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *SessionMessageMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	delete(m.clearedFields, sessionmessage.FieldTokensIn)
}

// SetTokensOut sets the "tokens_out" field.
func (m *SessionMessageMutation) SetTokensOut(i int64) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *SessionMessageMutation) TokensOut() (r int64, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldTokensOut(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *SessionMessageMutation) AddTokensOut(i int64) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *SessionMessageMutation) AddedTokensOut() (r int64, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (m *SessionMessageMutation) ClearTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	m.clearedFields[sessionmessage.FieldTokensOut] = struct{}{}
}

// TokensOutCleared returns if the "tokens_out" field was cleared in this mutation.
func (m *SessionMessageMutation) TokensOutCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldTokensOut]
	return ok
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *SessionMessageMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	delete(m.clearedFields, sessionmessage.FieldTokensOut)
}

// Where appends a list predicates to the SessionMessageMutation builder.
func (m *SessionMessageMutation) Where(ps ...predicate.SessionMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMessage).
func (m *SessionMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, sessionmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, sessionmessage.FieldRole)
	}
	if m.content_type != nil {
		fields = append(fields, sessionmessage.FieldContentType)
	}
	if m.content_preview != nil {
		fields = append(fields, sessionmessage.FieldContentPreview)
	}
	if m.ts != nil {
		fields = append(fields, sessionmessage.FieldTs)
	}
	if m.cost != nil {
		fields = append(fields, sessionmessage.FieldCost)
	}
	if m.tokens_in != nil {
		fields = append(fields, sessionmessage.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, sessionmessage.FieldTokensOut)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.SessionID()
	case sessionmessage.FieldRole:
		return m.Role()
	case sessionmessage.FieldContentType:
		return m.ContentType()
	case sessionmessage.FieldContentPreview:
		return m.ContentPreview()
	case sessionmessage.FieldTs:
		return m.Ts()
	case sessionmessage.FieldCost:
		return m.Cost()
	case sessionmessage.FieldTokensIn:
		return m.TokensIn()
	case sessionmessage.FieldTokensOut:
		return m.TokensOut()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionmessage.FieldRole:
		return m.OldRole(ctx)
	case sessionmessage.FieldContentType:
		return m.OldContentType(ctx)
	case sessionmessage.FieldContentPreview:
		return m.OldContentPreview(ctx)
	case sessionmessage.FieldTs:
		return m.OldTs(ctx)
	case sessionmessage.FieldCost:
		return m.OldCost(ctx)
	case sessionmessage.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case sessionmessage.FieldTokensOut:
		return m.OldTokensOut(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionmessage.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case sessionmessage.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case sessionmessage.FieldContentPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPreview(v)
		return nil
	case sessionmessage.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case sessionmessage.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case sessionmessage.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case sessionmessage.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMessageMutation) AddedFields() []string {
	var fields []string
	if m.addcost != nil {
		fields = append(fields, sessionmessage.FieldCost)
	}
	if m.addtokens_in != nil {
		fields = append(fields, sessionmessage.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, sessionmessage.FieldTokensOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldCost:
		return m.AddedCost()
	case sessionmessage.FieldTokensIn:
		return m.AddedTokensIn()
	case sessionmessage.FieldTokensOut:
		return m.AddedTokensOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case sessionmessage.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case sessionmessage.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmessage.FieldCost) {
		fields = append(fields, sessionmessage.FieldCost)
	}
	if m.FieldCleared(sessionmessage.FieldTokensIn) {
		fields = append(fields, sessionmessage.FieldTokensIn)
	}
	if m.FieldCleared(sessionmessage.FieldTokensOut) {
		fields = append(fields, sessionmessage.FieldTokensOut)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMessageMutation) ClearField(name string) error {
	switch name {
	case sessionmessage.FieldCost:
		m.ClearCost()
		return nil
	case sessionmessage.FieldTokensIn:
		m.ClearTokensIn()
		return nil
	case sessionmessage.FieldTokensOut:
		m.ClearTokensOut()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMessageMutation) ResetField(name string) error {
	switch name {
	case sessionmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionmessage.FieldRole:
		m.ResetRole()
		return nil
	case sessionmessage.FieldContentType:
		m.ResetContentType()
		return nil
	case sessionmessage.FieldContentPreview:
		m.ResetContentPreview()
		return nil
	case sessionmessage.FieldTs:
		m.ResetTs()
		return nil
	case sessionmessage.FieldCost:
		m.ResetCost()
		return nil
	case sessionmessage.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case sessionmessage.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionMessage edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	tool_name      *string
	args_summary   *string
	status         *string
	error          *string
	duration_ms    *int64
	addduration_ms *int64
	cost           *float64
	addcost        *float64
	ts             *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ToolCall, error)
	predicates     []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ToolCallMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ToolCallMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ToolCallMutation) ResetSessionID() {
	m.session_id = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArgsSummary sets the "args_summary" field.
func (m *ToolCallMutation) SetArgsSummary(s string) {
	m.args_summary = &s
}

// ArgsSummary returns the value of the "args_summary" field in the mutation.
func (m *ToolCallMutation) ArgsSummary() (r string, exists bool) {
	v := m.args_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldArgsSummary returns the old "args_summary" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArgsSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgsSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgsSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgsSummary: %w", err)
	}
	return oldValue.ArgsSummary, nil
}

// ClearArgsSummary clears the value of the "args_summary" field.
func (m *ToolCallMutation) ClearArgsSummary() {
	m.args_summary = nil
	m.clearedFields[toolcall.FieldArgsSummary] = struct{}{}
}

// ArgsSummaryCleared returns if the "args_summary" field was cleared in this mutation.
func (m *ToolCallMutation) ArgsSummaryCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArgsSummary]
	return ok
}

// ResetArgsSummary resets all changes to the "args_summary" field.
func (m *ToolCallMutation) ResetArgsSummary() {
	m.args_summary = nil
	delete(m.clearedFields, toolcall.FieldArgsSummary)
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *ToolCallMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ToolCallMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ToolCallMutation) ClearError() {
	m.error = nil
	m.clearedFields[toolcall.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ToolCallMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, toolcall.FieldError)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolCallMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolCallMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolCallMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolCallMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ToolCallMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[toolcall.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ToolCallMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, toolcall.FieldDurationMs)
}

// SetCost sets the "cost" field.
func (m *ToolCallMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ToolCallMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ToolCallMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ToolCallMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *ToolCallMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[toolcall.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *ToolCallMutation) CostCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *ToolCallMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, toolcall.FieldCost)
}

// SetTs sets the "ts" field.
func (m *ToolCallMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *ToolCallMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *ToolCallMutation) ResetTs() {
	m.ts = nil
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, toolcall.FieldSessionID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.args_summary != nil {
		fields = append(fields, toolcall.FieldArgsSummary)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, toolcall.FieldError)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.cost != nil {
		fields = append(fields, toolcall.FieldCost)
	}
	if m.ts != nil {
		fields = append(fields, toolcall.FieldTs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldSessionID:
		return m.SessionID()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldArgsSummary:
		return m.ArgsSummary()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldError:
		return m.Error()
	case toolcall.FieldDurationMs:
		return m.DurationMs()
	case toolcall.FieldCost:
		return m.Cost()
	case toolcall.FieldTs:
		return m.Ts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldSessionID:
		return m.OldSessionID(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldArgsSummary:
		return m.OldArgsSummary(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldError:
		return m.OldError(ctx)
	case toolcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case toolcall.FieldCost:
		return m.OldCost(ctx)
	case toolcall.FieldTs:
		return m.OldTs(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldArgsSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgsSummary(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case toolcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case toolcall.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case toolcall.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.addcost != nil {
		fields = append(fields, toolcall.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldDurationMs:
		return m.AddedDurationMs()
	case toolcall.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case toolcall.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldArgsSummary) {
		fields = append(fields, toolcall.FieldArgsSummary)
	}
	if m.FieldCleared(toolcall.FieldError) {
		fields = append(fields, toolcall.FieldError)
	}
	if m.FieldCleared(toolcall.FieldDurationMs) {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.FieldCleared(toolcall.FieldCost) {
		fields = append(fields, toolcall.FieldCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldArgsSummary:
		m.ClearArgsSummary()
		return nil
	case toolcall.FieldError:
		m.ClearError()
		return nil
	case toolcall.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case toolcall.FieldCost:
		m.ClearCost()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldSessionID:
		m.ResetSessionID()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldArgsSummary:
		m.ResetArgsSummary()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldError:
		m.ResetError()
		return nil
	case toolcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case toolcall.FieldCost:
		m.ResetCost()
		return nil
	case toolcall.FieldTs:
		m.ResetTs()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolCall edge %s", name)
}
