// Code generated by ent, DO NOT EDIT.

package punch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Punch {
	return predicate.Punch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Punch {
	return predicate.Punch(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTaskID, v))
}

// PunchKey applies equality check predicate on the "punch_key" field. It's identical to PunchKeyEQ.
func PunchKey(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldPunchKey, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldObservedAt, v))
}

// SourceHash applies equality check predicate on the "source_hash" field. It's identical to SourceHashEQ.
func SourceHash(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldSourceHash, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldContentHash, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldCost, v))
}

// TokensInput applies equality check predicate on the "tokens_input" field. It's identical to TokensInputEQ.
func TokensInput(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensInput, v))
}

// TokensOutput applies equality check predicate on the "tokens_output" field. It's identical to TokensOutputEQ.
func TokensOutput(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensReasoning applies equality check predicate on the "tokens_reasoning" field. It's identical to TokensReasoningEQ.
func TokensReasoning(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensReasoning, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContainsFold(FieldTaskID, v))
}

// PunchTypeEQ applies the EQ predicate on the "punch_type" field.
func PunchTypeEQ(v PunchType) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldPunchType, v))
}

// PunchTypeNEQ applies the NEQ predicate on the "punch_type" field.
func PunchTypeNEQ(v PunchType) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldPunchType, v))
}

// PunchTypeIn applies the In predicate on the "punch_type" field.
func PunchTypeIn(vs ...PunchType) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldPunchType, vs...))
}

// PunchTypeNotIn applies the NotIn predicate on the "punch_type" field.
func PunchTypeNotIn(vs ...PunchType) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldPunchType, vs...))
}

// PunchKeyEQ applies the EQ predicate on the "punch_key" field.
func PunchKeyEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldPunchKey, v))
}

// PunchKeyNEQ applies the NEQ predicate on the "punch_key" field.
func PunchKeyNEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldPunchKey, v))
}

// PunchKeyIn applies the In predicate on the "punch_key" field.
func PunchKeyIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldPunchKey, vs...))
}

// PunchKeyNotIn applies the NotIn predicate on the "punch_key" field.
func PunchKeyNotIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldPunchKey, vs...))
}

// PunchKeyGT applies the GT predicate on the "punch_key" field.
func PunchKeyGT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldPunchKey, v))
}

// PunchKeyGTE applies the GTE predicate on the "punch_key" field.
func PunchKeyGTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldPunchKey, v))
}

// PunchKeyLT applies the LT predicate on the "punch_key" field.
func PunchKeyLT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldPunchKey, v))
}

// PunchKeyLTE applies the LTE predicate on the "punch_key" field.
func PunchKeyLTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldPunchKey, v))
}

// PunchKeyContains applies the Contains predicate on the "punch_key" field.
func PunchKeyContains(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContains(FieldPunchKey, v))
}

// PunchKeyHasPrefix applies the HasPrefix predicate on the "punch_key" field.
func PunchKeyHasPrefix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasPrefix(FieldPunchKey, v))
}

// PunchKeyHasSuffix applies the HasSuffix predicate on the "punch_key" field.
func PunchKeyHasSuffix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasSuffix(FieldPunchKey, v))
}

// PunchKeyEqualFold applies the EqualFold predicate on the "punch_key" field.
func PunchKeyEqualFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEqualFold(FieldPunchKey, v))
}

// PunchKeyContainsFold applies the ContainsFold predicate on the "punch_key" field.
func PunchKeyContainsFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContainsFold(FieldPunchKey, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldObservedAt, v))
}

// SourceHashEQ applies the EQ predicate on the "source_hash" field.
func SourceHashEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldSourceHash, v))
}

// SourceHashNEQ applies the NEQ predicate on the "source_hash" field.
func SourceHashNEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldSourceHash, v))
}

// SourceHashIn applies the In predicate on the "source_hash" field.
func SourceHashIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldSourceHash, vs...))
}

// SourceHashNotIn applies the NotIn predicate on the "source_hash" field.
func SourceHashNotIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldSourceHash, vs...))
}

// SourceHashGT applies the GT predicate on the "source_hash" field.
func SourceHashGT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldSourceHash, v))
}

// SourceHashGTE applies the GTE predicate on the "source_hash" field.
func SourceHashGTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldSourceHash, v))
}

// SourceHashLT applies the LT predicate on the "source_hash" field.
func SourceHashLT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldSourceHash, v))
}

// SourceHashLTE applies the LTE predicate on the "source_hash" field.
func SourceHashLTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldSourceHash, v))
}

// SourceHashContains applies the Contains predicate on the "source_hash" field.
func SourceHashContains(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContains(FieldSourceHash, v))
}

// SourceHashHasPrefix applies the HasPrefix predicate on the "source_hash" field.
func SourceHashHasPrefix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasPrefix(FieldSourceHash, v))
}

// SourceHashHasSuffix applies the HasSuffix predicate on the "source_hash" field.
func SourceHashHasSuffix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasSuffix(FieldSourceHash, v))
}

// SourceHashEqualFold applies the EqualFold predicate on the "source_hash" field.
func SourceHashEqualFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEqualFold(FieldSourceHash, v))
}

// SourceHashContainsFold applies the ContainsFold predicate on the "source_hash" field.
func SourceHashContainsFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContainsFold(FieldSourceHash, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Punch {
	return predicate.Punch(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.Punch {
	return predicate.Punch(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.Punch {
	return predicate.Punch(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Punch {
	return predicate.Punch(sql.FieldContainsFold(FieldContentHash, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.Punch {
	return predicate.Punch(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.Punch {
	return predicate.Punch(sql.FieldNotNull(FieldCost))
}

// TokensInputEQ applies the EQ predicate on the "tokens_input" field.
func TokensInputEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensInput, v))
}

// TokensInputNEQ applies the NEQ predicate on the "tokens_input" field.
func TokensInputNEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldTokensInput, v))
}

// TokensInputIn applies the In predicate on the "tokens_input" field.
func TokensInputIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldTokensInput, vs...))
}

// TokensInputNotIn applies the NotIn predicate on the "tokens_input" field.
func TokensInputNotIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldTokensInput, vs...))
}

// TokensInputGT applies the GT predicate on the "tokens_input" field.
func TokensInputGT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldTokensInput, v))
}

// TokensInputGTE applies the GTE predicate on the "tokens_input" field.
func TokensInputGTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldTokensInput, v))
}

// TokensInputLT applies the LT predicate on the "tokens_input" field.
func TokensInputLT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldTokensInput, v))
}

// TokensInputLTE applies the LTE predicate on the "tokens_input" field.
func TokensInputLTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldTokensInput, v))
}

// TokensInputIsNil applies the IsNil predicate on the "tokens_input" field.
func TokensInputIsNil() predicate.Punch {
	return predicate.Punch(sql.FieldIsNull(FieldTokensInput))
}

// TokensInputNotNil applies the NotNil predicate on the "tokens_input" field.
func TokensInputNotNil() predicate.Punch {
	return predicate.Punch(sql.FieldNotNull(FieldTokensInput))
}

// TokensOutputEQ applies the EQ predicate on the "tokens_output" field.
func TokensOutputEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensOutputNEQ applies the NEQ predicate on the "tokens_output" field.
func TokensOutputNEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldTokensOutput, v))
}

// TokensOutputIn applies the In predicate on the "tokens_output" field.
func TokensOutputIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldTokensOutput, vs...))
}

// TokensOutputNotIn applies the NotIn predicate on the "tokens_output" field.
func TokensOutputNotIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldTokensOutput, vs...))
}

// TokensOutputGT applies the GT predicate on the "tokens_output" field.
func TokensOutputGT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldTokensOutput, v))
}

// TokensOutputGTE applies the GTE predicate on the "tokens_output" field.
func TokensOutputGTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldTokensOutput, v))
}

// TokensOutputLT applies the LT predicate on the "tokens_output" field.
func TokensOutputLT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldTokensOutput, v))
}

// TokensOutputLTE applies the LTE predicate on the "tokens_output" field.
func TokensOutputLTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldTokensOutput, v))
}

// TokensOutputIsNil applies the IsNil predicate on the "tokens_output" field.
func TokensOutputIsNil() predicate.Punch {
	return predicate.Punch(sql.FieldIsNull(FieldTokensOutput))
}

// TokensOutputNotNil applies the NotNil predicate on the "tokens_output" field.
func TokensOutputNotNil() predicate.Punch {
	return predicate.Punch(sql.FieldNotNull(FieldTokensOutput))
}

// TokensReasoningEQ applies the EQ predicate on the "tokens_reasoning" field.
func TokensReasoningEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldEQ(FieldTokensReasoning, v))
}

// TokensReasoningNEQ applies the NEQ predicate on the "tokens_reasoning" field.
func TokensReasoningNEQ(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldNEQ(FieldTokensReasoning, v))
}

// TokensReasoningIn applies the In predicate on the "tokens_reasoning" field.
func TokensReasoningIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldIn(FieldTokensReasoning, vs...))
}

// TokensReasoningNotIn applies the NotIn predicate on the "tokens_reasoning" field.
func TokensReasoningNotIn(vs ...int64) predicate.Punch {
	return predicate.Punch(sql.FieldNotIn(FieldTokensReasoning, vs...))
}

// TokensReasoningGT applies the GT predicate on the "tokens_reasoning" field.
func TokensReasoningGT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGT(FieldTokensReasoning, v))
}

// TokensReasoningGTE applies the GTE predicate on the "tokens_reasoning" field.
func TokensReasoningGTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldGTE(FieldTokensReasoning, v))
}

// TokensReasoningLT applies the LT predicate on the "tokens_reasoning" field.
func TokensReasoningLT(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLT(FieldTokensReasoning, v))
}

// TokensReasoningLTE applies the LTE predicate on the "tokens_reasoning" field.
func TokensReasoningLTE(v int64) predicate.Punch {
	return predicate.Punch(sql.FieldLTE(FieldTokensReasoning, v))
}

// TokensReasoningIsNil applies the IsNil predicate on the "tokens_reasoning" field.
func TokensReasoningIsNil() predicate.Punch {
	return predicate.Punch(sql.FieldIsNull(FieldTokensReasoning))
}

// TokensReasoningNotNil applies the NotNil predicate on the "tokens_reasoning" field.
func TokensReasoningNotNil() predicate.Punch {
	return predicate.Punch(sql.FieldNotNull(FieldTokensReasoning))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Punch) predicate.Punch {
	return predicate.Punch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Punch) predicate.Punch {
	return predicate.Punch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Punch) predicate.Punch {
	return predicate.Punch(sql.NotPredicates(p))
}
