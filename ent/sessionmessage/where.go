// Code generated by ent, DO NOT EDIT.

package sessionmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldSessionID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldRole, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContentType, v))
}

// ContentPreview applies equality check predicate on the "content_preview" field. It's identical to ContentPreviewEQ.
func ContentPreview(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContentPreview, v))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTs, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldCost, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokensOut, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldRole, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldContentType, v))
}

// ContentPreviewEQ applies the EQ predicate on the "content_preview" field.
func ContentPreviewEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContentPreview, v))
}

// ContentPreviewNEQ applies the NEQ predicate on the "content_preview" field.
func ContentPreviewNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldContentPreview, v))
}

// ContentPreviewIn applies the In predicate on the "content_preview" field.
func ContentPreviewIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldContentPreview, vs...))
}

// ContentPreviewNotIn applies the NotIn predicate on the "content_preview" field.
func ContentPreviewNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldContentPreview, vs...))
}

// ContentPreviewGT applies the GT predicate on the "content_preview" field.
func ContentPreviewGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldContentPreview, v))
}

// ContentPreviewGTE applies the GTE predicate on the "content_preview" field.
func ContentPreviewGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldContentPreview, v))
}

// ContentPreviewLT applies the LT predicate on the "content_preview" field.
func ContentPreviewLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldContentPreview, v))
}

// ContentPreviewLTE applies the LTE predicate on the "content_preview" field.
func ContentPreviewLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldContentPreview, v))
}

// ContentPreviewContains applies the Contains predicate on the "content_preview" field.
func ContentPreviewContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldContentPreview, v))
}

// ContentPreviewHasPrefix applies the HasPrefix predicate on the "content_preview" field.
func ContentPreviewHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldContentPreview, v))
}

// ContentPreviewHasSuffix applies the HasSuffix predicate on the "content_preview" field.
func ContentPreviewHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldContentPreview, v))
}

// ContentPreviewEqualFold applies the EqualFold predicate on the "content_preview" field.
func ContentPreviewEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldContentPreview, v))
}

// ContentPreviewContainsFold applies the ContainsFold predicate on the "content_preview" field.
func ContentPreviewContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldContentPreview, v))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldTs, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotNull(FieldCost))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldTokensIn, v))
}

// TokensInIsNil applies the IsNil predicate on the "tokens_in" field.
func TokensInIsNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIsNull(FieldTokensIn))
}

// TokensInNotNil applies the NotNil predicate on the "tokens_in" field.
func TokensInNotNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotNull(FieldTokensIn))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int64) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldTokensOut, v))
}

// TokensOutIsNil applies the IsNil predicate on the "tokens_out" field.
func TokensOutIsNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIsNull(FieldTokensOut))
}

// TokensOutNotNil applies the NotNil predicate on the "tokens_out" field.
func TokensOutNotNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotNull(FieldTokensOut))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.NotPredicates(p))
}
