// Code generated by ent, DO NOT EDIT.

package punchcardrequirement

import (
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContainsFold(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldCardID, v))
}

// PunchKeyPattern applies equality check predicate on the "punch_key_pattern" field. It's identical to PunchKeyPatternEQ.
func PunchKeyPattern(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldPunchKeyPattern, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldRequired, v))
}

// Forbidden applies equality check predicate on the "forbidden" field. It's identical to ForbiddenEQ.
func Forbidden(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldForbidden, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldDescription, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContainsFold(FieldCardID, v))
}

// PunchTypeEQ applies the EQ predicate on the "punch_type" field.
func PunchTypeEQ(v PunchType) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldPunchType, v))
}

// PunchTypeNEQ applies the NEQ predicate on the "punch_type" field.
func PunchTypeNEQ(v PunchType) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldPunchType, v))
}

// PunchTypeIn applies the In predicate on the "punch_type" field.
func PunchTypeIn(vs ...PunchType) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIn(FieldPunchType, vs...))
}

// PunchTypeNotIn applies the NotIn predicate on the "punch_type" field.
func PunchTypeNotIn(vs ...PunchType) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotIn(FieldPunchType, vs...))
}

// PunchKeyPatternEQ applies the EQ predicate on the "punch_key_pattern" field.
func PunchKeyPatternEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldPunchKeyPattern, v))
}

// PunchKeyPatternNEQ applies the NEQ predicate on the "punch_key_pattern" field.
func PunchKeyPatternNEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldPunchKeyPattern, v))
}

// PunchKeyPatternIn applies the In predicate on the "punch_key_pattern" field.
func PunchKeyPatternIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIn(FieldPunchKeyPattern, vs...))
}

// PunchKeyPatternNotIn applies the NotIn predicate on the "punch_key_pattern" field.
func PunchKeyPatternNotIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotIn(FieldPunchKeyPattern, vs...))
}

// PunchKeyPatternGT applies the GT predicate on the "punch_key_pattern" field.
func PunchKeyPatternGT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGT(FieldPunchKeyPattern, v))
}

// PunchKeyPatternGTE applies the GTE predicate on the "punch_key_pattern" field.
func PunchKeyPatternGTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGTE(FieldPunchKeyPattern, v))
}

// PunchKeyPatternLT applies the LT predicate on the "punch_key_pattern" field.
func PunchKeyPatternLT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLT(FieldPunchKeyPattern, v))
}

// PunchKeyPatternLTE applies the LTE predicate on the "punch_key_pattern" field.
func PunchKeyPatternLTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLTE(FieldPunchKeyPattern, v))
}

// PunchKeyPatternContains applies the Contains predicate on the "punch_key_pattern" field.
func PunchKeyPatternContains(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContains(FieldPunchKeyPattern, v))
}

// PunchKeyPatternHasPrefix applies the HasPrefix predicate on the "punch_key_pattern" field.
func PunchKeyPatternHasPrefix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasPrefix(FieldPunchKeyPattern, v))
}

// PunchKeyPatternHasSuffix applies the HasSuffix predicate on the "punch_key_pattern" field.
func PunchKeyPatternHasSuffix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasSuffix(FieldPunchKeyPattern, v))
}

// PunchKeyPatternEqualFold applies the EqualFold predicate on the "punch_key_pattern" field.
func PunchKeyPatternEqualFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEqualFold(FieldPunchKeyPattern, v))
}

// PunchKeyPatternContainsFold applies the ContainsFold predicate on the "punch_key_pattern" field.
func PunchKeyPatternContainsFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContainsFold(FieldPunchKeyPattern, v))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldRequired, v))
}

// ForbiddenEQ applies the EQ predicate on the "forbidden" field.
func ForbiddenEQ(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldForbidden, v))
}

// ForbiddenNEQ applies the NEQ predicate on the "forbidden" field.
func ForbiddenNEQ(v bool) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldForbidden, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PunchCardRequirement) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PunchCardRequirement) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PunchCardRequirement) predicate.PunchCardRequirement {
	return predicate.PunchCardRequirement(sql.NotPredicates(p))
}
