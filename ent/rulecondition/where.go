// Code generated by ent, DO NOT EDIT.

package rulecondition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldCreatedAt, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldRuleID, v))
}

// MinAmount applies equality check predicate on the "min_amount" field. It's identical to MinAmountEQ.
func MinAmount(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldMinAmount, v))
}

// MaxAmount applies equality check predicate on the "max_amount" field. It's identical to MaxAmountEQ.
func MaxAmount(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldMaxAmount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLTE(FieldCreatedAt, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldContainsFold(FieldRuleID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldKind, vs...))
}

// MinAmountEQ applies the EQ predicate on the "min_amount" field.
func MinAmountEQ(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldMinAmount, v))
}

// MinAmountNEQ applies the NEQ predicate on the "min_amount" field.
func MinAmountNEQ(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldMinAmount, v))
}

// MinAmountIn applies the In predicate on the "min_amount" field.
func MinAmountIn(vs ...int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldMinAmount, vs...))
}

// MinAmountNotIn applies the NotIn predicate on the "min_amount" field.
func MinAmountNotIn(vs ...int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldMinAmount, vs...))
}

// MinAmountGT applies the GT predicate on the "min_amount" field.
func MinAmountGT(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGT(FieldMinAmount, v))
}

// MinAmountGTE applies the GTE predicate on the "min_amount" field.
func MinAmountGTE(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGTE(FieldMinAmount, v))
}

// MinAmountLT applies the LT predicate on the "min_amount" field.
func MinAmountLT(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLT(FieldMinAmount, v))
}

// MinAmountLTE applies the LTE predicate on the "min_amount" field.
func MinAmountLTE(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLTE(FieldMinAmount, v))
}

// MinAmountIsNil applies the IsNil predicate on the "min_amount" field.
func MinAmountIsNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIsNull(FieldMinAmount))
}

// MinAmountNotNil applies the NotNil predicate on the "min_amount" field.
func MinAmountNotNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotNull(FieldMinAmount))
}

// MaxAmountEQ applies the EQ predicate on the "max_amount" field.
func MaxAmountEQ(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldEQ(FieldMaxAmount, v))
}

// MaxAmountNEQ applies the NEQ predicate on the "max_amount" field.
func MaxAmountNEQ(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNEQ(FieldMaxAmount, v))
}

// MaxAmountIn applies the In predicate on the "max_amount" field.
func MaxAmountIn(vs ...int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIn(FieldMaxAmount, vs...))
}

// MaxAmountNotIn applies the NotIn predicate on the "max_amount" field.
func MaxAmountNotIn(vs ...int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotIn(FieldMaxAmount, vs...))
}

// MaxAmountGT applies the GT predicate on the "max_amount" field.
func MaxAmountGT(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGT(FieldMaxAmount, v))
}

// MaxAmountGTE applies the GTE predicate on the "max_amount" field.
func MaxAmountGTE(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldGTE(FieldMaxAmount, v))
}

// MaxAmountLT applies the LT predicate on the "max_amount" field.
func MaxAmountLT(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLT(FieldMaxAmount, v))
}

// MaxAmountLTE applies the LTE predicate on the "max_amount" field.
func MaxAmountLTE(v int64) predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldLTE(FieldMaxAmount, v))
}

// MaxAmountIsNil applies the IsNil predicate on the "max_amount" field.
func MaxAmountIsNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIsNull(FieldMaxAmount))
}

// MaxAmountNotNil applies the NotNil predicate on the "max_amount" field.
func MaxAmountNotNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotNull(FieldMaxAmount))
}

// ValuesIsNil applies the IsNil predicate on the "values" field.
func ValuesIsNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldIsNull(FieldValues))
}

// ValuesNotNil applies the NotNil predicate on the "values" field.
func ValuesNotNil() predicate.RuleCondition {
	return predicate.RuleCondition(sql.FieldNotNull(FieldValues))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RuleCondition) predicate.RuleCondition {
	return predicate.RuleCondition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RuleCondition) predicate.RuleCondition {
	return predicate.RuleCondition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RuleCondition) predicate.RuleCondition {
	return predicate.RuleCondition(sql.NotPredicates(p))
}
