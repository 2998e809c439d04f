// Code generated by ent, DO NOT EDIT.

package approval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpenseID applies equality check predicate on the "expense_id" field. It's identical to ExpenseIDEQ.
func ExpenseID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExpenseID, v))
}

// ApproverID applies equality check predicate on the "approver_id" field. It's identical to ApproverIDEQ.
func ApproverID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldApproverID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleID, v))
}

// ChainKey applies equality check predicate on the "chain_key" field. It's identical to ChainKeyEQ.
func ChainKey(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldChainKey, v))
}

// SequenceOrder applies equality check predicate on the "sequence_order" field. It's identical to SequenceOrderEQ.
func SequenceOrder(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldSequenceOrder, v))
}

// IsSequential applies equality check predicate on the "is_sequential" field. It's identical to IsSequentialEQ.
func IsSequential(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldIsSequential, v))
}

// IsRequired applies equality check predicate on the "is_required" field. It's identical to IsRequiredEQ.
func IsRequired(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldIsRequired, v))
}

// RuleTotalApprovers applies equality check predicate on the "rule_total_approvers" field. It's identical to RuleTotalApproversEQ.
func RuleTotalApprovers(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleTotalApprovers, v))
}

// RuleMinPercentage applies equality check predicate on the "rule_min_percentage" field. It's identical to RuleMinPercentageEQ.
func RuleMinPercentage(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleMinPercentage, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldComment, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpenseIDEQ applies the EQ predicate on the "expense_id" field.
func ExpenseIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExpenseID, v))
}

// ExpenseIDNEQ applies the NEQ predicate on the "expense_id" field.
func ExpenseIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldExpenseID, v))
}

// ExpenseIDIn applies the In predicate on the "expense_id" field.
func ExpenseIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldExpenseID, vs...))
}

// ExpenseIDNotIn applies the NotIn predicate on the "expense_id" field.
func ExpenseIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldExpenseID, vs...))
}

// ExpenseIDGT applies the GT predicate on the "expense_id" field.
func ExpenseIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldExpenseID, v))
}

// ExpenseIDGTE applies the GTE predicate on the "expense_id" field.
func ExpenseIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldExpenseID, v))
}

// ExpenseIDLT applies the LT predicate on the "expense_id" field.
func ExpenseIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldExpenseID, v))
}

// ExpenseIDLTE applies the LTE predicate on the "expense_id" field.
func ExpenseIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldExpenseID, v))
}

// ExpenseIDContains applies the Contains predicate on the "expense_id" field.
func ExpenseIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldExpenseID, v))
}

// ExpenseIDHasPrefix applies the HasPrefix predicate on the "expense_id" field.
func ExpenseIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldExpenseID, v))
}

// ExpenseIDHasSuffix applies the HasSuffix predicate on the "expense_id" field.
func ExpenseIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldExpenseID, v))
}

// ExpenseIDEqualFold applies the EqualFold predicate on the "expense_id" field.
func ExpenseIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldExpenseID, v))
}

// ExpenseIDContainsFold applies the ContainsFold predicate on the "expense_id" field.
func ExpenseIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldExpenseID, v))
}

// ApproverIDEQ applies the EQ predicate on the "approver_id" field.
func ApproverIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldApproverID, v))
}

// ApproverIDNEQ applies the NEQ predicate on the "approver_id" field.
func ApproverIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldApproverID, v))
}

// ApproverIDIn applies the In predicate on the "approver_id" field.
func ApproverIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldApproverID, vs...))
}

// ApproverIDNotIn applies the NotIn predicate on the "approver_id" field.
func ApproverIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldApproverID, vs...))
}

// ApproverIDGT applies the GT predicate on the "approver_id" field.
func ApproverIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldApproverID, v))
}

// ApproverIDGTE applies the GTE predicate on the "approver_id" field.
func ApproverIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldApproverID, v))
}

// ApproverIDLT applies the LT predicate on the "approver_id" field.
func ApproverIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldApproverID, v))
}

// ApproverIDLTE applies the LTE predicate on the "approver_id" field.
func ApproverIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldApproverID, v))
}

// ApproverIDContains applies the Contains predicate on the "approver_id" field.
func ApproverIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldApproverID, v))
}

// ApproverIDHasPrefix applies the HasPrefix predicate on the "approver_id" field.
func ApproverIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldApproverID, v))
}

// ApproverIDHasSuffix applies the HasSuffix predicate on the "approver_id" field.
func ApproverIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldApproverID, v))
}

// ApproverIDEqualFold applies the EqualFold predicate on the "approver_id" field.
func ApproverIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldApproverID, v))
}

// ApproverIDContainsFold applies the ContainsFold predicate on the "approver_id" field.
func ApproverIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldApproverID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDIsNil applies the IsNil predicate on the "rule_id" field.
func RuleIDIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldRuleID))
}

// RuleIDNotNil applies the NotNil predicate on the "rule_id" field.
func RuleIDNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldRuleID))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldRuleID, v))
}

// ChainKeyEQ applies the EQ predicate on the "chain_key" field.
func ChainKeyEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldChainKey, v))
}

// ChainKeyNEQ applies the NEQ predicate on the "chain_key" field.
func ChainKeyNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldChainKey, v))
}

// ChainKeyIn applies the In predicate on the "chain_key" field.
func ChainKeyIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldChainKey, vs...))
}

// ChainKeyNotIn applies the NotIn predicate on the "chain_key" field.
func ChainKeyNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldChainKey, vs...))
}

// ChainKeyGT applies the GT predicate on the "chain_key" field.
func ChainKeyGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldChainKey, v))
}

// ChainKeyGTE applies the GTE predicate on the "chain_key" field.
func ChainKeyGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldChainKey, v))
}

// ChainKeyLT applies the LT predicate on the "chain_key" field.
func ChainKeyLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldChainKey, v))
}

// ChainKeyLTE applies the LTE predicate on the "chain_key" field.
func ChainKeyLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldChainKey, v))
}

// ChainKeyContains applies the Contains predicate on the "chain_key" field.
func ChainKeyContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldChainKey, v))
}

// ChainKeyHasPrefix applies the HasPrefix predicate on the "chain_key" field.
func ChainKeyHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldChainKey, v))
}

// ChainKeyHasSuffix applies the HasSuffix predicate on the "chain_key" field.
func ChainKeyHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldChainKey, v))
}

// ChainKeyEqualFold applies the EqualFold predicate on the "chain_key" field.
func ChainKeyEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldChainKey, v))
}

// ChainKeyContainsFold applies the ContainsFold predicate on the "chain_key" field.
func ChainKeyContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldChainKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldStatus, vs...))
}

// SequenceOrderEQ applies the EQ predicate on the "sequence_order" field.
func SequenceOrderEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldSequenceOrder, v))
}

// SequenceOrderNEQ applies the NEQ predicate on the "sequence_order" field.
func SequenceOrderNEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldSequenceOrder, v))
}

// SequenceOrderIn applies the In predicate on the "sequence_order" field.
func SequenceOrderIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldSequenceOrder, vs...))
}

// SequenceOrderNotIn applies the NotIn predicate on the "sequence_order" field.
func SequenceOrderNotIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldSequenceOrder, vs...))
}

// SequenceOrderGT applies the GT predicate on the "sequence_order" field.
func SequenceOrderGT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldSequenceOrder, v))
}

// SequenceOrderGTE applies the GTE predicate on the "sequence_order" field.
func SequenceOrderGTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldSequenceOrder, v))
}

// SequenceOrderLT applies the LT predicate on the "sequence_order" field.
func SequenceOrderLT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldSequenceOrder, v))
}

// SequenceOrderLTE applies the LTE predicate on the "sequence_order" field.
func SequenceOrderLTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldSequenceOrder, v))
}

// SequenceOrderIsNil applies the IsNil predicate on the "sequence_order" field.
func SequenceOrderIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldSequenceOrder))
}

// SequenceOrderNotNil applies the NotNil predicate on the "sequence_order" field.
func SequenceOrderNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldSequenceOrder))
}

// IsSequentialEQ applies the EQ predicate on the "is_sequential" field.
func IsSequentialEQ(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldIsSequential, v))
}

// IsSequentialNEQ applies the NEQ predicate on the "is_sequential" field.
func IsSequentialNEQ(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldIsSequential, v))
}

// IsRequiredEQ applies the EQ predicate on the "is_required" field.
func IsRequiredEQ(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldIsRequired, v))
}

// IsRequiredNEQ applies the NEQ predicate on the "is_required" field.
func IsRequiredNEQ(v bool) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldIsRequired, v))
}

// RuleTotalApproversEQ applies the EQ predicate on the "rule_total_approvers" field.
func RuleTotalApproversEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleTotalApprovers, v))
}

// RuleTotalApproversNEQ applies the NEQ predicate on the "rule_total_approvers" field.
func RuleTotalApproversNEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRuleTotalApprovers, v))
}

// RuleTotalApproversIn applies the In predicate on the "rule_total_approvers" field.
func RuleTotalApproversIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRuleTotalApprovers, vs...))
}

// RuleTotalApproversNotIn applies the NotIn predicate on the "rule_total_approvers" field.
func RuleTotalApproversNotIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRuleTotalApprovers, vs...))
}

// RuleTotalApproversGT applies the GT predicate on the "rule_total_approvers" field.
func RuleTotalApproversGT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldRuleTotalApprovers, v))
}

// RuleTotalApproversGTE applies the GTE predicate on the "rule_total_approvers" field.
func RuleTotalApproversGTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldRuleTotalApprovers, v))
}

// RuleTotalApproversLT applies the LT predicate on the "rule_total_approvers" field.
func RuleTotalApproversLT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldRuleTotalApprovers, v))
}

// RuleTotalApproversLTE applies the LTE predicate on the "rule_total_approvers" field.
func RuleTotalApproversLTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldRuleTotalApprovers, v))
}

// RuleMinPercentageEQ applies the EQ predicate on the "rule_min_percentage" field.
func RuleMinPercentageEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRuleMinPercentage, v))
}

// RuleMinPercentageNEQ applies the NEQ predicate on the "rule_min_percentage" field.
func RuleMinPercentageNEQ(v int) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRuleMinPercentage, v))
}

// RuleMinPercentageIn applies the In predicate on the "rule_min_percentage" field.
func RuleMinPercentageIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRuleMinPercentage, vs...))
}

// RuleMinPercentageNotIn applies the NotIn predicate on the "rule_min_percentage" field.
func RuleMinPercentageNotIn(vs ...int) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRuleMinPercentage, vs...))
}

// RuleMinPercentageGT applies the GT predicate on the "rule_min_percentage" field.
func RuleMinPercentageGT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldRuleMinPercentage, v))
}

// RuleMinPercentageGTE applies the GTE predicate on the "rule_min_percentage" field.
func RuleMinPercentageGTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldRuleMinPercentage, v))
}

// RuleMinPercentageLT applies the LT predicate on the "rule_min_percentage" field.
func RuleMinPercentageLT(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldRuleMinPercentage, v))
}

// RuleMinPercentageLTE applies the LTE predicate on the "rule_min_percentage" field.
func RuleMinPercentageLTE(v int) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldRuleMinPercentage, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldComment, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldProcessedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.NotPredicates(p))
}
