// Code generated by ent, DO NOT EDIT.

package approvalrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"expensedesk.io/approvalflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCompanyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldDescription, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldPriority, v))
}

// IsManagerApprovalRequired applies equality check predicate on the "is_manager_approval_required" field. It's identical to IsManagerApprovalRequiredEQ.
func IsManagerApprovalRequired(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldIsManagerApprovalRequired, v))
}

// IsSequenceRequired applies equality check predicate on the "is_sequence_required" field. It's identical to IsSequenceRequiredEQ.
func IsSequenceRequired(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldIsSequenceRequired, v))
}

// MinApprovalPercentage applies equality check predicate on the "min_approval_percentage" field. It's identical to MinApprovalPercentageEQ.
func MinApprovalPercentage(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMinApprovalPercentage, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldActive, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldCompanyID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldPriority, v))
}

// IsManagerApprovalRequiredEQ applies the EQ predicate on the "is_manager_approval_required" field.
func IsManagerApprovalRequiredEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldIsManagerApprovalRequired, v))
}

// IsManagerApprovalRequiredNEQ applies the NEQ predicate on the "is_manager_approval_required" field.
func IsManagerApprovalRequiredNEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldIsManagerApprovalRequired, v))
}

// IsSequenceRequiredEQ applies the EQ predicate on the "is_sequence_required" field.
func IsSequenceRequiredEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldIsSequenceRequired, v))
}

// IsSequenceRequiredNEQ applies the NEQ predicate on the "is_sequence_required" field.
func IsSequenceRequiredNEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldIsSequenceRequired, v))
}

// MinApprovalPercentageEQ applies the EQ predicate on the "min_approval_percentage" field.
func MinApprovalPercentageEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMinApprovalPercentage, v))
}

// MinApprovalPercentageNEQ applies the NEQ predicate on the "min_approval_percentage" field.
func MinApprovalPercentageNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldMinApprovalPercentage, v))
}

// MinApprovalPercentageIn applies the In predicate on the "min_approval_percentage" field.
func MinApprovalPercentageIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldMinApprovalPercentage, vs...))
}

// MinApprovalPercentageNotIn applies the NotIn predicate on the "min_approval_percentage" field.
func MinApprovalPercentageNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldMinApprovalPercentage, vs...))
}

// MinApprovalPercentageGT applies the GT predicate on the "min_approval_percentage" field.
func MinApprovalPercentageGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldMinApprovalPercentage, v))
}

// MinApprovalPercentageGTE applies the GTE predicate on the "min_approval_percentage" field.
func MinApprovalPercentageGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldMinApprovalPercentage, v))
}

// MinApprovalPercentageLT applies the LT predicate on the "min_approval_percentage" field.
func MinApprovalPercentageLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldMinApprovalPercentage, v))
}

// MinApprovalPercentageLTE applies the LTE predicate on the "min_approval_percentage" field.
func MinApprovalPercentageLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldMinApprovalPercentage, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldActive, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.NotPredicates(p))
}
