package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRule holds the schema definition for the ApprovalRule entity.
// Admin-authored, company-scoped. Conditions and approver assignments live in
// their own tables (RuleCondition, RuleApprover).
//
// In-flight approval chains are snapshots: editing or disabling a rule never
// mutates chains already built from it. Only new submissions see the change.
type ApprovalRule struct {
	ent.Schema
}

// Mixin of the ApprovalRule.
func (ApprovalRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ApprovalRule.
func (ApprovalRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("company_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Int("priority").
			Default(0), // Evaluation order: ascending priority, ties by created_at
		field.Bool("is_manager_approval_required").
			Default(false),
		field.Bool("is_sequence_required").
			Default(false),
		field.Int("min_approval_percentage").
			Default(100).
			Min(1).
			Max(100),
		field.Bool("active").
			Default(true),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the ApprovalRule.
func (ApprovalRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "active"),
		index.Fields("company_id", "priority"),
	}
}
