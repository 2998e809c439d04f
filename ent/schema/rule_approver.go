package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RuleApprover is one approver assignment on an ApprovalRule.
// sequence_order is meaningful only when the rule is sequential; sequential
// rules require a dense 1..N ordering with no ties (validated by RuleService).
type RuleApprover struct {
	ent.Schema
}

// Mixin of the RuleApprover.
func (RuleApprover) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the RuleApprover.
func (RuleApprover) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("rule_id").
			NotEmpty().
			Immutable(),
		field.String("approver_id").
			NotEmpty(),
		field.Int("sequence_order").
			Optional().
			Nillable(), // nil = parallel assignment
		field.Bool("is_required").
			Default(true),
	}
}

// Indexes of the RuleApprover.
func (RuleApprover) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id"),
		index.Fields("approver_id"),
	}
}
