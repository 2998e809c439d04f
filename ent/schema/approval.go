package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval is one approver's task against one expense, produced by the chain
// builder. Records are created eagerly so the full chain is visible; whether a
// sequential record is actionable is computed, not stored.
//
// rule_total_approvers and rule_min_percentage snapshot the spawning rule at
// build time, so later rule edits cannot change in-flight satisfaction math.
type Approval struct {
	ent.Schema
}

// Mixin of the Approval.
func (Approval) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("expense_id").
			NotEmpty().
			Immutable(),
		field.String("approver_id").
			NotEmpty().
			Immutable(),
		field.String("rule_id").
			Optional().
			Immutable(), // Empty for manager-inserted tasks on a manager-only lane
		field.String("chain_key").
			NotEmpty().
			Immutable(), // Groups records of one rule lane within the chain
		field.Enum("status").
			Values("PENDING", "APPROVED", "REJECTED", "SKIPPED").
			Default("PENDING"),
		field.Int("sequence_order").
			Optional().
			Nillable(), // nil = parallel task
		field.Bool("is_sequential").
			Default(false).
			Immutable(),
		field.Bool("is_required").
			Default(false).
			Immutable(), // A lane never satisfies while a required task is undecided
		field.Int("rule_total_approvers").
			Positive().
			Immutable(),
		field.Int("rule_min_percentage").
			Min(1).
			Max(100).
			Immutable(),
		field.String("comment").
			Optional(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expense_id"),
		index.Fields("approver_id", "status"),
		index.Fields("expense_id", "chain_key"),
		index.Fields("rule_id"),
	}
}
