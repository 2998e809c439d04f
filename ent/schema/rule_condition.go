package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RuleCondition holds one applicability predicate of an ApprovalRule.
// Conditions are a closed variant set: kind selects which payload columns are
// meaningful. A rule matches an expense only when ALL of its conditions match.
type RuleCondition struct {
	ent.Schema
}

// Mixin of the RuleCondition.
func (RuleCondition) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the RuleCondition.
func (RuleCondition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("rule_id").
			NotEmpty().
			Immutable(),
		field.Enum("kind").
			Values("AMOUNT_THRESHOLD", "CATEGORY", "SUBMITTER_ROLE", "DEPARTMENT"),
		// AMOUNT_THRESHOLD payload: amounts in minor currency units.
		field.Int64("min_amount").
			Optional(),
		field.Int64("max_amount").
			Optional(), // 0 = unbounded
		// CATEGORY / SUBMITTER_ROLE / DEPARTMENT payload.
		field.Strings("values").
			Optional(),
	}
}

// Indexes of the RuleCondition.
func (RuleCondition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id"),
	}
}
