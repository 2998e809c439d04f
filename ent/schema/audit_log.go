package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog is an append-only trail of workflow actions (submit, approve,
// reject, auto-approve, rule changes).
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("company_id").
			NotEmpty().
			Immutable(),
		field.String("actor_id").
			NotEmpty().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "expense.submitted", "approval.approved"
		field.String("resource_type").
			NotEmpty().
			Immutable(),
		field.String("resource_id").
			NotEmpty().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "created_at"),
		index.Fields("resource_type", "resource_id"),
	}
}
