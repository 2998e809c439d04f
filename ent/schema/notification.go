package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is an in-app inbox entry. Writes are fire-and-forget from the
// engine's point of view: a failed write is logged, never rolled back into the
// business transaction.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Enum("type").
			Values("APPROVAL_PENDING", "EXPENSE_APPROVED", "EXPENSE_REJECTED", "EXPENSE_AUTO_APPROVED"),
		field.String("title").
			NotEmpty(),
		field.String("message").
			Optional(),
		field.String("resource_type").
			Optional(), // e.g. "expense", "approval"
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
