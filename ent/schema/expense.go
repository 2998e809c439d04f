package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Expense holds the schema definition for the Expense entity.
// Status transitions: DRAFT → PENDING_APPROVAL (submit) and
// PENDING_APPROVAL → APPROVED|REJECTED (decision processing).
type Expense struct {
	ent.Schema
}

// Mixin of the Expense.
func (Expense) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Expense.
func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("company_id").
			NotEmpty().
			Immutable(),
		field.String("submitter_id").
			NotEmpty().
			Immutable(),
		field.Int64("amount").
			Positive(), // Minor currency units
		field.String("currency").
			NotEmpty(),
		field.String("category").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Time("expense_date"),
		field.Enum("status").
			Values("DRAFT", "PENDING_APPROVAL", "APPROVED", "REJECTED").
			Default("DRAFT"),
		field.String("receipt_url").
			Optional(), // Stored externally; engine only keeps the reference
		field.Time("submitted_at").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Expense.
func (Expense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status"),
		index.Fields("submitter_id"),
		index.Fields("expense_date"),
	}
}
