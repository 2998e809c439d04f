package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Company is the tenant boundary. Every rule, expense, and approval is scoped
// to exactly one company.
type Company struct {
	ent.Schema
}

// Mixin of the Company.
func (Company) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("default_currency").
			Default("USD"),
	}
}
