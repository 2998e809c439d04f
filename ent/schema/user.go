package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// manager_id forms the reporting chain used for manager-approval insertion.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("company_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("password_hash").
			Sensitive(),
		field.Enum("role").
			Values("EMPLOYEE", "MANAGER", "ADMIN").
			Default("EMPLOYEE"),
		field.String("department").
			Optional(),
		field.String("manager_id").
			Optional(), // Direct manager; empty for top of the chain
		field.Bool("active").
			Default(true), // Deactivated users may not own or receive approvals
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("company_id", "role"),
		index.Fields("manager_id"),
	}
}
