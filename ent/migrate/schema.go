// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expense_id", Type: field.TypeString},
		{Name: "approver_id", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
		{Name: "chain_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED", "SKIPPED"}, Default: "PENDING"},
		{Name: "sequence_order", Type: field.TypeInt, Nullable: true},
		{Name: "is_sequential", Type: field.TypeBool, Default: false},
		{Name: "is_required", Type: field.TypeBool, Default: false},
		{Name: "rule_total_approvers", Type: field.TypeInt},
		{Name: "rule_min_percentage", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_expense_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[3]},
			},
			{
				Name:    "approval_approver_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[4], ApprovalsColumns[7]},
			},
			{
				Name:    "approval_expense_id_chain_key",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[3], ApprovalsColumns[6]},
			},
			{
				Name:    "approval_rule_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[5]},
			},
		},
	}
	// ApprovalRulesColumns holds the columns for the "approval_rules" table.
	ApprovalRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "is_manager_approval_required", Type: field.TypeBool, Default: false},
		{Name: "is_sequence_required", Type: field.TypeBool, Default: false},
		{Name: "min_approval_percentage", Type: field.TypeInt, Default: 100},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// ApprovalRulesTable holds the schema information for the "approval_rules" table.
	ApprovalRulesTable = &schema.Table{
		Name:       "approval_rules",
		Columns:    ApprovalRulesColumns,
		PrimaryKey: []*schema.Column{ApprovalRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrule_company_id_active",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRulesColumns[3], ApprovalRulesColumns[10]},
			},
			{
				Name:    "approvalrule_company_id_priority",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRulesColumns[3], ApprovalRulesColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_company_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5], AuditLogsColumns[6]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "default_currency", Type: field.TypeString, Default: "USD"},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// ExpensesColumns holds the columns for the "expenses" table.
	ExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "submitter_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "expense_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "PENDING_APPROVAL", "APPROVED", "REJECTED"}, Default: "DRAFT"},
		{Name: "receipt_url", Type: field.TypeString, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
	}
	// ExpensesTable holds the schema information for the "expenses" table.
	ExpensesTable = &schema.Table{
		Name:       "expenses",
		Columns:    ExpensesColumns,
		PrimaryKey: []*schema.Column{ExpensesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "expense_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[3], ExpensesColumns[10]},
			},
			{
				Name:    "expense_submitter_id",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[4]},
			},
			{
				Name:    "expense_expense_date",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[9]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"APPROVAL_PENDING", "EXPENSE_APPROVED", "EXPENSE_REJECTED", "EXPENSE_AUTO_APPROVED"}},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[8]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// RuleApproversColumns holds the columns for the "rule_approvers" table.
	RuleApproversColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "approver_id", Type: field.TypeString},
		{Name: "sequence_order", Type: field.TypeInt, Nullable: true},
		{Name: "is_required", Type: field.TypeBool, Default: true},
	}
	// RuleApproversTable holds the schema information for the "rule_approvers" table.
	RuleApproversTable = &schema.Table{
		Name:       "rule_approvers",
		Columns:    RuleApproversColumns,
		PrimaryKey: []*schema.Column{RuleApproversColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ruleapprover_rule_id",
				Unique:  false,
				Columns: []*schema.Column{RuleApproversColumns[2]},
			},
			{
				Name:    "ruleapprover_approver_id",
				Unique:  false,
				Columns: []*schema.Column{RuleApproversColumns[3]},
			},
		},
	}
	// RuleConditionsColumns holds the columns for the "rule_conditions" table.
	RuleConditionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"AMOUNT_THRESHOLD", "CATEGORY", "SUBMITTER_ROLE", "DEPARTMENT"}},
		{Name: "min_amount", Type: field.TypeInt64, Nullable: true},
		{Name: "max_amount", Type: field.TypeInt64, Nullable: true},
		{Name: "values", Type: field.TypeJSON, Nullable: true},
	}
	// RuleConditionsTable holds the schema information for the "rule_conditions" table.
	RuleConditionsTable = &schema.Table{
		Name:       "rule_conditions",
		Columns:    RuleConditionsColumns,
		PrimaryKey: []*schema.Column{RuleConditionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rulecondition_rule_id",
				Unique:  false,
				Columns: []*schema.Column{RuleConditionsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"EMPLOYEE", "MANAGER", "ADMIN"}, Default: "EMPLOYEE"},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "manager_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_company_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_company_id_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3], UsersColumns[7]},
			},
			{
				Name:    "user_manager_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalsTable,
		ApprovalRulesTable,
		AuditLogsTable,
		CompaniesTable,
		ExpensesTable,
		NotificationsTable,
		RuleApproversTable,
		RuleConditionsTable,
		UsersTable,
	}
)

func init() {
}
