// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// ApprovalRule is the predicate function for approvalrule builders.
type ApprovalRule func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// RuleApprover is the predicate function for ruleapprover builders.
type RuleApprover func(*sql.Selector)

// RuleCondition is the predicate function for rulecondition builders.
type RuleCondition func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
