package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of workflow event.
type EventType string

const (
	// Expense lifecycle events.
	EventExpenseSubmitted    EventType = "EXPENSE_SUBMITTED"
	EventExpenseAutoApproved EventType = "EXPENSE_AUTO_APPROVED"
	EventExpenseApproved     EventType = "EXPENSE_APPROVED"
	EventExpenseRejected     EventType = "EXPENSE_REJECTED"

	// Approval task events.
	EventApprovalDecided EventType = "APPROVAL_DECIDED"

	// Rule administration events.
	EventRuleCreated EventType = "RULE_CREATED"
	EventRuleUpdated EventType = "RULE_UPDATED"
	EventRuleDeleted EventType = "RULE_DELETED"
)

// Event is an in-process workflow event handed to registered observers
// (notification triggers, audit trail). Emission is fire-and-forget from the
// caller's perspective: observer failures never roll back state transitions.
type Event struct {
	Type       EventType
	CompanyID  string
	ActorID    string
	Payload    []byte
	OccurredAt time.Time
}

// ExpenseDecidedPayload describes a terminal expense transition.
type ExpenseDecidedPayload struct {
	ExpenseID     string `json:"expense_id"`
	SubmitterID   string `json:"submitter_id"`
	Status        string `json:"status"`
	DecidedBy     string `json:"decided_by,omitempty"`
	DecidedByName string `json:"decided_by_name,omitempty"`
	Comment       string `json:"comment,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ExpenseDecidedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ExpenseSubmittedPayload describes a submission that produced a chain.
// ApproverIDs lists the approvers actionable right after submission, not the
// whole chain.
type ExpenseSubmittedPayload struct {
	ExpenseID     string   `json:"expense_id"`
	SubmitterID   string   `json:"submitter_id"`
	SubmitterName string   `json:"submitter_name,omitempty"`
	ApproverIDs   []string `json:"approver_ids"`
	RuleIDs       []string `json:"rule_ids"`
}

// ToJSON converts payload to JSON bytes.
func (p ExpenseSubmittedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ApprovalDecidedPayload describes one approver's decision. NewlyActionableIDs
// lists the approvers unblocked by the decision (next sequence steps).
type ApprovalDecidedPayload struct {
	ApprovalID         string   `json:"approval_id"`
	ExpenseID          string   `json:"expense_id"`
	ApproverID         string   `json:"approver_id"`
	SubmitterID        string   `json:"submitter_id"`
	SubmitterName      string   `json:"submitter_name,omitempty"`
	Decision           string   `json:"decision"`
	Comment            string   `json:"comment,omitempty"`
	NewlyActionableIDs []string `json:"newly_actionable_ids,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ApprovalDecidedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
