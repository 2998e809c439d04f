package errors

import "net/http"

// Error code constants.
// Errors carry code + params; messages are short English defaults.
// Codes distinguish "action conflicts with current state" (retry after
// refresh) from "configuration problem" (requires admin fix).

// Workflow state-machine error codes.
const (
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeOutOfSequence          = "OUT_OF_SEQUENCE"
	CodeAlreadyProcessed       = "ALREADY_PROCESSED"
)

// Chain construction error codes.
const (
	CodeInvalidApprover = "INVALID_APPROVER"
	CodeChainBuildFail  = "CHAIN_BUILD_FAILED"
)

// Rule error codes.
const (
	CodeRuleNotFound         = "RULE_NOT_FOUND"
	CodeRuleInUse            = "RULE_IN_USE"
	CodeRuleEvaluationFailed = "RULE_EVALUATION_FAILED"
)

// Resource error codes.
const (
	CodeExpenseNotFound  = "EXPENSE_NOT_FOUND"
	CodeApprovalNotFound = "APPROVAL_NOT_FOUND"
	CodeUserNotFound     = "USER_NOT_FOUND"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeForbidden    = "FORBIDDEN"
)

// Validation error codes.
const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
)

// Convenience constructors using predefined codes.

// ErrInvalidStateTransitionf creates a 409 for an illegal status transition.
func ErrInvalidStateTransitionf(from, attempted string) *AppError {
	return (&AppError{
		Code:       CodeInvalidStateTransition,
		Message:    "operation is not valid for the current status",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"current_status": from, "attempted": attempted})
}

// ErrOutOfSequencef creates a 409 for a sequential approver acting early.
func ErrOutOfSequencef(approvalID string) *AppError {
	return (&AppError{
		Code:       CodeOutOfSequence,
		Message:    "a preceding approver in the sequence has not decided yet",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"approval_id": approvalID})
}

// ErrAlreadyProcessedf creates a 409 for a duplicate decision.
func ErrAlreadyProcessedf(approvalID, status string) *AppError {
	return (&AppError{
		Code:       CodeAlreadyProcessed,
		Message:    "approval has already been processed",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"approval_id": approvalID, "status": status})
}

// ErrInvalidApproverf creates a 422 for a chain build hitting an invalid
// approver. Chain construction is fatal, never silently weakened.
func ErrInvalidApproverf(approverID, ruleID string) *AppError {
	return (&AppError{
		Code:       CodeInvalidApprover,
		Message:    "a configured approver is inactive or no longer in the company",
		HTTPStatus: http.StatusUnprocessableEntity,
	}).WithParams(map[string]interface{}{"approver_id": approverID, "rule_id": ruleID})
}

// ErrRuleInUsef creates a 409 when a rule with in-flight chains is deleted.
func ErrRuleInUsef(ruleID string) *AppError {
	return (&AppError{
		Code:       CodeRuleInUse,
		Message:    "rule is referenced by in-flight approval chains",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"rule_id": ruleID})
}
