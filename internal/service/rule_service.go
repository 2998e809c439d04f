package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/approval"
	"expensedesk.io/approvalflow/ent/approvalrule"
	"expensedesk.io/approvalflow/ent/ruleapprover"
	"expensedesk.io/approvalflow/ent/rulecondition"
	"expensedesk.io/approvalflow/internal/domain"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// RuleService owns approval rule administration and the read path that turns
// stored rule rows into their evaluation form.
type RuleService struct {
	client    *ent.Client
	directory *Directory
}

// NewRuleService creates a new RuleService.
func NewRuleService(client *ent.Client, directory *Directory) *RuleService {
	return &RuleService{client: client, directory: directory}
}

// ConditionInput is one condition of a rule create/update request.
type ConditionInput struct {
	Kind      string   `json:"kind"`
	MinAmount int64    `json:"min_amount,omitempty"`
	MaxAmount int64    `json:"max_amount,omitempty"`
	Values    []string `json:"values,omitempty"`
}

// ApproverInput is one approver assignment of a rule create/update request.
type ApproverInput struct {
	ApproverID    string `json:"approver_id"`
	SequenceOrder *int   `json:"sequence_order,omitempty"`
	Required      bool   `json:"required"`
}

// RuleInput is the admin-facing shape of a rule.
type RuleInput struct {
	Name                    string           `json:"name"`
	Description             string           `json:"description,omitempty"`
	Priority                int              `json:"priority"`
	ManagerApprovalRequired bool             `json:"is_manager_approval_required"`
	SequenceRequired        bool             `json:"is_sequence_required"`
	MinApprovalPercentage   int              `json:"min_approval_percentage"`
	Active                  bool             `json:"active"`
	Conditions              []ConditionInput `json:"conditions"`
	Approvers               []ApproverInput  `json:"approvers"`
}

// RuleView is a stored rule with its conditions and approvers, for responses.
type RuleView struct {
	Rule       *ent.ApprovalRule
	Conditions []*ent.RuleCondition
	Approvers  []*ent.RuleApprover
}

// CreateRule validates and persists a new rule with its conditions and
// approver assignments in one transaction.
func (s *RuleService) CreateRule(ctx context.Context, companyID, actorID string, in RuleInput) (*RuleView, error) {
	if err := s.validateInput(ctx, companyID, "", in); err != nil {
		return nil, err
	}

	ruleID, err := newID()
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create rule tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rule, err := tx.ApprovalRule.Create().
		SetID(ruleID).
		SetCompanyID(companyID).
		SetName(strings.TrimSpace(in.Name)).
		SetDescription(in.Description).
		SetPriority(in.Priority).
		SetIsManagerApprovalRequired(in.ManagerApprovalRequired).
		SetIsSequenceRequired(in.SequenceRequired).
		SetMinApprovalPercentage(in.MinApprovalPercentage).
		SetActive(in.Active).
		SetCreatedBy(actorID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}

	conditions, approvers, err := s.insertRuleParts(ctx, tx, ruleID, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create rule tx: %w", err)
	}

	logger.Info("approval rule created",
		zap.String("rule_id", ruleID),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
	)
	return &RuleView{Rule: rule, Conditions: conditions, Approvers: approvers}, nil
}

// UpdateRule validates and replaces a rule's definition wholesale. Conditions
// and approver assignments are recreated rather than diffed. Chains already
// built from the previous definition are untouched: they carry their own
// snapshot columns.
func (s *RuleService) UpdateRule(ctx context.Context, companyID, ruleID, actorID string, in RuleInput) (*RuleView, error) {
	if err := s.validateInput(ctx, companyID, ruleID, in); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update rule tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.ApprovalRule.Query().
		Where(approvalrule.ID(ruleID), approvalrule.CompanyID(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeRuleNotFound, "rule not found")
		}
		return nil, fmt.Errorf("query rule %s: %w", ruleID, err)
	}

	rule, err := existing.Update().
		SetName(strings.TrimSpace(in.Name)).
		SetDescription(in.Description).
		SetPriority(in.Priority).
		SetIsManagerApprovalRequired(in.ManagerApprovalRequired).
		SetIsSequenceRequired(in.SequenceRequired).
		SetMinApprovalPercentage(in.MinApprovalPercentage).
		SetActive(in.Active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update rule %s: %w", ruleID, err)
	}

	if _, err := tx.RuleCondition.Delete().Where(rulecondition.RuleID(ruleID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("clear conditions of rule %s: %w", ruleID, err)
	}
	if _, err := tx.RuleApprover.Delete().Where(ruleapprover.RuleID(ruleID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("clear approvers of rule %s: %w", ruleID, err)
	}

	conditions, approvers, err := s.insertRuleParts(ctx, tx, ruleID, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update rule tx: %w", err)
	}

	logger.Info("approval rule updated",
		zap.String("rule_id", ruleID),
		zap.String("actor_id", actorID),
	)
	return &RuleView{Rule: rule, Conditions: conditions, Approvers: approvers}, nil
}

// DeleteRule removes a rule unless in-flight chains still reference it.
// A chain is in-flight while any of its tasks for this rule is PENDING.
func (s *RuleService) DeleteRule(ctx context.Context, companyID, ruleID, actorID string) error {
	exists, err := s.client.ApprovalRule.Query().
		Where(approvalrule.ID(ruleID), approvalrule.CompanyID(companyID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query rule %s: %w", ruleID, err)
	}
	if !exists {
		return apperrors.NotFound(apperrors.CodeRuleNotFound, "rule not found")
	}

	inFlight, err := s.client.Approval.Query().
		Where(approval.RuleID(ruleID), approval.StatusEQ(approval.StatusPENDING)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query in-flight approvals of rule %s: %w", ruleID, err)
	}
	if inFlight {
		return apperrors.ErrRuleInUsef(ruleID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete rule tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.RuleCondition.Delete().Where(rulecondition.RuleID(ruleID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete conditions of rule %s: %w", ruleID, err)
	}
	if _, err := tx.RuleApprover.Delete().Where(ruleapprover.RuleID(ruleID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete approvers of rule %s: %w", ruleID, err)
	}
	if err := tx.ApprovalRule.DeleteOneID(ruleID).Exec(ctx); err != nil {
		return fmt.Errorf("delete rule %s: %w", ruleID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete rule tx: %w", err)
	}

	logger.Info("approval rule deleted",
		zap.String("rule_id", ruleID),
		zap.String("actor_id", actorID),
	)
	return nil
}

// GetRule loads a single rule with its parts.
func (s *RuleService) GetRule(ctx context.Context, companyID, ruleID string) (*RuleView, error) {
	rule, err := s.client.ApprovalRule.Query().
		Where(approvalrule.ID(ruleID), approvalrule.CompanyID(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeRuleNotFound, "rule not found")
		}
		return nil, fmt.Errorf("query rule %s: %w", ruleID, err)
	}

	conditions, err := s.client.RuleCondition.Query().
		Where(rulecondition.RuleID(ruleID)).
		Order(ent.Asc(rulecondition.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query conditions of rule %s: %w", ruleID, err)
	}
	approvers, err := s.client.RuleApprover.Query().
		Where(ruleapprover.RuleID(ruleID)).
		Order(ent.Asc(ruleapprover.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query approvers of rule %s: %w", ruleID, err)
	}
	return &RuleView{Rule: rule, Conditions: conditions, Approvers: approvers}, nil
}

// ListRules returns all rules of the company in evaluation order.
func (s *RuleService) ListRules(ctx context.Context, companyID string) ([]*RuleView, error) {
	rules, err := s.client.ApprovalRule.Query().
		Where(approvalrule.CompanyID(companyID)).
		Order(ent.Asc(approvalrule.FieldPriority), ent.Asc(approvalrule.FieldCreatedAt), ent.Asc(approvalrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	return s.attachParts(ctx, rules)
}

// LoadActiveRules returns the company's active rules in evaluation form.
// Condition rows with an unusable payload map to domain.InvalidCondition so
// the evaluator can report them instead of crashing.
func (s *RuleService) LoadActiveRules(ctx context.Context, companyID string) ([]domain.Rule, error) {
	views, err := s.loadActiveViews(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Rule, 0, len(views))
	for _, v := range views {
		out = append(out, toDomainRule(v))
	}
	return out, nil
}

func (s *RuleService) loadActiveViews(ctx context.Context, companyID string) ([]*RuleView, error) {
	rules, err := s.client.ApprovalRule.Query().
		Where(approvalrule.CompanyID(companyID), approvalrule.Active(true)).
		Order(ent.Asc(approvalrule.FieldPriority), ent.Asc(approvalrule.FieldCreatedAt), ent.Asc(approvalrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active rules: %w", err)
	}
	return s.attachParts(ctx, rules)
}

func (s *RuleService) attachParts(ctx context.Context, rules []*ent.ApprovalRule) ([]*RuleView, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}

	conditions, err := s.client.RuleCondition.Query().
		Where(rulecondition.RuleIDIn(ids...)).
		Order(ent.Asc(rulecondition.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query rule conditions: %w", err)
	}
	approvers, err := s.client.RuleApprover.Query().
		Where(ruleapprover.RuleIDIn(ids...)).
		Order(ent.Asc(ruleapprover.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query rule approvers: %w", err)
	}

	condsByRule := make(map[string][]*ent.RuleCondition, len(rules))
	for _, c := range conditions {
		condsByRule[c.RuleID] = append(condsByRule[c.RuleID], c)
	}
	approversByRule := make(map[string][]*ent.RuleApprover, len(rules))
	for _, a := range approvers {
		approversByRule[a.RuleID] = append(approversByRule[a.RuleID], a)
	}

	views := make([]*RuleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, &RuleView{
			Rule:       r,
			Conditions: condsByRule[r.ID],
			Approvers:  approversByRule[r.ID],
		})
	}
	return views, nil
}

// insertRuleParts creates condition and approver rows for a validated input.
func (s *RuleService) insertRuleParts(ctx context.Context, tx *ent.Tx, ruleID string, in RuleInput) ([]*ent.RuleCondition, []*ent.RuleApprover, error) {
	conditions := make([]*ent.RuleCondition, 0, len(in.Conditions))
	for _, c := range in.Conditions {
		id, err := newID()
		if err != nil {
			return nil, nil, err
		}
		create := tx.RuleCondition.Create().
			SetID(id).
			SetRuleID(ruleID).
			SetKind(rulecondition.Kind(c.Kind))
		if c.Kind == string(domain.KindAmountThreshold) {
			create.SetMinAmount(c.MinAmount).SetMaxAmount(c.MaxAmount)
		} else {
			create.SetValues(c.Values)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("create condition for rule %s: %w", ruleID, err)
		}
		conditions = append(conditions, row)
	}

	approvers := make([]*ent.RuleApprover, 0, len(in.Approvers))
	for _, a := range in.Approvers {
		id, err := newID()
		if err != nil {
			return nil, nil, err
		}
		create := tx.RuleApprover.Create().
			SetID(id).
			SetRuleID(ruleID).
			SetApproverID(a.ApproverID).
			SetIsRequired(a.Required)
		if a.SequenceOrder != nil {
			create.SetSequenceOrder(*a.SequenceOrder)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("create approver for rule %s: %w", ruleID, err)
		}
		approvers = append(approvers, row)
	}
	return conditions, approvers, nil
}

// validateInput checks structural validity of a rule definition before any
// write: domain well-formedness (approver count, percentage range, dense
// sequence orders), condition payloads, and approver existence.
func (s *RuleService) validateInput(ctx context.Context, companyID, ruleID string, in RuleInput) error {
	var fields []apperrors.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Code: "required"})
	}

	for i, c := range in.Conditions {
		if reason := conditionPayloadProblem(c); reason != "" {
			fields = append(fields, apperrors.FieldError{
				Field:   fmt.Sprintf("conditions[%d]", i),
				Code:    "invalid",
				Message: reason,
			})
		}
	}
	if len(fields) > 0 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "rule definition is invalid").
			WithFieldErrors(fields)
	}

	rule := domain.Rule{
		ID:                      ruleID,
		CompanyID:               companyID,
		SequenceRequired:        in.SequenceRequired,
		MinApprovalPercentage:   in.MinApprovalPercentage,
		ManagerApprovalRequired: in.ManagerApprovalRequired,
		Approvers:               toDomainAssignmentsInput(in.Approvers),
	}
	if err := rule.Validate(); err != nil {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error())
	}

	approverIDs := make([]string, 0, len(in.Approvers))
	for _, a := range in.Approvers {
		approverIDs = append(approverIDs, a.ApproverID)
	}
	return s.directory.ValidateApprovers(ctx, companyID, approverIDs, ruleID)
}

// conditionPayloadProblem returns "" for a usable payload.
func conditionPayloadProblem(c ConditionInput) string {
	switch domain.ConditionKind(c.Kind) {
	case domain.KindAmountThreshold:
		if c.MinAmount < 0 {
			return "min_amount must not be negative"
		}
		if c.MaxAmount > 0 && c.MaxAmount < c.MinAmount {
			return "max_amount must not be below min_amount"
		}
		return ""
	case domain.KindCategory, domain.KindSubmitterRole, domain.KindDepartment:
		if len(c.Values) == 0 {
			return "values must not be empty"
		}
		for _, v := range c.Values {
			if strings.TrimSpace(v) == "" {
				return "values must not contain blanks"
			}
		}
		return ""
	default:
		return fmt.Sprintf("unknown condition kind %q", c.Kind)
	}
}

// toDomainRule maps a stored rule to its evaluation form.
func toDomainRule(v *RuleView) domain.Rule {
	conditions := make([]domain.Condition, 0, len(v.Conditions))
	for _, c := range v.Conditions {
		conditions = append(conditions, toDomainCondition(c))
	}

	return domain.Rule{
		ID:                      v.Rule.ID,
		CompanyID:               v.Rule.CompanyID,
		Name:                    v.Rule.Name,
		Description:             v.Rule.Description,
		Priority:                v.Rule.Priority,
		CreatedAt:               v.Rule.CreatedAt,
		ManagerApprovalRequired: v.Rule.IsManagerApprovalRequired,
		SequenceRequired:        v.Rule.IsSequenceRequired,
		MinApprovalPercentage:   v.Rule.MinApprovalPercentage,
		Conditions:              conditions,
		Approvers:               toDomainAssignments(v.Approvers),
	}
}

func toDomainCondition(c *ent.RuleCondition) domain.Condition {
	switch c.Kind {
	case rulecondition.KindAMOUNT_THRESHOLD:
		if c.MinAmount < 0 {
			return domain.InvalidCondition{RawKind: string(c.Kind), Reason: "negative min_amount"}
		}
		if c.MaxAmount > 0 && c.MaxAmount < c.MinAmount {
			return domain.InvalidCondition{RawKind: string(c.Kind), Reason: "max_amount below min_amount"}
		}
		return domain.AmountThreshold{Min: c.MinAmount, Max: c.MaxAmount}
	case rulecondition.KindCATEGORY:
		if len(c.Values) == 0 {
			return domain.InvalidCondition{RawKind: string(c.Kind), Reason: "empty values"}
		}
		return domain.CategoryIn{Values: c.Values}
	case rulecondition.KindSUBMITTER_ROLE:
		if len(c.Values) == 0 {
			return domain.InvalidCondition{RawKind: string(c.Kind), Reason: "empty values"}
		}
		return domain.SubmitterRoleIn{Values: c.Values}
	case rulecondition.KindDEPARTMENT:
		if len(c.Values) == 0 {
			return domain.InvalidCondition{RawKind: string(c.Kind), Reason: "empty values"}
		}
		return domain.DepartmentIn{Values: c.Values}
	default:
		return domain.InvalidCondition{RawKind: string(c.Kind)}
	}
}

func toDomainAssignments(rows []*ent.RuleApprover) []domain.Assignment {
	out := make([]domain.Assignment, 0, len(rows))
	for _, a := range rows {
		mode := domain.ChainMode(domain.Parallel{})
		if a.SequenceOrder != nil {
			mode = domain.Sequential{Order: *a.SequenceOrder}
		}
		out = append(out, domain.Assignment{
			ApproverID: a.ApproverID,
			Mode:       mode,
			Required:   a.IsRequired,
		})
	}
	return out
}

func toDomainAssignmentsInput(in []ApproverInput) []domain.Assignment {
	out := make([]domain.Assignment, 0, len(in))
	for _, a := range in {
		mode := domain.ChainMode(domain.Parallel{})
		if a.SequenceOrder != nil {
			mode = domain.Sequential{Order: *a.SequenceOrder}
		}
		out = append(out, domain.Assignment{
			ApproverID: a.ApproverID,
			Mode:       mode,
			Required:   a.Required,
		})
	}
	return out
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
