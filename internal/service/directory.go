// Package service provides domain services that bridge persisted state and
// the pure workflow logic: the user directory, rule administration, and the
// mapping from stored rule rows to their evaluation form.
package service

import (
	"context"
	"fmt"

	"expensedesk.io/approvalflow/ent"
	"expensedesk.io/approvalflow/ent/user"
	apperrors "expensedesk.io/approvalflow/internal/pkg/errors"
)

// Directory resolves users for rule evaluation and chain construction.
type Directory struct {
	client *ent.Client
}

// NewDirectory creates a new Directory.
func NewDirectory(client *ent.Client) *Directory {
	return &Directory{client: client}
}

// Submitter is the chain-relevant view of a submitting user.
type Submitter struct {
	ID         string
	CompanyID  string
	Role       string
	Department string

	// ManagerID is the submitter's direct manager, "" when the submitter sits
	// at the top of the reporting chain.
	ManagerID string
}

// ResolveSubmitter loads the submitter attributes rule conditions reference.
// The manager link is resolved strictly: a dangling or cross-company
// manager_id is a configuration error, not a missing manager.
func (d *Directory) ResolveSubmitter(ctx context.Context, companyID, userID string) (*Submitter, error) {
	u, err := d.client.User.Query().
		Where(user.ID(userID), user.CompanyID(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "submitter not found in company")
		}
		return nil, fmt.Errorf("query submitter %s: %w", userID, err)
	}
	if !u.Active {
		return nil, apperrors.Forbidden(apperrors.CodeForbidden, "deactivated users cannot submit expenses")
	}

	managerID := ""
	if u.ManagerID != "" {
		mgr, err := d.client.User.Query().
			Where(user.ID(u.ManagerID), user.CompanyID(companyID), user.Active(true)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, apperrors.ErrInvalidApproverf(u.ManagerID, "")
			}
			return nil, fmt.Errorf("query manager %s: %w", u.ManagerID, err)
		}
		managerID = mgr.ID
	}

	return &Submitter{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		Role:       string(u.Role),
		Department: u.Department,
		ManagerID:  managerID,
	}, nil
}

// ValidateApprovers checks that every given approver is an active user of the
// company. Chain construction fails outright on the first invalid approver;
// a chain is never silently built with fewer approvers than configured.
func (d *Directory) ValidateApprovers(ctx context.Context, companyID string, approverIDs []string, ruleID string) error {
	if len(approverIDs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(approverIDs))
	unique := make([]string, 0, len(approverIDs))
	for _, id := range approverIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	valid, err := d.client.User.Query().
		Where(user.IDIn(unique...), user.CompanyID(companyID), user.Active(true)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query approvers: %w", err)
	}

	validSet := make(map[string]struct{}, len(valid))
	for _, id := range valid {
		validSet[id] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := validSet[id]; !ok {
			return apperrors.ErrInvalidApproverf(id, ruleID)
		}
	}
	return nil
}
