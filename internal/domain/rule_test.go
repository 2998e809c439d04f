package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr string
	}{
		{
			name:    "no approvers",
			rule:    Rule{ID: "r", MinApprovalPercentage: 100},
			wantErr: "at least one approver",
		},
		{
			name: "percentage too low",
			rule: Rule{ID: "r", MinApprovalPercentage: 0,
				Approvers: []Assignment{{ApproverID: "a", Mode: Parallel{}}}},
			wantErr: "out of range",
		},
		{
			name: "percentage too high",
			rule: Rule{ID: "r", MinApprovalPercentage: 101,
				Approvers: []Assignment{{ApproverID: "a", Mode: Parallel{}}}},
			wantErr: "out of range",
		},
		{
			name: "parallel rule with sequence order",
			rule: Rule{ID: "r", MinApprovalPercentage: 50,
				Approvers: []Assignment{{ApproverID: "a", Mode: Sequential{Order: 1}}}},
			wantErr: "parallel rule carries a sequence order",
		},
		{
			name: "sequential rule missing order",
			rule: Rule{ID: "r", SequenceRequired: true, MinApprovalPercentage: 50,
				Approvers: []Assignment{{ApproverID: "a", Mode: Parallel{}}}},
			wantErr: "missing a sequence order",
		},
		{
			name: "sequential rule with tie",
			rule: Rule{ID: "r", SequenceRequired: true, MinApprovalPercentage: 100,
				Approvers: []Assignment{
					{ApproverID: "a", Mode: Sequential{Order: 1}},
					{ApproverID: "b", Mode: Sequential{Order: 1}},
				}},
			wantErr: "dense",
		},
		{
			name: "sequential rule with gap",
			rule: Rule{ID: "r", SequenceRequired: true, MinApprovalPercentage: 100,
				Approvers: []Assignment{
					{ApproverID: "a", Mode: Sequential{Order: 1}},
					{ApproverID: "b", Mode: Sequential{Order: 3}},
				}},
			wantErr: "dense",
		},
		{
			name: "valid sequential rule",
			rule: Rule{ID: "r", SequenceRequired: true, MinApprovalPercentage: 100,
				Approvers: []Assignment{
					{ApproverID: "b", Mode: Sequential{Order: 2}},
					{ApproverID: "a", Mode: Sequential{Order: 1}},
				}},
		},
		{
			name: "valid parallel rule",
			rule: Rule{ID: "r", MinApprovalPercentage: 1,
				Approvers: []Assignment{{ApproverID: "a", Mode: Parallel{}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrderedApproversSortsSequential(t *testing.T) {
	rule := Rule{
		ID: "r", SequenceRequired: true, MinApprovalPercentage: 100,
		Approvers: []Assignment{
			{ApproverID: "c", Mode: Sequential{Order: 3}},
			{ApproverID: "a", Mode: Sequential{Order: 1}},
			{ApproverID: "b", Mode: Sequential{Order: 2}},
		},
	}

	ordered := rule.OrderedApprovers()
	require.Len(t, ordered, 3)
	assert.Equal(t, "a", ordered[0].ApproverID)
	assert.Equal(t, "b", ordered[1].ApproverID)
	assert.Equal(t, "c", ordered[2].ApproverID)
}

func TestExpenseStatusTerminal(t *testing.T) {
	assert.False(t, ExpenseDraft.Terminal())
	assert.False(t, ExpensePendingApproval.Terminal())
	assert.True(t, ExpenseApproved.Terminal())
	assert.True(t, ExpenseRejected.Terminal())

	assert.False(t, ApprovalPending.Terminal())
	assert.True(t, ApprovalApproved.Terminal())
	assert.True(t, ApprovalRejected.Terminal())
	assert.True(t, ApprovalSkipped.Terminal())
}
