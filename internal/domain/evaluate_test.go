package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func travelExpense(amount int64) Expense {
	return Expense{
		ID:                  "exp-1",
		CompanyID:           "co-1",
		SubmitterID:         "user-1",
		Amount:              amount,
		Currency:            "USD",
		Category:            "TRAVEL",
		ExpenseDate:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		SubmitterRole:       "EMPLOYEE",
		SubmitterDepartment: "SALES",
		Status:              ExpenseDraft,
	}
}

func parallelRule(id string, priority int, createdAt time.Time, conds ...Condition) Rule {
	return Rule{
		ID:                    id,
		CompanyID:             "co-1",
		Name:                  "rule " + id,
		Priority:              priority,
		CreatedAt:             createdAt,
		MinApprovalPercentage: 100,
		Conditions:            conds,
		Approvers: []Assignment{
			{ApproverID: "approver-a", Mode: Parallel{}, Required: true},
		},
	}
}

func TestMatchConditionVariants(t *testing.T) {
	e := travelExpense(50_000) // $500.00

	tests := []struct {
		name  string
		cond  Condition
		match bool
	}{
		{"amount above min", AmountThreshold{Min: 10_000}, true},
		{"amount below min", AmountThreshold{Min: 100_000}, false},
		{"amount within band", AmountThreshold{Min: 10_000, Max: 60_000}, true},
		{"amount above max", AmountThreshold{Min: 10_000, Max: 20_000}, false},
		{"category hit", CategoryIn{Values: []string{"TRAVEL", "MEALS"}}, true},
		{"category miss", CategoryIn{Values: []string{"OFFICE"}}, false},
		{"role hit", SubmitterRoleIn{Values: []string{"EMPLOYEE"}}, true},
		{"role miss", SubmitterRoleIn{Values: []string{"MANAGER"}}, false},
		{"department hit", DepartmentIn{Values: []string{"SALES"}}, true},
		{"department miss", DepartmentIn{Values: []string{"ENGINEERING"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchCondition(tt.cond, e)
			require.NoError(t, err)
			assert.Equal(t, tt.match, got)
		})
	}
}

func TestMatchConditionInvalidKind(t *testing.T) {
	_, err := matchCondition(InvalidCondition{RawKind: "VENDOR"}, travelExpense(100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VENDOR")
}

func TestEvaluateAmountThresholdScenario(t *testing.T) {
	// Rule "amount > $100" with a $500 expense applies; a $50 expense leaves
	// zero matching rules (caller must auto-approve).
	rule := parallelRule("rule-1", 0, time.Now(), AmountThreshold{Min: 10_001})

	applicable, issues := EvaluateApplicableRules(travelExpense(50_000), []Rule{rule})
	require.Empty(t, issues)
	require.Len(t, applicable, 1)
	assert.Equal(t, "rule-1", applicable[0].ID)

	applicable, issues = EvaluateApplicableRules(travelExpense(5_000), []Rule{rule})
	require.Empty(t, issues)
	assert.Empty(t, applicable)
}

func TestEvaluateAllConditionsMustMatch(t *testing.T) {
	rule := parallelRule("rule-1", 0, time.Now(),
		AmountThreshold{Min: 10_000},
		CategoryIn{Values: []string{"OFFICE"}}, // expense is TRAVEL
	)

	applicable, issues := EvaluateApplicableRules(travelExpense(50_000), []Rule{rule})
	require.Empty(t, issues)
	assert.Empty(t, applicable)
}

func TestEvaluateZeroConditionRuleIsCatchAll(t *testing.T) {
	rule := parallelRule("rule-1", 0, time.Now())
	applicable, _ := EvaluateApplicableRules(travelExpense(1), []Rule{rule})
	assert.Len(t, applicable, 1)
}

func TestEvaluateOrderIsDeterministic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rules := []Rule{
		parallelRule("rule-c", 5, base.Add(2*time.Hour)),
		parallelRule("rule-b", 5, base.Add(time.Hour)),
		parallelRule("rule-a", 1, base.Add(3*time.Hour)),
	}

	applicable, issues := EvaluateApplicableRules(travelExpense(50_000), rules)
	require.Empty(t, issues)
	require.Len(t, applicable, 3)
	// Priority first, then creation time.
	assert.Equal(t, "rule-a", applicable[0].ID)
	assert.Equal(t, "rule-b", applicable[1].ID)
	assert.Equal(t, "rule-c", applicable[2].ID)
}

func TestEvaluateMalformedRuleIsExcludedNotFatal(t *testing.T) {
	good := parallelRule("rule-good", 0, time.Now(), AmountThreshold{Min: 1})
	bad := parallelRule("rule-bad", 0, time.Now(), InvalidCondition{RawKind: "COST_CENTER"})

	applicable, issues := EvaluateApplicableRules(travelExpense(50_000), []Rule{bad, good})

	require.Len(t, applicable, 1)
	assert.Equal(t, "rule-good", applicable[0].ID)

	require.Len(t, issues, 1)
	assert.Equal(t, "rule-bad", issues[0].RuleID)
	assert.Contains(t, issues[0].Error(), "rule-bad")
}
