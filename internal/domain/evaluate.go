package domain

import (
	"fmt"
	"slices"
	"sort"
)

// RuleEvaluationError reports a single rule whose conditions could not be
// evaluated against an expense (malformed persisted condition data). It is
// non-fatal: the rule is treated as non-matching and evaluation continues.
type RuleEvaluationError struct {
	RuleID string
	Reason string
}

// Error implements the error interface.
func (e *RuleEvaluationError) Error() string {
	return fmt.Sprintf("rule %s could not be evaluated: %s", e.RuleID, e.Reason)
}

// matchCondition evaluates one condition against an expense. The switch is
// exhaustive over the closed Condition variant set.
func matchCondition(c Condition, e Expense) (bool, error) {
	switch cond := c.(type) {
	case AmountThreshold:
		if e.Amount < cond.Min {
			return false, nil
		}
		if cond.Max > 0 && e.Amount > cond.Max {
			return false, nil
		}
		return true, nil
	case CategoryIn:
		return slices.Contains(cond.Values, e.Category), nil
	case SubmitterRoleIn:
		return slices.Contains(cond.Values, e.SubmitterRole), nil
	case DepartmentIn:
		return slices.Contains(cond.Values, e.SubmitterDepartment), nil
	case InvalidCondition:
		if cond.Reason != "" {
			return false, fmt.Errorf("condition kind %q: %s", cond.RawKind, cond.Reason)
		}
		return false, fmt.Errorf("unknown condition kind %q", cond.RawKind)
	default:
		return false, fmt.Errorf("unhandled condition type %T", c)
	}
}

// EvaluateApplicableRules returns the subset of rules whose conditions all
// match the expense, in deterministic evaluation order (priority ascending,
// ties by creation time then ID). Rules that cannot be evaluated are excluded
// and reported via the returned issue list; they never abort evaluation.
func EvaluateApplicableRules(e Expense, rules []Rule) ([]Rule, []*RuleEvaluationError) {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var (
		applicable []Rule
		issues     []*RuleEvaluationError
	)
	for _, r := range ordered {
		match, err := ruleMatches(r, e)
		if err != nil {
			issues = append(issues, &RuleEvaluationError{RuleID: r.ID, Reason: err.Error()})
			continue
		}
		if match {
			applicable = append(applicable, r)
		}
	}
	return applicable, issues
}

// ruleMatches reports whether every condition of the rule matches. A rule with
// zero conditions matches unconditionally (catch-all rule).
func ruleMatches(r Rule, e Expense) (bool, error) {
	for _, c := range r.Conditions {
		ok, err := matchCondition(c, e)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
