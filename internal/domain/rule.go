package domain

import (
	"fmt"
	"sort"
	"time"
)

// ConditionKind identifies a rule condition variant.
type ConditionKind string

const (
	KindAmountThreshold ConditionKind = "AMOUNT_THRESHOLD"
	KindCategory        ConditionKind = "CATEGORY"
	KindSubmitterRole   ConditionKind = "SUBMITTER_ROLE"
	KindDepartment      ConditionKind = "DEPARTMENT"
)

// Condition is a closed variant set of applicability predicates. The store
// maps persisted condition rows onto exactly one of the concrete types below;
// rows with an unrecognized kind map to InvalidCondition so evaluation can
// report a data-integrity problem instead of crashing.
type Condition interface {
	Kind() ConditionKind
}

// AmountThreshold matches expenses with Amount >= Min (and <= Max when Max > 0).
// Amounts are minor currency units.
type AmountThreshold struct {
	Min int64
	Max int64
}

// Kind implements Condition.
func (AmountThreshold) Kind() ConditionKind { return KindAmountThreshold }

// CategoryIn matches expenses whose category is in Values.
type CategoryIn struct {
	Values []string
}

// Kind implements Condition.
func (CategoryIn) Kind() ConditionKind { return KindCategory }

// SubmitterRoleIn matches expenses whose submitter role is in Values.
type SubmitterRoleIn struct {
	Values []string
}

// Kind implements Condition.
func (SubmitterRoleIn) Kind() ConditionKind { return KindSubmitterRole }

// DepartmentIn matches expenses whose submitter department is in Values.
type DepartmentIn struct {
	Values []string
}

// Kind implements Condition.
func (DepartmentIn) Kind() ConditionKind { return KindDepartment }

// InvalidCondition stands in for a persisted condition row the store could not
// map to a known variant. It never matches; the evaluator reports it.
type InvalidCondition struct {
	RawKind string

	// Reason is set when the kind itself is recognized but the payload is
	// unusable (e.g. an amount threshold with an inverted range).
	Reason string
}

// Kind implements Condition.
func (c InvalidCondition) Kind() ConditionKind { return ConditionKind(c.RawKind) }

// ChainMode says how an approver assignment participates in its rule's chain.
// Exactly Sequential or Parallel; a nullable order field is deliberately not
// used.
type ChainMode interface {
	isChainMode()
}

// Sequential gates the assignment behind all lower-ordered assignments.
type Sequential struct {
	Order int
}

func (Sequential) isChainMode() {}

// Parallel makes the assignment immediately actionable.
type Parallel struct{}

func (Parallel) isChainMode() {}

// Assignment is one approver slot on a rule.
type Assignment struct {
	ApproverID string
	Mode       ChainMode
	Required   bool
}

// Rule is the evaluation view of an approval rule.
type Rule struct {
	ID          string
	CompanyID   string
	Name        string
	Description string

	// Priority orders applicable rules; ties break by CreatedAt then ID so
	// evaluation is stable and deterministic.
	Priority  int
	CreatedAt time.Time

	ManagerApprovalRequired bool
	SequenceRequired        bool
	MinApprovalPercentage   int

	Conditions []Condition
	Approvers  []Assignment
}

// Validate checks rule well-formedness:
//   - at least one approver,
//   - percentage within [1,100],
//   - sequential rules carry a dense 1..N ordering with no ties,
//   - parallel rules carry no sequence orders.
func (r Rule) Validate() error {
	if len(r.Approvers) == 0 {
		return fmt.Errorf("rule %s: at least one approver is required", r.ID)
	}
	if r.MinApprovalPercentage < 1 || r.MinApprovalPercentage > 100 {
		return fmt.Errorf("rule %s: min approval percentage %d is out of range [1,100]", r.ID, r.MinApprovalPercentage)
	}

	if !r.SequenceRequired {
		for _, a := range r.Approvers {
			if _, ok := a.Mode.(Sequential); ok {
				return fmt.Errorf("rule %s: parallel rule carries a sequence order for approver %s", r.ID, a.ApproverID)
			}
		}
		return nil
	}

	orders := make([]int, 0, len(r.Approvers))
	for _, a := range r.Approvers {
		seq, ok := a.Mode.(Sequential)
		if !ok {
			return fmt.Errorf("rule %s: sequential rule is missing a sequence order for approver %s", r.ID, a.ApproverID)
		}
		orders = append(orders, seq.Order)
	}
	sort.Ints(orders)
	for i, o := range orders {
		if o != i+1 {
			return fmt.Errorf("rule %s: sequence orders must form a dense 1..%d set with no ties", r.ID, len(orders))
		}
	}
	return nil
}

// OrderedApprovers returns the rule's assignments in chain order: sequential
// assignments ascending by order, parallel assignments in configured order.
func (r Rule) OrderedApprovers() []Assignment {
	out := make([]Assignment, len(r.Approvers))
	copy(out, r.Approvers)
	if r.SequenceRequired {
		sort.SliceStable(out, func(i, j int) bool {
			si, iOK := out[i].Mode.(Sequential)
			sj, jOK := out[j].Mode.(Sequential)
			if iOK && jOK {
				return si.Order < sj.Order
			}
			return iOK && !jOK
		})
	}
	return out
}
