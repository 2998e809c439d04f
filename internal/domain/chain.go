package domain

import (
	"fmt"
	"sort"
)

// ApprovalStatus is the state of a single approval task.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
	// ApprovalSkipped marks tasks mooted by a short-circuit rejection. They
	// are kept for chain visibility but are never actionable again.
	ApprovalSkipped ApprovalStatus = "SKIPPED"
)

// Terminal reports whether the task status admits no further transitions.
func (s ApprovalStatus) Terminal() bool {
	return s != ApprovalPending
}

// PlannedTask is one approval task the chain builder will materialize. Tasks
// of one rule share a ChainKey; satisfaction is computed per chain key.
type PlannedTask struct {
	ApproverID string

	// RuleID is empty for the manager-inserted task; ChainKey still ties the
	// task to the lane of the rule that caused the insertion.
	RuleID   string
	ChainKey string

	Mode ChainMode

	// Required marks approvers whose verdict is mandatory regardless of the
	// percentage threshold.
	Required bool

	// Snapshot of the spawning rule, fixed at build time.
	TotalApprovers int
	MinPercentage  int
}

// PlanChain materializes approval tasks for every applicable rule, in
// evaluation order. managerID is the submitter's direct manager ("" when the
// submitter has none); a rule requiring manager approval prepends a task for
// the manager ahead of the rule's own approvers (sequence 0 when sequential).
// Rules do not share approver state: a person on two applicable rules gets two
// independent tasks.
func PlanChain(rules []Rule, managerID string) ([]PlannedTask, error) {
	var tasks []PlannedTask
	for _, r := range rules {
		lane, err := planRuleLane(r, managerID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, lane...)
	}
	return tasks, nil
}

func planRuleLane(r Rule, managerID string) ([]PlannedTask, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	insertManager := r.ManagerApprovalRequired && managerID != ""
	total := len(r.Approvers)
	if insertManager {
		total++
	}

	lane := make([]PlannedTask, 0, total)
	if insertManager {
		mode := ChainMode(Parallel{})
		if r.SequenceRequired {
			mode = Sequential{Order: 0}
		}
		lane = append(lane, PlannedTask{
			ApproverID:     managerID,
			ChainKey:       r.ID,
			Mode:           mode,
			Required:       true,
			TotalApprovers: total,
			MinPercentage:  r.MinApprovalPercentage,
		})
	}

	for _, a := range r.OrderedApprovers() {
		lane = append(lane, PlannedTask{
			ApproverID:     a.ApproverID,
			RuleID:         r.ID,
			ChainKey:       r.ID,
			Mode:           a.Mode,
			Required:       a.Required,
			TotalApprovers: total,
			MinPercentage:  r.MinApprovalPercentage,
		})
	}
	return lane, nil
}

// TaskState is the decision-time view of a persisted approval record.
type TaskState struct {
	ID         string
	ChainKey   string
	ApproverID string
	Status     ApprovalStatus
	Mode       ChainMode
	Required   bool

	TotalApprovers int
	MinPercentage  int
}

// sequenceOf returns the task's order and whether it is sequential.
func sequenceOf(m ChainMode) (int, bool) {
	if s, ok := m.(Sequential); ok {
		return s.Order, true
	}
	return 0, false
}

// Actionable reports whether the given task may receive a decision right now.
// Parallel tasks are actionable while PENDING. A sequential task is actionable
// only when it is the lowest-ordered non-terminal record of its lane.
func Actionable(chain []TaskState, taskID string) (bool, error) {
	task, err := findTask(chain, taskID)
	if err != nil {
		return false, err
	}
	if task.Status.Terminal() {
		return false, nil
	}

	order, sequential := sequenceOf(task.Mode)
	if !sequential {
		return true, nil
	}

	for _, t := range chain {
		if t.ChainKey != task.ChainKey || t.ID == task.ID {
			continue
		}
		o, seq := sequenceOf(t.Mode)
		if seq && o < order && !t.Status.Terminal() {
			return false, nil
		}
	}
	return true, nil
}

// RuleOutcome is the satisfaction state of one rule lane.
type RuleOutcome string

const (
	RulePending   RuleOutcome = "PENDING"
	RuleSatisfied RuleOutcome = "SATISFIED"
	RuleFailed    RuleOutcome = "FAILED"
)

// laneOutcome computes a single lane's satisfaction. Integer arithmetic:
// approvedCount*100 >= minPercentage*totalApprovers, so no floating rounding.
// Any rejection fails the lane outright, and an undecided required approver
// keeps the lane pending no matter how far past the percentage it is.
func laneOutcome(lane []TaskState) RuleOutcome {
	if len(lane) == 0 {
		return RulePending
	}

	approved := 0
	requiredUndecided := false
	for _, t := range lane {
		switch t.Status {
		case ApprovalRejected:
			return RuleFailed
		case ApprovalApproved:
			approved++
		default:
			if t.Required {
				requiredUndecided = true
			}
		}
	}
	if requiredUndecided {
		return RulePending
	}

	total := lane[0].TotalApprovers
	minPct := lane[0].MinPercentage
	if approved*100 >= minPct*total {
		// Sequential lanes can only have reached this count by walking the
		// sequence in order, since out-of-order decisions are rejected before
		// they are recorded.
		return RuleSatisfied
	}
	return RulePending
}

// ChainOutcome is the aggregate decision state of a whole approval chain.
type ChainOutcome string

const (
	ChainPending  ChainOutcome = "PENDING"
	ChainApproved ChainOutcome = "APPROVED"
	ChainRejected ChainOutcome = "REJECTED"
)

// EvaluateChain folds per-lane outcomes into the expense-level outcome:
// any failed lane rejects the expense; all lanes satisfied approves it;
// anything else stays pending.
func EvaluateChain(chain []TaskState) ChainOutcome {
	lanes := groupByLane(chain)
	if len(lanes) == 0 {
		return ChainPending
	}

	allSatisfied := true
	for _, lane := range lanes {
		switch laneOutcome(lane) {
		case RuleFailed:
			return ChainRejected
		case RulePending:
			allSatisfied = false
		}
	}
	if allSatisfied {
		return ChainApproved
	}
	return ChainPending
}

// LaneOutcomes returns the satisfaction state per chain key, for reporting.
func LaneOutcomes(chain []TaskState) map[string]RuleOutcome {
	out := make(map[string]RuleOutcome)
	for key, lane := range groupByLane(chain) {
		out[key] = laneOutcome(lane)
	}
	return out
}

func groupByLane(chain []TaskState) map[string][]TaskState {
	lanes := make(map[string][]TaskState)
	for _, t := range chain {
		lanes[t.ChainKey] = append(lanes[t.ChainKey], t)
	}
	for _, lane := range lanes {
		sort.SliceStable(lane, func(i, j int) bool {
			oi, iSeq := sequenceOf(lane[i].Mode)
			oj, jSeq := sequenceOf(lane[j].Mode)
			if iSeq && jSeq {
				return oi < oj
			}
			return iSeq && !jSeq
		})
	}
	return lanes
}

func findTask(chain []TaskState, taskID string) (TaskState, error) {
	for _, t := range chain {
		if t.ID == taskID {
			return t, nil
		}
	}
	return TaskState{}, fmt.Errorf("task %s is not part of the chain", taskID)
}
