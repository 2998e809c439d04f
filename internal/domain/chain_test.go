package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialRule(id string, pct int, approvers ...string) Rule {
	assignments := make([]Assignment, len(approvers))
	for i, a := range approvers {
		assignments[i] = Assignment{ApproverID: a, Mode: Sequential{Order: i + 1}}
	}
	return Rule{
		ID:                    id,
		CompanyID:             "co-1",
		Name:                  "rule " + id,
		CreatedAt:             time.Now(),
		SequenceRequired:      true,
		MinApprovalPercentage: pct,
		Approvers:             assignments,
	}
}

func parallelRuleWith(id string, pct int, approvers ...string) Rule {
	assignments := make([]Assignment, len(approvers))
	for i, a := range approvers {
		assignments[i] = Assignment{ApproverID: a, Mode: Parallel{}}
	}
	return Rule{
		ID:                    id,
		CompanyID:             "co-1",
		Name:                  "rule " + id,
		CreatedAt:             time.Now(),
		MinApprovalPercentage: pct,
		Approvers:             assignments,
	}
}

// materialize turns planned tasks into task states with synthetic IDs, all
// PENDING, the way the chain builder persists them.
func materialize(tasks []PlannedTask) []TaskState {
	chain := make([]TaskState, len(tasks))
	for i, p := range tasks {
		chain[i] = TaskState{
			ID:             fmt.Sprintf("ap-%d", i),
			ChainKey:       p.ChainKey,
			ApproverID:     p.ApproverID,
			Status:         ApprovalPending,
			Mode:           p.Mode,
			Required:       p.Required,
			TotalApprovers: p.TotalApprovers,
			MinPercentage:  p.MinPercentage,
		}
	}
	return chain
}

func approve(chain []TaskState, id string) []TaskState {
	for i := range chain {
		if chain[i].ID == id {
			chain[i].Status = ApprovalApproved
		}
	}
	return chain
}

func reject(chain []TaskState, id string) []TaskState {
	for i := range chain {
		if chain[i].ID == id {
			chain[i].Status = ApprovalRejected
		}
	}
	return chain
}

func TestPlanChainManagerInsertion(t *testing.T) {
	rule := sequentialRule("rule-1", 100, "a", "b")
	rule.ManagerApprovalRequired = true

	tasks, err := PlanChain([]Rule{rule}, "the-manager")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Manager first, sequence 0, no RuleID but same chain key. The inserted
	// task is always required.
	assert.Equal(t, "the-manager", tasks[0].ApproverID)
	assert.Empty(t, tasks[0].RuleID)
	assert.Equal(t, "rule-1", tasks[0].ChainKey)
	assert.Equal(t, Sequential{Order: 0}, tasks[0].Mode)
	assert.True(t, tasks[0].Required)

	// Manager counts toward the lane total.
	for _, task := range tasks {
		assert.Equal(t, 3, task.TotalApprovers)
	}

	assert.Equal(t, "a", tasks[1].ApproverID)
	assert.Equal(t, Sequential{Order: 1}, tasks[1].Mode)
	assert.Equal(t, "b", tasks[2].ApproverID)
}

func TestPlanChainNoManagerToInsert(t *testing.T) {
	rule := parallelRuleWith("rule-1", 100, "a")
	rule.ManagerApprovalRequired = true

	// Submitter at the top of the reporting chain: no manager task.
	tasks, err := PlanChain([]Rule{rule}, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].ApproverID)
	assert.Equal(t, 1, tasks[0].TotalApprovers)
}

func TestPlanChainIndependentLanesPerRule(t *testing.T) {
	// The same person on two applicable rules gets two independent tasks.
	r1 := parallelRuleWith("rule-1", 100, "shared", "a")
	r2 := sequentialRule("rule-2", 100, "shared")

	tasks, err := PlanChain([]Rule{r1, r2}, "")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	var sharedLanes []string
	for _, task := range tasks {
		if task.ApproverID == "shared" {
			sharedLanes = append(sharedLanes, task.ChainKey)
		}
	}
	assert.ElementsMatch(t, []string{"rule-1", "rule-2"}, sharedLanes)
}

func TestPlanChainRejectsMalformedRule(t *testing.T) {
	rule := sequentialRule("rule-1", 100, "a", "b")
	rule.Approvers[1].Mode = Sequential{Order: 5} // not dense

	_, err := PlanChain([]Rule{rule}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dense")
}

func TestActionableSequentialGating(t *testing.T) {
	chain := materialize(must(PlanChain([]Rule{sequentialRule("rule-1", 100, "a", "b", "c")}, "")))

	// Only the head of the sequence is actionable.
	ok, err := Actionable(chain, "ap-0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Actionable(chain, "ap-2")
	require.NoError(t, err)
	assert.False(t, ok, "C must not be actionable while A and B are pending")

	// A approves: B becomes the head, C still gated.
	chain = approve(chain, "ap-0")
	ok, _ = Actionable(chain, "ap-1")
	assert.True(t, ok)
	ok, _ = Actionable(chain, "ap-2")
	assert.False(t, ok)
}

func TestActionableParallelAndTerminal(t *testing.T) {
	chain := materialize(must(PlanChain([]Rule{parallelRuleWith("rule-1", 100, "a", "b")}, "")))

	for _, id := range []string{"ap-0", "ap-1"} {
		ok, err := Actionable(chain, id)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	chain = approve(chain, "ap-0")
	ok, err := Actionable(chain, "ap-0")
	require.NoError(t, err)
	assert.False(t, ok, "terminal records are never actionable")

	_, err = Actionable(chain, "ap-404")
	assert.Error(t, err)
}

func TestPercentageThresholdParallelFourApproversFiftyPercent(t *testing.T) {
	chain := materialize(must(PlanChain([]Rule{parallelRuleWith("rule-1", 50, "a", "b", "c", "d")}, "")))

	assert.Equal(t, ChainPending, EvaluateChain(chain))

	chain = approve(chain, "ap-0")
	assert.Equal(t, ChainPending, EvaluateChain(chain), "1 of 4 approvals must not satisfy 50%%")

	chain = approve(chain, "ap-1")
	assert.Equal(t, ChainApproved, EvaluateChain(chain), "exactly the 2nd approval satisfies 50%% of 4")
}

func TestRequiredApproverGatesPercentage(t *testing.T) {
	// 2 approvers at 50%, B required: A's approval alone reaches the
	// percentage but must not satisfy the lane while B is undecided.
	rule := parallelRuleWith("rule-1", 50, "a", "b")
	rule.Approvers[1].Required = true

	chain := materialize(must(PlanChain([]Rule{rule}, "")))

	chain = approve(chain, "ap-0")
	assert.Equal(t, ChainPending, EvaluateChain(chain))
	assert.Equal(t, RulePending, LaneOutcomes(chain)["rule-1"])

	chain = approve(chain, "ap-1")
	assert.Equal(t, ChainApproved, EvaluateChain(chain))
}

func TestRequiredManagerGatesPercentage(t *testing.T) {
	// The inserted manager task is required: the rule's own approvers meeting
	// the percentage without the manager keeps the lane pending.
	rule := parallelRuleWith("rule-1", 50, "a", "b")
	rule.ManagerApprovalRequired = true

	chain := materialize(must(PlanChain([]Rule{rule}, "the-manager")))
	require.Len(t, chain, 3)

	// a and b approve: 2 of 3 clears 50%, manager still undecided.
	chain = approve(chain, "ap-1")
	chain = approve(chain, "ap-2")
	assert.Equal(t, ChainPending, EvaluateChain(chain))

	chain = approve(chain, "ap-0")
	assert.Equal(t, ChainApproved, EvaluateChain(chain))
}

func TestRejectShortCircuits(t *testing.T) {
	r1 := parallelRuleWith("rule-1", 100, "a", "b")
	r2 := sequentialRule("rule-2", 100, "c")
	chain := materialize(must(PlanChain([]Rule{r1, r2}, "")))

	chain = approve(chain, "ap-0")
	chain = reject(chain, "ap-2")
	assert.Equal(t, ChainRejected, EvaluateChain(chain))

	// A later approval on another record cannot flip the outcome.
	chain = approve(chain, "ap-1")
	assert.Equal(t, ChainRejected, EvaluateChain(chain))
}

func TestSequentialThresholdStopsEarly(t *testing.T) {
	// 3 sequential approvers at 67%: approving in order A→B reaches
	// 2*100 >= 67*3, so the lane satisfies without C.
	chain := materialize(must(PlanChain([]Rule{sequentialRule("rule-1", 67, "a", "b", "c")}, "")))

	chain = approve(chain, "ap-0")
	assert.Equal(t, ChainPending, EvaluateChain(chain))

	chain = approve(chain, "ap-1")
	assert.Equal(t, ChainApproved, EvaluateChain(chain))
}

func TestTwoRulesBothMustSatisfy(t *testing.T) {
	// rule1 parallel 2 approvers at 100%, rule2 sequential single approver.
	r1 := parallelRuleWith("rule-1", 100, "a", "b")
	r2 := sequentialRule("rule-2", 100, "c")
	chain := materialize(must(PlanChain([]Rule{r1, r2}, "")))

	chain = approve(chain, "ap-0")
	chain = approve(chain, "ap-1")
	assert.Equal(t, ChainPending, EvaluateChain(chain), "rule-2 still pending")

	outcomes := LaneOutcomes(chain)
	assert.Equal(t, RuleSatisfied, outcomes["rule-1"])
	assert.Equal(t, RulePending, outcomes["rule-2"])

	chain = approve(chain, "ap-2")
	assert.Equal(t, ChainApproved, EvaluateChain(chain))
}

func must(tasks []PlannedTask, err error) []PlannedTask {
	if err != nil {
		panic(err)
	}
	return tasks
}
