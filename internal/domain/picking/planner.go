// Package picking turns a warehouse layout and a wanted-item list into an
// ordered robot action plan (move / pick / drop). The planner is a
// best-first search over world states whose heuristic consults the grid
// pathfinder for real distances; all working memory is owned by the call,
// so concurrent plans never share state.
package picking

import (
	"container/heap"
	"errors"
)

var (
	// ErrNoPlan means the action set cannot reach the goal at all.
	ErrNoPlan = errors.New("no feasible plan")
	// ErrBudgetExhausted means the iteration cap was hit first; the goal
	// may still be reachable.
	ErrBudgetExhausted = errors.New("search budget exhausted")
)

// Result is the planner's answer: the action sequence in execution order
// plus search statistics. Iterations is reported on failure too.
type Result struct {
	Actions    []Action
	Iterations int
	TotalCost  int
}

type frontierNode struct {
	state      State
	actions    []Action
	gScore     int
	fScore     int
	seq        int
	queueIndex int
}

// frontier orders nodes by f-score, breaking ties by arrival order so
// equal-cost results stay deterministic.
type frontier []*frontierNode

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].fScore != f[j].fScore {
		return f[i].fScore < f[j].fScore
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].queueIndex = i
	f[j].queueIndex = j
}
func (f *frontier) Push(x any) {
	node := x.(*frontierNode)
	node.queueIndex = len(*f)
	*f = append(*f, node)
}
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	*f = old[:n-1]
	return node
}

// Plan searches for an action sequence delivering every goal item to the
// collection point. It returns ErrNoPlan when the frontier empties and
// ErrBudgetExhausted when Tuning.MaxIterations expansions were spent
// first; the two are distinct so a caller can tell "provably impossible"
// from "gave up".
func Plan(p Problem) (Result, error) {
	p.Tuning = p.Tuning.withDefaults()

	open := make(frontier, 0)
	heap.Init(&open)

	gScores := map[string]int{p.Initial.Key(): 0}
	fScores := map[string]int{p.Initial.Key(): Estimate(p.Initial, p)}

	seq := 0
	start := &frontierNode{
		state:  p.Initial,
		fScore: fScores[p.Initial.Key()],
		seq:    seq,
	}
	heap.Push(&open, start)

	iterations := 0
	for open.Len() > 0 {
		if iterations >= p.Tuning.MaxIterations {
			return Result{Iterations: iterations}, ErrBudgetExhausted
		}
		iterations++

		current := heap.Pop(&open).(*frontierNode)
		if current.state.IsGoal(p.GoalItems) {
			return Result{
				Actions:    current.actions,
				Iterations: iterations,
				TotalCost:  current.gScore,
			}, nil
		}

		for _, action := range Successors(current.state, p) {
			next := current.state.Apply(action)
			key := next.Key()
			tentativeG := current.gScore + action.Cost()
			if known, ok := gScores[key]; ok && tentativeG >= known {
				continue
			}
			gScores[key] = tentativeG
			f := tentativeG + Estimate(next, p)
			fScores[key] = f

			actions := make([]Action, len(current.actions), len(current.actions)+1)
			copy(actions, current.actions)
			actions = append(actions, action)

			seq++
			heap.Push(&open, &frontierNode{
				state:   next,
				actions: actions,
				gScore:  tentativeG,
				fScore:  f,
				seq:     seq,
			})
		}
	}

	return Result{Iterations: iterations}, ErrNoPlan
}
