package inmemory

import "sync"

type Snapshot struct {
	PlanTotal       uint64 `json:"plan_total"`
	Planned         uint64 `json:"planned"`
	NoPlan          uint64 `json:"no_plan"`
	BudgetExhausted uint64 `json:"budget_exhausted"`
	Failure         uint64 `json:"failure"`
}

type Recorder struct {
	mu        sync.Mutex
	planned   uint64
	noPlan    uint64
	exhausted uint64
	failure   uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordPlanned() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.planned++
}

func (r *Recorder) RecordNoPlan() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noPlan++
}

func (r *Recorder) RecordExhausted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exhausted++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		PlanTotal:       r.planned + r.noPlan + r.exhausted + r.failure,
		Planned:         r.planned,
		NoPlan:          r.noPlan,
		BudgetExhausted: r.exhausted,
		Failure:         r.failure,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
