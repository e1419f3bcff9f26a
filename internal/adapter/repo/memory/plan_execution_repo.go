package memory

import (
	"context"

	"warebot/internal/app/ports"
)

type PlanExecutionRepo struct {
	store *Store
}

func NewPlanExecutionRepo(store *Store) PlanExecutionRepo {
	return PlanExecutionRepo{store: store}
}

func (r PlanExecutionRepo) Append(_ context.Context, record ports.PlanExecutionRecord) error {
	r.store.executions = append(r.store.executions, record)
	return nil
}

func (r PlanExecutionRepo) ListByLayoutID(_ context.Context, layoutID string, limit int) ([]ports.PlanExecutionRecord, error) {
	out := []ports.PlanExecutionRecord{}
	// Newest first.
	for i := len(r.store.executions) - 1; i >= 0; i-- {
		record := r.store.executions[i]
		if record.LayoutID != layoutID {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
