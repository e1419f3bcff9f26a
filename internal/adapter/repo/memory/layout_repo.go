package memory

import (
	"context"
	"sort"

	"warebot/internal/app/ports"
)

type LayoutRepo struct {
	store *Store
}

func NewLayoutRepo(store *Store) LayoutRepo {
	return LayoutRepo{store: store}
}

func (r LayoutRepo) Save(_ context.Context, record ports.LayoutRecord) error {
	r.store.layouts[record.ID] = record
	return nil
}

func (r LayoutRepo) GetByID(_ context.Context, id string) (ports.LayoutRecord, error) {
	record, ok := r.store.layouts[id]
	if !ok {
		return ports.LayoutRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r LayoutRepo) List(_ context.Context) ([]ports.LayoutRecord, error) {
	out := make([]ports.LayoutRecord, 0, len(r.store.layouts))
	for _, record := range r.store.layouts {
		out = append(out, record)
	}
	// Same ordering as the SQL adapter.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
