package memory

import (
	"sync"

	"warebot/internal/app/ports"
)

// Store backs the DB-less dev mode and the tests. The repos share one
// mutex; TxManager holds it for the duration of a transaction.
type Store struct {
	mu         sync.Mutex
	layouts    map[string]ports.LayoutRecord
	executions []ports.PlanExecutionRecord
}

func NewStore() *Store {
	return &Store{
		layouts: make(map[string]ports.LayoutRecord),
	}
}

func (s *Store) SeedLayout(record ports.LayoutRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[record.ID] = record
}
