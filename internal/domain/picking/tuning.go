package picking

const (
	// DefaultItemPenalty is the heuristic charge per item not yet at the
	// collection point. It deliberately overestimates so the search
	// prioritizes reducing the item count before optimizing travel; the
	// resulting plans are heuristic-grade rather than provably optimal.
	DefaultItemPenalty = 20

	DefaultMaxIterations = 5000

	// unreachableCost prunes branches whose delivery leg has no path.
	unreachableCost = 1 << 30
)

type Tuning struct {
	ItemPenalty   int
	MaxIterations int
}

func DefaultTuning() Tuning {
	return Tuning{
		ItemPenalty:   DefaultItemPenalty,
		MaxIterations: DefaultMaxIterations,
	}
}

func (t Tuning) withDefaults() Tuning {
	if t.ItemPenalty <= 0 {
		t.ItemPenalty = DefaultItemPenalty
	}
	if t.MaxIterations <= 0 {
		t.MaxIterations = DefaultMaxIterations
	}
	return t
}
