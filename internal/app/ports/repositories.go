package ports

import (
	"context"
	"time"

	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"
)

// LayoutRecord is a stored warehouse floor: grid dimension, shelf
// placement, obstacle cells and the collection point.
type LayoutRecord struct {
	ID              string
	Name            string
	GridSize        int
	CollectionPoint grid.Point
	Shelves         []picking.Shelf
	Obstacles       []grid.Point
}

// PlanExecutionRecord logs the outcome of one planning call: result code
// and search statistics only, never the action list itself.
type PlanExecutionRecord struct {
	ExecutionID string
	LayoutID    string
	GoalItems   []string
	ResultCode  string
	Iterations  int
	TotalCost   int
	PlannedAt   time.Time
}

type LayoutRepository interface {
	Save(ctx context.Context, layout LayoutRecord) error
	GetByID(ctx context.Context, id string) (LayoutRecord, error)
	List(ctx context.Context) ([]LayoutRecord, error)
}

type PlanExecutionRepository interface {
	Append(ctx context.Context, record PlanExecutionRecord) error
	ListByLayoutID(ctx context.Context, layoutID string, limit int) ([]PlanExecutionRecord, error)
}
