package plan

import (
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"
)

// InlineLayout lets a caller plan against a floor that was never stored.
type InlineLayout struct {
	GridSize        int             `json:"grid_size"`
	CollectionPoint grid.Point      `json:"collection_point"`
	Shelves         []picking.Shelf `json:"shelves"`
	Obstacles       []grid.Point    `json:"obstacles"`
}

type Request struct {
	LayoutID   string
	Layout     *InlineLayout
	RobotStart grid.Point
	GoalItems  []string
}

const (
	ResultPlanned         = "planned"
	ResultNoPlan          = "no_plan"
	ResultBudgetExhausted = "budget_exhausted"
)

type Response struct {
	ExecutionID string           `json:"execution_id"`
	ResultCode  string           `json:"result_code"`
	Actions     []picking.Action `json:"actions"`
	Iterations  int              `json:"iterations"`
	TotalCost   int              `json:"total_cost"`
}
