package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warebot/internal/app/ports"
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest = errors.New("invalid plan request")
	ErrUnknownItem    = errors.New("goal item not stocked by any shelf")
	ErrOutOfBounds    = errors.New("position outside grid bounds")
)

type UseCase struct {
	TxManager  ports.TxManager
	Layouts    ports.LayoutRepository
	Executions ports.PlanExecutionRepository
	Metrics    ports.PlannerMetrics
	Tuning     picking.Tuning
	Now        func() time.Time
}

// Execute resolves the layout, validates the request at the boundary
// (malformed input is rejected before any search runs, never folded into
// "no plan found"), runs the planner and logs the outcome. A negative
// planning outcome is a result code, not an error.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if len(req.GoalItems) == 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.Layout == nil && req.LayoutID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		layout, err := u.resolveLayout(txCtx, req)
		if err != nil {
			return err
		}
		if err := validate(req, layout); err != nil {
			return err
		}

		result, planErr := picking.Plan(buildProblem(req, layout, u.Tuning))

		out = Response{
			ExecutionID: uuid.NewString(),
			Actions:     result.Actions,
			Iterations:  result.Iterations,
			TotalCost:   result.TotalCost,
		}
		switch {
		case planErr == nil:
			out.ResultCode = ResultPlanned
		case errors.Is(planErr, picking.ErrNoPlan):
			out.ResultCode = ResultNoPlan
		case errors.Is(planErr, picking.ErrBudgetExhausted):
			out.ResultCode = ResultBudgetExhausted
		default:
			return planErr
		}

		// The execution log is read back per stored layout; an inline
		// layout without a layout_id has no key to list it under, so
		// those runs are not logged.
		if u.Executions == nil || req.LayoutID == "" {
			return nil
		}
		record := ports.PlanExecutionRecord{
			ExecutionID: out.ExecutionID,
			LayoutID:    req.LayoutID,
			GoalItems:   req.GoalItems,
			ResultCode:  out.ResultCode,
			Iterations:  out.Iterations,
			TotalCost:   out.TotalCost,
			PlannedAt:   nowFn(),
		}
		if err := u.Executions.Append(txCtx, record); err != nil {
			return fmt.Errorf("record plan execution: %w", err)
		}
		return nil
	})
	if err != nil {
		u.recordFailure(err)
		return Response{}, err
	}

	u.recordOutcome(out.ResultCode)
	return out, nil
}

func (u UseCase) resolveLayout(ctx context.Context, req Request) (ports.LayoutRecord, error) {
	if req.Layout != nil {
		return ports.LayoutRecord{
			ID:              req.LayoutID,
			GridSize:        req.Layout.GridSize,
			CollectionPoint: req.Layout.CollectionPoint,
			Shelves:         req.Layout.Shelves,
			Obstacles:       req.Layout.Obstacles,
		}, nil
	}
	if u.Layouts == nil {
		return ports.LayoutRecord{}, ports.ErrNotFound
	}
	return u.Layouts.GetByID(ctx, req.LayoutID)
}

func buildProblem(req Request, layout ports.LayoutRecord, tuning picking.Tuning) picking.Problem {
	locations := make(map[string]string)
	for _, shelf := range layout.Shelves {
		for _, item := range shelf.Items {
			locations[item] = shelf.ID
		}
	}
	obstacles := make(map[grid.Point]bool, len(layout.Obstacles))
	for _, cell := range layout.Obstacles {
		obstacles[cell] = true
	}
	return picking.Problem{
		Initial: picking.State{
			RobotPos:      req.RobotStart,
			ItemLocations: locations,
		},
		GoalItems:       req.GoalItems,
		Shelves:         layout.Shelves,
		CollectionPoint: layout.CollectionPoint,
		Obstacles:       obstacles,
		GridSize:        layout.GridSize,
		Tuning:          tuning,
	}
}

func validate(req Request, layout ports.LayoutRecord) error {
	if layout.GridSize <= 0 {
		return ErrInvalidRequest
	}
	if !inBounds(req.RobotStart, layout.GridSize) || !inBounds(layout.CollectionPoint, layout.GridSize) {
		return ErrOutOfBounds
	}
	stocked := make(map[string]bool)
	for _, shelf := range layout.Shelves {
		if !inBounds(shelf.Position, layout.GridSize) {
			return ErrOutOfBounds
		}
		for _, item := range shelf.Items {
			stocked[item] = true
		}
	}
	for _, item := range req.GoalItems {
		if !stocked[item] {
			return fmt.Errorf("%w: %s", ErrUnknownItem, item)
		}
	}
	return nil
}

func inBounds(p grid.Point, gridSize int) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

func (u UseCase) recordOutcome(code string) {
	if u.Metrics == nil {
		return
	}
	switch code {
	case ResultPlanned:
		u.Metrics.RecordPlanned()
	case ResultNoPlan:
		u.Metrics.RecordNoPlan()
	case ResultBudgetExhausted:
		u.Metrics.RecordExhausted()
	}
}

// recordFailure counts only unexpected errors; boundary rejections are
// the caller's mistake, not a planner failure.
func (u UseCase) recordFailure(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrOutOfBounds) || errors.Is(err, ports.ErrNotFound) {
		return
	}
	u.Metrics.RecordFailure()
}
