package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"warebot/internal/app/layout"
	"warebot/internal/app/plan"
	"warebot/internal/app/ports"
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	PlanUC     plan.UseCase
	LayoutUC   layout.UseCase
	Executions ports.PlanExecutionRepository
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/plan", h.plan)
	api.POST("/layouts", h.createLayout)
	api.GET("/layouts", h.listLayouts)
	api.GET("/layouts/:id", h.getLayout)
	api.GET("/layouts/:id/executions", h.listExecutions)

	s.GET("/ops/kpi", h.kpi)
}

type planRequest struct {
	LayoutID   string             `json:"layout_id,omitempty"`
	Layout     *plan.InlineLayout `json:"layout,omitempty"`
	RobotStart grid.Point         `json:"robot_start"`
	GoalItems  []string           `json:"goal_items"`
}

type layoutRequest struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	GridSize        int             `json:"grid_size"`
	CollectionPoint grid.Point      `json:"collection_point"`
	Shelves         []picking.Shelf `json:"shelves"`
	Obstacles       []grid.Point    `json:"obstacles"`
}

func (h Handler) plan(c context.Context, ctx *app.RequestContext) {
	var body planRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlanUC.Execute(c, plan.Request{
		LayoutID:   body.LayoutID,
		Layout:     body.Layout,
		RobotStart: body.RobotStart,
		GoalItems:  body.GoalItems,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createLayout(c context.Context, ctx *app.RequestContext) {
	var body layoutRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	created, err := h.LayoutUC.Create(c, layout.CreateRequest{
		ID:              body.ID,
		Name:            body.Name,
		GridSize:        body.GridSize,
		CollectionPoint: body.CollectionPoint,
		Shelves:         body.Shelves,
		Obstacles:       body.Obstacles,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, created)
}

func (h Handler) getLayout(c context.Context, ctx *app.RequestContext) {
	found, err := h.LayoutUC.Get(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, found)
}

func (h Handler) listLayouts(c context.Context, ctx *app.RequestContext) {
	layouts, err := h.LayoutUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"layouts": layouts})
}

func (h Handler) listExecutions(c context.Context, ctx *app.RequestContext) {
	if h.Executions == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "execution log not configured")
		return
	}
	limit := 0
	if raw := string(ctx.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	records, err := h.Executions.ListByLayoutID(c, ctx.Param("id"), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"executions": records})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, plan.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_plan_request", err.Error())
	case errors.Is(err, plan.ErrUnknownItem):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_goal_item", err.Error())
	case errors.Is(err, plan.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "out_of_bounds", err.Error())
	case errors.Is(err, layout.ErrInvalidLayout),
		errors.Is(err, layout.ErrDuplicateShelf),
		errors.Is(err, layout.ErrDuplicateItem),
		errors.Is(err, layout.ErrReservedID):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_layout", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
