package gormrepo

import (
	"context"
	"encoding/json"

	"warebot/internal/adapter/repo/gorm/model"
	"warebot/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanExecutionRepo struct {
	db *gorm.DB
}

func NewPlanExecutionRepo(db *gorm.DB) PlanExecutionRepo {
	return PlanExecutionRepo{db: db}
}

func (r PlanExecutionRepo) Append(ctx context.Context, record ports.PlanExecutionRecord) error {
	goalItems, err := json.Marshal(record.GoalItems)
	if err != nil {
		return err
	}
	row := model.PlanExecution{
		ExecutionID: record.ExecutionID,
		LayoutID:    record.LayoutID,
		GoalItems:   goalItems,
		ResultCode:  record.ResultCode,
		Iterations:  int32(record.Iterations),
		TotalCost:   int32(record.TotalCost),
		PlannedAt:   record.PlannedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r PlanExecutionRepo) ListByLayoutID(ctx context.Context, layoutID string, limit int) ([]ports.PlanExecutionRecord, error) {
	rows := []model.PlanExecution{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.PlanExecution{LayoutID: layoutID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "planned_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.PlanExecutionRecord, 0, len(rows))
	for _, row := range rows {
		var goalItems []string
		if len(row.GoalItems) > 0 {
			_ = json.Unmarshal(row.GoalItems, &goalItems)
		}
		out = append(out, ports.PlanExecutionRecord{
			ExecutionID: row.ExecutionID,
			LayoutID:    row.LayoutID,
			GoalItems:   goalItems,
			ResultCode:  row.ResultCode,
			Iterations:  int(row.Iterations),
			TotalCost:   int(row.TotalCost),
			PlannedAt:   row.PlannedAt,
		})
	}
	return out, nil
}
