package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"warebot/internal/adapter/repo/gorm/model"
	"warebot/internal/app/ports"
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LayoutRepo struct {
	db *gorm.DB
}

func NewLayoutRepo(db *gorm.DB) LayoutRepo {
	return LayoutRepo{db: db}
}

func (r LayoutRepo) Save(ctx context.Context, record ports.LayoutRecord) error {
	row, err := toLayoutRow(record)
	if err != nil {
		return err
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "layout_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (r LayoutRepo) GetByID(ctx context.Context, id string) (ports.LayoutRecord, error) {
	var row model.Layout
	if err := getDBFromCtx(ctx, r.db).Where("layout_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.LayoutRecord{}, ports.ErrNotFound
		}
		return ports.LayoutRecord{}, err
	}
	return fromLayoutRow(row)
}

func (r LayoutRepo) List(ctx context.Context) ([]ports.LayoutRecord, error) {
	rows := []model.Layout{}
	if err := getDBFromCtx(ctx, r.db).Order("layout_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.LayoutRecord, 0, len(rows))
	for _, row := range rows {
		record, err := fromLayoutRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func toLayoutRow(record ports.LayoutRecord) (model.Layout, error) {
	shelves, err := json.Marshal(record.Shelves)
	if err != nil {
		return model.Layout{}, fmt.Errorf("encode shelves: %w", err)
	}
	obstacles, err := json.Marshal(record.Obstacles)
	if err != nil {
		return model.Layout{}, fmt.Errorf("encode obstacles: %w", err)
	}
	return model.Layout{
		LayoutID:    record.ID,
		Name:        record.Name,
		GridSize:    int32(record.GridSize),
		CollectionX: int32(record.CollectionPoint.X),
		CollectionY: int32(record.CollectionPoint.Y),
		Shelves:     shelves,
		Obstacles:   obstacles,
	}, nil
}

func fromLayoutRow(row model.Layout) (ports.LayoutRecord, error) {
	var shelves []picking.Shelf
	if len(row.Shelves) > 0 {
		if err := json.Unmarshal(row.Shelves, &shelves); err != nil {
			return ports.LayoutRecord{}, fmt.Errorf("decode shelves: %w", err)
		}
	}
	var obstacles []grid.Point
	if len(row.Obstacles) > 0 {
		if err := json.Unmarshal(row.Obstacles, &obstacles); err != nil {
			return ports.LayoutRecord{}, fmt.Errorf("decode obstacles: %w", err)
		}
	}
	return ports.LayoutRecord{
		ID:              row.LayoutID,
		Name:            row.Name,
		GridSize:        int(row.GridSize),
		CollectionPoint: grid.Point{X: int(row.CollectionX), Y: int(row.CollectionY)},
		Shelves:         shelves,
		Obstacles:       obstacles,
	}, nil
}
