package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warebot/internal/app/ports"
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"

	"github.com/google/uuid"
)

var (
	ErrInvalidLayout  = errors.New("invalid layout")
	ErrDuplicateShelf = errors.New("duplicate shelf id")
	ErrDuplicateItem  = errors.New("item stocked by more than one shelf")
	ErrReservedID     = errors.New("shelf id collides with a reserved location tag")
)

// UseCase handles warehouse layout CRUD. Every repository access runs
// inside TxManager: the memory adapter's repos rely on the transaction
// mutex for synchronization, so a bare Save would race concurrent reads.
type UseCase struct {
	TxManager ports.TxManager
	Layouts   ports.LayoutRepository
}

func (u UseCase) Create(ctx context.Context, req CreateRequest) (Layout, error) {
	record := ports.LayoutRecord{
		ID:              strings.TrimSpace(req.ID),
		Name:            strings.TrimSpace(req.Name),
		GridSize:        req.GridSize,
		CollectionPoint: req.CollectionPoint,
		Shelves:         req.Shelves,
		Obstacles:       req.Obstacles,
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if err := Validate(record); err != nil {
		return Layout{}, err
	}
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Layouts.Save(txCtx, record)
	})
	if err != nil {
		return Layout{}, err
	}
	return toLayout(record), nil
}

func (u UseCase) Get(ctx context.Context, id string) (Layout, error) {
	var record ports.LayoutRecord
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		record, err = u.Layouts.GetByID(txCtx, strings.TrimSpace(id))
		return err
	})
	if err != nil {
		return Layout{}, err
	}
	return toLayout(record), nil
}

func (u UseCase) List(ctx context.Context) ([]Layout, error) {
	var records []ports.LayoutRecord
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		records, err = u.Layouts.List(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]Layout, 0, len(records))
	for _, record := range records {
		out = append(out, toLayout(record))
	}
	return out, nil
}

// Validate checks a layout is a well-formed planning floor: positive grid
// dimension, everything in bounds, no shelf sharing a cell with an
// obstacle, shelf IDs unique and distinct from the reserved location
// tags, and every item stocked by exactly one shelf.
func Validate(record ports.LayoutRecord) error {
	if record.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be positive", ErrInvalidLayout)
	}
	if !inBounds(record.CollectionPoint, record.GridSize) {
		return fmt.Errorf("%w: collection point out of bounds", ErrInvalidLayout)
	}
	obstacles := make(map[grid.Point]bool, len(record.Obstacles))
	for _, cell := range record.Obstacles {
		if !inBounds(cell, record.GridSize) {
			return fmt.Errorf("%w: obstacle %v out of bounds", ErrInvalidLayout, cell)
		}
		obstacles[cell] = true
	}
	if obstacles[record.CollectionPoint] {
		return fmt.Errorf("%w: collection point on an obstacle", ErrInvalidLayout)
	}

	shelfIDs := make(map[string]bool, len(record.Shelves))
	stockedBy := make(map[string]string)
	for _, shelf := range record.Shelves {
		if strings.TrimSpace(shelf.ID) == "" {
			return fmt.Errorf("%w: shelf with empty id", ErrInvalidLayout)
		}
		if shelf.ID == picking.LocationRobot || shelf.ID == picking.LocationCollectionPoint {
			return fmt.Errorf("%w: %s", ErrReservedID, shelf.ID)
		}
		if shelfIDs[shelf.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateShelf, shelf.ID)
		}
		shelfIDs[shelf.ID] = true
		if !inBounds(shelf.Position, record.GridSize) {
			return fmt.Errorf("%w: shelf %s out of bounds", ErrInvalidLayout, shelf.ID)
		}
		if obstacles[shelf.Position] {
			return fmt.Errorf("%w: shelf %s on an obstacle", ErrInvalidLayout, shelf.ID)
		}
		for _, item := range shelf.Items {
			if other, ok := stockedBy[item]; ok {
				return fmt.Errorf("%w: %s on %s and %s", ErrDuplicateItem, item, other, shelf.ID)
			}
			stockedBy[item] = shelf.ID
		}
	}
	return nil
}

func inBounds(p grid.Point, gridSize int) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

func toLayout(record ports.LayoutRecord) Layout {
	return Layout{
		ID:              record.ID,
		Name:            record.Name,
		GridSize:        record.GridSize,
		CollectionPoint: record.CollectionPoint,
		Shelves:         record.Shelves,
		Obstacles:       record.Obstacles,
	}
}
