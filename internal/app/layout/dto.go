package layout

import (
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"
)

type CreateRequest struct {
	ID              string
	Name            string
	GridSize        int
	CollectionPoint grid.Point
	Shelves         []picking.Shelf
	Obstacles       []grid.Point
}

type Layout struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	GridSize        int             `json:"grid_size"`
	CollectionPoint grid.Point      `json:"collection_point"`
	Shelves         []picking.Shelf `json:"shelves"`
	Obstacles       []grid.Point    `json:"obstacles"`
}
