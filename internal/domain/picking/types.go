package picking

import "warebot/internal/domain/grid"

// Location tags an item can carry besides a shelf identifier.
const (
	LocationRobot           = "robot"
	LocationCollectionPoint = "collectionPoint"
)

type Shelf struct {
	ID       string     `json:"id"`
	Items    []string   `json:"items"`
	Position grid.Point `json:"position"`
}

// Problem is one self-contained planning request. Shelves and obstacles
// are immutable for the duration of the call.
type Problem struct {
	Initial         State
	GoalItems       []string
	Shelves         []Shelf
	CollectionPoint grid.Point
	Obstacles       map[grid.Point]bool
	GridSize        int
	Tuning          Tuning
}
