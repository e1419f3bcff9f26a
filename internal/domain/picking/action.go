package picking

import "warebot/internal/domain/grid"

type ActionType string

const (
	ActionMove ActionType = "move"
	ActionPick ActionType = "pick"
	ActionDrop ActionType = "drop"
)

// Action is a tagged variant. Move carries its full cell-by-cell path so
// a consumer can animate intermediate steps without recomputing anything;
// Pick carries the item and its shelf; Drop carries the item.
type Action struct {
	Type    ActionType   `json:"type"`
	From    grid.Point   `json:"from,omitempty"`
	To      grid.Point   `json:"to,omitempty"`
	Path    []grid.Point `json:"path,omitempty"`
	Item    string       `json:"item,omitempty"`
	ShelfID string       `json:"shelf_id,omitempty"`
}

// Cost is the number of grid edges traversed for a move, 1 otherwise.
func (a Action) Cost() int {
	if a.Type == ActionMove {
		return len(a.Path) - 1
	}
	return 1
}
