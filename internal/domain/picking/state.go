package picking

import (
	"fmt"
	"sort"
	"strings"

	"warebot/internal/domain/grid"
)

// State is an immutable snapshot of the world: robot cell, the item in
// hand (empty when hand-free) and a location tag per item. Location tags
// are a shelf ID, LocationRobot or LocationCollectionPoint. At most one
// item is tagged LocationRobot, and exactly when Holding names it.
type State struct {
	RobotPos      grid.Point
	Holding       string
	ItemLocations map[string]string
}

// Key derives the canonical lookup key: robot cell, held item, then item
// locations sorted by item identifier so that map insertion order never
// leaks into the encoding.
func (s State) Key() string {
	items := make([]string, 0, len(s.ItemLocations))
	for item := range s.ItemLocations {
		items = append(items, item)
	}
	sort.Strings(items)

	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d|%s", s.RobotPos.X, s.RobotPos.Y, s.Holding)
	for _, item := range items {
		fmt.Fprintf(&b, "|%s=%s", item, s.ItemLocations[item])
	}
	return b.String()
}

// IsGoal reports whether every goal item sits at the collection point.
func (s State) IsGoal(goalItems []string) bool {
	for _, item := range goalItems {
		if s.ItemLocations[item] != LocationCollectionPoint {
			return false
		}
	}
	return true
}

// Apply returns the state an action transitions to. It performs no
// precondition checks: only actions produced by Successors are ever
// applied.
func (s State) Apply(a Action) State {
	next := State{
		RobotPos:      s.RobotPos,
		Holding:       s.Holding,
		ItemLocations: cloneLocations(s.ItemLocations),
	}
	switch a.Type {
	case ActionMove:
		next.RobotPos = a.To
	case ActionPick:
		next.Holding = a.Item
		next.ItemLocations[a.Item] = LocationRobot
	case ActionDrop:
		next.ItemLocations[a.Item] = LocationCollectionPoint
		next.Holding = ""
	}
	return next
}

func cloneLocations(locations map[string]string) map[string]string {
	out := make(map[string]string, len(locations))
	for item, loc := range locations {
		out[item] = loc
	}
	return out
}
