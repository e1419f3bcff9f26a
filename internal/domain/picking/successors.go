package picking

import "warebot/internal/domain/grid"

// Successors generates the legal next actions from a state. The operator
// set is deliberately narrow: a loaded robot only ever heads for the
// collection point, an empty-handed robot only ever picks where it stands
// or moves to a shelf stocking a still-needed item. The task structure
// guarantees the best plan is always "fetch, deliver, repeat", and the
// restriction keeps the state space small enough for interactive use.
func Successors(s State, p Problem) []Action {
	needed := make(map[string]bool)
	for _, item := range p.GoalItems {
		loc := s.ItemLocations[item]
		if loc != LocationCollectionPoint && loc != LocationRobot {
			needed[item] = true
		}
	}

	if s.Holding != "" {
		path := grid.FindPath(s.RobotPos, p.CollectionPoint, p.Obstacles, p.GridSize)
		if path == nil {
			return nil
		}
		if len(path) > 1 {
			return []Action{{
				Type: ActionMove,
				From: s.RobotPos,
				To:   p.CollectionPoint,
				Path: path,
			}}
		}
		return []Action{{Type: ActionDrop, Item: s.Holding}}
	}

	var actions []Action
	for _, shelf := range p.Shelves {
		if shelf.Position != s.RobotPos {
			continue
		}
		for _, item := range shelf.Items {
			if needed[item] {
				actions = append(actions, Action{Type: ActionPick, Item: item, ShelfID: shelf.ID})
				break
			}
		}
	}
	for _, shelf := range p.Shelves {
		if !stocksNeededItem(shelf, needed) {
			continue
		}
		path := grid.FindPath(s.RobotPos, shelf.Position, p.Obstacles, p.GridSize)
		if len(path) > 1 {
			actions = append(actions, Action{
				Type: ActionMove,
				From: s.RobotPos,
				To:   shelf.Position,
				Path: path,
			})
		}
	}
	return actions
}

func stocksNeededItem(shelf Shelf, needed map[string]bool) bool {
	for _, item := range shelf.Items {
		if needed[item] {
			return true
		}
	}
	return false
}
