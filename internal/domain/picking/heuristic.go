package picking

import "warebot/internal/domain/grid"

// Estimate is the cost-to-go guess driving the planner: a flat per-item
// penalty for every goal item not yet delivered, plus the real shortest
// walking distance to the collection point while carrying. The per-item
// penalty overestimates on purpose (see Tuning), so this is not an
// admissible A* heuristic.
func Estimate(s State, p Problem) int {
	remaining := 0
	for _, item := range p.GoalItems {
		if s.ItemLocations[item] != LocationCollectionPoint {
			remaining++
		}
	}
	cost := p.Tuning.ItemPenalty * remaining

	if s.Holding != "" {
		path := grid.FindPath(s.RobotPos, p.CollectionPoint, p.Obstacles, p.GridSize)
		if path == nil {
			return unreachableCost
		}
		cost += len(path) - 1
	}
	return cost
}
