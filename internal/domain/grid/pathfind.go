// Package grid implements shortest-path search on a square 4-connected
// grid with blocked cells. It is pure: every call owns its frontier and
// score maps, so concurrent calls need no locking.
package grid

import "container/heap"

var neighborOffsets = [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// FindPath runs A* from start to goal over a gridSize×gridSize grid and
// returns the cells of a shortest path in traversal order, including both
// endpoints. It returns [start] when start == goal and nil when the goal
// is unreachable.
//
// The start cell is enqueued unconditionally; obstacle membership is only
// checked when expanding neighbors. A start inside the obstacle set is
// therefore still treated as legally occupied.
func FindPath(start, goal Point, obstacles map[Point]bool, gridSize int) []Point {
	openSet := make(priorityQueue, 0)
	heap.Init(&openSet)

	startItem := &queueItem{cell: start, gScore: 0, fScore: Manhattan(start, goal)}
	heap.Push(&openSet, startItem)

	openByCell := map[Point]*queueItem{start: startItem}
	gScore := map[Point]int{start: 0}
	cameFrom := make(map[Point]Point)
	closed := make(map[Point]bool)

	for openSet.Len() > 0 {
		current := heap.Pop(&openSet).(*queueItem)
		delete(openByCell, current.cell)
		if closed[current.cell] {
			continue
		}
		closed[current.cell] = true

		if current.cell == goal {
			return reconstructPath(cameFrom, goal, start)
		}

		for _, offset := range neighborOffsets {
			next := Point{X: current.cell.X + offset.X, Y: current.cell.Y + offset.Y}
			if next.X < 0 || next.X >= gridSize || next.Y < 0 || next.Y >= gridSize {
				continue
			}
			if obstacles[next] || closed[next] {
				continue
			}
			tentativeG := current.gScore + 1
			if known, ok := gScore[next]; ok && tentativeG >= known {
				continue
			}
			gScore[next] = tentativeG
			cameFrom[next] = current.cell
			f := tentativeG + Manhattan(next, goal)
			if item, inOpen := openByCell[next]; inOpen {
				item.gScore = tentativeG
				item.fScore = f
				heap.Fix(&openSet, item.queueIndex)
			} else {
				item = &queueItem{cell: next, gScore: tentativeG, fScore: f}
				heap.Push(&openSet, item)
				openByCell[next] = item
			}
		}
	}

	return nil
}

func reconstructPath(cameFrom map[Point]Point, current, start Point) []Point {
	path := []Point{current}
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
