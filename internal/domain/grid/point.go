package grid

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan is the 4-connected walking distance between two cells on an
// open grid.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
