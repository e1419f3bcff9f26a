package grid

import "testing"

func TestFindPathOpenGridMatchesManhattan(t *testing.T) {
	cases := []struct {
		start, goal Point
	}{
		{Point{X: 0, Y: 0}, Point{X: 7, Y: 7}},
		{Point{X: 3, Y: 1}, Point{X: 1, Y: 6}},
		{Point{X: 5, Y: 5}, Point{X: 0, Y: 2}},
		{Point{X: 7, Y: 0}, Point{X: 0, Y: 7}},
	}
	for _, tc := range cases {
		path := FindPath(tc.start, tc.goal, nil, 8)
		if path == nil {
			t.Fatalf("expected path from %v to %v", tc.start, tc.goal)
		}
		if got, want := len(path)-1, Manhattan(tc.start, tc.goal); got != want {
			t.Fatalf("path %v->%v: cost %d, want %d", tc.start, tc.goal, got, want)
		}
		if path[0] != tc.start || path[len(path)-1] != tc.goal {
			t.Fatalf("path %v does not run start to goal", path)
		}
	}
}

func TestFindPathIsContiguousAndAvoidsObstacles(t *testing.T) {
	obstacles := map[Point]bool{
		{X: 3, Y: 3}: true,
		{X: 4, Y: 3}: true,
		{X: 5, Y: 3}: true,
		{X: 3, Y: 4}: true,
		{X: 3, Y: 5}: true,
	}
	path := FindPath(Point{X: 0, Y: 0}, Point{X: 6, Y: 5}, obstacles, 8)
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	for i := 1; i < len(path); i++ {
		if Manhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("step %d: %v -> %v is not a unit move", i, path[i-1], path[i])
		}
		if obstacles[path[i]] {
			t.Fatalf("path crosses obstacle at %v", path[i])
		}
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	start := Point{X: 2, Y: 2}
	path := FindPath(start, start, nil, 8)
	if len(path) != 1 || path[0] != start {
		t.Fatalf("expected single-cell path, got %v", path)
	}
}

func TestFindPathUnreachableGoal(t *testing.T) {
	// Goal boxed in on all four sides.
	obstacles := map[Point]bool{
		{X: 4, Y: 3}: true,
		{X: 4, Y: 5}: true,
		{X: 3, Y: 4}: true,
		{X: 5, Y: 4}: true,
	}
	if path := FindPath(Point{X: 0, Y: 0}, Point{X: 4, Y: 4}, obstacles, 8); path != nil {
		t.Fatalf("expected no path, got %v", path)
	}
}

func TestFindPathStartInsideObstacleSetStillTraversable(t *testing.T) {
	// Only neighbor expansion filters obstacles, so an obstructed start
	// cell is still a legal origin.
	obstacles := map[Point]bool{{X: 0, Y: 0}: true}
	path := FindPath(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, obstacles, 8)
	if path == nil {
		t.Fatal("expected path from obstructed start cell")
	}
	if len(path)-1 != 2 {
		t.Fatalf("expected cost 2, got %d", len(path)-1)
	}
}

func TestFindPathRejectsOutOfBoundsNeighbors(t *testing.T) {
	path := FindPath(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, nil, 2)
	if len(path) != 2 {
		t.Fatalf("expected two-cell path on 2x2 grid, got %v", path)
	}
}
