package picking

import (
	"testing"

	"warebot/internal/domain/grid"
)

func TestEstimateChargesPerUndeliveredItem(t *testing.T) {
	p := openProblem("ItemA", "ItemB")
	s := State{
		RobotPos:      grid.Point{X: 0, Y: 0},
		ItemLocations: map[string]string{"ItemA": "S1", "ItemB": "S2"},
	}
	if got := Estimate(s, p); got != 2*DefaultItemPenalty {
		t.Fatalf("estimate %d, want %d", got, 2*DefaultItemPenalty)
	}

	s.ItemLocations["ItemB"] = LocationCollectionPoint
	if got := Estimate(s, p); got != DefaultItemPenalty {
		t.Fatalf("estimate %d, want %d", got, DefaultItemPenalty)
	}
}

func TestEstimateAddsDeliveryDistanceWhileHolding(t *testing.T) {
	p := openProblem("ItemA")
	s := State{
		RobotPos:      grid.Point{X: 1, Y: 4},
		Holding:       "ItemA",
		ItemLocations: map[string]string{"ItemA": LocationRobot},
	}
	want := DefaultItemPenalty + grid.Manhattan(s.RobotPos, p.CollectionPoint)
	if got := Estimate(s, p); got != want {
		t.Fatalf("estimate %d, want %d", got, want)
	}
}

func TestEstimatePrunesUnreachableDelivery(t *testing.T) {
	p := openProblem("ItemA")
	p.Obstacles = map[grid.Point]bool{
		{X: 1, Y: 0}: true,
		{X: 0, Y: 1}: true,
		{X: 1, Y: 1}: true,
	}
	s := State{
		RobotPos:      grid.Point{X: 5, Y: 5},
		Holding:       "ItemA",
		ItemLocations: map[string]string{"ItemA": LocationRobot},
	}
	if got := Estimate(s, p); got < unreachableCost {
		t.Fatalf("estimate %d should prune the branch", got)
	}
}
