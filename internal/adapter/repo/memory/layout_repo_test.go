package memory

import (
	"context"
	"testing"

	"warebot/internal/app/ports"
)

func TestLayoutRepoListIsSortedByID(t *testing.T) {
	repo := NewLayoutRepo(NewStore())
	for _, id := range []string{"floor-c", "floor-a", "floor-b"} {
		if err := repo.Save(context.Background(), ports.LayoutRecord{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"floor-a", "floor-b", "floor-c"}
	if len(records) != len(want) {
		t.Fatalf("expected %d layouts, got %d", len(want), len(records))
	}
	for i, id := range want {
		if records[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, records[i].ID, id)
		}
	}
}
