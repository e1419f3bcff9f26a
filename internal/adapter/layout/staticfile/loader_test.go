package staticfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"warebot/internal/domain/grid"
)

const demoYAML = `id: demo-floor
name: Demo floor
grid_size: 8
collection_point: {x: 0, y: 0}
shelves:
  - id: S1
    items: [ItemA]
    position: {x: 1, y: 4}
  - id: S2
    items: [ItemB]
    position: {x: 4, y: 1}
obstacles:
  - {x: 3, y: 3}
  - {x: 4, y: 3}
`

func TestLoadAllParsesLayoutDocuments(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "demo.yaml"), []byte(demoYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Loader{Root: dir}.LoadAll()
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(records))
	}
	record := records[0]
	if record.ID != "demo-floor" || record.GridSize != 8 {
		t.Fatalf("unexpected layout header: %+v", record)
	}
	if len(record.Shelves) != 2 || record.Shelves[0].Position != (grid.Point{X: 1, Y: 4}) {
		t.Fatalf("unexpected shelves: %+v", record.Shelves)
	}
	if len(record.Obstacles) != 2 {
		t.Fatalf("unexpected obstacles: %+v", record.Obstacles)
	}
}

func TestLoadRejectsEscapingPaths(t *testing.T) {
	loader := Loader{Root: t.TempDir()}
	for _, name := range []string{"", "/etc/passwd", "../outside.yaml"} {
		if _, err := loader.Load(name); !errors.Is(err, ErrInvalidLayoutPath) {
			t.Fatalf("path %q: expected ErrInvalidLayoutPath, got %v", name, err)
		}
	}
}
