package staticfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"warebot/internal/app/ports"
	"warebot/internal/domain/grid"
	"warebot/internal/domain/picking"

	"gopkg.in/yaml.v3"
)

// Loader reads warehouse layout documents from YAML files under Root,
// typically to seed the layout repository at startup.
type Loader struct {
	Root string
}

type layoutDoc struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	GridSize        int        `yaml:"grid_size"`
	CollectionPoint pointDoc   `yaml:"collection_point"`
	Shelves         []shelfDoc `yaml:"shelves"`
	Obstacles       []pointDoc `yaml:"obstacles"`
}

type shelfDoc struct {
	ID       string   `yaml:"id"`
	Items    []string `yaml:"items"`
	Position pointDoc `yaml:"position"`
}

type pointDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

var ErrInvalidLayoutPath = errors.New("invalid layout filepath")

func (l Loader) LoadAll() ([]ports.LayoutRecord, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}
	out := []ports.LayoutRecord{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		record, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (l Loader) Load(name string) (ports.LayoutRecord, error) {
	path, err := secureJoin(l.Root, name)
	if err != nil {
		return ports.LayoutRecord{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.LayoutRecord{}, err
	}
	var doc layoutDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("decode layout %s: %w", name, err)
	}
	return toRecord(doc), nil
}

func toRecord(doc layoutDoc) ports.LayoutRecord {
	shelves := make([]picking.Shelf, 0, len(doc.Shelves))
	for _, s := range doc.Shelves {
		shelves = append(shelves, picking.Shelf{
			ID:       s.ID,
			Items:    s.Items,
			Position: grid.Point{X: s.Position.X, Y: s.Position.Y},
		})
	}
	obstacles := make([]grid.Point, 0, len(doc.Obstacles))
	for _, p := range doc.Obstacles {
		obstacles = append(obstacles, grid.Point{X: p.X, Y: p.Y})
	}
	return ports.LayoutRecord{
		ID:              doc.ID,
		Name:            doc.Name,
		GridSize:        doc.GridSize,
		CollectionPoint: grid.Point{X: doc.CollectionPoint.X, Y: doc.CollectionPoint.Y},
		Shelves:         shelves,
		Obstacles:       obstacles,
	}
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", ErrInvalidLayoutPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrInvalidLayoutPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if target != rootAbs && !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidLayoutPath
	}
	return target, nil
}
