// Package regionstore resolves region identifiers to their GeoJSON
// geometries. The identifier set is fixed at startup by scanning the polygon
// directory; one file per region, "lake-a.json" -> "lake-a".
package regionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrNotFound = errors.New("region not found")

// MalformedError reports a geometry file that exists but cannot be parsed.
type MalformedError struct {
	ID  string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed geometry for region %q: %v", e.ID, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Geometry is a GeoJSON feature or geometry object, kept raw: the service
// never interprets coordinates, it only forwards them to the analytics
// service.
type Geometry struct {
	Raw json.RawMessage
}

type Store struct {
	dir   string
	ids   map[string]struct{}
	order []string
	geoms *lru.Cache[string, Geometry]
}

// New scans dir once and fixes the identifier set for the process lifetime.
// An unreadable directory is a startup failure.
func New(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read polygon dir %q: %w", dir, err)
	}

	ids := make(map[string]struct{})
	var order []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		ids[id] = struct{}{}
		order = append(order, id)
	}
	sort.Strings(order)

	size := len(order)
	if size == 0 {
		size = 1
	}
	geoms, err := lru.New[string, Geometry](size)
	if err != nil {
		return nil, fmt.Errorf("geometry cache: %w", err)
	}

	return &Store{dir: dir, ids: ids, order: order, geoms: geoms}, nil
}

// IDs returns all known region identifiers in sorted order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Store) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Geometry loads the region's geometry, reading the backing file at most
// once per identifier.
func (s *Store) Geometry(id string) (Geometry, error) {
	if !s.Contains(id) {
		return Geometry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if g, ok := s.geoms.Get(id); ok {
		return g, nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return Geometry{}, fmt.Errorf("read geometry %q: %w", id, err)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Geometry{}, &MalformedError{ID: id, Err: err}
	}
	if probe.Type == "" {
		return Geometry{}, &MalformedError{ID: id, Err: errors.New(`missing GeoJSON "type"`)}
	}

	g := Geometry{Raw: json.RawMessage(raw)}
	s.geoms.Add(id, g)
	return g, nil
}
