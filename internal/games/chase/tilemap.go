package chase

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tile values used by the bundled map.
const (
	TileFloor = 0
	TileWall  = 1
	TileExit  = 2
)

//go:embed maps/default.map
var defaultMap []byte

// ErrEmptyMap is returned when a map has no rows.
var ErrEmptyMap = errors.New("chase: empty map")

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Step returns the point one tile away in the direction (dx, dy).
func (p Point) Step(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// TileMap is a rectangular grid of integer tiles.
type TileMap struct {
	W, H  int
	tiles []int // Row-major
}

// At returns the tile at p and whether p is on the map.
func (m *TileMap) At(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.tiles[p.Y*m.W+p.X], true
}

// InBounds returns true if p is on the map.
func (m *TileMap) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.W && p.Y >= 0 && p.Y < m.H
}

// Find returns every position holding the tile, in row-major order.
func (m *TileMap) Find(tile int) []Point {
	var found []Point
	for i, t := range m.tiles {
		if t == tile {
			found = append(found, Point{X: i % m.W, Y: i / m.W})
		}
	}
	return found
}

// newTileMap builds a map from rows, rejecting ragged input.
func newTileMap(rows [][]int) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	m := &TileMap{W: len(rows[0]), H: len(rows)}
	if m.W == 0 {
		return nil, ErrEmptyMap
	}
	m.tiles = make([]int, 0, m.W*m.H)
	for y, row := range rows {
		if len(row) != m.W {
			return nil, fmt.Errorf("chase: row %d has %d tiles, expected %d", y+1, len(row), m.W)
		}
		m.tiles = append(m.tiles, row...)
	}
	return m, nil
}

// ParseTileMap reads a text map: one row per line, tiles as whitespace
// separated integers. Blank lines are ignored.
func ParseTileMap(r io.Reader) (*TileMap, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("chase: line %d: bad tile %q", line, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("chase: reading map: %w", err)
	}
	return newTileMap(rows)
}

// yamlMap is the YAML map format.
type yamlMap struct {
	Name  string  `yaml:"name"`
	Tiles [][]int `yaml:"tiles"`
}

// ParseYAMLTileMap reads a map from a YAML document with a tiles matrix.
func ParseYAMLTileMap(data []byte) (*TileMap, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("chase: parsing yaml map: %w", err)
	}
	return newTileMap(ym.Tiles)
}

// LoadTileMap loads a map file, choosing the format by extension.
// An empty path returns the bundled map.
func LoadTileMap(path string) (*TileMap, error) {
	if path == "" {
		return DefaultTileMap()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chase: reading map %s: %w", path, err)
	}

	var m *TileMap
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAMLTileMap(data)
	default:
		m, err = ParseTileMap(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DefaultTileMap returns the bundled 15x15 map.
func DefaultTileMap() (*TileMap, error) {
	return ParseTileMap(bytes.NewReader(defaultMap))
}

// Rules gives tiles their meaning.
type Rules struct {
	free map[int]bool
	exit int
}

// NewRules creates tile rules from the free tile list and the exit tile.
func NewRules(free []int, exit int) Rules {
	r := Rules{free: make(map[int]bool, len(free)), exit: exit}
	for _, t := range free {
		r.free[t] = true
	}
	return r
}

// Walkable reports whether the hero may stand on the tile.
func (r Rules) Walkable(tile int) bool {
	return r.free[tile]
}

// Exit reports whether the tile is the exit.
func (r Rules) Exit(tile int) bool {
	return tile == r.exit
}

// Patrollable reports whether the enemy may enter the tile.
// The enemy never steps onto the exit.
func (r Rules) Patrollable(tile int) bool {
	return r.free[tile] && tile != r.exit
}
