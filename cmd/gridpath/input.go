package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pathfind/gridmap"
)

var errNoOpenCell = errors.New("gridpath: no open cell to snap to")

// loadGrid reads a text grid, or a JSON grid for *.json files.
func loadGrid(name string) (*gridmap.GridMap[int], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(name), ".json") {
		var g gridmap.GridMap[int]
		if err := json.NewDecoder(f).Decode(&g); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &g, nil
	}

	g, err := gridmap.ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}

// endpoints resolves -from and -to against the (possibly scaled) grid.
// Cell coordinates refer to the unscaled grid and are scaled along; snap
// coordinates are taken in the grid as searched.
func endpoints(g *gridmap.GridMap[int], cfg config) (start, goal gridmap.Point, err error) {
	if !cfg.snap {
		if start, err = parsePoint(cfg.from); err != nil {
			return start, goal, err
		}
		if goal, err = parsePoint(cfg.to); err != nil {
			return start, goal, err
		}
		k := max(cfg.scale, 1)
		start = gridmap.Point{Row: start.Row * k, Col: start.Col * k}
		goal = gridmap.Point{Row: goal.Row * k, Col: goal.Col * k}
		return start, goal, nil
	}

	s := gridmap.NewSnapper(g)
	for i, raw := range []string{cfg.from, cfg.to} {
		var x, y float64
		if _, err := fmt.Sscanf(raw, "%g,%g", &x, &y); err != nil {
			return start, goal, fmt.Errorf("bad coordinate %q (expected x,y): %w", raw, err)
		}
		p, ok := s.Snap(x, y)
		if !ok {
			return start, goal, errNoOpenCell
		}
		if i == 0 {
			start = p
		} else {
			goal = p
		}
	}

	return start, goal, nil
}

// parsePoint parses "row,col".
func parsePoint(s string) (gridmap.Point, error) {
	var p gridmap.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.Row, &p.Col); err != nil {
		return p, fmt.Errorf("bad cell %q (expected row,col): %w", s, err)
	}

	return p, nil
}
