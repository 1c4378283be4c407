package gridmap

import (
	"github.com/tidwall/rtree"

	"github.com/katalvlaran/pathfind/search"
)

// Snapper finds the traversable cell nearest to a continuous position.
// Cell (row, col) covers the square [col, col+1) × [row, row+1) with x
// growing along columns and y along rows, the layout a canvas uses.
// A Snapper is a snapshot: later edits to the grid are not reflected.
type Snapper struct {
	tree rtree.RTreeG[Point]
}

// NewSnapper indexes every non-Invalid cell of g.
// Complexity: O(W·H·log(W·H)).
func NewSnapper[C search.Cost](g *GridMap[C]) *Snapper {
	s := &Snapper{}
	for r, row := range g.cells {
		for c, cell := range row {
			if cell.Kind == Invalid {
				continue
			}
			s.tree.Insert(
				[2]float64{float64(c), float64(r)},
				[2]float64{float64(c + 1), float64(r + 1)},
				Point{Row: r, Col: c},
			)
		}
	}

	return s
}

// Len returns the number of indexed cells.
func (s *Snapper) Len() int { return s.tree.Len() }

// Snap returns the traversable cell closest to (x, y), measured to the
// cell's square. ok is false when the grid has no traversable cell.
func (s *Snapper) Snap(x, y float64) (p Point, ok bool) {
	target := [2]float64{x, y}
	s.tree.Nearby(
		rtree.BoxDist[float64, Point](target, target, nil),
		func(_, _ [2]float64, data Point, _ float64) bool {
			p, ok = data, true
			return false
		},
	)

	return p, ok
}

// SnapWithin is Snap limited to cells whose squared distance to (x, y)
// is at most maxDist².
func (s *Snapper) SnapWithin(x, y, maxDist float64) (p Point, ok bool) {
	target := [2]float64{x, y}
	s.tree.Nearby(
		rtree.BoxDist[float64, Point](target, target, nil),
		func(_, _ [2]float64, data Point, dist float64) bool {
			if dist <= maxDist*maxDist {
				p, ok = data, true
			}
			return false
		},
	)

	return p, ok
}
