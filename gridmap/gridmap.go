// Package gridmap provides a rectangular grid of cells that satisfies
// search.Map. It supports:
//
//   - Invalid, Valid and OneWay cells (one-way cells may teleport)
//   - Per-node scratch storage sized to the grid (CellStorage)
//   - Resizing and nearest-neighbor upscaling
//   - Text and JSON codecs, and spatial snapping to traversable cells
package gridmap

import (
	"iter"

	"github.com/katalvlaran/pathfind/search"
)

// moveOrder is the order in which orthogonal neighbors are generated.
var moveOrder = [4]Direction{Up, Left, Down, Right}

// GridMap is a rows × columns array of cells addressed by Point.
// Teleport targets are treated as immutable once stored.
type GridMap[C search.Cost] struct {
	rows, columns int
	cells         [][]Cell[C]
}

var _ search.Map[Point, int] = (*GridMap[int])(nil)

// New returns a grid in which every cell is Valid with defaultCost.
// Non-positive dimensions yield an empty grid.
// Complexity: O(rows×columns).
func New[C search.Cost](rows, columns int, defaultCost C) *GridMap[C] {
	rows, columns = max(rows, 0), max(columns, 0)
	cells := makeCells[C](rows, columns)
	for r := range cells {
		for c := range cells[r] {
			cells[r][c] = ValidCell(defaultCost)
		}
	}

	return &GridMap[C]{rows: rows, columns: columns, cells: cells}
}

// FromCells builds a grid from a non-empty, rectangular 2D slice, deep-copying
// it, teleport targets included.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func FromCells[C search.Cost](cells [][]Cell[C]) (*GridMap[C], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	out := makeCells[C](h, w)
	for r, row := range cells {
		for c, cell := range row {
			out[r][c] = cell.clone()
		}
	}

	return &GridMap[C]{rows: h, columns: w, cells: out}, nil
}

func makeCells[C search.Cost](rows, columns int) [][]Cell[C] {
	cells := make([][]Cell[C], rows)
	for r := range cells {
		cells[r] = make([]Cell[C], columns)
	}

	return cells
}

// Rows returns the number of rows.
func (g *GridMap[C]) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *GridMap[C]) Columns() int { return g.columns }

// IsValid reports whether p lies inside the grid. The cell may be Invalid.
func (g *GridMap[C]) IsValid(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.columns
}

// At returns a copy of the cell at p, or ErrOutOfBounds.
func (g *GridMap[C]) At(p Point) (Cell[C], error) {
	if !g.IsValid(p) {
		return Cell[C]{}, ErrOutOfBounds
	}

	return g.cells[p.Row][p.Col].clone(), nil
}

// Set stores a copy of cell at p, or returns ErrOutOfBounds.
func (g *GridMap[C]) Set(p Point, cell Cell[C]) error {
	if !g.IsValid(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col] = cell.clone()

	return nil
}

// traversable reports whether p is inside the grid and not Invalid.
func (g *GridMap[C]) traversable(p Point) bool {
	return g.IsValid(p) && g.cells[p.Row][p.Col].Kind != Invalid
}

// NeighborsOf yields the cells reachable from p with the cost of p itself.
//
//   - Invalid: nothing.
//   - Valid: up, left, down, right when in bounds.
//   - OneWay: the same, except the move toward Direction.Opposite(), then
//     the teleport Target if any.
//
// Destinations that are Invalid (or outside the grid) are skipped.
// p must be inside the grid.
func (g *GridMap[C]) NeighborsOf(p Point) iter.Seq2[Point, C] {
	return func(yield func(Point, C) bool) {
		cell := g.cells[p.Row][p.Col]
		if cell.Kind == Invalid {
			return
		}
		blocked, oneWay := cell.Direction.Opposite(), cell.Kind == OneWay
		for _, d := range moveOrder {
			if oneWay && d == blocked {
				continue
			}
			q := d.step(p)
			if !g.traversable(q) {
				continue
			}
			if !yield(q, cell.Cost) {
				return
			}
		}
		if oneWay && cell.Target != nil && g.traversable(*cell.Target) {
			yield(*cell.Target, cell.Cost)
		}
	}
}

// Resize changes the grid to columns × rows, keeping the overlapping region.
// Newly exposed cells are Invalid.
// Complexity: O(rows×columns).
func (g *GridMap[C]) Resize(columns, rows int) {
	rows, columns = max(rows, 0), max(columns, 0)
	cells := makeCells[C](rows, columns)
	for r := 0; r < min(g.rows, rows); r++ {
		copy(cells[r], g.cells[r][:min(g.columns, columns)])
	}
	g.rows, g.columns, g.cells = rows, columns, cells
}

// ScaleUp turns every cell into a factor × factor block of identical cells.
// Teleport targets are copied unchanged.
// Complexity: O(rows×columns×factor²).
func (g *GridMap[C]) ScaleUp(factor int) error {
	if factor < 1 {
		return ErrBadFactor
	}
	cells := makeCells[C](g.rows*factor, g.columns*factor)
	for r := range cells {
		src := g.cells[r/factor]
		for c := range cells[r] {
			cells[r][c] = src[c/factor]
		}
	}
	g.rows *= factor
	g.columns *= factor
	g.cells = cells

	return nil
}

// NewFinder allocates visited storage for g and returns a finder from
// start to goal under natural cost ordering.
// Returns ErrOutOfBounds if either endpoint lies outside the grid.
func NewFinder[C search.Cost](
	g *GridMap[C],
	start, goal Point,
	opts ...search.Option[Point, C],
) (*search.PathFinder[Point, C, *CellStorage[search.Visited[Point, C]]], error) {
	if !g.IsValid(start) || !g.IsValid(goal) {
		return nil, ErrOutOfBounds
	}
	visited := NewStorage[search.Visited[Point, C]](g)

	return search.New(start, goal, visited, search.Comparator[C](search.Natural[C]{}), opts...), nil
}
