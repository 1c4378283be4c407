package gridmap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfind/search"
)

// CellStorage is per-cell scratch memory shaped like the grid that made it.
// It stores rows contiguously in one slice.
type CellStorage[T any] struct {
	rows, columns int
	data          []T
}

// NewStorage allocates a storage matching g's current shape, every slot
// holding T's zero value. Later resizes of g do not affect it.
func NewStorage[T any, C search.Cost](g *GridMap[C]) *CellStorage[T] {
	return &CellStorage[T]{
		rows:    g.rows,
		columns: g.columns,
		data:    make([]T, g.rows*g.columns),
	}
}

// IsValid reports whether p addresses a slot of s.
func (s *CellStorage[T]) IsValid(p Point) bool {
	return p.Row >= 0 && p.Row < s.rows && p.Col >= 0 && p.Col < s.columns
}

// Get returns the slot at p. p must be valid.
func (s *CellStorage[T]) Get(p Point) T { return s.data[p.Row*s.columns+p.Col] }

// Set overwrites the slot at p. p must be valid.
func (s *CellStorage[T]) Set(p Point, v T) { s.data[p.Row*s.columns+p.Col] = v }

// Rows returns the number of rows.
func (s *CellStorage[T]) Rows() int { return s.rows }

// Columns returns the number of columns.
func (s *CellStorage[T]) Columns() int { return s.columns }

// String prints every slot with %v, one grid row per line. For visited
// storages this is a cost heat map.
func (s *CellStorage[T]) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		for _, v := range s.data[r*s.columns : (r+1)*s.columns] {
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

var _ search.Storage[Point, int] = (*CellStorage[int])(nil)
