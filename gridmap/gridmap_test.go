// File: gridmap/gridmap_test.go
package gridmap

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// basicMap is a 7×7 grid with a corridor from (1,1) down, across row 5 and
// up to (1,5), a dead-end arm to the right of row 5 and an Invalid border.
//
//	#######
//	#.###.#
//	#.###.#
//	#.#...#
//	#.#.###
//	#......
//	#######
const basicMap = `#######
#.###.#
#.###.#
#.#...#
#.#.###
#......
#######
`

func mustParse(t testing.TB, text string) *GridMap[int] {
	t.Helper()
	g, err := ParseText(strings.NewReader(text))
	require.NoError(t, err)

	return g
}

// neighbors collects NeighborsOf into a map from point to edge cost.
func neighbors(g *GridMap[int], p Point) map[Point]int {
	out := map[Point]int{}
	for q, c := range g.NeighborsOf(p) {
		out[q] = c
	}

	return out
}

func TestFromCells_Validation(t *testing.T) {
	_, err := FromCells[int](nil)
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = FromCells([][]Cell[int]{{}})
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = FromCells([][]Cell[int]{{ValidCell(1)}, {ValidCell(1), ValidCell(1)}})
	require.ErrorIs(t, err, ErrNonRectangular)
}

func TestFromCells_DeepCopy(t *testing.T) {
	in := [][]Cell[int]{{ValidCell(1), ValidCell(2)}}
	g, err := FromCells(in)
	require.NoError(t, err)

	in[0][0] = InvalidCell[int]()
	c, err := g.At(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Valid, c.Kind, "grid must not alias the input slice")
}

func TestFromCells_CopiesTeleportTargets(t *testing.T) {
	in := [][]Cell[int]{{OneWayCell(1, Right, &Point{0, 1}), ValidCell(1)}}
	g, err := FromCells(in)
	require.NoError(t, err)

	in[0][0].Target.Col = 0
	c, err := g.At(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Point{0, 1}, *c.Target)
}

func TestSetAt_CopiesTeleportTargets(t *testing.T) {
	g := New(2, 2, 1)
	cell := OneWayCell(1, Down, &Point{1, 1})
	require.NoError(t, g.Set(Point{0, 0}, cell))

	// Writes through the caller's cell or through an At result stay local.
	cell.Target.Row = 0
	got, err := g.At(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 1}, *got.Target)

	got.Target.Col = 0
	again, err := g.At(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 1}, *again.Target)
}

func TestNew_AllValid(t *testing.T) {
	g := New(2, 3, 5)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Columns())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			cell, err := g.At(Point{r, c})
			require.NoError(t, err)
			assert.True(t, cell.Equal(ValidCell(5)))
		}
	}
}

func TestAtSet_OutOfBounds(t *testing.T) {
	g := New(2, 2, 1)
	_, err := g.At(Point{2, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(Point{0, -1}, ValidCell(1)), ErrOutOfBounds)
	assert.False(t, g.IsValid(Point{-1, 0}))
	assert.True(t, g.IsValid(Point{1, 1}))
}

func TestNeighborsOf_Valid(t *testing.T) {
	g := New(3, 3, 2)
	require.NoError(t, g.Set(Point{0, 1}, InvalidCell[int]()))

	got := neighbors(g, Point{1, 1})
	want := map[Point]int{{1, 0}: 2, {2, 1}: 2, {1, 2}: 2}
	assert.Equal(t, want, got, "invalid destination (0,1) must be filtered")

	// Corner: only two in-bounds candidates.
	assert.Equal(t, map[Point]int{{1, 0}: 2}, neighbors(g, Point{0, 0}))
}

func TestNeighborsOf_Order(t *testing.T) {
	g := New(3, 3, 1)
	var got []Point
	for p := range g.NeighborsOf(Point{1, 1}) {
		got = append(got, p)
	}
	assert.Equal(t, []Point{{0, 1}, {1, 0}, {2, 1}, {1, 2}}, got)
}

func TestNeighborsOf_InvalidSource(t *testing.T) {
	g := New(3, 3, 1)
	require.NoError(t, g.Set(Point{1, 1}, InvalidCell[int]()))
	assert.Empty(t, neighbors(g, Point{1, 1}))
}

func TestNeighborsOf_EarlyStop(t *testing.T) {
	g := New(3, 3, 1)
	n := 0
	for range g.NeighborsOf(Point{1, 1}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestNeighborsOf_OneWayTeleport checks that a Right one-way cell never
// offers its left neighbor and does offer the teleport target at its cost.
func TestNeighborsOf_OneWayTeleport(t *testing.T) {
	g := New(5, 5, 1)
	target := Point{4, 4}
	require.NoError(t, g.Set(Point{2, 2}, OneWayCell(3, Right, &target)))

	got := neighbors(g, Point{2, 2})
	assert.NotContains(t, got, Point{2, 1}, "move toward the blocked side must be masked")
	assert.Equal(t, map[Point]int{{1, 2}: 3, {3, 2}: 3, {2, 3}: 3, {4, 4}: 3}, got)
}

func TestNeighborsOf_OneWayAllDirections(t *testing.T) {
	center := Point{1, 1}
	blocked := map[Direction]Point{
		Up:    {2, 1},
		Down:  {0, 1},
		Left:  {1, 2},
		Right: {1, 0},
	}
	for d, p := range blocked {
		t.Run(d.String(), func(t *testing.T) {
			g := New(3, 3, 1)
			require.NoError(t, g.Set(center, OneWayCell(1, d, nil)))
			got := neighbors(g, center)
			assert.Len(t, got, 3)
			assert.NotContains(t, got, p)
		})
	}
}

func TestNeighborsOf_TeleportToInvalidOrOutside(t *testing.T) {
	g := New(3, 3, 1)
	wall := Point{0, 0}
	outside := Point{9, 9}
	require.NoError(t, g.Set(wall, InvalidCell[int]()))
	require.NoError(t, g.Set(Point{1, 1}, OneWayCell(1, Up, &wall)))
	require.NoError(t, g.Set(Point{2, 2}, OneWayCell(1, Up, &outside)))

	assert.NotContains(t, neighbors(g, Point{1, 1}), wall)
	assert.NotContains(t, neighbors(g, Point{2, 2}), outside)
}

func TestResize(t *testing.T) {
	g := mustParse(t, "23\n45\n")

	g.Resize(3, 1) // columns, rows
	assert.Equal(t, "23#\n", g.String())

	g.Resize(1, 2)
	assert.Equal(t, "2\n#\n", g.String())

	g.Resize(0, 0)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, "", g.String())
}

func TestScaleUp(t *testing.T) {
	g := mustParse(t, "3#\n>2\n")
	require.NoError(t, g.ScaleUp(2))
	assert.Equal(t, "33##\n33##\n>>22\n>>22\n", g.String())

	assert.ErrorIs(t, g.ScaleUp(0), ErrBadFactor)
	require.NoError(t, g.ScaleUp(1))
	assert.Equal(t, 4, g.Rows())
}

func TestStorage_ShapeAndAccess(t *testing.T) {
	g := New(2, 3, 1)
	s := NewStorage[int](g)
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Columns())
	assert.True(t, s.IsValid(Point{1, 2}))
	assert.False(t, s.IsValid(Point{2, 0}))
	assert.False(t, s.IsValid(Point{0, 3}))

	s.Set(Point{1, 2}, 7)
	assert.Equal(t, 7, s.Get(Point{1, 2}))
	assert.Equal(t, 0, s.Get(Point{0, 0}))
	assert.Equal(t, "000\n007\n", s.String())

	// Later resizes of the grid do not touch an existing storage.
	g.Resize(5, 5)
	assert.Equal(t, 3, s.Columns())
}

func TestDirection_RoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	_, err := ParseDirection("north")
	assert.ErrorIs(t, err, ErrBadDirection)
}

func TestCellEqual(t *testing.T) {
	a, b := Point{1, 1}, Point{1, 1}
	assert.True(t, OneWayCell(1, Up, &a).Equal(OneWayCell(1, Up, &b)))
	assert.False(t, OneWayCell(1, Up, &a).Equal(OneWayCell(1, Up, nil)))
	assert.False(t, ValidCell(1).Equal(ValidCell(2)))
	assert.True(t, InvalidCell[int]().Equal(Cell[int]{Cost: 4}))
}

func TestNeighbors_MapsHelperIsStable(t *testing.T) {
	g := mustParse(t, basicMap)
	first := neighbors(g, Point{3, 3})
	second := neighbors(g, Point{3, 3})
	assert.True(t, maps.Equal(first, second), "each call must produce a fresh, equal sequence")
}
