package gridmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/search"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input cells have no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridmap: point out of bounds")
	// ErrBadFactor indicates a scale factor below one.
	ErrBadFactor = errors.New("gridmap: scale factor must be at least 1")
	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("gridmap: unknown direction")
	// ErrBadCell indicates an unknown cell symbol or kind.
	ErrBadCell = errors.New("gridmap: unknown cell")
)

// Point references one cell by row and column.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the point as "row,col".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// step returns p moved one cell in direction d; the result may be out of bounds.
func (d Direction) step(p Point) Point {
	switch d {
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Left:
		p.Col--
	case Right:
		p.Col++
	}

	return p
}

// Kind tags the variant of a Cell.
type Kind int

const (
	// Invalid cells are never entered and have no outgoing edges.
	Invalid Kind = iota
	// Valid cells connect to all four orthogonal neighbors.
	Valid
	// OneWay cells cannot be left toward Direction.Opposite() and may
	// carry an extra teleport edge to Target.
	OneWay
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case OneWay:
		return "oneway"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Cell is one grid cell. The zero value is an Invalid cell.
// Cost is charged when leaving the cell, on every edge it yields.
type Cell[C search.Cost] struct {
	Kind      Kind
	Cost      C
	Direction Direction // OneWay only
	Target    *Point    // OneWay only; optional teleport destination
}

// InvalidCell returns an impassable cell.
func InvalidCell[C search.Cost]() Cell[C] { return Cell[C]{} }

// ValidCell returns a passable cell with the given cost.
func ValidCell[C search.Cost](cost C) Cell[C] {
	return Cell[C]{Kind: Valid, Cost: cost}
}

// OneWayCell returns a directional cell. target may be nil.
func OneWayCell[C search.Cost](cost C, dir Direction, target *Point) Cell[C] {
	if target != nil {
		t := *target
		target = &t
	}

	return Cell[C]{Kind: OneWay, Cost: cost, Direction: dir, Target: target}
}

// clone returns c with its own copy of Target.
func (c Cell[C]) clone() Cell[C] {
	if c.Target != nil {
		t := *c.Target
		c.Target = &t
	}

	return c
}

// Equal reports whether two cells describe the same variant and payload.
func (c Cell[C]) Equal(o Cell[C]) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case Invalid:
		return true
	case Valid:
		return c.Cost == o.Cost
	}
	if c.Cost != o.Cost || c.Direction != o.Direction {
		return false
	}
	if c.Target == nil || o.Target == nil {
		return c.Target == o.Target
	}

	return *c.Target == *o.Target
}
