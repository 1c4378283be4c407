package gridmap

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/pathfind/search"
)

type cellJSON[C search.Cost] struct {
	Kind      string `json:"kind"`
	Cost      C      `json:"cost,omitempty"`
	Direction string `json:"direction,omitempty"`
	Target    *Point `json:"target,omitempty"`
}

// MarshalJSON encodes the cell as {"kind", "cost", "direction", "target"},
// omitting fields the kind does not use.
func (c Cell[C]) MarshalJSON() ([]byte, error) {
	out := cellJSON[C]{Kind: c.Kind.String()}
	switch c.Kind {
	case Invalid:
	case Valid:
		out.Cost = c.Cost
	case OneWay:
		out.Cost = c.Cost
		out.Direction = c.Direction.String()
		out.Target = c.Target
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadCell, c.Kind)
	}

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell[C]) UnmarshalJSON(data []byte) error {
	var in cellJSON[C]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "invalid":
		*c = InvalidCell[C]()
	case "valid":
		*c = ValidCell(in.Cost)
	case "oneway":
		d, err := ParseDirection(in.Direction)
		if err != nil {
			return err
		}
		*c = OneWayCell(in.Cost, d, in.Target)
	default:
		return fmt.Errorf("%w: kind %q", ErrBadCell, in.Kind)
	}

	return nil
}

type gridJSON[C search.Cost] struct {
	Rows    int         `json:"rows"`
	Columns int         `json:"columns"`
	Cells   [][]Cell[C] `json:"cells"`
}

// MarshalJSON encodes the grid with its dimensions and row-major cells.
func (g *GridMap[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON[C]{Rows: g.rows, Columns: g.columns, Cells: g.cells})
}

// UnmarshalJSON decodes a grid and checks that the cells match the
// declared dimensions.
func (g *GridMap[C]) UnmarshalJSON(data []byte) error {
	var in gridJSON[C]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	decoded, err := FromCells(in.Cells)
	if err != nil {
		return err
	}
	if decoded.rows != in.Rows || decoded.columns != in.Columns {
		return fmt.Errorf("%w: header says %dx%d, cells are %dx%d",
			ErrNonRectangular, in.Rows, in.Columns, decoded.rows, decoded.columns)
	}
	*g = *decoded

	return nil
}
