package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathfind/search"
)

// Text grid symbols.
//
//	#  Invalid (X is accepted too)
//	.  Valid, cost 1
//	0-9 Valid with that cost
//	^ v < >  OneWay up/down/left/right, cost 1
//
// Teleporting one-way cells render as ↟ ↡ ↞ ↠ but cannot be parsed back;
// use the JSON codec to persist them.
var (
	arrows   = map[Direction]rune{Up: '^', Down: 'v', Left: '<', Right: '>'}
	teleArrs = map[Direction]rune{Up: '↟', Down: '↡', Left: '↞', Right: '↠'}
)

// symbol returns the display rune of a cell.
func symbol[C search.Cost](c Cell[C]) rune {
	switch c.Kind {
	case Invalid:
		return '#'
	case OneWay:
		if c.Target != nil {
			return teleArrs[c.Direction]
		}
		return arrows[c.Direction]
	}
	if c.Cost == 1 {
		return '.'
	}
	if c.Cost >= 0 && c.Cost <= 9 && c.Cost == C(int(c.Cost)) {
		return rune('0' + int(c.Cost))
	}

	return '*'
}

// String renders the grid one row per line using the text symbols.
func (g *GridMap[C]) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteRune(symbol(c))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// MaxLineBytes bounds the length of one text row.
const MaxLineBytes = 16 << 20

// ParseText reads a grid in the text format. Trailing blank lines are ignored;
// every other line is a row and all rows must have the same rune length.
// Rows longer than MaxLineBytes fail with bufio.ErrTooLong.
func ParseText(r io.Reader) (*GridMap[int], error) {
	var cells [][]Cell[int]
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineBytes)
	pendingBlank := 0
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pendingBlank++
			continue
		}
		if pendingBlank > 0 && len(cells) > 0 {
			return nil, fmt.Errorf("%w: blank line inside grid before line %d", ErrNonRectangular, line)
		}
		pendingBlank = 0

		row := make([]Cell[int], 0, len(text))
		for col, ch := range []rune(text) {
			c, err := parseSymbol(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at line %d column %d", err, line, col+1)
			}
			row = append(row, c)
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: reading text grid: %w", err)
	}

	return FromCells(cells)
}

func parseSymbol(ch rune) (Cell[int], error) {
	switch {
	case ch == '#' || ch == 'X':
		return InvalidCell[int](), nil
	case ch == '.':
		return ValidCell(1), nil
	case ch >= '0' && ch <= '9':
		return ValidCell(int(ch - '0')), nil
	}
	for d, a := range arrows {
		if a == ch {
			return OneWayCell(1, d, nil), nil
		}
	}

	return Cell[int]{}, fmt.Errorf("%w: symbol %q", ErrBadCell, ch)
}
