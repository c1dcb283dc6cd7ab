package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadBoard is returned when board input has the wrong shape or invalid values.
var ErrBadBoard = errors.New("grid: invalid board")

// FromRows builds a grid from row-major values, 0 meaning empty.
// Every non-zero value must be a power of two of at least 2.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadBoard, Size, len(rows))
	}

	g := New()
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadBoard, y, len(row), Size)
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			if !validValue(v) {
				return nil, fmt.Errorf("%w: %d at (%d,%d) is not a tile value", ErrBadBoard, v, x, y)
			}
			g.InsertTile(NewTile(Position{X: x, Y: y}, v))
		}
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on invalid input. Intended for tests and fixtures.
func MustFromRows(rows [][]int) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseBoard parses Size*Size numbers in row-major order separated by spaces, commas or
// newlines, e.g. "2 2 0 0  0 0 0 0  0 0 0 0  0 0 0 4".
func ParseBoard(s string) (*Grid, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != Size*Size {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrBadBoard, Size*Size, len(fields))
	}

	rows := make([][]int, Size)
	for y := range Size {
		rows[y] = make([]int, Size)
		for x := range Size {
			f := fields[y*Size+x]
			if f == "_" || f == "." {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrBadBoard, f)
			}
			rows[y][x] = v
		}
	}
	return FromRows(rows)
}

func validValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
