// Package hex implements cube-coordinate math for a hexagonal lattice:
// cell addressing under cube, axial and offset views, the six-way
// neighbor table, and traversal queries (rings, discs, distances,
// straight lines). Cells are immutable values; every query allocates
// fresh cells and no call touches shared state.
package hex

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate is returned when a value that is not a valid
// 2- or 3-component integer coordinate is passed where a coordinate is
// expected, including cube triples whose components do not sum to zero.
var ErrInvalidCoordinate = errors.New("hex: invalid coordinate")

// Cell is a single lattice position held in cube coordinates with
// x+y+z == 0. The zero value is the origin cell.
type Cell struct {
	x, y, z int
}

// At constructs a cell from axial coordinates. The third cube component
// is derived as -x-y, so the result is always valid.
func At(x, y int) Cell {
	return Cell{x, y, -x - y}
}

// AtCube constructs a cell from a raw cube triple. The triple must sum
// to zero.
func AtCube(x, y, z int) (Cell, error) {
	if x+y+z != 0 {
		return Cell{}, fmt.Errorf("%w: cube (%d,%d,%d) does not sum to zero", ErrInvalidCoordinate, x, y, z)
	}
	return Cell{x, y, z}, nil
}

// AtOffset constructs a cell from offset coordinates in the
// odd-columns-shifted convention.
func AtOffset(col, row int) Cell {
	x := col
	y := row - (col-floorMod(col, 2))/2
	return Cell{x, y, -x - y}
}

// Cube returns the canonical cube triple.
func (c Cell) Cube() (x, y, z int) {
	return c.x, c.y, c.z
}

// Axial returns the axial projection (cube x and y; z is implicit).
func (c Cell) Axial() (x, y int) {
	return c.x, c.y
}

// Offset returns the offset (column, row) view. The parity adjustment
// uses a floor mod so negative columns round-trip exactly.
func (c Cell) Offset() (col, row int) {
	col = c.x
	row = c.y + (c.x-floorMod(c.x, 2))/2
	return
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.x, c.y, c.z)
}

// Coord designates a cell position in any accepted form: a Cell itself,
// a raw Cube triple, or a raw Axial pair. It is a closed set; operations
// that take a target normalize it once on entry.
type Coord interface {
	normalize() (Cell, error)
}

// Cube is a raw cube triple supplied as a coordinate argument. It must
// satisfy X+Y+Z == 0 to normalize.
type Cube struct {
	X, Y, Z int
}

// Axial is a raw axial pair supplied as a coordinate argument. It can
// always be normalized.
type Axial struct {
	X, Y int
}

func (c Cell) normalize() (Cell, error)  { return c, nil }
func (a Axial) normalize() (Cell, error) { return At(a.X, a.Y), nil }
func (q Cube) normalize() (Cell, error)  { return AtCube(q.X, q.Y, q.Z) }

// Normalize resolves any accepted coordinate form to a canonical cell.
func Normalize(c Coord) (Cell, error) {
	if c == nil {
		return Cell{}, fmt.Errorf("%w: nil coordinate", ErrInvalidCoordinate)
	}
	return c.normalize()
}

// ParseCoord normalizes a raw integer vector: 3 components are treated
// as a cube triple, 2 as an axial pair. Any other shape is rejected.
func ParseCoord(vals []int) (Cell, error) {
	switch len(vals) {
	case 3:
		return AtCube(vals[0], vals[1], vals[2])
	case 2:
		return At(vals[0], vals[1]), nil
	default:
		return Cell{}, fmt.Errorf("%w: want 2 or 3 components, got %d", ErrInvalidCoordinate, len(vals))
	}
}

// Round converts a real-valued cube triple (e.g. from interpolation) to
// the nearest valid cell: x and y are rounded to nearest and z is
// recomputed as -x-y, so the cube invariant holds by construction. The
// z argument is accepted for symmetry but never rounded independently.
func Round(x, y, _ float64) Cell {
	rx := int(math.Round(x))
	ry := int(math.Round(y))
	return Cell{rx, ry, -rx - ry}
}

// floorMod returns the non-negative remainder of a/b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
