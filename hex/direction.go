package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a direction name cannot be
// parsed.
var ErrInvalidDirection = errors.New("hex: invalid direction")

// Direction indexes one of the six unit deltas connecting a cell to an
// adjacent cell, in clockwise order starting from N.
type Direction int

const (
	N Direction = iota
	NE
	SE
	S
	SW
	NW
)

// Directions holds the six cube-space unit deltas in clockwise order
// from N. Each delta is itself a valid cell (components sum to zero).
var Directions = [6]Cell{
	{0, 1, -1},  // N
	{1, 0, -1},  // NE
	{1, -1, 0},  // SE
	{0, -1, 1},  // S
	{-1, 0, 1},  // SW
	{-1, 1, 0},  // NW
}

var directionNames = [6]string{"N", "NE", "SE", "S", "SW", "NW"}

func (d Direction) String() string {
	if d < 0 || d > NW {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way: N<->S,
// NE<->SW, SE<->NW.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// ParseDirection resolves a direction name ("N", "NE", ...) as used on
// the wire.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// Adjacent returns the neighboring cell one step in direction d.
func (c Cell) Adjacent(d Direction) Cell {
	v := Directions[d]
	return Cell{c.x + v.x, c.y + v.y, c.z + v.z}
}

// AllAdjacent returns the six neighbors in direction-table order
// [N, NE, SE, S, SW, NW]. Callers may index the result by Direction.
func (c Cell) AllAdjacent() []Cell {
	out := make([]Cell, 6)
	for i, v := range Directions {
		out[i] = Cell{c.x + v.x, c.y + v.y, c.z + v.z}
	}
	return out
}
