package field

import (
	"github.com/gravitas-games/hexfield/hex"
)

// Chunk is a hex-shaped patch of terrain: the filled disc of Radius
// cells around a world-cell center. Chunks live on their own hex grid
// whose unit steps keep adjacent centers exactly 2*Radius apart.
type Chunk struct {
	Coord  hex.Cell // position in the chunk grid
	Center hex.Cell // world-cell center
	Radius int
	Cells  map[hex.Cell]Terrain // world cell -> terrain
	Seed   int64
}

// CenterOf maps a chunk-grid coordinate to its world-cell center using
// the diagonal basis U=N+NE, V=SE+NE scaled by the chunk radius.
func CenterOf(coord hex.Cell, radius int) hex.Cell {
	a, b := coord.Axial()
	return hex.At((a+2*b)*radius, (a-b)*radius)
}

// BuildChunk generates the chunk at the given chunk-grid coordinate.
func BuildChunk(coord hex.Cell, radius int, gen *Generator) *Chunk {
	center := CenterOf(coord, radius)
	cells := make(map[hex.Cell]Terrain, 3*radius*radius+3*radius+1)
	for _, c := range hex.Area(center, radius) {
		cells[c] = gen.TerrainAt(c)
	}
	return &Chunk{
		Coord:  coord,
		Center: center,
		Radius: radius,
		Cells:  cells,
		Seed:   gen.Seed(),
	}
}

// Terrain retrieves the terrain at a world cell within this chunk.
func (c *Chunk) Terrain(cell hex.Cell) (Terrain, bool) {
	t, ok := c.Cells[cell]
	return t, ok
}

// CellCount returns the number of cells in this chunk.
func (c *Chunk) CellCount() int {
	return len(c.Cells)
}
