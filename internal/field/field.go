package field

import (
	"log"

	"github.com/gravitas-games/hexfield/hex"
)

// Field is the generated world: terrain chunks laid out over a
// hex-shaped chunk grid around the origin.
type Field struct {
	ChunkRadius int // chunk-grid rings around origin
	CellRadius  int // cell rings per chunk
	chunks      map[hex.Cell]*Chunk
	gen         *Generator
}

// New generates a field with the given chunk-grid radius, cells per
// chunk, and seed (zero picks a random seed).
func New(chunkRadius, cellRadius int, seed int64) *Field {
	gen := NewGenerator(seed)
	f := &Field{
		ChunkRadius: chunkRadius,
		CellRadius:  cellRadius,
		chunks:      make(map[hex.Cell]*Chunk),
		gen:         gen,
	}

	for _, coord := range hex.Area(hex.At(0, 0), chunkRadius) {
		f.chunks[coord] = BuildChunk(coord, cellRadius, gen)
	}

	log.Printf("Generated field: %d chunks, %d cells each, seed %d",
		len(f.chunks), 3*cellRadius*cellRadius+3*cellRadius+1, gen.Seed())
	return f
}

// Seed returns the effective generation seed.
func (f *Field) Seed() int64 {
	return f.gen.Seed()
}

// Chunk retrieves a chunk by chunk-grid coordinate.
func (f *Field) Chunk(coord hex.Cell) (*Chunk, bool) {
	c, ok := f.chunks[coord]
	return c, ok
}

// Chunks returns all generated chunks.
func (f *Field) Chunks() []*Chunk {
	out := make([]*Chunk, 0, len(f.chunks))
	for _, c := range f.chunks {
		out = append(out, c)
	}
	return out
}

// ChunkCount returns the number of generated chunks.
func (f *Field) ChunkCount() int {
	return len(f.chunks)
}

// TerrainAt resolves the terrain at a world cell, or false if the cell
// lies outside every generated chunk.
func (f *Field) TerrainAt(world hex.Cell) (Terrain, bool) {
	for _, c := range f.chunks {
		if hex.Distance(c.Center, world) <= c.Radius {
			return c.Cells[world], true
		}
	}
	return 0, false
}
