package field

import (
	"testing"

	"github.com/gravitas-games/hexfield/hex"
)

func TestChunkCellCount(t *testing.T) {
	gen := NewGenerator(42)
	for _, r := range []int{1, 3, 9} {
		c := BuildChunk(hex.At(0, 0), r, gen)
		want := 3*r*r + 3*r + 1
		if c.CellCount() != want {
			t.Fatalf("radius %d: expected %d cells, got %d", r, want, c.CellCount())
		}
	}
}

func TestChunkCentersSpacing(t *testing.T) {
	const r = 5
	origin := CenterOf(hex.At(0, 0), r)
	for _, coord := range hex.At(0, 0).AllAdjacent() {
		// chunk-grid neighbors sit 2r apart in world cells
		if d := hex.Distance(origin, CenterOf(coord, r)); d != 2*r {
			t.Fatalf("expected center distance %d for chunk %v, got %d", 2*r, coord, d)
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a := BuildChunk(hex.At(1, -1), 4, NewGenerator(7))
	b := BuildChunk(hex.At(1, -1), 4, NewGenerator(7))
	if a.CellCount() != b.CellCount() {
		t.Fatalf("cell counts differ: %d vs %d", a.CellCount(), b.CellCount())
	}
	for cell, terrain := range a.Cells {
		other, ok := b.Cells[cell]
		if !ok {
			t.Fatalf("cell %v missing from second generation", cell)
		}
		if other != terrain {
			t.Fatalf("terrain differs at %v: %v vs %v", cell, terrain, other)
		}
	}
}

func TestOverlappingChunksAgree(t *testing.T) {
	// adjacent chunks share their boundary cells; terrain is a pure
	// function of seed and world cell, so the shared cells must match
	gen := NewGenerator(99)
	a := BuildChunk(hex.At(0, 0), 3, gen)
	b := BuildChunk(hex.At(1, 0), 3, gen)
	shared := 0
	for cell, terrain := range a.Cells {
		if other, ok := b.Cells[cell]; ok {
			shared++
			if other != terrain {
				t.Fatalf("terrain disagrees at shared cell %v", cell)
			}
		}
	}
	if shared == 0 {
		t.Fatalf("expected adjacent chunks to share boundary cells")
	}
}

func TestFieldTerrainLookup(t *testing.T) {
	f := New(1, 3, 12345)
	if f.ChunkCount() != 7 {
		t.Fatalf("expected 7 chunks at chunk radius 1, got %d", f.ChunkCount())
	}
	if _, ok := f.TerrainAt(hex.At(0, 0)); !ok {
		t.Fatalf("expected origin cell inside the field")
	}
	if _, ok := f.TerrainAt(hex.At(1000, 0)); ok {
		t.Fatalf("expected far cell outside the field")
	}
	if _, ok := f.Chunk(hex.At(0, 1)); !ok {
		t.Fatalf("expected chunk at grid coord (0,1)")
	}
}
