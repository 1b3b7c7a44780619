package store

import (
	"path/filepath"
	"testing"

	"github.com/gravitas-games/hexfield/hex"
	"github.com/gravitas-games/hexfield/internal/field"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "chunks.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestChunkRoundTrip(t *testing.T) {
	db := openTestDB(t)

	gen := field.NewGenerator(31337)
	coord := hex.At(1, -2)
	c := field.BuildChunk(coord, 3, gen)

	if err := db.SaveChunk(c); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, ok, err := db.LoadChunk(coord)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored chunk at %v", coord)
	}
	if loaded.Coord != c.Coord || loaded.Center != c.Center || loaded.Radius != c.Radius || loaded.Seed != c.Seed {
		t.Fatalf("chunk metadata mismatch after roundtrip: %+v vs %+v", loaded, c)
	}
	if len(loaded.Cells) != len(c.Cells) {
		t.Fatalf("expected %d cells, got %d", len(c.Cells), len(loaded.Cells))
	}
	for cell, terrain := range c.Cells {
		got, ok := loaded.Cells[cell]
		if !ok {
			t.Fatalf("cell %v missing after roundtrip", cell)
		}
		if got != terrain {
			t.Fatalf("terrain mismatch at %v: %v vs %v", cell, got, terrain)
		}
	}
}

func TestLoadMissingChunk(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.LoadChunk(hex.At(5, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no chunk stored")
	}
}

func TestSaveChunkUpsert(t *testing.T) {
	db := openTestDB(t)

	coord := hex.At(0, 0)
	first := field.BuildChunk(coord, 2, field.NewGenerator(1))
	second := field.BuildChunk(coord, 2, field.NewGenerator(2))

	if err := db.SaveChunk(first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := db.SaveChunk(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	n, err := db.ChunkCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected upsert to keep 1 chunk, got %d", n)
	}
	loaded, _, err := db.LoadChunk(coord)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != second.Seed {
		t.Fatalf("expected seed %d after upsert, got %d", second.Seed, loaded.Seed)
	}
}

func TestSaveField(t *testing.T) {
	db := openTestDB(t)

	f := field.New(1, 2, 77)
	if err := db.SaveField(f); err != nil {
		t.Fatalf("save field failed: %v", err)
	}
	n, err := db.ChunkCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != f.ChunkCount() {
		t.Fatalf("expected %d stored chunks, got %d", f.ChunkCount(), n)
	}
}
