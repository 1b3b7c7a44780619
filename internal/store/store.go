// Package store persists generated field chunks in SQLite so a server
// restart serves the same world without regenerating it.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gravitas-games/hexfield/hex"
	"github.com/gravitas-games/hexfield/internal/field"
)

// DB wraps a SQLite connection for chunk persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chunks (
		coord_x INTEGER NOT NULL,
		coord_y INTEGER NOT NULL,
		radius INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		cells_json TEXT NOT NULL,
		PRIMARY KEY (coord_x, coord_y)
	);`
	_, err := db.conn.Exec(schema)
	return err
}

// cellRecord flattens one terrain cell for JSON storage. Coordinates
// are stored axially; the third cube component is implicit.
type cellRecord struct {
	X int           `json:"x"`
	Y int           `json:"y"`
	T field.Terrain `json:"t"`
}

// SaveChunk upserts a chunk keyed by its chunk-grid coordinate.
func (db *DB) SaveChunk(c *field.Chunk) error {
	records := make([]cellRecord, 0, len(c.Cells))
	for cell, terrain := range c.Cells {
		x, y := cell.Axial()
		records = append(records, cellRecord{X: x, Y: y, T: terrain})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal cells: %w", err)
	}

	cx, cy := c.Coord.Axial()
	_, err = db.conn.Exec(`
		INSERT INTO chunks (coord_x, coord_y, radius, seed, cells_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (coord_x, coord_y) DO UPDATE SET
			radius = excluded.radius,
			seed = excluded.seed,
			cells_json = excluded.cells_json`,
		cx, cy, c.Radius, c.Seed, string(data))
	if err != nil {
		return fmt.Errorf("save chunk (%d,%d): %w", cx, cy, err)
	}
	return nil
}

// SaveField persists every chunk of a field.
func (db *DB) SaveField(f *field.Field) error {
	for _, c := range f.Chunks() {
		if err := db.SaveChunk(c); err != nil {
			return err
		}
	}
	return nil
}

// LoadChunk reads a chunk back by chunk-grid coordinate. The second
// return is false when no chunk is stored there.
func (db *DB) LoadChunk(coord hex.Cell) (*field.Chunk, bool, error) {
	cx, cy := coord.Axial()

	var row struct {
		Radius    int    `db:"radius"`
		Seed      int64  `db:"seed"`
		CellsJSON string `db:"cells_json"`
	}
	err := db.conn.Get(&row,
		`SELECT radius, seed, cells_json FROM chunks WHERE coord_x = ? AND coord_y = ?`,
		cx, cy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load chunk (%d,%d): %w", cx, cy, err)
	}

	var records []cellRecord
	if err := json.Unmarshal([]byte(row.CellsJSON), &records); err != nil {
		return nil, false, fmt.Errorf("unmarshal cells (%d,%d): %w", cx, cy, err)
	}

	cells := make(map[hex.Cell]field.Terrain, len(records))
	for _, r := range records {
		cells[hex.At(r.X, r.Y)] = r.T
	}

	return &field.Chunk{
		Coord:  coord,
		Center: field.CenterOf(coord, row.Radius),
		Radius: row.Radius,
		Cells:  cells,
		Seed:   row.Seed,
	}, true, nil
}

// ChunkCount returns the number of stored chunks.
func (db *DB) ChunkCount() (int, error) {
	var n int
	if err := db.conn.Get(&n, `SELECT COUNT(*) FROM chunks`); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return n, nil
}
