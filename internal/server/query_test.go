package server

import (
	"testing"

	"github.com/gravitas-games/hexfield/internal/field"
	"github.com/gravitas-games/hexfield/internal/network"
)

func TestEvalNeighbors(t *testing.T) {
	msg, err := evalNeighbors(network.NeighborsQuery{At: []int{0, 0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != network.MsgTypeCells {
		t.Fatalf("expected cells message, got %q", msg.Type)
	}
	cells := msg.Payload.(network.CellsPayload).Cells
	want := [][3]int{
		{0, 1, -1}, {1, 0, -1}, {1, -1, 0},
		{0, -1, 1}, {-1, 0, 1}, {-1, 1, 0},
	}
	if len(cells) != len(want) {
		t.Fatalf("expected 6 neighbors, got %d", len(cells))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("neighbor %d: expected %v, got %v", i, want[i], cells[i])
		}
	}
}

func TestEvalAdjacent(t *testing.T) {
	msg, err := evalAdjacent(network.AdjacentQuery{At: []int{2, -1}, Direction: "S"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := msg.Payload.(network.CellsPayload).Cells
	if len(cells) != 1 || cells[0] != [3]int{2, -2, 0} {
		t.Fatalf("expected [(2,-2,0)], got %v", cells)
	}

	if _, err := evalAdjacent(network.AdjacentQuery{At: []int{0, 0, 0}, Direction: "UP"}); err == nil {
		t.Fatalf("expected error for bad direction")
	} else if codeFor(err) != "invalid_direction" {
		t.Fatalf("expected invalid_direction code, got %q", codeFor(err))
	}
}

func TestEvalRing(t *testing.T) {
	msg, err := evalRing(network.RingQuery{At: []int{0, 0, 0}, Radius: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := msg.Payload.(network.CellsPayload).Cells
	if len(cells) != 12 {
		t.Fatalf("expected 12 ring cells, got %d", len(cells))
	}
	if cells[0] != [3]int{0, 2, -2} {
		t.Fatalf("expected ring to start at (0,2,-2), got %v", cells[0])
	}

	// radius below 1 degenerates to the queried cell
	msg, err = evalRing(network.RingQuery{At: []int{3, -1}, Radius: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells = msg.Payload.(network.CellsPayload).Cells
	if len(cells) != 1 || cells[0] != [3]int{3, -1, -2} {
		t.Fatalf("expected degenerate ring [(3,-1,-2)], got %v", cells)
	}

	if _, err := evalRing(network.RingQuery{At: []int{0, 0}, Radius: 1000}); codeFor(err) != "radius_too_large" {
		t.Fatalf("expected radius_too_large, got %v", err)
	}
}

func TestEvalArea(t *testing.T) {
	msg, err := evalArea(network.AreaQuery{At: []int{1, 1, -2}, Radius: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := msg.Payload.(network.CellsPayload).Cells
	if len(cells) != 37 {
		t.Fatalf("expected 37 disc cells, got %d", len(cells))
	}
}

func TestEvalDistance(t *testing.T) {
	msg, err := evalDistance(network.DistanceQuery{From: []int{0, 0, 0}, To: []int{2, -1, -1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := msg.Payload.(network.DistancePayload).Distance; d != 2 {
		t.Fatalf("expected distance 2, got %d", d)
	}

	// axial targets are accepted too
	msg, err = evalDistance(network.DistanceQuery{From: []int{0, 0}, To: []int{2, -1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := msg.Payload.(network.DistancePayload).Distance; d != 2 {
		t.Fatalf("expected distance 2 for axial target, got %d", d)
	}
}

func TestEvalLine(t *testing.T) {
	msg, err := evalLine(network.LineQuery{From: []int{0, 0}, To: []int{2, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := msg.Payload.(network.CellsPayload).Cells
	want := [][3]int{{0, 0, 0}, {1, 0, -1}, {2, 0, -2}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d line cells, got %d", len(want), len(cells))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("line cell %d: expected %v, got %v", i, want[i], cells[i])
		}
	}
}

func TestEvalRejectsBadCoordinates(t *testing.T) {
	cases := []error{}
	_, err := evalNeighbors(network.NeighborsQuery{At: []int{1}})
	cases = append(cases, err)
	_, err = evalRing(network.RingQuery{At: []int{1, 1, 1}, Radius: 1})
	cases = append(cases, err)
	_, err = evalDistance(network.DistanceQuery{From: []int{0, 0}, To: []int{1, 2, 3, 4}})
	cases = append(cases, err)
	_, err = evalLine(network.LineQuery{From: nil, To: []int{0, 0}})
	cases = append(cases, err)
	for i, err := range cases {
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if codeFor(err) != "invalid_coordinate" {
			t.Fatalf("case %d: expected invalid_coordinate, got %q", i, codeFor(err))
		}
	}
}

func TestEvalTerrain(t *testing.T) {
	f := field.New(1, 3, 4242)
	msg, err := evalTerrain(f, network.TerrainQuery{At: []int{0, 0, 0}, Radius: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	patch := msg.Payload.(network.TerrainPayload).Cells
	if len(patch) != 19 {
		t.Fatalf("expected full 19-cell patch inside the field, got %d", len(patch))
	}

	// far outside the field the patch is empty, not an error
	msg, err = evalTerrain(f, network.TerrainQuery{At: []int{500, 0}, Radius: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch := msg.Payload.(network.TerrainPayload).Cells; len(patch) != 0 {
		t.Fatalf("expected empty patch outside the field, got %d cells", len(patch))
	}
}
