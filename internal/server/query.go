package server

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexfield/hex"
	"github.com/gravitas-games/hexfield/internal/field"
	"github.com/gravitas-games/hexfield/internal/network"
)

// maxQueryRadius bounds ring/area/terrain requests; a radius-64 area is
// already 12481 cells.
const maxQueryRadius = 64

var errRadiusTooLarge = errors.New("radius too large")

// codeFor maps evaluation errors to protocol error codes.
func codeFor(err error) string {
	switch {
	case errors.Is(err, hex.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, hex.ErrInvalidDirection):
		return "invalid_direction"
	case errors.Is(err, errRadiusTooLarge):
		return "radius_too_large"
	default:
		return "query_failed"
	}
}

func cubeTriples(cells []hex.Cell) [][3]int {
	out := make([][3]int, len(cells))
	for i, c := range cells {
		x, y, z := c.Cube()
		out[i] = [3]int{x, y, z}
	}
	return out
}

func cellsMessage(cells []hex.Cell) *network.ServerMessage {
	return &network.ServerMessage{
		Type:    network.MsgTypeCells,
		Payload: network.CellsPayload{Cells: cubeTriples(cells)},
	}
}

func checkRadius(r int) error {
	if r > maxQueryRadius {
		return fmt.Errorf("%w: %d > %d", errRadiusTooLarge, r, maxQueryRadius)
	}
	return nil
}

func evalAdjacent(q network.AdjacentQuery) (*network.ServerMessage, error) {
	c, err := hex.ParseCoord(q.At)
	if err != nil {
		return nil, err
	}
	d, err := hex.ParseDirection(q.Direction)
	if err != nil {
		return nil, err
	}
	return cellsMessage([]hex.Cell{c.Adjacent(d)}), nil
}

func evalNeighbors(q network.NeighborsQuery) (*network.ServerMessage, error) {
	c, err := hex.ParseCoord(q.At)
	if err != nil {
		return nil, err
	}
	return cellsMessage(c.AllAdjacent()), nil
}

func evalRing(q network.RingQuery) (*network.ServerMessage, error) {
	c, err := hex.ParseCoord(q.At)
	if err != nil {
		return nil, err
	}
	if err := checkRadius(q.Radius); err != nil {
		return nil, err
	}
	return cellsMessage(hex.Ring(c, q.Radius)), nil
}

func evalArea(q network.AreaQuery) (*network.ServerMessage, error) {
	c, err := hex.ParseCoord(q.At)
	if err != nil {
		return nil, err
	}
	if err := checkRadius(q.Radius); err != nil {
		return nil, err
	}
	return cellsMessage(hex.Area(c, q.Radius)), nil
}

func evalDistance(q network.DistanceQuery) (*network.ServerMessage, error) {
	from, err := hex.ParseCoord(q.From)
	if err != nil {
		return nil, err
	}
	to, err := hex.ParseCoord(q.To)
	if err != nil {
		return nil, err
	}
	return &network.ServerMessage{
		Type:    network.MsgTypeDistRes,
		Payload: network.DistancePayload{Distance: hex.Distance(from, to)},
	}, nil
}

func evalLine(q network.LineQuery) (*network.ServerMessage, error) {
	from, err := hex.ParseCoord(q.From)
	if err != nil {
		return nil, err
	}
	to, err := hex.ParseCoord(q.To)
	if err != nil {
		return nil, err
	}
	line, err := from.LineTo(to)
	if err != nil {
		return nil, err
	}
	return cellsMessage(line), nil
}

func evalTerrain(f *field.Field, q network.TerrainQuery) (*network.ServerMessage, error) {
	c, err := hex.ParseCoord(q.At)
	if err != nil {
		return nil, err
	}
	if err := checkRadius(q.Radius); err != nil {
		return nil, err
	}
	patch := make([]network.TerrainCell, 0, 3*q.Radius*q.Radius+3*q.Radius+1)
	for _, cell := range hex.Area(c, q.Radius) {
		terrain, ok := f.TerrainAt(cell)
		if !ok {
			continue
		}
		x, y, z := cell.Cube()
		patch = append(patch, network.TerrainCell{
			Cube:    [3]int{x, y, z},
			Terrain: terrain.String(),
		})
	}
	return &network.ServerMessage{
		Type:    network.MsgTypeTerrRes,
		Payload: network.TerrainPayload{Cells: patch},
	}, nil
}
