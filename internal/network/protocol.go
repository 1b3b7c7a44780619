package network

import "encoding/json"

// Message types - Client → Server
const (
	MsgTypeAdjacent  = "adjacent"
	MsgTypeNeighbors = "neighbors"
	MsgTypeRing      = "ring"
	MsgTypeArea      = "area"
	MsgTypeDistance  = "distance"
	MsgTypeLine      = "line"
	MsgTypeTerrain   = "terrain"
	MsgTypePing      = "ping"
)

// Message types - Server → Client
const (
	MsgTypeWelcome = "welcome"
	MsgTypeCells   = "cells"
	MsgTypeDistRes = "distance"
	MsgTypeTerrRes = "terrain"
	MsgTypeError   = "error"
	MsgTypePong    = "pong"
)

// ClientMessage represents any message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Client Message Payloads ---
//
// Coordinates on the wire are raw integer vectors: 3 components are a
// cube triple, 2 an axial pair. Any other shape is rejected with an
// invalid_coordinate error.

// AdjacentQuery asks for the neighbor of a cell in one direction
// ("N", "NE", "SE", "S", "SW", "NW").
type AdjacentQuery struct {
	At        []int  `json:"at"`
	Direction string `json:"direction"`
}

// NeighborsQuery asks for all six neighbors of a cell.
type NeighborsQuery struct {
	At []int `json:"at"`
}

// RingQuery asks for the cells at exactly Radius steps from At.
type RingQuery struct {
	At     []int `json:"at"`
	Radius int   `json:"radius"`
}

// AreaQuery asks for the filled disc of Radius steps around At.
type AreaQuery struct {
	At     []int `json:"at"`
	Radius int   `json:"radius"`
}

// DistanceQuery asks for the step distance between two cells.
type DistanceQuery struct {
	From []int `json:"from"`
	To   []int `json:"to"`
}

// LineQuery asks for the straight path between two cells inclusive.
type LineQuery struct {
	From []int `json:"from"`
	To   []int `json:"to"`
}

// TerrainQuery asks for the terrain patch within Radius steps of At.
type TerrainQuery struct {
	At     []int `json:"at"`
	Radius int   `json:"radius"`
}

// --- Server Message Payloads ---

// WelcomePayload is sent to the client after a successful connection.
type WelcomePayload struct {
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	SessionID   string `json:"session_id"`
	FieldSeed   int64  `json:"field_seed"`
	ChunkCount  int    `json:"chunk_count"`
	CellRadius  int    `json:"cell_radius"`
	ClientCount int    `json:"client_count"`
}

// CellsPayload carries an ordered list of cells as cube triples.
type CellsPayload struct {
	Cells [][3]int `json:"cells"`
}

// DistancePayload carries a distance result.
type DistancePayload struct {
	Distance int `json:"distance"`
}

// TerrainCell pairs a cube triple with its terrain class.
type TerrainCell struct {
	Cube    [3]int `json:"cube"`
	Terrain string `json:"terrain"`
}

// TerrainPayload carries a terrain patch. Cells outside the generated
// field are omitted.
type TerrainPayload struct {
	Cells []TerrainCell `json:"cells"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
