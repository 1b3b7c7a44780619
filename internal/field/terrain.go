package field

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-games/hexfield/hex"
)

// Terrain classifies a single world cell.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainPlains
	TerrainForest
	TerrainMountain
)

var terrainNames = [...]string{"water", "plains", "forest", "mountain"}

func (t Terrain) String() string {
	if int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// Generator derives terrain from layered simplex noise. Terrain is a
// pure function of world cell and seed, so any two chunks that cover
// the same cell agree on it.
type Generator struct {
	seed  int64
	elev  opensimplex.Noise
	moist opensimplex.Noise
}

// NewGenerator seeds the noise layers. A zero seed picks a random one.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Generator{
		seed:  seed,
		elev:  opensimplex.NewNormalized(seed),
		moist: opensimplex.NewNormalized(seed + 1),
	}
}

// Seed returns the effective seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// TerrainAt samples the noise layers at the cell's pixel position and
// derives its terrain class.
func (g *Generator) TerrainAt(c hex.Cell) Terrain {
	px, py := c.Pixel(1)
	elev := octaveNoise(g.elev, px, py, 4, 0.08, 0.5)
	moist := octaveNoise(g.moist, px, py, 3, 0.06, 0.5)

	switch {
	case elev < 0.30:
		return TerrainWater
	case elev > 0.72:
		return TerrainMountain
	case moist > 0.55:
		return TerrainForest
	default:
		return TerrainPlains
	}
}

// octaveNoise layers multiple noise octaves for natural-looking terrain.
func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, freq, persistence float64) float64 {
	var total, maxAmp float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*freq, y*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= 2
	}
	return total / maxAmp
}
