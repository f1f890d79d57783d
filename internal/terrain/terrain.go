// Package terrain fills chunks with a noise heightmap.
package terrain

import (
	"math"

	"voxelchunk/internal/world"

	"github.com/aquilax/go-perlin"
)

// Params controls the generated heightmap
type Params struct {
	Seed       int64
	Scale      float64 // noise frequency per cube
	BaseHeight int
	Amplitude  int
	StoneDepth int // cubes below the surface that become stone
}

// DefaultParams returns a gentle rolling surface
func DefaultParams() Params {
	return Params{Seed: 1, Scale: 0.08, BaseHeight: 6, Amplitude: 6, StoneDepth: 3}
}

// Generator produces chunk contents from 2D Perlin noise
type Generator struct {
	params Params
	noise  *perlin.Perlin
}

// New creates a generator
func New(p Params) *Generator {
	return &Generator{
		params: p,
		noise:  perlin.NewPerlin(2, 2, 3, p.Seed),
	}
}

// Height returns the number of active cubes in column (x, z), in [1, ChunkSize].
func (g *Generator) Height(x, z int) int {
	n := g.noise.Noise2D(float64(x)*g.params.Scale, float64(z)*g.params.Scale)
	h := g.params.BaseHeight + int(math.Round(n*float64(g.params.Amplitude)))
	if h < 1 {
		h = 1
	}
	if h > world.ChunkSize {
		h = world.ChunkSize
	}
	return h
}

// Cubes returns a full grid in flat index order
func (g *Generator) Cubes() []world.Cube {
	cubes := make([]world.Cube, world.ChunkVolume)
	for z := 0; z < world.ChunkSize; z++ {
		for x := 0; x < world.ChunkSize; x++ {
			h := g.Height(x, z)
			for y := 0; y < h; y++ {
				m := world.MaterialDirt
				if y < h-g.params.StoneDepth {
					m = world.MaterialStone
				}
				cubes[world.Index(x, y, z)] = world.NewCube(m, true)
			}
		}
	}
	return cubes
}

// Populate replaces the contents of c with generated terrain
func (g *Generator) Populate(c *world.Chunk) error {
	return c.Populate(g.Cubes())
}
