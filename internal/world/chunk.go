package world

import (
	"errors"
	"fmt"
)

const (
	// ChunkSize is the edge length of a chunk in cubes
	ChunkSize   = 16
	ChunkArea   = ChunkSize * ChunkSize
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

var (
	ErrChunkNotPopulated = errors.New("chunk has not been populated")
	ErrGridSize          = errors.New("cube grid has wrong size")
)

// Chunk is a ChunkSize³ block of cubes stored flat with x varying fastest,
// then y, then z. It owns the GPU objects created by Render.
type Chunk struct {
	cubes     [ChunkVolume]Cube
	populated bool
	dirty     bool
	buffers   *chunkBuffers
}

// NewChunk creates a chunk filled with active dirt cubes
func NewChunk() *Chunk {
	c := &Chunk{}
	c.Fill(DefaultCube())
	return c
}

// NewEmptyChunk creates a chunk that must be populated with Populate or Fill
// before it can be rendered.
func NewEmptyChunk() *Chunk {
	return &Chunk{dirty: true}
}

// Index converts grid coordinates to a flat index
func Index(x, y, z int) int {
	return x + y*ChunkSize + z*ChunkArea
}

// Decode converts a flat index to grid coordinates
func Decode(i int) (x, y, z int) {
	return i % ChunkSize, (i / ChunkSize) % ChunkSize, i / ChunkArea
}

// InBounds reports whether the coordinates lie inside a chunk
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// Populate replaces the whole grid. cubes must hold exactly ChunkVolume entries
// in flat index order.
func (c *Chunk) Populate(cubes []Cube) error {
	if len(cubes) != ChunkVolume {
		return fmt.Errorf("populate chunk with %d cubes, want %d: %w", len(cubes), ChunkVolume, ErrGridSize)
	}
	copy(c.cubes[:], cubes)
	c.populated = true
	c.dirty = true
	return nil
}

// Fill sets every cell to cube
func (c *Chunk) Fill(cube Cube) {
	for i := range c.cubes {
		c.cubes[i] = cube
	}
	c.populated = true
	c.dirty = true
}

// Cube returns the cube at the given coordinates. Out of range reads return an inactive cube.
func (c *Chunk) Cube(x, y, z int) Cube {
	if !InBounds(x, y, z) {
		return Cube{}
	}
	return c.cubes[Index(x, y, z)]
}

// Set stores cube at the given coordinates. Out of range writes are ignored.
func (c *Chunk) Set(x, y, z int, cube Cube) {
	if !InBounds(x, y, z) {
		return
	}
	i := Index(x, y, z)
	if c.cubes[i] != cube {
		c.cubes[i] = cube
		c.dirty = true
	}
}

// Populated reports whether the grid has been filled by the caller
func (c *Chunk) Populated() bool {
	return c.populated
}

// ActiveCount returns the number of active cubes
func (c *Chunk) ActiveCount() int {
	n := 0
	for i := range c.cubes {
		if c.cubes[i].Active {
			n++
		}
	}
	return n
}

// IsDirty returns whether the chunk changed since the last successful Render
func (c *Chunk) IsDirty() bool {
	return c.dirty
}
