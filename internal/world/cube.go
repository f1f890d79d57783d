package world

// Material tags a cube. It does not affect rendering yet.
type Material uint8

const (
	MaterialDirt Material = iota
	MaterialStone
)

func (m Material) String() string {
	switch m {
	case MaterialDirt:
		return "dirt"
	case MaterialStone:
		return "stone"
	default:
		return "unknown"
	}
}

// Cube is one grid cell. The zero value is an inactive dirt cube.
type Cube struct {
	Active   bool
	Material Material
}

// CubeRenderSize is the half-extent of a rendered cube
const CubeRenderSize float32 = 1

// NewCube creates a cube
func NewCube(material Material, active bool) Cube {
	return Cube{Active: active, Material: material}
}

// DefaultCube returns an active dirt cube
func DefaultCube() Cube {
	return NewCube(MaterialDirt, true)
}
