package world

import (
	"voxelchunk/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one side of a cube
type Face int

const (
	FaceFront  Face = iota // +Z
	FaceBack               // -Z
	FaceRight              // +X
	FaceLeft               // -X
	FaceTop                // +Y
	FaceBottom             // -Y
)

// Faces lists faces in emission order
var Faces = [6]Face{FaceFront, FaceBack, FaceRight, FaceLeft, FaceTop, FaceBottom}

// Cube corners
const (
	frontBottomLeft = iota
	frontBottomRight
	frontTopRight
	frontTopLeft
	backBottomRight
	backBottomLeft
	backTopLeft
	backTopRight
)

// faceCorners holds each face's corners counter-clockwise when viewed from outside.
var faceCorners = [6][4]int{
	FaceFront:  {frontBottomLeft, frontBottomRight, frontTopRight, frontTopLeft},
	FaceBack:   {backBottomRight, backBottomLeft, backTopLeft, backTopRight},
	FaceRight:  {frontBottomRight, backBottomRight, backTopRight, frontTopRight},
	FaceLeft:   {backBottomLeft, frontBottomLeft, frontTopLeft, backTopLeft},
	FaceTop:    {frontTopLeft, frontTopRight, backTopRight, backTopLeft},
	FaceBottom: {backBottomLeft, backBottomRight, frontBottomRight, frontBottomLeft},
}

var faceNormals = [6]mgl32.Vec3{
	FaceFront:  {0, 0, 1},
	FaceBack:   {0, 0, -1},
	FaceRight:  {1, 0, 0},
	FaceLeft:   {-1, 0, 0},
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
}

// Normal returns the outward unit normal of the face
func (f Face) Normal() mgl32.Vec3 {
	return faceNormals[f]
}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// CubeColor is applied to every emitted vertex.
var CubeColor = mgl32.Vec4{1, 1, 1, 1}

const (
	VerticesPerCube = 4 * len(Faces)
	IndicesPerCube  = 6 * len(Faces)
)

// cubeCorners returns the eight corners of the cube centered on grid cell (x, y, z).
func cubeCorners(x, y, z int) [8]mgl32.Vec3 {
	r := CubeRenderSize
	fx, fy, fz := float32(x), float32(y), float32(z)
	return [8]mgl32.Vec3{
		frontBottomLeft:  {fx - r, fy - r, fz + r},
		frontBottomRight: {fx + r, fy - r, fz + r},
		frontTopRight:    {fx + r, fy + r, fz + r},
		frontTopLeft:     {fx - r, fy + r, fz + r},
		backBottomRight:  {fx + r, fy - r, fz - r},
		backBottomLeft:   {fx - r, fy - r, fz - r},
		backTopLeft:      {fx - r, fy + r, fz - r},
		backTopRight:     {fx + r, fy + r, fz - r},
	}
}

// EmitCube appends all six faces of the cube at flat index i to mesh. Every face
// gets four fresh vertices and two triangles (v1,v2,v3) and (v1,v3,v4).
// Neighbours are not consulted.
func EmitCube(mesh *meshing.Mesh, i int, _ Cube) {
	corners := cubeCorners(Decode(i))
	for _, f := range Faces {
		n := f.Normal()
		fc := faceCorners[f]
		v1 := mesh.PushVertex(meshing.NewVertex(corners[fc[0]], n, CubeColor))
		v2 := mesh.PushVertex(meshing.NewVertex(corners[fc[1]], n, CubeColor))
		v3 := mesh.PushVertex(meshing.NewVertex(corners[fc[2]], n, CubeColor))
		v4 := mesh.PushVertex(meshing.NewVertex(corners[fc[3]], n, CubeColor))
		mesh.PushTriangle(v1, v2, v3)
		mesh.PushTriangle(v1, v3, v4)
	}
}

// BuildMesh emits geometry for every active cube. Inactive cubes contribute nothing.
func (c *Chunk) BuildMesh() *meshing.Mesh {
	mesh := meshing.NewMeshWithCapacity(c.ActiveCount() * len(Faces))
	for i := range c.cubes {
		if c.cubes[i].Active {
			EmitCube(mesh, i, c.cubes[i])
		}
	}
	return mesh
}
