package chunks

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum culling margin in cubes (inflates AABBs before testing)
var frustumMargin float32 = 1.0

type plane struct {
	a, b, c, d float32
}

// extractFrustumPlanes builds six planes from the combined projection*view matrix.
// Planes are returned in order: left, right, bottom, top, near, far.
func extractFrustumPlanes(clip mgl32.Mat4) [6]plane {
	row := func(i int) [4]float32 {
		// mgl32 matrices are column-major
		return [4]float32{clip[i], clip[i+4], clip[i+8], clip[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(a [4]float32, sign float32) plane {
		return normalizePlane(plane{r3[0] + sign*a[0], r3[1] + sign*a[1], r3[2] + sign*a[2], r3[3] + sign*a[3]})
	}
	return [6]plane{
		combine(r0, 1), combine(r0, -1),
		combine(r1, 1), combine(r1, -1),
		combine(r2, 1), combine(r2, -1),
	}
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// aabbIntersectsFrustum tests an AABB against precomputed planes.
func aabbIntersectsFrustum(min, max mgl32.Vec3, planes [6]plane) bool {
	for _, p := range planes {
		// positive vertex for this plane normal
		px, py, pz := max.X(), max.Y(), max.Z()
		if p.a < 0 {
			px = min.X()
		}
		if p.b < 0 {
			py = min.Y()
		}
		if p.c < 0 {
			pz = min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
