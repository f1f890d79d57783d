//go:build meshdebug

package meshing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushTriangleAssertsInDebugBuilds(t *testing.T) {
	m := &Mesh{}
	m.PushVertex(Vertex{})
	m.PushVertex(Vertex{})
	assert.Panics(t, func() { m.PushTriangle(0, 1, 2) })

	m.PushVertex(Vertex{})
	assert.NotPanics(t, func() { m.PushTriangle(0, 1, 2) })
}
