//go:build meshdebug

package meshing

import "fmt"

func assertIndices(vertexCount int, idx ...uint32) {
	for _, i := range idx {
		if int(i) >= vertexCount {
			panic(fmt.Sprintf("meshing: index %d references missing vertex (have %d)", i, vertexCount))
		}
	}
}
