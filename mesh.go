package meshview

import (
	"fmt"
	"iter"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed polygon mesh. Vertices and faces are addressed from 1,
// matching the indices used by face references in OBJ files; slot 0 of both
// tables is never populated.
type Mesh struct {
	vertices    []mgl64.Vec3
	faces       [][]int
	vertexCount int
	faceCount   int
	bounds      BoundingBox
}

func NewMesh() *Mesh {
	m := &Mesh{}
	m.Reset()
	return m
}

// Reset drops all vertex and face storage, zeroes the counts and puts the
// bounding box back to its sentinel extremes.
func (m *Mesh) Reset() {
	m.vertices = nil
	m.faces = nil
	m.vertexCount = 0
	m.faceCount = 0
	m.bounds = EmptyBoundingBox()
}

// Release frees the mesh storage. The mesh reads as empty afterwards and must
// be reset (or reloaded) before it is used again.
func (m *Mesh) Release() {
	m.vertices = nil
	m.faces = nil
	m.vertexCount = 0
	m.faceCount = 0
}

func (m *Mesh) allocateVertices(n int) {
	m.vertices = make([]mgl64.Vec3, n+1)
}

func (m *Mesh) allocateFaces(n int) {
	m.faces = make([][]int, n+1)
}

// allocateFaceIndices reserves room for k indices of face faceID. The face
// starts empty and grows as indices are stored.
func (m *Mesh) allocateFaceIndices(faceID, k int) {
	if k < 0 {
		k = 0
	}
	m.faces[faceID] = make([]int, 0, k)
}

func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

func (m *Mesh) FaceCount() int {
	return m.faceCount
}

// Bounds returns the bounding box tracked while the mesh was loaded. It is
// not refreshed by transforms or by FitToViewport.
func (m *Mesh) Bounds() BoundingBox {
	return m.bounds
}

// Vertex returns a copy of vertex i (1-based).
func (m *Mesh) Vertex(i int) mgl64.Vec3 {
	if i < 1 || i > m.vertexCount {
		panic(fmt.Sprintf("meshview: vertex index %d out of range [1,%d]", i, m.vertexCount))
	}
	return m.vertices[i]
}

// Face returns a copy of the vertex indices of face i (1-based), in the
// winding order they were read.
func (m *Mesh) Face(i int) []int {
	if i < 1 || i > m.faceCount {
		panic(fmt.Sprintf("meshview: face index %d out of range [1,%d]", i, m.faceCount))
	}
	return slices.Clone(m.faces[i])
}

// Vertices yields every vertex with its 1-based index.
func (m *Mesh) Vertices() iter.Seq2[int, mgl64.Vec3] {
	return func(yield func(int, mgl64.Vec3) bool) {
		for i := 1; i <= m.vertexCount; i++ {
			if !yield(i, m.vertices[i]) {
				return
			}
		}
	}
}

// Faces yields every face with its 1-based index. The yielded slice is a copy.
func (m *Mesh) Faces() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for i := 1; i <= m.faceCount; i++ {
			if !yield(i, slices.Clone(m.faces[i])) {
				return
			}
		}
	}
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{vertices: %d, faces: %d}", m.vertexCount, m.faceCount)
}
