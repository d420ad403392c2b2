package meshview

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func snapshotVertices(m *Mesh) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, m.VertexCount())
	for _, v := range m.Vertices() {
		out = append(out, v)
	}
	return out
}

func assertVerticesNear(t *testing.T, m *Mesh, want []mgl64.Vec3) {
	t.Helper()
	if m.VertexCount() != len(want) {
		t.Fatalf("vertex count = %d, want %d", m.VertexCount(), len(want))
	}
	for i, w := range want {
		if got := m.Vertex(i + 1); !vecAlmostEqual(got, w) {
			t.Errorf("vertex %d = %v, want %v", i+1, got, w)
		}
	}
}

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func loadCube(t *testing.T) *Mesh {
	t.Helper()
	m := Load(filepath.Join("testdata", "cube.obj"))
	if m.VertexCount() != 8 || m.FaceCount() != 12 {
		t.Fatalf("cube fixture loaded as %v", m)
	}
	return m
}
