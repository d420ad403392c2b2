package viewer

import (
	"testing"

	"github.com/smasonuk/meshview/internal/viewconfig"
)

func TestNextVertexDisplay(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{viewconfig.VertexNone, viewconfig.VertexCircle},
		{viewconfig.VertexCircle, viewconfig.VertexSquare},
		{viewconfig.VertexSquare, viewconfig.VertexNone},
		{"bogus", viewconfig.VertexNone},
	}
	for _, tc := range testCases {
		if got := nextVertexDisplay(tc.in); got != tc.want {
			t.Errorf("nextVertexDisplay(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
