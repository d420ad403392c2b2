package meshview

import (
	"errors"
	"fmt"
)

var (
	ErrShortFace       = errors.New("face has fewer than 3 vertices")
	ErrIndexOutOfRange = errors.New("vertex index out of range")
)

// Validate checks face topology against the vertex table. Every problem is
// reported; the result wraps ErrShortFace and ErrIndexOutOfRange.
func (m *Mesh) Validate() error {
	var errs []error
	for i := 1; i <= m.faceCount; i++ {
		face := m.faces[i]
		if len(face) < 3 {
			errs = append(errs, fmt.Errorf("face %d: %w (has %d)", i, ErrShortFace, len(face)))
		}
		for _, idx := range face {
			if idx < 1 || idx > m.vertexCount {
				errs = append(errs, fmt.Errorf("face %d: %w: %d not in [1,%d]", i, ErrIndexOutOfRange, idx, m.vertexCount))
			}
		}
	}
	return errors.Join(errs...)
}
