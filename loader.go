package meshview

import (
	"bufio"
	"io"
	"log"
	"os"
)

// Load reads the OBJ file at path into a new Mesh. A missing or unreadable
// file yields an empty mesh rather than an error.
func Load(path string) *Mesh {
	m := NewMesh()
	m.LoadFile(path)
	return m
}

// LoadFile replaces the contents of m with the OBJ file at path.
func (m *Mesh) LoadFile(path string) {
	m.Reset()

	file, err := os.Open(path)
	if err != nil {
		log.Printf("meshview: could not open %s: %v", path, err)
		return
	}
	defer file.Close()

	m.LoadReader(file)
	log.Printf("meshview: loaded %s (vertices: %d, faces: %d)", path, m.vertexCount, m.faceCount)
}

// LoadReader replaces the contents of m with OBJ data read from r. It makes
// two passes: the first counts vertex and face lines so storage can be sized
// exactly, the second rewinds r and fills the tables. Only "v " and "f "
// lines are used; everything else is skipped.
//
// Read failures leave m empty. Malformed lines are parsed as far as possible
// and still occupy their slot.
func (m *Mesh) LoadReader(r io.ReadSeeker) {
	m.Reset()

	vertices, faces, err := countElements(r)
	if err != nil {
		log.Printf("meshview: count pass failed: %v", err)
		return
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		log.Printf("meshview: rewind failed: %v", err)
		return
	}

	m.allocateVertices(vertices)
	m.allocateFaces(faces)
	if err := m.fill(r, vertices, faces); err != nil {
		log.Printf("meshview: fill pass failed: %v", err)
		m.Reset()
	}
}

func countElements(r io.Reader) (vertices, faces int, err error) {
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if isVertexLine(line) {
			vertices++
		}
		if isFaceLine(line) {
			faces++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return vertices, faces, nil
}

// fill runs the second pass. Counts are capped at the sizes found by the
// count pass in case the source changed between passes.
func (m *Mesh) fill(r io.Reader, maxVertices, maxFaces int) error {
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if isVertexLine(line) && m.vertexCount < maxVertices {
			m.vertexCount++
			v := parseVertexLine(line)
			m.vertices[m.vertexCount] = v
			m.bounds.Extend(v)
		}

		if isFaceLine(line) && m.faceCount < maxFaces {
			m.faceCount++
			slots, indices := parseFaceLine(line)
			m.allocateFaceIndices(m.faceCount, slots)
			m.faces[m.faceCount] = append(m.faces[m.faceCount], indices...)
		}
	}
	return scanner.Err()
}

// newLineScanner returns a line scanner that accepts lines longer than
// bufio's default token size; large faces can run past 64KiB.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return scanner
}
