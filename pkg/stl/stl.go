// Package stl writes kernel meshes as binary STL, the exchange format
// every slicer accepts.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tinfab/rackmount/pkg/kernel"
)

// headerSize is the fixed binary STL header length.
const headerSize = 80

// Write encodes the mesh as binary STL: an 80-byte header, a uint32
// triangle count, then 50 bytes per triangle (normal, three vertices,
// attribute word), all little-endian.
func Write(w io.Writer, m *kernel.Mesh) error {
	if m == nil || m.IsEmpty() {
		return fmt.Errorf("stl: refusing to write an empty mesh")
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("stl: index count %d is not a multiple of 3", len(m.Indices))
	}

	var header [headerSize]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: write header: %w", err)
	}

	numTri := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, numTri); err != nil {
		return fmt.Errorf("stl: write triangle count: %w", err)
	}

	// 12 floats (normal + 3 vertices) plus the attribute word.
	var record [50]byte
	for t := 0; t < int(numTri); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]

		off := 0
		put := func(f float32) {
			binary.LittleEndian.PutUint32(record[off:], math.Float32bits(f))
			off += 4
		}

		// Per-face normal: reuse the first vertex normal, which the
		// kernel emits as a flat face normal.
		put(m.Normals[i0*3])
		put(m.Normals[i0*3+1])
		put(m.Normals[i0*3+2])
		for _, idx := range []uint32{i0, i1, i2} {
			put(m.Vertices[idx*3])
			put(m.Vertices[idx*3+1])
			put(m.Vertices[idx*3+2])
		}
		record[48] = 0 // attribute byte count
		record[49] = 0

		if _, err := w.Write(record[:]); err != nil {
			return fmt.Errorf("stl: write triangle %d: %w", t, err)
		}
	}
	return nil
}

// Save writes the mesh to the named file.
func Save(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("stl: close %s: %w", path, err)
	}
	return nil
}
