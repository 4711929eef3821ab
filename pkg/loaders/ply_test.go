package loaders

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// createTestPLY builds a binary PLY square made of two triangles, with an
// extra per-vertex property and an extra face property to skip
func createTestPLY(t *testing.T, order binary.ByteOrder, format string) []byte {
	t.Helper()
	var buf bytes.Buffer

	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment test square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	buf.WriteString("property uchar red\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("property uchar flags\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for _, v := range vertices {
		if err := binary.Write(&buf, order, v); err != nil {
			t.Fatal(err)
		}
		buf.WriteByte(255)
	}

	faces := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	for _, f := range faces {
		buf.WriteByte(3)
		if err := binary.Write(&buf, order, f); err != nil {
			t.Fatal(err)
		}
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

func TestParsePLY_Binary(t *testing.T) {
	tests := []struct {
		name   string
		order  binary.ByteOrder
		format string
	}{
		{"little endian", binary.LittleEndian, "binary_little_endian"},
		{"big endian", binary.BigEndian, "binary_big_endian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParsePLY(bytes.NewReader(createTestPLY(t, tt.order, tt.format)))
			if err != nil {
				t.Fatalf("ParsePLY failed: %v", err)
			}

			if len(data.Vertices) != 4 {
				t.Fatalf("Expected 4 vertices, got %d", len(data.Vertices))
			}
			if data.Vertices[2] != core.NewVec3(1, 1, 0) {
				t.Errorf("Unexpected vertex 2: %v", data.Vertices[2])
			}
			expectedFaces := []int{0, 1, 2, 0, 2, 3}
			if len(data.Faces) != len(expectedFaces) {
				t.Fatalf("Expected %d face indices, got %d", len(expectedFaces), len(data.Faces))
			}
			for i, expected := range expectedFaces {
				if data.Faces[i] != expected {
					t.Errorf("Face index %d = %d, expected %d", i, data.Faces[i], expected)
				}
			}
		})
	}
}

func TestParsePLY_ASCII(t *testing.T) {
	input := `ply
format ascii 1.0
element vertex 3
property double x
property double y
property double z
property double nx
element face 1
property list uchar uint vertex_index
end_header
0 0 0 1
2 0 0 1
0 2 0.5 1
3 2 1 0
`
	data, err := ParsePLY(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePLY failed: %v", err)
	}
	if data.Vertices[2] != core.NewVec3(0, 2, 0.5) {
		t.Errorf("Unexpected vertex 2: %v", data.Vertices[2])
	}
	if data.Faces[0] != 2 || data.Faces[2] != 0 {
		t.Errorf("Unexpected face %v", data.Faces)
	}
}

func TestParsePLY_Errors(t *testing.T) {
	header := "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
		"element face 1\nproperty list uchar int vertex_indices\nend_header\n"
	vertices := "0 0 0\n1 0 0\n0 1 0\n"

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n", "magic"},
		{"no end_header", "ply\nformat ascii 1.0\nelement vertex 1\n", "end_header"},
		{"unknown format", "ply\nformat binary_middle_endian 1.0\nend_header\n", "unsupported PLY format"},
		{"property before element", "ply\nformat ascii 1.0\nproperty float x\nend_header\n", "before any element"},
		{"quad face", header + vertices + "4 0 1 2 0\n", "triangular"},
		{"truncated body", header + "0 0 0\n1 0\n", "vertex 1"},
		{"index out of range", header + vertices + "3 0 1 5\n", "references vertex 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePLY(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}
