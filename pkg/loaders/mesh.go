package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// MeshData contains the raw vertex and face data of a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle), 0-based
}

// GetTriangleCount returns the number of faces read
func (m *MeshData) GetTriangleCount() int {
	return len(m.Faces) / 3
}

// LoadMesh reads a mesh file. Files ending in .ply are read as PLY; anything
// else is read as "v x y z" and "f i j k" records.
func LoadMesh(filename string, logger core.Logger) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	parse := ParseMesh
	if strings.EqualFold(filepath.Ext(filename), ".ply") {
		parse = ParsePLY
	}

	data, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mesh %s: %w", filename, err)
	}

	if logger != nil {
		logger.Printf("Loaded mesh %s: %d vertices, %d triangles in %v\n",
			filename, len(data.Vertices), data.GetTriangleCount(), time.Since(startTime))
	}
	return data, nil
}

// ParseMesh parses mesh records from reader. Vertex records are "v x y z";
// face records are "f i j k" with 1-based indices, where each index may use
// the "i/t/n" form and only i is kept. Every face must have exactly three
// vertices. Other record types are ignored.
func ParseMesh(reader io.Reader) (*MeshData, error) {
	data := &MeshData{
		Vertices: make([]core.Vec3, 0),
		Faces:    make([]int, 0),
	}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Faces = append(data.Faces, face[:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	for i, index := range data.Faces {
		if index >= len(data.Vertices) {
			return nil, fmt.Errorf("face %d references vertex %d, only %d vertices defined", i/3+1, index+1, len(data.Vertices))
		}
	}
	return data, nil
}

// LoadTriangleMesh loads a mesh file and builds a primitive from it
func LoadTriangleMesh(filename string, logger core.Logger) (*geometry.TriangleMesh, error) {
	data, err := LoadMesh(filename, logger)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewTriangleMesh(data.Vertices, data.Faces)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh %s: %w", filename, err)
	}
	return mesh, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q", fields[i])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

func parseFace(fields []string) ([3]int, error) {
	var face [3]int
	if len(fields) != 3 {
		return face, fmt.Errorf("face has %d vertices, mesh must be triangulated", len(fields))
	}
	for i, field := range fields {
		indexText, _, _ := strings.Cut(field, "/")
		index, err := strconv.Atoi(indexText)
		if err != nil {
			return face, fmt.Errorf("invalid face index %q", field)
		}
		if index < 1 {
			return face, fmt.Errorf("face index %d out of range, indices start at 1", index)
		}
		face[i] = index - 1
	}
	return face, nil
}
