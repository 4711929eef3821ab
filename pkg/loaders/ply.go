package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name      string
	Type      string // Value type, or element type for lists
	IsList    bool
	CountType string // For list properties, the type of the count
}

// PLYElement is one "element" block of the header
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYHeader describes the layout of a PLY body
type PLYHeader struct {
	Format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// plyValueReader reads one scalar of a PLY data type from the body
type plyValueReader interface {
	read(dataType string) (float64, error)
}

// ParsePLY reads vertex positions and triangle faces from a PLY stream.
// ASCII and both binary encodings are accepted. Other vertex properties and
// elements are skipped. Faces must be triangles.
func ParsePLY(reader io.Reader) (*MeshData, error) {
	buffered := bufio.NewReader(reader)

	header, err := parsePLYHeader(buffered)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(buffered)
		scanner.Split(bufio.ScanWords)
		values = &asciiPLYReader{scanner: scanner}
	case "binary_little_endian":
		values = &binaryPLYReader{reader: buffered, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryPLYReader{reader: buffered, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &MeshData{
		Vertices: make([]core.Vec3, 0),
		Faces:    make([]int, 0),
	}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := readPLYElement(values, element, data); err != nil {
				return nil, fmt.Errorf("%s %d: %w", element.Name, i, err)
			}
		}
	}

	for i, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face %d references vertex %d, only %d vertices defined", i/3, index, len(data.Vertices))
		}
	}
	return data, nil
}

// readPLYElement reads one instance of element, keeping vertex positions and
// face indices and discarding everything else
func readPLYElement(values plyValueReader, element PLYElement, data *MeshData) error {
	var position [3]float64

	for _, prop := range element.Properties {
		if prop.IsList {
			count, err := values.read(prop.CountType)
			if err != nil {
				return fmt.Errorf("failed to read %s count: %w", prop.Name, err)
			}

			isFace := element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index")
			if isFace && int(count) != 3 {
				return fmt.Errorf("only triangular faces supported, got %d vertices", int(count))
			}

			for j := 0; j < int(count); j++ {
				value, err := values.read(prop.Type)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", prop.Name, err)
				}
				if isFace {
					data.Faces = append(data.Faces, int(value))
				}
			}
			continue
		}

		value, err := values.read(prop.Type)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", prop.Name, err)
		}
		if element.Name == "vertex" {
			switch prop.Name {
			case "x":
				position[0] = value
			case "y":
				position[1] = value
			case "z":
				position[2] = value
			}
		}
	}

	if element.Name == "vertex" {
		data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
	}
	return nil
}

// parsePLYHeader reads header lines up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	header := &PLYHeader{}
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) != 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid %s count %q", parts[1], parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, prop)
		case "comment", "obj_info":
			// Ignore
		case "end_header":
			if header.Format == "" {
				return nil, fmt.Errorf("missing format line")
			}
			return header, nil
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}
	}
}

// parsePLYProperty parses "type name" or "list countType type name"
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) == 4 && parts[0] == "list" {
		return PLYProperty{Name: parts[3], Type: parts[2], IsList: true, CountType: parts[1]}, nil
	}
	if len(parts) == 2 {
		return PLYProperty{Name: parts[1], Type: parts[0]}, nil
	}
	return PLYProperty{}, fmt.Errorf("invalid property definition: %v", parts)
}

type asciiPLYReader struct {
	scanner *bufio.Scanner
}

func (r *asciiPLYReader) read(dataType string) (float64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	value, err := strconv.ParseFloat(r.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, r.scanner.Text())
	}
	return value, nil
}

type binaryPLYReader struct {
	reader io.Reader
	order  binary.ByteOrder
}

func (r *binaryPLYReader) read(dataType string) (float64, error) {
	switch dataType {
	case "char", "int8":
		return readBinaryValue[int8](r.reader, r.order)
	case "uchar", "uint8":
		return readBinaryValue[uint8](r.reader, r.order)
	case "short", "int16":
		return readBinaryValue[int16](r.reader, r.order)
	case "ushort", "uint16":
		return readBinaryValue[uint16](r.reader, r.order)
	case "int", "int32":
		return readBinaryValue[int32](r.reader, r.order)
	case "uint", "uint32":
		return readBinaryValue[uint32](r.reader, r.order)
	case "float", "float32":
		return readBinaryValue[float32](r.reader, r.order)
	case "double", "float64":
		return readBinaryValue[float64](r.reader, r.order)
	}
	return 0, fmt.Errorf("unsupported PLY data type: %s", dataType)
}

func readBinaryValue[T int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64](reader io.Reader, order binary.ByteOrder) (float64, error) {
	var value T
	if err := binary.Read(reader, order, &value); err != nil {
		return 0, err
	}
	return float64(value), nil
}
