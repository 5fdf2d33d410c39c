package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCount is returned for an element or list count that cannot be a length
var ErrInvalidCount = errors.New("invalid count")

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string // Scalar type, or the element type of a list
	IsList   bool
	ListType string // For list properties, the type of the count
}

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "ascii" or "binary_little_endian"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYMesh contains the triangle data loaded from a PLY file
type PLYMesh struct {
	Vertices  []core.Vec3
	TexCoords []core.Vec2 // Per-vertex (u, v); empty if the file has none
	Faces     [][3]int    // Triangles; polygons are fan-triangulated
}

// LoadPLY loads an ASCII or binary PLY file
func LoadPLY(filename string) (*PLYMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY file %s: %w", filename, err)
	}
	return mesh, nil
}

// ReadPLY parses a PLY stream
func ReadPLY(reader *bufio.Reader) (*PLYMesh, error) {
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		values = &asciiReader{scanner: newWordScanner(reader)}
	case "binary_little_endian":
		values = &binaryReader{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryReader{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	return readPLYBody(header, values)
}

// parsePLYHeader reads lines up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var currentElement string

	first, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(first) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unexpected end of header: %w", err)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			if count < 0 {
				return nil, fmt.Errorf("element %s: %w %d", parts[1], ErrInvalidCount, count)
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				if count > 0 {
					return nil, fmt.Errorf("unsupported element %q", currentElement)
				}
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{Name: parts[3], Type: parts[2], IsList: true, ListType: parts[1]}, nil
	}
	return PLYProperty{Name: parts[1], Type: parts[0]}, nil
}

func readPLYBody(header *PLYHeader, values valueReader) (*PLYMesh, error) {
	mesh := &PLYMesh{}

	hasUV := false
	for _, prop := range header.VertexProps {
		if prop.Name == "u" || prop.Name == "s" || prop.Name == "texture_u" {
			hasUV = true
		}
	}

	for i := 0; i < header.VertexCount; i++ {
		var position [3]float64
		var uv [2]float64
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if err := skipList(values, prop); err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				continue
			}
			value, err := values.read(prop.Type)
			if err != nil {
				return nil, fmt.Errorf("vertex %d property %s: %w", i, prop.Name, err)
			}
			switch prop.Name {
			case "x":
				position[0] = value
			case "y":
				position[1] = value
			case "z":
				position[2] = value
			case "u", "s", "texture_u":
				uv[0] = value
			case "v", "t", "texture_v":
				uv[1] = value
			}
		}
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(position[0], position[1], position[2]))
		if hasUV {
			mesh.TexCoords = append(mesh.TexCoords, core.NewVec2(uv[0], uv[1]))
		}
	}

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
				var err error
				if prop.IsList {
					err = skipList(values, prop)
				} else {
					_, err = values.read(prop.Type)
				}
				if err != nil {
					return nil, fmt.Errorf("face %d property %s: %w", i, prop.Name, err)
				}
				continue
			}

			indices, err := readList(values, prop)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			if len(indices) < 3 {
				return nil, fmt.Errorf("face %d has %d vertices", i, len(indices))
			}
			for _, index := range indices {
				if index < 0 || index >= len(mesh.Vertices) {
					return nil, fmt.Errorf("face %d references vertex %d of %d", i, index, len(mesh.Vertices))
				}
			}
			for k := 1; k+1 < len(indices); k++ {
				mesh.Faces = append(mesh.Faces, [3]int{indices[0], indices[k], indices[k+1]})
			}
		}
	}

	return mesh, nil
}

func readList(values valueReader, prop PLYProperty) ([]int, error) {
	count, err := values.read(prop.ListType)
	if err != nil {
		return nil, fmt.Errorf("failed to read list count: %w", err)
	}
	if count < 0 || count > math.MaxInt32 || count != math.Trunc(count) {
		return nil, fmt.Errorf("list %s: %w %v", prop.Name, ErrInvalidCount, count)
	}

	// The count comes from the file, so the slice grows as items are read
	var items []int
	for k := 0; k < int(count); k++ {
		value, err := values.read(prop.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to read list item %d: %w", k, err)
		}
		items = append(items, int(value))
	}
	return items, nil
}

func skipList(values valueReader, prop PLYProperty) error {
	_, err := readList(values, prop)
	return err
}

// valueReader reads one scalar of a PLY type from the body
type valueReader interface {
	read(dataType string) (float64, error)
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func newWordScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	return scanner
}

func (a *asciiReader) read(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryReader struct {
	reader io.Reader
	order  binary.ByteOrder
	buffer [8]byte
}

func (b *binaryReader) read(dataType string) (float64, error) {
	size := typeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported PLY data type: %s", dataType)
	}
	buf := b.buffer[:size]
	if _, err := io.ReadFull(b.reader, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default:
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

// typeSize returns the size in bytes of a PLY scalar type, 0 if unknown
func typeSize(dataType string) int {
	switch dataType {
	case "char", "uchar", "int8", "uint8":
		return 1
	case "short", "ushort", "int16", "uint16":
		return 2
	case "int", "uint", "float", "int32", "uint32", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}
