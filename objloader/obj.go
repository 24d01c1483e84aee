// Package objloader parses a minimal subset of Wavefront OBJ (vertex
// positions and triangular faces only) into geometry.Triangle values
// with accumulated, area-weighted per-vertex normals, ported from
// original_source/obj.h.
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/geometry"
)

// Mesh holds the parsed triangles and the shared per-vertex positions
// and normals they were built from.
type Mesh struct {
	Vertices  []core.Point3
	Normals   []core.Vec3
	Triangles []*geometry.Triangle
}

// face is a parsed "f v0 v1 v2" line, zero-indexed.
type face struct {
	v0, v1, v2 int
}

// Load parses r as an OBJ file and builds a Mesh whose triangles all
// share the given material. Lines starting with "v" are vertex
// positions; lines starting with "f" are triangular faces (quads and
// higher are not supported — spec's objloader Non-goals exclude
// polygon fan/ear-clip triangulation). Every other line is ignored.
func Load(r io.Reader, mat core.Material) (*Mesh, error) {
	var vertices []core.Point3
	var faces []face

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			p, err := parseVertex(line)
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			vertices = append(vertices, p)
		case strings.HasPrefix(line, "f "):
			f, err := parseFace(line, len(vertices))
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			faces = append(faces, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: %w", err)
	}

	normals := make([]core.Vec3, len(vertices))
	triangles := make([]*geometry.Triangle, len(faces))
	for i, f := range faces {
		tri := geometry.NewTriangle(vertices[f.v0], vertices[f.v1], vertices[f.v2], mat)
		n := geometry.FaceNormal(vertices[f.v0], vertices[f.v1], vertices[f.v2])
		normals[f.v0] = normals[f.v0].Add(n)
		normals[f.v1] = normals[f.v1].Add(n)
		normals[f.v2] = normals[f.v2].Add(n)
		triangles[i] = tri
	}
	for i := range normals {
		normals[i] = normals[i].Unit()
	}
	for i, f := range faces {
		triangles[i].N0 = normals[f.v0]
		triangles[i].N1 = normals[f.v1]
		triangles[i].N2 = normals[f.v2]
	}

	return &Mesh{Vertices: vertices, Normals: normals, Triangles: triangles}, nil
}

func parseVertex(line string) (core.Point3, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return core.Point3{}, fmt.Errorf("malformed vertex line %q", line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Point3{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Point3{}, err
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return core.Point3{}, err
	}
	return core.V3(x, y, z), nil
}

func parseFace(line string, vertexCount int) (face, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return face{}, fmt.Errorf("malformed face line %q", line)
	}
	idx := make([]int, 3)
	for i := 0; i < 3; i++ {
		// OBJ faces may carry "v/vt/vn" groups; only the vertex index
		// before the first slash is needed here.
		token := fields[i+1]
		if slash := strings.IndexByte(token, '/'); slash >= 0 {
			token = token[:slash]
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return face{}, err
		}
		v-- // OBJ indices are 1-based
		if v < 0 || v >= vertexCount {
			return face{}, fmt.Errorf("face vertex index %d out of range", v+1)
		}
		idx[i] = v
	}
	return face{v0: idx[0], v1: idx[1], v2: idx[2]}, nil
}
