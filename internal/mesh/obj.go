package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"softraster/internal/mathutil"
)

// LoadOBJ reads a Wavefront OBJ file and returns its triangles.
// Only "v" and "f" records are used; everything else is skipped.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("obj: %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses OBJ text. Polygons with more than three corners are split
// into a fan around their first corner (0-1-2, 0-2-3, ...). Negative indices
// count back from the most recent vertex.
func ParseOBJ(r io.Reader) (*Model, error) {
	m := &Model{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Verts = append(m.Verts, v)
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices, got %d", line, len(corners))
			}
			idx := make([]int, len(corners))
			for k, c := range corners {
				vi, err := parseIndex(c, len(m.Verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx[k] = vi
			}
			for k := 1; k+1 < len(idx); k++ {
				m.Faces = append(m.Faces, [3]int{idx[0], idx[k], idx[k+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var v mathutil.Vec3
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[k], err)
		}
		v[k] = f
	}
	return v, nil
}

// parseIndex resolves the position part of a face corner ("7", "7/1",
// "7//3", "7/1/3") to a 0-based vertex index.
func parseIndex(corner string, nverts int) (int, error) {
	pos, _, _ := strings.Cut(corner, "/")
	n, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("face index %q: %w", corner, err)
	}

	var vi int
	switch {
	case n > 0:
		vi = n - 1
	case n < 0:
		vi = nverts + n
	default:
		return 0, fmt.Errorf("face index %q: %w", corner, ErrBadIndex)
	}
	if vi < 0 || vi >= nverts {
		return 0, fmt.Errorf("face index %q: %w", corner, ErrBadIndex)
	}
	return vi, nil
}
