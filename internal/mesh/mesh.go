// Package mesh holds triangle meshes and the loaders that produce them.
package mesh

import (
	"errors"
	"math"

	"softraster/internal/mathutil"
)

// ErrBadIndex reports a face that references a vertex which does not exist.
var ErrBadIndex = errors.New("face index out of range")

// Mesh is the read-only view a render pass needs. Indices are 0-based and
// are not validated by callers; loaders reject bad references up front.
type Mesh interface {
	FaceCount() int
	Face(i int) [3]int
	Vertex(i int) mathutil.Vec3
}

// Model is a slice-backed Mesh.
type Model struct {
	Verts []mathutil.Vec3
	Faces [][3]int
}

func (m *Model) FaceCount() int             { return len(m.Faces) }
func (m *Model) Face(i int) [3]int          { return m.Faces[i] }
func (m *Model) Vertex(i int) mathutil.Vec3 { return m.Verts[i] }
func (m *Model) VertexCount() int           { return len(m.Verts) }

// Validate checks every face index against the vertex list.
func (m *Model) Validate() error {
	for _, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(m.Verts) {
				return ErrBadIndex
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty
// model reports zero vectors.
func Bounds(m *Model) (lo, hi mathutil.Vec3) {
	if len(m.Verts) == 0 {
		return mathutil.Vec3{}, mathutil.Vec3{}
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Verts {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Fit returns a copy of m centred on the origin and uniformly scaled so the
// largest extent spans [-1, 1]. Faces are shared with m.
func Fit(m *Model) *Model {
	out := &Model{
		Verts: make([]mathutil.Vec3, len(m.Verts)),
		Faces: m.Faces,
	}
	if len(m.Verts) == 0 {
		return out
	}

	lo, hi := Bounds(m)
	center := lo.Add(hi).Scale(0.5)
	size := hi.Sub(lo)
	span := math.Max(size[0], math.Max(size[1], size[2]))
	if span < 1e-12 {
		span = 1e-12
	}
	scale := 2 / span

	for i, v := range m.Verts {
		out.Verts[i] = v.Sub(center).Scale(scale)
	}
	return out
}
