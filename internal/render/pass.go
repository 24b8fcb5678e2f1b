// Package render drives a single CPU render pass: it pulls faces from a mesh,
// shades and culls them, projects them orthographically and hands them to
// the rasterizer selected for the pass.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/raster"
)

// Mode selects the rasterizer for a whole pass.
type Mode int

const (
	// ModeZBuffer fills faces with the barycentric rasterizer and a depth buffer.
	ModeZBuffer Mode = iota
	// ModeScanline fills faces with the 2D scanline filler, painter's order.
	ModeScanline
	// ModeWireframe draws face edges only.
	ModeWireframe
)

var modeNames = map[Mode]string{
	ModeZBuffer:   "zbuffer",
	ModeScanline:  "scanline",
	ModeWireframe: "wireframe",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("render: unknown mode %q", s)
}

// DefaultLight points from the scene towards the viewer.
var DefaultLight = mathutil.Vec3{0, 0, -1}

// Options configures one pass.
type Options struct {
	Width      int
	Height     int
	Mode       Mode
	Background color.NRGBA

	// Light is normalized by NewPass; the zero vector means DefaultLight.
	Light mathutil.Vec3

	// Yaw turns the model around Y, then Pitch around X, in degrees,
	// before shading and projection.
	Yaw   float64
	Pitch float64
}

// Stats summarises a finished pass.
type Stats struct {
	Faces  int
	Drawn  int
	Culled int
}

// Pass owns everything a render needs: the mesh, the output size and the
// buffers. It is not safe for concurrent use.
type Pass struct {
	mesh  mesh.Mesh
	opts  Options
	proj  Projector
	light mathutil.Vec3
	view  mathutil.Mat3
	turn  bool
	fb    *raster.FrameBuffer
}

// NewPass allocates the framebuffer (plus a depth buffer in ModeZBuffer)
// cleared to the background color.
func NewPass(m mesh.Mesh, opts Options) *Pass {
	light := opts.Light
	if light == (mathutil.Vec3{}) {
		light = DefaultLight
	}
	view := mathutil.ViewRotation(opts.Yaw, opts.Pitch)

	fb := raster.NewFrameBuffer(opts.Width, opts.Height, opts.Mode == ModeZBuffer)
	fb.Clear(opts.Background)

	return &Pass{
		mesh:  m,
		opts:  opts,
		proj:  Projector{Width: fb.Width, Height: fb.Height},
		light: light.Normalize(),
		view:  view,
		turn:  !view.IsIdentity(),
		fb:    fb,
	}
}

// Run draws every face of the mesh in order. Call it once per pass.
func (p *Pass) Run() Stats {
	log := Logger()
	log.Info("render pass", "mode", p.opts.Mode, "width", p.fb.Width, "height", p.fb.Height)

	var st Stats
	if p.mesh != nil {
		st.Faces = p.mesh.FaceCount()
	}
	for i := 0; i < st.Faces; i++ {
		if p.drawFace(p.mesh.Face(i)) {
			st.Drawn++
		} else {
			st.Culled++
		}
	}

	log.Debug("render pass done",
		slog.Int("faces", st.Faces),
		slog.Int("drawn", st.Drawn),
		slog.Int("culled", st.Culled))
	return st
}

// drawFace reports whether the face passed the visibility test.
func (p *Pass) drawFace(face [3]int) bool {
	var world [3]mathutil.Vec3
	for k, vi := range face {
		v := p.mesh.Vertex(vi)
		if p.turn {
			v = p.view.MulVec3(v)
		}
		world[k] = v
	}

	intensity, visible := Shade(world[0], world[1], world[2], p.light)
	if !visible {
		return false
	}
	c := FaceColor(intensity)

	switch p.opts.Mode {
	case ModeZBuffer:
		var pts [3]mathutil.Vec3
		for k := range world {
			pts[k] = p.proj.Project(world[k])
		}
		raster.TriangleZ(p.fb, pts, c)
	case ModeScanline:
		raster.Triangle(p.fb,
			p.proj.ProjectInt(world[0]), p.proj.ProjectInt(world[1]), p.proj.ProjectInt(world[2]), c)
	case ModeWireframe:
		raster.TriangleOutline(p.fb,
			p.proj.ProjectInt(world[0]), p.proj.ProjectInt(world[1]), p.proj.ProjectInt(world[2]), c)
	}
	return true
}

// FrameBuffer exposes the pass buffers, origin top-left.
func (p *Pass) FrameBuffer() *raster.FrameBuffer {
	return p.fb
}

// Image returns the finished picture flipped so screen y=0 is the bottom row.
func (p *Pass) Image() *image.NRGBA {
	return p.fb.Image()
}
