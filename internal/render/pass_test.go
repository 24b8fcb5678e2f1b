package render

import (
	"image"
	"image/color"
	"testing"

	"softraster/internal/mathutil"
	"softraster/internal/mesh"
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// quad spans the whole [-1,1] square at z=0, wound to face DefaultLight.
func quad() *mesh.Model {
	return &mesh.Model{
		Verts: []mathutil.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func countColor(img *image.NRGBA, c color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPassQuadFillsCanvas(t *testing.T) {
	for _, mode := range []Mode{ModeZBuffer, ModeScanline} {
		t.Run(mode.String(), func(t *testing.T) {
			p := NewPass(quad(), Options{Width: 4, Height: 4, Mode: mode, Background: black})
			st := p.Run()

			if st.Faces != 2 || st.Drawn != 2 || st.Culled != 0 {
				t.Errorf("stats = %+v, want 2 faces drawn", st)
			}
			if n := countColor(p.Image(), white); n != 16 {
				t.Errorf("%d of 16 pixels white", n)
			}
		})
	}
}

func TestPassEmptyMesh(t *testing.T) {
	bg := color.NRGBA{12, 34, 56, 255}
	for _, mode := range []Mode{ModeZBuffer, ModeScanline, ModeWireframe} {
		p := NewPass(&mesh.Model{}, Options{Width: 4, Height: 4, Mode: mode, Background: bg})
		st := p.Run()
		if st != (Stats{}) {
			t.Errorf("%v: stats = %+v, want zero", mode, st)
		}
		if n := countColor(p.Image(), bg); n != 16 {
			t.Errorf("%v: %d of 16 pixels kept the background", mode, n)
		}
	}
}

func TestPassCulledFacesDrawNothing(t *testing.T) {
	m := &mesh.Model{
		Verts: quad().Verts,
		Faces: [][3]int{{0, 2, 1}, {0, 3, 2}},
	}
	for _, mode := range []Mode{ModeZBuffer, ModeScanline, ModeWireframe} {
		t.Run(mode.String(), func(t *testing.T) {
			p := NewPass(m, Options{Width: 8, Height: 8, Mode: mode, Background: black})
			st := p.Run()
			if st.Culled != 2 || st.Drawn != 0 {
				t.Errorf("stats = %+v, want both faces culled", st)
			}
			if n := countColor(p.Image(), black); n != 64 {
				t.Errorf("culled faces changed %d pixels", 64-n)
			}
		})
	}
}

func TestPassNearerFaceWins(t *testing.T) {
	// Tilted in depth so its flat shade differs from the far face, and
	// nearer than it everywhere.
	near := [3]mathutil.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0.5}}
	far := [3]mathutil.Vec3{{-1, -1, -0.5}, {1, -1, -0.5}, {1, 1, -0.5}}

	intensity, _ := Shade(near[0], near[1], near[2], DefaultLight)
	want := FaceColor(intensity)
	if want == white {
		t.Fatal("test faces must shade differently")
	}

	build := func(first, second [3]mathutil.Vec3) *mesh.Model {
		return &mesh.Model{
			Verts: []mathutil.Vec3{first[0], first[1], first[2], second[0], second[1], second[2]},
			Faces: [][3]int{{0, 1, 2}, {3, 4, 5}},
		}
	}

	for name, m := range map[string]*mesh.Model{
		"near first": build(near, far),
		"far first":  build(far, near),
	} {
		t.Run(name, func(t *testing.T) {
			p := NewPass(m, Options{Width: 16, Height: 16, Background: black})
			p.Run()
			fb := p.FrameBuffer()
			painted := 0
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					c := fb.At(x, y)
					if c == black {
						continue
					}
					painted++
					if c != want {
						t.Fatalf("pixel (%d,%d) = %v, want nearer face %v", x, y, c, want)
					}
				}
			}
			if painted == 0 {
				t.Fatal("nothing painted")
			}
		})
	}
}

func TestPassWireframe(t *testing.T) {
	p := NewPass(quad(), Options{Width: 9, Height: 9, Mode: ModeWireframe, Background: black})
	p.Run()
	img := p.Image()

	if n := countColor(img, white); n == 0 {
		t.Fatal("wireframe drew nothing")
	}
	// The centre of each half lies off every edge.
	fb := p.FrameBuffer()
	if got := fb.At(6, 2); got != black {
		t.Errorf("interior pixel filled in wireframe: %v", got)
	}
	if got := fb.At(0, 0); got != white {
		t.Errorf("corner pixel = %v, want edge color", got)
	}
}

func TestPassYawTurnsQuadAway(t *testing.T) {
	p := NewPass(quad(), Options{Width: 4, Height: 4, Yaw: 180, Background: black})
	st := p.Run()
	if st.Culled != 2 {
		t.Errorf("stats = %+v, want both faces culled after half turn", st)
	}
}

func TestPassLightDefaultsAndNormalizes(t *testing.T) {
	p := NewPass(quad(), Options{Width: 4, Height: 4, Light: mathutil.Vec3{0, 0, -10}, Background: black})
	p.Run()
	if n := countColor(p.Image(), white); n != 16 {
		t.Errorf("unnormalized light: %d of 16 pixels white", n)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeZBuffer, ModeScanline, ModeWireframe} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMode("ZBUFFER"); err != nil || got != ModeZBuffer {
		t.Errorf("ParseMode is case-sensitive: %v, %v", got, err)
	}
	if _, err := ParseMode("raytrace"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
	if s := Mode(42).String(); s != "Mode(42)" {
		t.Errorf("unknown mode String = %q", s)
	}
}
