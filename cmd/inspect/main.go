package main

import (
	"flag"
	"fmt"
	"os"

	"softraster/internal/mathutil"
	"softraster/internal/mesh"
	"softraster/internal/render"
)

func main() {
	yaw := flag.Float64("yaw", 0, "Turn the model around Y before shading (degrees)")
	pitch := flag.Float64("pitch", 0, "Tilt the model around X before shading (degrees)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] mesh.obj\n", os.Args[0])
		os.Exit(1)
	}
	path := flag.Arg(0)

	m, err := mesh.LoadOBJ(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lo, hi := mesh.Bounds(m)
	size := hi.Sub(lo)
	fmt.Printf("Mesh: %s\n", path)
	fmt.Printf("  Vertices: %d, Faces: %d\n", m.VertexCount(), m.FaceCount())
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("  Size: %.3f x %.3f x %.3f\n", size[0], size[1], size[2])
	for k := 0; k < 3; k++ {
		if lo[k] < -1 || hi[k] > 1 {
			fmt.Println("  Note: mesh leaves the unit cube; render with -fit to see all of it")
			break
		}
	}

	view := mathutil.ViewRotation(*yaw, *pitch)

	// Classify faces by dominant normal axis and by the shader's verdict.
	areaByDir := map[string]float64{}
	visible, culled, degenerate := 0, 0, 0
	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		v0 := view.MulVec3(m.Vertex(f[0]))
		v1 := view.MulVec3(m.Vertex(f[1]))
		v2 := view.MulVec3(m.Vertex(f[2]))

		n := v2.Sub(v0).Cross(v1.Sub(v0))
		area := 0.5 * n.Len()
		if area < 1e-12 {
			degenerate++
		}
		areaByDir[direction(n)] += area

		if _, ok := render.Shade(v0, v1, v2, render.DefaultLight); ok {
			visible++
		} else {
			culled++
		}
	}

	fmt.Println("  --- Surface area by facing ---")
	for _, d := range []string{"-Z(viewer)", "+Z(away)", "+X(right)", "-X(left)", "+Y(up)", "-Y(down)"} {
		fmt.Printf("  %-10s %.4f sq units\n", d, areaByDir[d])
	}
	fmt.Println("  --- Shading toward the viewer ---")
	fmt.Printf("  Visible: %d, Culled: %d (degenerate: %d)\n", visible, culled, degenerate)
}

// direction names the axis the (unnormalized) face normal points along most.
func direction(n mathutil.Vec3) string {
	ax, ay, az := abs(n[0]), abs(n[1]), abs(n[2])
	switch {
	case ax >= ay && ax >= az:
		if n[0] > 0 {
			return "+X(right)"
		}
		return "-X(left)"
	case ay >= ax && ay >= az:
		if n[1] > 0 {
			return "+Y(up)"
		}
		return "-Y(down)"
	default:
		if n[2] > 0 {
			return "+Z(away)"
		}
		return "-Z(viewer)"
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
