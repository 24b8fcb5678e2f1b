package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"softraster/internal/config"
	"softraster/internal/imageio"
	"softraster/internal/mesh"
	"softraster/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("o", "", "Output image (.tga, .bmp, .png, .webp; default: output.tga)")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 800)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 800)")
	mode := flag.String("mode", "", "Rasterizer: zbuffer, scanline or wireframe (default: zbuffer)")
	scale := flag.Int("scale", 0, "Enlarge the saved image by this integer factor")
	fit := flag.Bool("fit", false, "Recenter and rescale the mesh into the unit cube")
	yaw := flag.Float64("yaw", 0, "Turn the model around Y before rendering (degrees)")
	pitch := flag.Float64("pitch", 0, "Tilt the model around X before rendering (degrees)")
	verbose := flag.Bool("v", false, "Log pass details to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [mesh.obj]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:   flag.Arg(0),
		Output: *output,
		Width:  *width,
		Height: *height,
		Mode:   *mode,
		Scale:  *scale,
		Fit:    *fit,
		Yaw:    *yaw,
		Pitch:  *pitch,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := mesh.LoadOBJ(cfg.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	if cfg.Fit {
		m = mesh.Fit(m)
	}

	fmt.Printf("Mesh: %s (%d vertices, %d faces)\n", cfg.Mesh, m.VertexCount(), m.FaceCount())
	fmt.Printf("Canvas: %dx%d, mode: %s\n", cfg.Width, cfg.Height, cfg.Mode)

	start := time.Now()

	pass := render.NewPass(m, cfg.RenderOptions())
	stats := pass.Run()

	img := imageio.Upscale(pass.Image(), cfg.Scale)
	if err := imageio.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Drawn %d/%d faces (%d culled) in %v\n", stats.Drawn, stats.Faces, stats.Culled, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Output: %s\n", cfg.Output)
}
