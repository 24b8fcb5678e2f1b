package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/imageio"
	"softraster/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "png", "Image format: tga, bmp, png or webp")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 800)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 800)")
	mode := flag.String("mode", "", "Rasterizer: zbuffer, scanline or wireframe (default: zbuffer)")
	scale := flag.Int("scale", 0, "Enlarge saved images by this integer factor")
	fit := flag.Bool("fit", false, "Recenter and rescale each mesh into the unit cube")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log progress to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <mesh-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
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
		OutputDir: *outputDir,
		Output:    "frame." + *format,
		Width:     *width,
		Height:    *height,
		Mode:      *mode,
		Scale:     *scale,
		Workers:   *workers,
		Fit:       *fit,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	items, err := batch.Discover(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		fmt.Println("No meshes to render.")
		os.Exit(0)
	}

	fmt.Printf("Meshes: %d, Workers: %d\n", len(items), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    imageio.Format(*format),
		Options:   cfg.RenderOptions(),
		Fit:       cfg.Fit,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
	}, items)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(items))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
