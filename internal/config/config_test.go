package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"softraster/internal/mathutil"
	"softraster/internal/render"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	src := `{"mesh": "head.obj", "width": 320, "mode": "scanline", "light": [0, 1, 0], "yaw": 30}`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mesh != "head.obj" || cfg.Width != 320 || cfg.Mode != "scanline" || cfg.Yaw != 30 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.Light != [3]float64{0, 1, 0} {
		t.Errorf("light = %v", cfg.Light)
	}
	if cfg.Height != 0 {
		t.Errorf("unset height = %d, want 0 before Resolve", cfg.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width: nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Mesh != DefaultMesh || cfg.Output != DefaultOutput {
		t.Errorf("paths = %q, %q", cfg.Mesh, cfg.Output)
	}
	if cfg.Width != 800 || cfg.Height != 800 {
		t.Errorf("size = %dx%d, want 800x800", cfg.Width, cfg.Height)
	}
	if cfg.Mode != "zbuffer" {
		t.Errorf("mode = %q, want zbuffer", cfg.Mode)
	}
	if cfg.Light != [3]float64{0, 0, -1} {
		t.Errorf("light = %v, want toward viewer", cfg.Light)
	}
	if cfg.Background != [4]uint8{0, 0, 0, 255} {
		t.Errorf("background = %v, want opaque black", cfg.Background)
	}
	if cfg.Scale != 1 || cfg.Workers < 1 {
		t.Errorf("scale = %d, workers = %d", cfg.Scale, cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Mesh: "file.obj", Width: 100, Mode: "scanline", Output: "a.png"}
	cfg.Resolve(Flags{Mesh: "flag.obj", Width: 64, Height: 32, Mode: "wireframe", Fit: true, Pitch: -15})

	if cfg.Mesh != "flag.obj" {
		t.Errorf("mesh = %q, want flag value", cfg.Mesh)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("size = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.Mode != "wireframe" || !cfg.Fit || cfg.Pitch != -15 {
		t.Errorf("resolved %+v", cfg)
	}
	if cfg.Output != "a.png" {
		t.Errorf("output = %q, file value should survive empty flag", cfg.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Mode = "raytrace" }},
		{"bad size", func(c *Config) { c.Width = -1 }},
		{"bad extension", func(c *Config) { c.Output = "out.jpg" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{})
			tc.edit(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Config{Width: 10, Height: 20, Mode: "scanline", Background: [4]uint8{1, 2, 3, 4}, Yaw: 45}
	cfg.Resolve(Flags{})

	opts := cfg.RenderOptions()
	if opts.Width != 10 || opts.Height != 20 || opts.Mode != render.ModeScanline || opts.Yaw != 45 {
		t.Errorf("options = %+v", opts)
	}
	if opts.Background != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("background = %v", opts.Background)
	}
	if opts.Light != (mathutil.Vec3{0, 0, -1}) {
		t.Errorf("light = %v", opts.Light)
	}
}
