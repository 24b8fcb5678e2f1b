package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"softraster/internal/imageio"
	"softraster/internal/mathutil"
	"softraster/internal/render"
)

// Default paths used when neither the config file nor flags name one.
const (
	DefaultMesh   = "obj/african_head.obj"
	DefaultOutput = "output.tga"
)

// Config holds all render settings.
type Config struct {
	// Paths
	Mesh      string `json:"mesh"`
	Output    string `json:"output"`
	OutputDir string `json:"output_dir"` // batch runs only

	// Render settings
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Mode       string     `json:"mode"`
	Light      [3]float64 `json:"light"`
	Background [4]uint8   `json:"background"`
	Yaw        float64    `json:"yaw"`
	Pitch      float64    `json:"pitch"`
	Fit        bool       `json:"fit"`
	Scale      int        `json:"scale"`
	Workers    int        `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh      string
	Output    string
	OutputDir string
	Width     int
	Height    int
	Mode      string
	Scale     int
	Workers   int
	Fit       bool
	Yaw       float64
	Pitch     float64
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Fit {
		c.Fit = true
	}
	if flags.Yaw != 0 {
		c.Yaw = flags.Yaw
	}
	if flags.Pitch != 0 {
		c.Pitch = flags.Pitch
	}

	if c.Mesh == "" {
		c.Mesh = DefaultMesh
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Mode == "" {
		c.Mode = render.ModeZBuffer.String()
	}
	if c.Light == [3]float64{} {
		c.Light = [3]float64(render.DefaultLight)
	}
	if c.Background == [4]uint8{} {
		c.Background = [4]uint8{0, 0, 0, 255}
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that would make a render impossible.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := imageio.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RenderOptions converts the settings into pass options. Call after
// Resolve and Validate.
func (c *Config) RenderOptions() render.Options {
	mode, _ := render.ParseMode(c.Mode)
	return render.Options{
		Width:      c.Width,
		Height:     c.Height,
		Mode:       mode,
		Background: color.NRGBA{c.Background[0], c.Background[1], c.Background[2], c.Background[3]},
		Light:      mathutil.Vec3(c.Light),
		Yaw:        c.Yaw,
		Pitch:      c.Pitch,
	}
}
