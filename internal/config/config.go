// Package config loads meshssim settings from defaults, a YAML file and
// command line flags.
package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/curve"
)

// Config holds every tunable of the pipeline.
type Config struct {
	Layout  LayoutConfig  `yaml:"layout"`
	Models  []string      `yaml:"models"`
	Render  RenderConfig  `yaml:"render"`
	Views   ViewsConfig   `yaml:"views"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// LayoutConfig locates the simplification levels of each model.
type LayoutConfig struct {
	ModelDirectory string `yaml:"model_directory"`
	BaselineIndex  int    `yaml:"baseline_index"`
	LevelCount     int    `yaml:"level_count"`
	FileExtension  string `yaml:"file_extension"`
}

// RenderConfig holds the fixed rasterization settings.
type RenderConfig struct {
	Device       string     `yaml:"device"` // auto or cpu
	ImageSize    int        `yaml:"image_size"`
	Samples      int        `yaml:"samples"`
	Shading      string     `yaml:"shading"`
	Cull         string     `yaml:"cull"`
	Background   [3]float64 `yaml:"background"` // rgb in [0, 1]
	BaseColor    [3]float64 `yaml:"base_color"`
	VertexColors bool       `yaml:"vertex_colors"`
	Light        [3]float64 `yaml:"light"`
	Ambient      float64    `yaml:"ambient"`
	Diffuse      float64    `yaml:"diffuse"`
	Specular     float64    `yaml:"specular"`
	Shininess    float64    `yaml:"shininess"`
}

// ViewsConfig describes the orbit cameras.
type ViewsConfig struct {
	Count      int     `yaml:"count"`
	Distance   float64 `yaml:"distance"`
	Elevation  float64 `yaml:"elevation"`
	AzimuthMin float64 `yaml:"azimuth_min"`
	AzimuthMax float64 `yaml:"azimuth_max"`
	Fovy       float64 `yaml:"fovy"`
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
}

// OutputConfig says where result files go.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Truncate  bool   `yaml:"truncate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration of the original study.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			ModelDirectory: "models",
			BaselineIndex:  0,
			LevelCount:     100,
			FileExtension:  "obj",
		},
		Models: []string{"monkey", "teapot", "rose", "cow", "pumpkin"},
		Render: RenderConfig{
			Device:     "auto",
			ImageSize:  512,
			Samples:    1,
			Shading:    string(meshssim.ShadingFlat),
			Cull:       "none",
			Background: [3]float64{0, 0, 0},
			BaseColor:  [3]float64{0, 0.5, 1},
			Light:      [3]float64{1, 1, 1},
			Ambient:    0.5,
			Diffuse:    0.3,
			Specular:   0.2,
			Shininess:  64,
		},
		Views: ViewsConfig{
			Count:      5,
			Distance:   meshssim.DefaultDistance,
			Elevation:  0,
			AzimuthMin: -180,
			AzimuthMax: 180,
			Fovy:       meshssim.DefaultFovy,
			Near:       meshssim.DefaultNear,
			Far:        meshssim.DefaultFar,
		},
		Output: OutputConfig{
			Directory: "data/curve",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if err := c.CurveLayout().Validate(); err != nil {
		return err
	}
	if _, err := c.ResolveDevice(); err != nil {
		return err
	}
	if _, err := c.RenderSettings(); err != nil {
		return err
	}
	if c.Views.Count <= 0 {
		return fmt.Errorf("config: views.count must be positive, got %d", c.Views.Count)
	}
	if c.Views.Distance <= 0 {
		return fmt.Errorf("config: views.distance must be positive, got %g", c.Views.Distance)
	}
	if c.Views.Near <= 0 || c.Views.Far <= c.Views.Near {
		return fmt.Errorf("config: need 0 < views.near < views.far, got %g and %g", c.Views.Near, c.Views.Far)
	}
	if c.Views.Fovy <= 0 || c.Views.Fovy >= 180 {
		return fmt.Errorf("config: views.fovy must be in (0, 180), got %g", c.Views.Fovy)
	}
	if c.Output.Directory == "" {
		return fmt.Errorf("config: output.directory is empty")
	}
	return nil
}

// ResolveDevice maps the device setting to the compute path in use. Only
// the CPU rasterizer exists, so auto resolves to cpu.
func (c *Config) ResolveDevice() (string, error) {
	switch c.Render.Device {
	case "", "auto", "cpu":
		return "cpu", nil
	}
	return "", fmt.Errorf("config: unsupported render.device %q (want auto or cpu)", c.Render.Device)
}

func (c *Config) CurveLayout() curve.Layout {
	return curve.Layout{
		ModelDirectory: c.Layout.ModelDirectory,
		BaselineIndex:  c.Layout.BaselineIndex,
		LevelCount:     c.Layout.LevelCount,
		FileExtension:  c.Layout.FileExtension,
	}
}

// RenderSettings converts the render section into renderer settings.
func (c *Config) RenderSettings() (meshssim.Settings, error) {
	r := c.Render
	s := meshssim.DefaultSettings()
	var err error
	if s.Shading, err = meshssim.ParseShading(r.Shading); err != nil {
		return s, err
	}
	if s.Cull, err = meshssim.ParseCull(r.Cull); err != nil {
		return s, err
	}
	if s.Background, err = rgb("background", r.Background); err != nil {
		return s, err
	}
	if s.BaseColor, err = rgb("base_color", r.BaseColor); err != nil {
		return s, err
	}
	if r.ImageSize <= 0 {
		return s, fmt.Errorf("config: render.image_size must be positive, got %d", r.ImageSize)
	}
	if r.Samples <= 0 {
		return s, fmt.Errorf("config: render.samples must be positive, got %d", r.Samples)
	}
	s.ImageSize = r.ImageSize
	s.Samples = r.Samples
	s.VertexColors = r.VertexColors
	s.Light = mgl64.Vec3(r.Light)
	s.Ambient = r.Ambient
	s.Diffuse = r.Diffuse
	s.Specular = r.Specular
	s.Shininess = r.Shininess
	return s, nil
}

// Cameras returns the orbit cameras of the views section.
func (c *Config) Cameras() []meshssim.Camera {
	v := c.Views
	cams := meshssim.OrbitCameras(v.Count, v.Distance, v.Elevation, v.AzimuthMin, v.AzimuthMax)
	for i := range cams {
		cams[i] = cams[i].WithProjection(v.Fovy, v.Near, v.Far)
	}
	return cams
}

func rgb(name string, c [3]float64) (meshssim.Color, error) {
	for _, v := range c {
		if v < 0 || v > 1 {
			return meshssim.Color{}, fmt.Errorf("config: render.%s components must be in [0, 1], got %v", name, c)
		}
	}
	return meshssim.Color{R: c[0], G: c[1], B: c[2], A: 1}, nil
}
