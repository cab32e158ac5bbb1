package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netisu/meshssim"
	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Layout.LevelCount != 100 {
		t.Errorf("expected 100 levels, got %d", cfg.Layout.LevelCount)
	}
	if cfg.Render.ImageSize != 512 {
		t.Errorf("expected image size 512, got %d", cfg.Render.ImageSize)
	}
	if cfg.Views.Count != 5 {
		t.Errorf("expected 5 views, got %d", cfg.Views.Count)
	}
	if len(cfg.Models) != 5 {
		t.Errorf("expected 5 models, got %v", cfg.Models)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestRenderSettings(t *testing.T) {
	s, err := Default().RenderSettings()
	if err != nil {
		t.Fatalf("RenderSettings failed: %v", err)
	}
	if want := meshssim.DefaultSettings(); s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
}

func TestCameras(t *testing.T) {
	cams := Default().Cameras()
	if len(cams) != 5 {
		t.Fatalf("expected 5 cameras, got %d", len(cams))
	}
	if cams[0].Azimuth != -180 || cams[4].Azimuth != 180 {
		t.Errorf("expected azimuths from -180 to 180, got %g to %g", cams[0].Azimuth, cams[4].Azimuth)
	}
	for _, c := range cams {
		if c.Near != 1 || c.Far != 100 || c.Fovy != 60 {
			t.Errorf("unexpected projection %g %g %g", c.Fovy, c.Near, c.Far)
		}
	}
}

func TestResolveDevice(t *testing.T) {
	for _, d := range []string{"", "auto", "cpu"} {
		cfg := Default()
		cfg.Render.Device = d
		got, err := cfg.ResolveDevice()
		if err != nil || got != "cpu" {
			t.Errorf("device %q resolved to %q, %v", d, got, err)
		}
	}
	cfg := Default()
	cfg.Render.Device = "cuda"
	if _, err := cfg.ResolveDevice(); err == nil {
		t.Error("expected an error for cuda")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"one level", func(c *Config) { c.Layout.LevelCount = 1 }},
		{"baseline out of range", func(c *Config) { c.Layout.BaselineIndex = 100 }},
		{"unknown device", func(c *Config) { c.Render.Device = "tpu" }},
		{"unknown shading", func(c *Config) { c.Render.Shading = "toon" }},
		{"unknown cull", func(c *Config) { c.Render.Cull = "sideways" }},
		{"bad color", func(c *Config) { c.Render.BaseColor = [3]float64{0, 2, 1} }},
		{"negative background", func(c *Config) { c.Render.Background = [3]float64{-0.1, 0, 0} }},
		{"zero size", func(c *Config) { c.Render.ImageSize = 0 }},
		{"zero samples", func(c *Config) { c.Render.Samples = 0 }},
		{"zero views", func(c *Config) { c.Views.Count = 0 }},
		{"zero distance", func(c *Config) { c.Views.Distance = 0 }},
		{"far before near", func(c *Config) { c.Views.Far = 0.5 }},
		{"flat fov", func(c *Config) { c.Views.Fovy = 180 }},
		{"no output", func(c *Config) { c.Output.Directory = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshssim.yaml")

	yamlContent := `
layout:
  model_directory: /data/models
  level_count: 10
models: [bunny]
render:
  image_size: 128
  shading: smooth
  base_color: [1, 0.25, 0]
views:
  count: 3
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(&Flags{ConfigPath: configPath}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Layout.ModelDirectory != "/data/models" {
		t.Errorf("expected model directory /data/models, got %s", cfg.Layout.ModelDirectory)
	}
	if cfg.Layout.LevelCount != 10 {
		t.Errorf("expected 10 levels, got %d", cfg.Layout.LevelCount)
	}
	if len(cfg.Models) != 1 || cfg.Models[0] != "bunny" {
		t.Errorf("expected models [bunny], got %v", cfg.Models)
	}
	if cfg.Render.ImageSize != 128 || cfg.Render.Shading != "smooth" {
		t.Errorf("expected smooth 128px rendering, got %s %d", cfg.Render.Shading, cfg.Render.ImageSize)
	}
	if cfg.Views.Count != 3 {
		t.Errorf("expected 3 views, got %d", cfg.Views.Count)
	}
	s, err := cfg.RenderSettings()
	if err != nil {
		t.Fatalf("RenderSettings failed: %v", err)
	}
	if s.BaseColor != (meshssim.Color{R: 1, G: 0.25, B: 0, A: 1}) {
		t.Errorf("expected base color (1, 0.25, 0), got %v", s.BaseColor)
	}
	// Fields not in the file keep their defaults.
	if cfg.Views.Distance != 2 || cfg.Layout.FileExtension != "obj" {
		t.Errorf("defaults lost: distance %g, extension %s", cfg.Views.Distance, cfg.Layout.FileExtension)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(&Flags{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}, nil)
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshssim.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  level_count: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := Load(&Flags{ConfigPath: path}, nil); err == nil {
		t.Error("expected a validation error")
	}
}

func TestFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshssim.yaml")
	if err := os.WriteFile(path, []byte("render:\n  image_size: 128\n  samples: 2\nviews:\n  count: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Register(fs)
	args := []string{"--config", path, "--size", "64", "--debug", "--out-dir", "/tmp/out", "--levels", "20"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := Load(&flags, fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.ImageSize != 64 {
		t.Errorf("expected flag size 64 to win, got %d", cfg.Render.ImageSize)
	}
	if cfg.Render.Samples != 2 {
		t.Errorf("expected file samples 2, got %d", cfg.Render.Samples)
	}
	if cfg.Views.Count != 3 {
		t.Errorf("expected file view count 3 untouched by an unset flag, got %d", cfg.Views.Count)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected --debug to set level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Output.Directory != "/tmp/out" || cfg.Layout.LevelCount != 20 {
		t.Errorf("expected out dir and levels from flags, got %s %d", cfg.Output.Directory, cfg.Layout.LevelCount)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "meshssim.yaml")
	cfg := Default()
	cfg.Models = []string{"cow"}
	cfg.Views.Elevation = 30
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(&Flags{ConfigPath: path}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Models) != 1 || loaded.Models[0] != "cow" || loaded.Views.Elevation != 30 {
		t.Errorf("saved settings not restored: %v %g", loaded.Models, loaded.Views.Elevation)
	}
}
