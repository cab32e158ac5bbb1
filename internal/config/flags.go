package config

import "github.com/spf13/pflag"

// Flags are the command line overrides shared by every command.
type Flags struct {
	ConfigPath string
	Debug      bool
	Device     string
	LogFile    string
	ModelsDir  string
	OutDir     string
	Levels     int
	Views      int
	Size       int
	Samples    int
	Shading    string
	Truncate   bool
}

// Register adds the flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.Device, "device", "", "compute device (auto or cpu)")
	fs.StringVar(&f.LogFile, "log-file", "", "also log to this rotating file")
	fs.StringVar(&f.ModelsDir, "models-dir", "", "directory holding <model>/<model>_<level> files")
	fs.StringVar(&f.OutDir, "out-dir", "", "directory for <model>.csv results")
	fs.IntVar(&f.Levels, "levels", 0, "number of simplification levels including the baseline")
	fs.IntVar(&f.Views, "views", 0, "number of orbit views per comparison")
	fs.IntVar(&f.Size, "size", 0, "rendered image size in pixels")
	fs.IntVar(&f.Samples, "samples", 0, "supersampling factor per axis")
	fs.StringVar(&f.Shading, "shading", "", "shading model (flat, smooth or silhouette)")
	fs.BoolVar(&f.Truncate, "truncate", false, "overwrite results files instead of appending")
}

// apply copies flags explicitly set on the command line into cfg. With a
// nil fs every non-zero flag counts as set.
func (f *Flags) apply(cfg *Config, fs *pflag.FlagSet) {
	set := func(name string, nonZero bool) bool {
		if fs == nil {
			return nonZero
		}
		return fs.Changed(name)
	}
	if set("debug", f.Debug) && f.Debug {
		cfg.Logging.Level = "debug"
	}
	if set("device", f.Device != "") {
		cfg.Render.Device = f.Device
	}
	if set("log-file", f.LogFile != "") {
		cfg.Logging.LogFile = f.LogFile
	}
	if set("models-dir", f.ModelsDir != "") {
		cfg.Layout.ModelDirectory = f.ModelsDir
	}
	if set("out-dir", f.OutDir != "") {
		cfg.Output.Directory = f.OutDir
	}
	if set("levels", f.Levels != 0) {
		cfg.Layout.LevelCount = f.Levels
	}
	if set("views", f.Views != 0) {
		cfg.Views.Count = f.Views
	}
	if set("size", f.Size != 0) {
		cfg.Render.ImageSize = f.Size
	}
	if set("samples", f.Samples != 0) {
		cfg.Render.Samples = f.Samples
	}
	if set("shading", f.Shading != "") {
		cfg.Render.Shading = f.Shading
	}
	if set("truncate", f.Truncate) {
		cfg.Output.Truncate = f.Truncate
	}
}
