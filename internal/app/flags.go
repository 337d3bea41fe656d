package app

import (
	"flag"
	"fmt"
	"log/slog"

	"wavefield/internal/config"
	"wavefield/internal/field"
)

// Options represents the command-line parameters shared by the commands.
type Options struct {
	ConfigPath string
	Sets       []string
	XLength    int
	YLength    int
	Workers    int
	Seed       int64
	LogLevel   string

	// Viewer only.
	Width  int
	Height int
	TPS    int
	Drift  float64

	// Generator only.
	Out string
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{LogLevel: "info", Width: 960, Height: 720, TPS: 60}
}

// Bind attaches the shared options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "wave field description (.toml, .yaml)")
	fs.Func("set", "override a parameter, e.g. x.sin.period=4 (repeatable)", func(s string) error {
		o.Sets = append(o.Sets, s)
		return nil
	})
	fs.IntVar(&o.XLength, "x", o.XLength, "grid length along x (0 keeps the config value)")
	fs.IntVar(&o.YLength, "y", o.YLength, "grid length along y (0 keeps the config value)")
	fs.IntVar(&o.Workers, "workers", o.Workers, "goroutines used to sample rows (0 keeps the config value)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for the field identity token (0 draws a random one)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "debug, info, warn or error")
}

// BindViewer attaches the viewer options.
func (o *Options) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "window width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "window height in pixels")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.Float64Var(&o.Drift, "drift", o.Drift, "x.sin horizontal displacement added per tick")
}

// BindGenerator attaches the generator options.
func (o *Options) BindGenerator(fs *flag.FlagSet) {
	fs.StringVar(&o.Out, "out", o.Out, "OBJ output path (stdout when empty)")
}

// Resolve loads the config file, or the defaults, and layers overrides and
// flag values on top.
func (o *Options) Resolve() (config.File, error) {
	f := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.File{}, err
		}
		f = loaded
	}
	pairs, err := config.ParsePairs(o.Sets)
	if err != nil {
		return config.File{}, err
	}
	if err := f.ApplyOverrides(pairs); err != nil {
		return config.File{}, err
	}
	if o.XLength > 0 {
		f.XLength = o.XLength
	}
	if o.YLength > 0 {
		f.YLength = o.YLength
	}
	if o.Workers > 0 {
		f.Workers = o.Workers
	}
	return f, nil
}

// BuildField resolves the options and constructs the field they describe.
func (o *Options) BuildField(log *slog.Logger) (*field.Field, error) {
	f, err := o.Resolve()
	if err != nil {
		return nil, err
	}
	opts := []field.Option{field.WithWorkers(f.Workers), field.WithLogger(log)}
	if o.Seed != 0 {
		opts = append(opts, field.WithSeed(o.Seed))
	}
	fl, err := field.New(f.Field(), opts...)
	if err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}
	return fl, nil
}
