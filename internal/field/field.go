package field

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"wavefield/internal/core"
	"wavefield/internal/wave"
	pkgcore "wavefield/pkg/core"
)

// ErrConfiguration reports grid dimensions a Field cannot be built with.
var ErrConfiguration = errors.New("field: invalid configuration")

// Config describes a wave field. XLength and YLength fix the grid topology
// and cannot change after construction.
type Config struct {
	X       wave.WaveFormParameters
	Y       wave.WaveFormParameters
	XLength int
	YLength int
}

// Parameters returns the wave parameter bundle of the config.
func (c Config) Parameters() wave.Parameters {
	return wave.Parameters{X: c.X, Y: c.Y}
}

// Triangle is a stencil triple resolved against the grid.
type Triangle [3]Coordinate

// Field samples a wave.State over a fixed grid and keeps the triangle mesh
// of that grid. A Field is clean after construction and after Refresh, and
// stale after a successful SetParameters.
type Field struct {
	state   *wave.State
	xLen    int
	yLen    int
	workers int
	log     *slog.Logger

	coords    []Coordinate
	stencil   Stencil
	triangles []Triangle
	stale     bool
}

type options struct {
	workers int
	log     *slog.Logger
	rng     *pkgcore.RNG
}

// Option configures a Field.
type Option func(*options)

// WithWorkers samples rows on up to n goroutines. Values below 2 keep
// sampling on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger routes debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSeed makes the identity token deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = pkgcore.NewRNG(seed) }
}

// New validates cfg, builds the stencil and samples the initial grid.
func New(cfg Config, opts ...Option) (*Field, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.XLength < 1 || cfg.YLength < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrConfiguration, cfg.XLength, cfg.YLength)
	}
	state, err := wave.NewState(cfg.Parameters(), o.rng)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	f := &Field{
		state:   state,
		xLen:    cfg.XLength,
		yLen:    cfg.YLength,
		workers: o.workers,
		log:     o.log.With("field", state.ID()),
		stencil: NewStencil(cfg.XLength, cfg.YLength),
	}
	f.resample()
	f.log.Debug("field built",
		"x_length", f.xLen,
		"y_length", f.yLen,
		"coords", len(f.coords),
		"triangles", len(f.triangles),
	)
	return f, nil
}

// ID returns the opaque identity token of the underlying state.
func (f *Field) ID() uint32 { return f.state.ID() }

// Size returns the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{X: f.xLen, Y: f.yLen} }

// Parameters returns a copy of the current wave parameters.
func (f *Field) Parameters() wave.Parameters { return f.state.Parameters() }

// Coords returns a copy of the sampled grid.
func (f *Field) Coords() []Coordinate { return slices.Clone(f.coords) }

// Triangles returns a copy of the materialized triangle list in stencil
// order.
func (f *Field) Triangles() []Triangle { return slices.Clone(f.triangles) }

// Stencil returns a copy of the triangle stencil.
func (f *Field) Stencil() Stencil { return slices.Clone(f.stencil) }

// Heights returns the sampled z values in grid order.
func (f *Field) Heights() []float64 {
	out := make([]float64, len(f.coords))
	for i, c := range f.coords {
		out[i] = c.Z
	}
	return out
}

// Indices returns the flattened stencil.
func (f *Field) Indices() []int { return f.stencil.Flatten() }

// NeedsRefresh reports whether parameters changed since the last sample.
func (f *Field) NeedsRefresh() bool { return f.stale }

// SetParameters applies fn to the wave parameters. The grid is not resampled
// until Refresh. A rejected update leaves the field unchanged.
func (f *Field) SetParameters(fn wave.Updater) error {
	if err := f.state.SetParameters(fn); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	f.stale = true
	return nil
}

// Refresh resamples the whole grid and re-resolves the triangle list. The
// stencil is left untouched.
func (f *Field) Refresh() {
	f.resample()
	f.log.Debug("field refreshed", "coords", len(f.coords))
}

func (f *Field) resample() {
	f.coords = Sample(f.state, f.xLen, f.yLen, f.workers)
	f.triangles = resolve(f.stencil, f.coords, f.triangles)
	f.stale = false
}

// resolve maps stencil indices onto coords, reusing buf when it is large
// enough.
func resolve(s Stencil, coords []Coordinate, buf []Triangle) []Triangle {
	if cap(buf) < len(s) {
		buf = make([]Triangle, len(s))
	}
	buf = buf[:len(s)]
	for i, tri := range s {
		buf[i] = Triangle{coords[tri[0]], coords[tri[1]], coords[tri[2]]}
	}
	return buf
}
