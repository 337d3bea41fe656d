package field

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavefield/internal/core"
	"wavefield/internal/wave"
)

func sinConfig(xLen, yLen int) Config {
	return Config{
		X:       wave.WaveFormParameters{Sin: &wave.WaveParameters{Period: wave.Float(4), Amplitude: wave.Float(1)}},
		Y:       wave.WaveFormParameters{Sin: &wave.WaveParameters{Period: wave.Float(4), Amplitude: wave.Float(1)}},
		XLength: xLen,
		YLength: yLen,
	}
}

func TestStencilCounts(t *testing.T) {
	for xLen := 1; xLen <= 6; xLen++ {
		for yLen := 1; yLen <= 6; yLen++ {
			s := NewStencil(xLen, yLen)
			if len(s) != TriangleCount(xLen, yLen) {
				t.Fatalf("%dx%d: %d triangles, want %d", xLen, yLen, len(s), TriangleCount(xLen, yLen))
			}
			if xLen >= 2 && yLen >= 2 && len(s) != 2*(xLen-1)*(yLen-1) {
				t.Fatalf("%dx%d: unexpected count %d", xLen, yLen, len(s))
			}
			for _, tri := range s {
				for _, idx := range tri {
					if idx < 0 || idx >= xLen*yLen {
						t.Fatalf("%dx%d: index %d out of range", xLen, yLen, idx)
					}
				}
			}
		}
	}
}

func TestStencilTwoByTwo(t *testing.T) {
	s := NewStencil(2, 2)
	want := Stencil{{0, 1, 2}, {2, 3, 1}}
	if !slices.Equal(s, want) {
		t.Fatalf("stencil = %v, want %v", s, want)
	}
}

func TestStencilWindingAndNeighbours(t *testing.T) {
	xLen, yLen := 4, 3
	s := NewStencil(xLen, yLen)
	upper, lower := 0, 0
	for _, tri := range s {
		ax, ay := tri[0]/yLen, tri[0]%yLen
		bx, by := tri[1]/yLen, tri[1]%yLen
		cx, cy := tri[2]/yLen, tri[2]%yLen
		switch {
		case bx == ax && by == ay+1 && cx == ax+1 && cy == ay:
			// (here, up, right)
			upper++
		case bx == ax && by == ay+1 && cx == ax-1 && cy == ay+1:
			// (downAndRight, right, here)
			lower++
		default:
			t.Fatalf("triangle %v is neither upper nor lower", tri)
		}
	}
	if upper != (xLen-1)*(yLen-1) || lower != (xLen-1)*(yLen-1) {
		t.Fatalf("upper=%d lower=%d", upper, lower)
	}
}

func TestStencilDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}} {
		f, err := New(sinConfig(dims[0], dims[1]))
		require.NoError(t, err)
		assert.Empty(t, f.Triangles())
		assert.Len(t, f.Coords(), dims[0]*dims[1])
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := New(sinConfig(dims[0], dims[1]))
		assert.ErrorIs(t, err, ErrConfiguration, "dims %v", dims)
	}
	cfg := sinConfig(2, 2)
	cfg.X.Cos = &wave.WaveParameters{Period: wave.Float(0)}
	_, err := New(cfg)
	assert.ErrorIs(t, err, wave.ErrInvalidParameter)
}

func TestTwoByTwoScenario(t *testing.T) {
	f, err := New(sinConfig(2, 2))
	require.NoError(t, err)

	coords := f.Coords()
	require.Len(t, coords, 4)
	positions := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range coords {
		assert.Equal(t, positions[i], [2]int{c.X, c.Y})
	}
	// The cosine components are unset and default to the unit wave.
	axis := func(v float64) float64 {
		return math.Sin(2*math.Pi*v/4) + math.Cos(2*math.Pi*v/wave.DefaultPeriod)
	}
	for _, c := range coords {
		assert.InDelta(t, axis(float64(c.X))*axis(float64(c.Y)), c.Z, 1e-12)
	}

	tris := f.Triangles()
	require.Len(t, tris, 2)
	assert.Equal(t, Triangle{coords[0], coords[1], coords[2]}, tris[0])
	assert.Equal(t, Triangle{coords[2], coords[3], coords[1]}, tris[1])
}

func TestGridOrderAndSize(t *testing.T) {
	f, err := New(sinConfig(5, 7))
	require.NoError(t, err)
	coords := f.Coords()
	require.Len(t, coords, 35)
	for i, c := range coords {
		if c.Y+c.X*7 != i {
			t.Fatalf("coordinate %d at (%d,%d) breaks y-fastest order", i, c.X, c.Y)
		}
	}
	assert.Equal(t, core.Size{X: 5, Y: 7}, f.Size())
	assert.Len(t, f.Heights(), 35)
	assert.Len(t, f.Indices(), 3*TriangleCount(5, 7))
}

func TestStencilIndependentOfParameters(t *testing.T) {
	a, err := New(sinConfig(6, 4))
	require.NoError(t, err)
	cfg := sinConfig(6, 4)
	cfg.Y.Cos = &wave.WaveParameters{Amplitude: wave.Float(3), Period: wave.Float(2.5)}
	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Stencil(), b.Stencil())
	assert.NotEqual(t, a.Coords(), b.Coords())
}

func TestSetParametersThenRefresh(t *testing.T) {
	f, err := New(sinConfig(4, 4))
	require.NoError(t, err)
	require.False(t, f.NeedsRefresh())
	stencil := f.Stencil()
	before := f.Coords()

	key := wave.Key{Axis: wave.AxisX, Kind: wave.Sine, Field: wave.Amplitude}
	require.NoError(t, f.SetParameters(wave.SetValue(key, 3)))
	assert.True(t, f.NeedsRefresh())
	assert.Equal(t, before, f.Coords(), "coords must not change before Refresh")

	f.Refresh()
	assert.False(t, f.NeedsRefresh())
	after := f.Coords()
	assert.NotEqual(t, before, after)
	assert.Equal(t, stencil, f.Stencil())
	for i, tri := range f.Triangles() {
		for j := range tri {
			assert.Equal(t, after[stencil[i][j]], tri[j])
		}
	}
}

func TestIdentityRefreshIsIdempotent(t *testing.T) {
	f, err := New(sinConfig(5, 5))
	require.NoError(t, err)
	coords, tris := f.Coords(), f.Triangles()

	require.NoError(t, f.SetParameters(wave.Identity))
	f.Refresh()
	got := f.Coords()
	for i := range coords {
		assert.InDelta(t, coords[i].Z, got[i].Z, 1e-12)
	}
	assert.Equal(t, tris, f.Triangles())
}

func TestRejectedUpdateKeepsFieldClean(t *testing.T) {
	f, err := New(sinConfig(3, 3))
	require.NoError(t, err)
	key := wave.Key{Axis: wave.AxisY, Kind: wave.Sine, Field: wave.Period}
	assert.ErrorIs(t, f.SetParameters(wave.SetValue(key, 0)), wave.ErrInvalidParameter)
	assert.False(t, f.NeedsRefresh())
}

func TestParallelSamplingMatchesSequential(t *testing.T) {
	cfg := sinConfig(33, 17)
	cfg.X.Cos = &wave.WaveParameters{Amplitude: wave.Float(0.5), Period: wave.Float(7)}
	seq, err := New(cfg)
	require.NoError(t, err)
	par, err := New(cfg, WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq.Coords(), par.Coords())
	assert.Equal(t, seq.Triangles(), par.Triangles())
}

func TestAccessorsReturnCopies(t *testing.T) {
	f, err := New(sinConfig(3, 3))
	require.NoError(t, err)
	c := f.Coords()
	c[0].Z = 100
	assert.NotEqual(t, 100.0, f.Coords()[0].Z)
	s := f.Stencil()
	s[0][0] = 8
	assert.Equal(t, 0, f.Stencil()[0][0])
}

func TestSeededID(t *testing.T) {
	a, err := New(sinConfig(2, 2), WithSeed(7))
	require.NoError(t, err)
	b, err := New(sinConfig(2, 2), WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.ID(), b.ID())
}

func TestNonFiniteHeightsPropagate(t *testing.T) {
	cfg := sinConfig(3, 3)
	cfg.X.Sin.Amplitude = wave.Float(math.Inf(1))
	f, err := New(cfg)
	require.NoError(t, err)
	st := f.Stats()
	assert.Positive(t, st.NonFinite)
	assert.Equal(t, 9, st.Coords)
}

var _ core.Surface = (*Field)(nil)
