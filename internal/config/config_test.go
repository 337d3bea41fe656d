package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavefield/internal/field"
	"wavefield/internal/wave"
)

const tomlDoc = `
xLength = 8
yLength = 6

[x.sin]
period = 4.0
amplitude = 2.0

[y.cos]
amplitude = 0.0
`

const yamlDoc = `
xLength: 8
yLength: 6
x:
  sin:
    period: 4
    amplitude: 2
y:
  cos:
    amplitude: 0
`

func checkDoc(t *testing.T, f File) {
	t.Helper()
	assert.Equal(t, 8, f.XLength)
	assert.Equal(t, 6, f.YLength)
	assert.Equal(t, 1, f.Workers, "unset keys keep defaults")
	require.NotNil(t, f.X.Sin)
	assert.Equal(t, 4.0, *f.X.Sin.Period)
	assert.Equal(t, 2.0, *f.X.Sin.Amplitude)
	assert.Nil(t, f.X.Sin.HorizontalDisplacement)
	assert.Nil(t, f.X.Cos)
	require.NotNil(t, f.Y.Cos)
	assert.Equal(t, 0.0, *f.Y.Cos.Amplitude)
}

func TestDecodeTOML(t *testing.T) {
	f, err := Decode(".toml", []byte(tomlDoc))
	require.NoError(t, err)
	checkDoc(t, f)
}

func TestDecodeYAML(t *testing.T) {
	f, err := Decode(".yml", []byte(yamlDoc))
	require.NoError(t, err)
	checkDoc(t, f)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(".json", []byte("{}"))
	assert.ErrorIs(t, err, ErrFormat)
	_, err = Encode(".ini", Default())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))
	f, err := Load(path)
	require.NoError(t, err)
	checkDoc(t, f)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	f, err := Decode(".toml", []byte(tomlDoc))
	require.NoError(t, err)
	for _, ext := range []string{".toml", ".yaml"} {
		data, err := Encode(ext, f)
		require.NoError(t, err)
		back, err := Decode(ext, data)
		require.NoError(t, err)
		assert.Equal(t, f, back, ext)
	}
}

func TestApplyOverrides(t *testing.T) {
	f, err := Decode(".toml", []byte(tomlDoc))
	require.NoError(t, err)
	pairs, err := ParsePairs([]string{"xLength=3", "x.sin.amplitude=5", "y.sin.period = 2.5", "workers=4"})
	require.NoError(t, err)
	require.NoError(t, f.ApplyOverrides(pairs))

	assert.Equal(t, 3, f.XLength)
	assert.Equal(t, 4, f.Workers)
	assert.Equal(t, 5.0, *f.X.Sin.Amplitude)
	assert.Equal(t, 4.0, *f.X.Sin.Period, "override keeps sibling fields")
	assert.Equal(t, 2.5, *f.Y.Sin.Period)

	cfg := f.Field()
	assert.Equal(t, field.Config{X: f.X, Y: f.Y, XLength: 3, YLength: 6}, cfg)
}

func TestApplyOverridesRejectsBadInput(t *testing.T) {
	f := Default()
	assert.Error(t, f.ApplyOverrides(map[string]string{"xLength": "wide"}))
	assert.ErrorIs(t, f.ApplyOverrides(map[string]string{"z.sin.period": "1"}), wave.ErrInvalidParameter)
	assert.Error(t, f.ApplyOverrides(map[string]string{"x.sin.period": "abc"}))

	_, err := ParsePairs([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParsePairs([]string{"=3"})
	assert.Error(t, err)
}

func TestDefaultBuildsField(t *testing.T) {
	fl, err := field.New(Default().Field())
	require.NoError(t, err)
	assert.Len(t, fl.Coords(), 64*64)
}
