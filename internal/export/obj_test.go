package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"wavefield/internal/field"
	"wavefield/internal/wave"
)

func TestWriteOBJ(t *testing.T) {
	m := Mesh{
		Name:    "quad",
		Coords:  []field.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0.5}, {X: 1, Y: 0, Z: -1}, {X: 1, Y: 1, Z: 2}},
		Stencil: field.NewStencil(2, 2),
	}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"o quad",
		"v 0 0 0",
		"v 0 1 0.5",
		"v 1 0 -1",
		"v 1 1 2",
		"f 1 2 3",
		"f 3 4 2",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("obj output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteOBJWithNormals(t *testing.T) {
	f, err := field.New(field.Config{XLength: 3, YLength: 2})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, FromField("wave", f)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got := strings.Count(out, "\nv "); got != 6 {
		t.Fatalf("vertex lines = %d, want 6", got)
	}
	if got := strings.Count(out, "\nvn "); got != 6 {
		t.Fatalf("normal lines = %d, want 6", got)
	}
	if got := strings.Count(out, "\nf "); got != field.TriangleCount(3, 2) {
		t.Fatalf("face lines = %d, want %d", got, field.TriangleCount(3, 2))
	}
	if !strings.Contains(out, "f 1//1 2//2 3//3") {
		t.Fatalf("missing first face with normals:\n%s", out)
	}
}

func TestWriteOBJNormalMismatch(t *testing.T) {
	m := Mesh{Coords: make([]field.Coordinate, 2), Normals: make([]r3.Vec, 1)}
	if err := WriteOBJ(&bytes.Buffer{}, m); err == nil {
		t.Fatal("expected mismatch error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteOBJPropagatesWriteErrors(t *testing.T) {
	f, err := field.New(field.Config{
		X:       wave.WaveFormParameters{Sin: &wave.WaveParameters{Period: wave.Float(4)}},
		XLength: 2,
		YLength: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteOBJ(failWriter{}, FromField("", f)); err == nil {
		t.Fatal("expected write error")
	}
}
