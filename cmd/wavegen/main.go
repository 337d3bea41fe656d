// Command wavegen samples a wave field without a window and writes it as a
// Wavefront OBJ mesh.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"wavefield/internal/app"
	"wavefield/internal/export"
	"wavefield/internal/logx"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	opts.BindGenerator(flag.CommandLine)
	flag.Parse()

	log, err := logx.New(os.Stderr, opts.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	f, err := opts.BuildField(log)
	if err != nil {
		log.Error("cannot build field", "err", err)
		os.Exit(1)
	}

	st := f.Stats()
	log.Info("field sampled",
		"id", f.ID(),
		"coords", st.Coords,
		"triangles", st.Triangles,
		"minZ", st.MinZ,
		"maxZ", st.MaxZ,
		"meanZ", st.MeanZ,
		"nonFinite", st.NonFinite,
	)

	var w io.Writer = os.Stdout
	if opts.Out != "" {
		file, err := os.Create(opts.Out)
		if err != nil {
			log.Error("cannot create output", "path", opts.Out, "err", err)
			os.Exit(1)
		}
		defer file.Close()
		w = file
	}
	if err := export.WriteOBJ(w, export.FromField(fmt.Sprintf("wave_%07d", f.ID()), f)); err != nil {
		log.Error("write obj", "err", err)
		os.Exit(1)
	}
}
