//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"wavefield/internal/app"
	"wavefield/internal/logx"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	opts.BindViewer(flag.CommandLine)
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

	game := app.New(f, opts.Width, opts.Height, opts.TPS, opts.Drift, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("waves %dx%d #%07d", f.Size().X, f.Size().Y, f.ID()))
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
