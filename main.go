package main

import (
	"io"
	"log/slog"
	"os"

	"mandelbmp/palette"
	"mandelbmp/render"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool           `help:"Enable debug logging" short:"v"`
	Render  render.CLICmd  `cmd:"" default:"withargs" help:"Render the Mandelbrot set to an 8-bit indexed bitmap"`
	Palette palette.CLICmd `cmd:"" help:"Write the render palette as a RIFF PAL file"`
}

func main() {
	var conf cli
	kctx := kong.Parse(&conf,
		kong.Name("mandelbmp"),
		kong.Description("Mandelbrot set renderer"),
		kong.UsageOnError(),
		render.Vars,
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	if conf.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	kctx.FatalIfErrorf(kctx.Run())
}
