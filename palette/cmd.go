package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
)

type CLICmd struct {
	Output string `help:"Destination RIFF PAL file" default:"Mandelbrot.pal" type:"path"`
}

// Run writes the render gradient to the output file.
func (c *CLICmd) Run() (err error) {
	outFile, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", c.Output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", c.Output, closeErr)
		}
	}()

	n, err := WriteTo(outFile, []color.Palette{Gradient()})
	if err != nil {
		return fmt.Errorf("could not save palette %q: %w", c.Output, err)
	}

	slog.Info("palette written", "file", c.Output, "colors", Size, "bytes", n)
	return nil
}
