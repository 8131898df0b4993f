package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"mandelbmp/bmp256"
	"mandelbmp/mandel"
	"mandelbmp/parallel"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
)

// Defaults reproduce the classic fixed render.
const (
	DefaultOutput  = "Mandelbrot12k.bmp"
	DefaultWorkers = 8
)

// Vars supplies the flag defaults referenced by CLICmd.
var Vars = kong.Vars{
	"render_output":  DefaultOutput,
	"render_workers": strconv.Itoa(DefaultWorkers),
}

type CLICmd struct {
	Output  string       `help:"Destination bitmap file" default:"${render_output}" type:"path"`
	Workers int          `help:"Number of render workers" default:"${render_workers}"`
	Plane   mandel.Plane `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Workers < 1 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}

	dir := filepath.Dir(c.Output)
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("not a directory")
	}
	if err != nil {
		return fmt.Errorf("invalid output folder %q: %w", dir, err)
	}

	if c.Plane.Width == 0 {
		c.Plane = mandel.NewPlane(mandel.Classic, mandel.Width)
	}

	return nil
}

// Run renders the set, saves the bitmap and prints the render time to
// stdout.
func (c *CLICmd) Run(stdout io.Writer) error {
	logger := slog.Default().With("file", c.Output)

	img := bmp256.New(c.Plane.Width, c.Plane.Height)
	pool := parallel.Start(c.Workers)

	logger.Info("rendering", "width", c.Plane.Width, "height", c.Plane.Height, "workers", pool.Workers())
	start := time.Now()
	mandel.Render(img, c.Plane, pool)
	elapsed := time.Since(start)

	if err := img.Save(c.Output); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(stdout, "dynamic run time: %v seconds.\n", elapsed.Seconds()); err != nil {
		return fmt.Errorf("could not report run time: %w", err)
	}

	logSaved(logger, c.Output, img.FileSize())
	return nil
}

// logSaved reports the dimensions read back from the saved bitmap. The
// file is already in place, so a failed read is only logged.
func logSaved(logger *slog.Logger, name string, size int) {
	conf, err := readConfig(name)
	if err != nil {
		logger.Error("could not verify saved bitmap", "error", err)
		return
	}
	logger.Info("saved", "width", conf.Width, "height", conf.Height, "bytes", size)
}

// readConfig decodes the header of a written bitmap to confirm that
// readers accept it.
func readConfig(name string) (image.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return image.Config{}, fmt.Errorf("could not open bitmap %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close bitmap", "name", name, "error", closeErr)
		}
	}()

	conf, err := bmp.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("could not read bitmap header %q: %w", name, err)
	}

	return conf, nil
}
