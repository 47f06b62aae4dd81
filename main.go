package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/imageio"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options holds everything parsed from the command line
type options struct {
	config     renderer.SamplingConfig
	sceneName  string
	gamma      float64
	upscale    int
	quiet      bool
	outputPath string
}

// parseArgs parses flags followed by the output path
func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{config: renderer.DefaultSamplingConfig()}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: raytracer [options] <output.ppm|output.png>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "Available scenes: %s\n", strings.Join(scene.Names(), ", "))
	}

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render")
	fs.IntVar(&opts.config.Width, "width", opts.config.Width, "Image width in pixels")
	fs.IntVar(&opts.config.Height, "height", opts.config.Height, "Image height in pixels")
	fs.IntVar(&opts.config.SamplesPerPixel, "spp", opts.config.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.config.MaxDepth, "depth", opts.config.MaxDepth, "Maximum ray bounce depth")
	fs.Int64Var(&opts.config.Seed, "seed", opts.config.Seed, "Random seed")
	fs.IntVar(&opts.config.Workers, "workers", opts.config.Workers, "Worker count: 1 = single-threaded, 0 = all CPUs")
	fs.IntVar(&opts.config.TileSize, "tile", opts.config.TileSize, "Tile size when rendering with multiple workers")
	fs.Float64Var(&opts.gamma, "gamma", 2.2, "Display gamma applied before quantizing")
	fs.IntVar(&opts.upscale, "upscale", 1, "Integer upscale factor for PNG output")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return opts, errors.New("unknown output file")
	}
	opts.outputPath = fs.Arg(0)

	if err := opts.config.Validate(); err != nil {
		return opts, err
	}
	if opts.gamma <= 0 {
		return opts, fmt.Errorf("gamma %v must be positive", opts.gamma)
	}
	if opts.upscale < 1 {
		return opts, fmt.Errorf("upscale %d must be at least 1", opts.upscale)
	}
	return opts, nil
}

// run renders one image and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "", 0)

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		errLog.Printf("Error: %v", err)
		return 1
	}

	selectedScene, err := scene.New(opts.sceneName, opts.config.AspectRatio())
	if err != nil {
		errLog.Printf("Error: %v", err)
		return 1
	}

	var logger core.Logger = log.New(stderr, "", log.LstdFlags)
	if opts.quiet {
		logger = renderer.NopLogger{}
	}

	raytracer := renderer.NewRaytracer(selectedScene, opts.config, logger)
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		errLog.Printf("Error rendering: %v", err)
		return 1
	}

	// A failed write is reported but does not change the exit status
	if err := imageio.Save(opts.outputPath, fb, imageio.Gamma(opts.gamma), opts.upscale); err != nil {
		errLog.Printf("Error saving %s: %v", opts.outputPath, err)
		return 0
	}

	if !opts.quiet {
		p := message.NewPrinter(language.English)
		p.Fprintf(stdout, "Rendered %d samples over %d pixels in %v (%.0f samples/s)\n",
			stats.TotalSamples, stats.TotalPixels, stats.Elapsed, stats.SamplesPerSecond())
		p.Fprintf(stdout, "Render saved as %s\n", opts.outputPath)
	}
	return 0
}
