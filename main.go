package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/logging"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.NewStderr(logging.ErrorLevel).Errorf("%v", err)
		os.Exit(1)
	}
}

// options holds the command line flags
type options struct {
	configPath string
	saveConfig string
	outputPath string
	sceneName  string
	logLevel   string
	samples    int
	depth      int
	width      int
	seed       int64
	help       bool
}

func newFlagSet(opts *options, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file (defaults are used when empty)")
	fs.StringVar(&opts.saveConfig, "save-config", "", "Write the effective configuration (after flag overrides) to this YAML file")
	fs.StringVar(&opts.outputPath, "output", "", "Output image path (.ppm or .png, optionally .zst or .sz)")
	fs.StringVar(&opts.sceneName, "scene", "", "Built-in scene: "+strings.Join(scene.BuiltinNames(), ", "))
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounces per camera ray")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

// applyFlags overrides configuration values with flags given on the command line
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output.Path = opts.outputPath
			cfg.Output.Format = ""
			cfg.Output.Compression = ""
		case "scene":
			cfg.SceneName = opts.sceneName
			cfg.Scene = nil
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "samples":
			cfg.Sampling.SamplesPerPixel = opts.samples
		case "depth":
			cfg.Sampling.MaxDepth = opts.depth
		case "width":
			cfg.Image.Width = opts.width
		case "seed":
			cfg.Sampling.Seed = opts.seed
		}
	})
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Weekend Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	fmt.Fprintln(w, "  default    - Ground, a diffuse center sphere and two metal spheres")
	fmt.Fprintln(w, "  spheregrid - Grid of diffuse and metal spheres over a ground sphere")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A scene block in the configuration file replaces the built-in scene.")
}

// run renders one image as directed by args. Help goes to stdout, logs to logOut.
func run(args []string, stdout, logOut io.Writer) error {
	opts := &options{}
	fs := newFlagSet(opts, logOut)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(fs, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if opts.saveConfig != "" {
		if err := config.Save(cfg, opts.saveConfig); err != nil {
			return err
		}
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.New(logOut, level)

	world, err := scene.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	seed := cfg.Sampling.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Warnf("No seed configured, using %d from the clock (pass -seed %d to reproduce)", seed, seed)
	}

	width, height := cfg.Image.Width, cfg.Height()
	logger.Infof("Rendering %dx%d, %d samples/pixel, max depth %d, seed %d",
		width, height, cfg.Sampling.SamplesPerPixel, cfg.Sampling.MaxDepth, seed)

	raytracer := renderer.NewRaytracer(world, width, height, core.NewSeededSampler(seed))
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Sampling.SamplesPerPixel,
		MaxDepth:        cfg.Sampling.MaxDepth,
	})
	raytracer.SetLogger(logger)

	startTime := time.Now()
	img, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	logger.Infof("Render completed in %v", renderTime)
	logger.Infof("Pixels: %d, samples: %d (%.1f per pixel)",
		stats.TotalPixels, stats.TotalSamples, stats.AverageSamples)

	format, compression := cfg.ResolvedFormat(), cfg.ResolvedCompression()
	if err := output.Save(cfg.Output.Path, img, format, compression); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output.Path, err)
	}

	logger.Infof("Render saved as %s (%s, compression %s)", cfg.Output.Path, format, compression)
	return nil
}
