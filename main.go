package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliConfig holds the parsed command line
type cliConfig struct {
	sceneName string
	width     int
	spp       int
	depth     int
	workers   int
	seed      int64
	outputDir string
	imagePath string
	meshPath  string
	list      bool
	help      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into a cliConfig. Zero values mean "use the scene's setting".
func parseFlags(args []string, output io.Writer) (*cliConfig, *flag.FlagSet, error) {
	cfg := &cliConfig{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.sceneName, "scene", "cornell", "Scene to render (see -list)")
	fs.IntVar(&cfg.width, "width", 0, "Image width in pixels; height follows the scene's aspect ratio (0 = scene default)")
	fs.IntVar(&cfg.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&cfg.workers, "workers", 0, "Number of parallel workers (0 = one per logical CPU)")
	fs.Int64Var(&cfg.seed, "seed", 42, "Seed for scene generation and sampling")
	fs.StringVar(&cfg.outputDir, "output", "output", "Directory renders are written under")
	fs.StringVar(&cfg.imagePath, "image", "", "Texture image for the earth and final scenes")
	fs.StringVar(&cfg.meshPath, "mesh", "", "PLY model for the mesh scene")
	fs.BoolVar(&cfg.list, "list", false, "List available scenes")
	fs.BoolVar(&cfg.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return cfg, fs, nil
}

// renderConfigFor applies command line overrides to a scene's render settings
func renderConfigFor(s *scene.Scene, cfg *cliConfig) renderer.RenderConfig {
	config := s.Config
	if cfg.width > 0 {
		config.Height = max(1, cfg.width*config.Height/config.Width)
		config.Width = cfg.width
	}
	if cfg.spp > 0 {
		config.SamplesPerPixel = cfg.spp
	}
	if cfg.depth > 0 {
		config.MaxDepth = cfg.depth
	}
	config.NumWorkers = cfg.workers
	config.Seed = cfg.seed
	return config
}

func printHelp(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Monte Carlo Path Tracer")
	fmt.Fprintln(out, "Usage: pathtracer [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fmt.Fprintln(out)
	printScenes(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

func printScenes(out io.Writer) {
	fmt.Fprintln(out, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(out, "  %-14s %s [%s]\n", info.ID, info.Description, info.Group)
	}
}

func run(args []string, out io.Writer) error {
	cfg, fs, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	if cfg.help {
		printHelp(out, fs)
		return nil
	}
	if cfg.list {
		printScenes(out)
		return nil
	}

	logger := renderer.NewDefaultLogger()
	if out != os.Stdout {
		logger = writerLogger{out}
	}

	logger.Printf("Building scene %s...\n", cfg.sceneName)
	random := rand.New(rand.NewSource(cfg.seed))
	selected, err := scene.NewSceneByName(cfg.sceneName, random, scene.Options{
		ImagePath: cfg.imagePath,
		MeshPath:  cfg.meshPath,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	config := renderConfigFor(selected, cfg)
	camera := selected.Camera
	if config.Width != selected.Config.Width || config.Height != selected.Config.Height {
		cameraConfig := selected.CameraConfig
		cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
		camera = renderer.NewCameraFromConfig(cameraConfig)
	}

	raytracer := renderer.NewRaytracer(camera, selected.World, selected.Lights, config, logger)
	pixels, err := raytracer.Render()
	if err != nil {
		return err
	}

	stats := raytracer.Stats()
	logger.Printf("%d samples at %.0f samples/s\n", stats.TotalSamples, stats.SamplesPerSecond())

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(cfg.outputDir, cfg.sceneName, fmt.Sprintf("render_%s.png", timestamp))
	if err := renderer.SavePNG(filename, pixels, config.Width, config.Height); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// writerLogger sends log output to an arbitrary writer
type writerLogger struct {
	w io.Writer
}

func (l writerLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}
