package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Options are the command line overrides applied on top of a scene
type Options struct {
	Scene    string
	Width    int
	Height   int
	MaxDepth int
	MinCoef  float64
	Workers  int
	Preview  int
	Upload   bool
}

func main() {
	// Parse command line flags
	opts := Options{}
	flag.StringVar(&opts.Scene, "scene", "default", "Scene: 'default', 'cornell', 'json:<name>' or path to a .json file")
	flag.IntVar(&opts.Width, "width", 0, "Override image width")
	flag.IntVar(&opts.Height, "height", 0, "Override image height")
	flag.IntVar(&opts.MaxDepth, "depth", -1, "Override maximum bounce depth")
	flag.Float64Var(&opts.MinCoef, "min-coef", -1, "Override minimum branch coefficient")
	flag.IntVar(&opts.Workers, "workers", -1, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.Preview, "preview", 0, "Also save a preview no larger than N pixels")
	flag.BoolVar(&opts.Upload, "upload", false, "Upload the render to the configured S3 bucket")
	envFile := flag.String("env", ".env", "Optional environment file")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Show help if requested
	if *help {
		showHelp(cfg)
		return
	}
	if *list {
		if err := listScenes(cfg.ScenesDir); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp(cfg *config.Config) {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	if err := listScenes(cfg.ScenesDir); err != nil {
		fmt.Printf("Error listing scenes: %v\n", err)
	}
	fmt.Println()
	fmt.Println("Output will be saved to $OUTPUT_DIR/<scene>/render_<timestamp>.png")
}

func listScenes(dir string) error {
	scenes, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}
	fmt.Println("Available scenes:")
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Printf("  %-20s - %s\n", info.ID, info.Description)
		} else {
			fmt.Printf("  %-20s - %s\n", info.ID, info.DisplayName)
		}
	}
	return nil
}

// createScene loads the named scene and applies command line overrides
func createScene(cfg *config.Config, opts Options) (*scene.Scene, error) {
	if opts.Scene == "" {
		return nil, fmt.Errorf("no scene specified")
	}
	s, err := scene.Load(opts.Scene, cfg.ScenesDir, renderer.NewDefaultLogger())
	if err != nil {
		return nil, err
	}

	if opts.Width > 0 {
		s.CameraConfig.Width = opts.Width
	}
	if opts.Height > 0 {
		s.CameraConfig.Height = opts.Height
	}
	if opts.MaxDepth >= 0 {
		s.TraceConfig.MaxDepth = opts.MaxDepth
	}
	if opts.MinCoef >= 0 {
		s.TraceConfig.MinCoefficient = opts.MinCoef
	}
	return s, nil
}

// outputPath builds the timestamped output filename for a scene
func outputPath(outputDir, sceneName string, ts time.Time) string {
	if sceneName == "" {
		sceneName = "scene"
	}
	return filepath.Join(outputDir, sceneName, fmt.Sprintf("render_%s.png", ts.Format("20060102_150405")))
}

func run(ctx context.Context, cfg *config.Config, opts Options) error {
	fmt.Println("Starting Phong Raytracer...")

	s, err := createScene(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	fmt.Printf("Using scene %s (%dx%d, max depth %d)...\n",
		s.Name, s.CameraConfig.Width, s.CameraConfig.Height, s.TraceConfig.MaxDepth)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = cfg.RenderWorkers
	if opts.Workers >= 0 {
		renderConfig.NumWorkers = opts.Workers
	}

	raytracer := renderer.NewRaytracer(s, renderConfig, renderer.NewDefaultLogger())
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	finished := time.Now()
	filename := outputPath(cfg.OutputDir, s.Name, finished)
	if err := publish.SavePNG(img, filename); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s (%d pixels in %v)\n", filename, stats.TotalPixels, stats.Duration)

	if opts.Preview > 0 {
		previewFile := publish.PreviewPath(filename)
		if err := publish.SavePNG(publish.Preview(img, opts.Preview), previewFile); err != nil {
			return err
		}
		fmt.Printf("Preview saved as %s\n", previewFile)
	}

	if opts.Upload {
		if !cfg.UploadEnabled() {
			return fmt.Errorf("upload requested but S3_BUCKET is not set")
		}
		uploader, err := publish.NewS3Uploader(cfg.S3, renderer.NewDefaultLogger())
		if err != nil {
			return err
		}
		data, err := publish.EncodePNG(img)
		if err != nil {
			return err
		}
		url, err := uploader.Upload(ctx, publish.RenderKey(s.Name, finished), data)
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded to %s\n", url)
	}

	return nil
}
