package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// scenesDir is searched for scene scripts named on the command line
const scenesDir = "scenes"

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	MaxDepth  int // Negative keeps the scene's recommended depth
	Workers   int
	TileSize  int
	Seed      int64
	OutputDir string
}

func main() {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene ("+strings.Join(scene.BuiltinNames(), ", ")+"), script name under scenes/, or script path")
	flag.IntVar(&config.Width, "width", 900, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 600, "Image height in pixels")
	flag.IntVar(&config.MaxDepth, "depth", -1, "Maximum reflection/refraction depth (-1 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = use CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed for scene generation (0 = current time)")
	flag.StringVar(&config.OutputDir, "out", "output", "Directory for rendered images")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := renderer.NewDefaultLogger()
	filename, err := run(context.Background(), config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", filename)
}

// run builds the scene, renders one pass and writes the PNG, returning its path
func run(ctx context.Context, config Config, logger core.Logger) (string, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return "", fmt.Errorf("invalid image size %dx%d", config.Width, config.Height)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sc, settings, err := createScene(config.SceneType, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return "", err
	}
	logger.Printf("Scene has %d primitives and %d lights\n", sc.GetPrimitiveCount(), len(sc.Lights()))

	depth := settings.MaxDepth
	if config.MaxDepth >= 0 {
		depth = config.MaxDepth
	}

	aspect := float64(config.Width) / float64(config.Height)
	camera := renderer.NewCamera(settings.Camera.Eye, settings.Camera.LookAt, settings.Camera.FOV, aspect)
	fb := renderer.NewFramebuffer(config.Width, config.Height)

	r := renderer.NewRenderer(renderer.RenderConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.Workers,
	}, logger)
	if _, err := r.Render(ctx, fb, camera, sc, depth); err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}

	outputDir := filepath.Join(config.OutputDir, sceneName(config.SceneType))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, fb); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene resolves a built-in scene name, a script name under the scenes
// directory, or a scene script path
func createScene(sceneType string, random *rand.Rand, logger core.Logger) (*scene.Scene, scene.Settings, error) {
	if sceneType == "" {
		return nil, scene.Settings{}, fmt.Errorf("scene type must not be empty")
	}
	if sc, settings, err := scene.NewBuiltinScene(sceneType, random); err == nil {
		logger.Printf("Using %s scene...\n", sceneType)
		return sc, settings, nil
	}

	path := sceneType
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(scenesDir, sceneType+scene.SceneScriptExt)
		if _, err := os.Stat(path); err != nil {
			return nil, scene.Settings{}, fmt.Errorf("unknown scene %q (run with -list to see available scenes)", sceneType)
		}
	}
	logger.Printf("Loading scene script %s...\n", path)
	return loaders.LoadSceneScript(path, logger)
}

// listScenes prints the built-in scenes and the scripts in the scenes directory
func listScenes() error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("%-12s %-8s %s\n", info.Name, info.Type, info.Description)
	}
	return nil
}

// sceneName turns a scene argument into an output directory name
func sceneName(sceneType string) string {
	base := filepath.Base(sceneType)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func savePNG(filename string, fb *renderer.Framebuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
