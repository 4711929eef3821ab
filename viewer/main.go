package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/viewer/editor"
	"github.com/df07/go-whitted-raytracer/viewer/window"
)

func main() {
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a scene script")
	width := flag.Int("width", 600, "Window width in pixels")
	height := flag.Int("height", 400, "Window height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	flag.Parse()

	logger := renderer.NewDefaultLogger()

	sc, settings, err := scene.NewBuiltinScene(*sceneType, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		sc, settings, err = loaders.LoadSceneScript(*sceneType, logger)
	}
	if err != nil {
		log.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}

	aspect := float64(*width) / float64(*height)
	camera := renderer.NewCamera(settings.Camera.Eye, settings.Camera.LookAt, settings.Camera.FOV, aspect)
	fb := renderer.NewFramebuffer(*width, *height)
	r := renderer.NewRenderer(renderer.RenderConfig{
		TileSize:   renderer.DefaultRenderConfig().TileSize,
		NumWorkers: *workers,
	}, logger)

	log.Printf("Whitted Raytracer Viewer")
	log.Printf("Arrows orbit, W/S zoom, +/- depth, P plane, N bubble, L light, 1-6 move light, Tab select, Delete remove")

	if err := window.Run(editor.New(sc, camera, settings.MaxDepth), fb, r, logger); err != nil {
		log.Printf("Viewer stopped: %v", err)
		os.Exit(1)
	}
}
