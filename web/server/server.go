package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server renders scenes on request and reports what lies under a pixel
type Server struct {
	port      int
	scenesDir string
	logger    core.Logger
}

// NewServer creates a new web server. Scene scripts are looked up by name in
// scenesDir.
func NewServer(port int, scenesDir string, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, scenesDir: scenesDir, logger: logger}
}

// RenderRequest represents the scene and view parameters shared by the render
// and inspect endpoints
type RenderRequest struct {
	Scene  string // Built-in scene or script name
	Width  int    // Image width
	Height int    // Image height
	Depth  int    // Recursion depth, -1 for the scene default
	Seed   int64  // Seed for scenes with random placement
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scripts in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders one frame and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc, camera, depth, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	fb := renderer.NewFramebuffer(req.Width, req.Height)
	rt := renderer.NewRenderer(renderer.DefaultRenderConfig(), s.logger)
	if _, err := rt.Render(r.Context(), fb, camera, sc, depth); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Render cancelled: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, fb.Image()); err != nil {
		s.logger.Printf("Error writing PNG: %v\n", err)
	}
}

// parseRenderRequest reads render parameters from the query, applying defaults
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 300, 1, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", -1, -1, 10); err != nil {
		return nil, err
	}

	req.Seed = 1
	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene and the camera to view it with.
// Scripts are only loaded when listed in the scenes directory, so request
// names never reach the filesystem directly.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, *renderer.Camera, int, error) {
	sc, settings, err := scene.NewBuiltinScene(req.Scene, rand.New(rand.NewSource(req.Seed)))
	if err != nil {
		sc, settings, err = s.loadScript(req.Scene)
		if err != nil {
			return nil, nil, 0, err
		}
	}

	aspect := float64(req.Width) / float64(req.Height)
	camera := renderer.NewCamera(settings.Camera.Eye, settings.Camera.LookAt, settings.Camera.FOV, aspect)

	depth := settings.MaxDepth
	if req.Depth >= 0 {
		depth = req.Depth
	}
	return sc, camera, depth, nil
}

func (s *Server) loadScript(name string) (*scene.Scene, scene.Settings, error) {
	scripts, err := scene.ListSceneScripts(s.scenesDir)
	if err != nil {
		return nil, scene.Settings{}, err
	}
	for _, info := range scripts {
		if info.Name == name {
			return loaders.LoadSceneScript(info.FilePath, s.logger)
		}
	}
	return nil, scene.Settings{}, fmt.Errorf("unknown scene: %s", name)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
