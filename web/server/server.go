// Package server exposes the raytracer over HTTP for quick in-browser
// previews.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
	"github.com/dglen/go-whitted-raytracer/pkg/scene"
)

// Limits keep a stray query from tying up the process.
const (
	maxDimension = 4096
	maxDepth     = 16
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Handler()

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Handler returns the server's route table
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders a scene selected by query parameters and responds
// with a PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneName := queryString(r, "scene", "default")
	width := queryInt(r, "width", 800)
	height := queryInt(r, "height", 600)
	depth := queryInt(r, "depth", 5)

	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		http.Error(w, "width and height must be in (0, 4096]", http.StatusBadRequest)
		return
	}
	if depth <= 0 || depth > maxDepth {
		http.Error(w, "depth must be in (0, 16]", http.StatusBadRequest)
		return
	}

	selectedScene, err := scene.ByName(sceneName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = depth

	camera := renderer.NewCamera(selectedScene.Camera, float64(width)/float64(height))
	rt := renderer.NewRaytracer(selectedScene, camera, width, height, config, s.logger)

	img := rt.Render()

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Error encoding render response: %v", err)
	}
}

func queryString(r *http.Request, key, fallback string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
