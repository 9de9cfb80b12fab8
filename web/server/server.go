package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-strip-raytracer/pkg/renderer"
	"github.com/df07/go-strip-raytracer/pkg/scene"
)

// maxWorkers bounds the worker count a single request may ask for
const maxWorkers = 512

// Server handles web requests for the strip raytracer
type Server struct {
	port     int
	console  *Console
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:    port,
		console: NewConsole(200),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Workers int    `json:"workers"` // Worker strips, 0 = auto
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
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

// handleScenes lists the scenes that can be rendered
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Recent())
}

// handleRender renders a whole scene and responds with a PNG.
// Nothing is written until every worker has finished, so a failed render never
// produces a partial image.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.Lookup(req.Scene)
	if errors.Is(err, scene.ErrUnknownScene) {
		http.Error(w, fmt.Sprintf("unknown scene %q", req.Scene), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error loading scene %q: %v", req.Scene, err)
		http.Error(w, "failed to load scene", http.StatusInternalServerError)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderID.Add(1))
	logger := NewWebLogger(renderID, s.console)

	coordinator, err := renderer.NewCoordinator(sceneObj, renderer.Config{Workers: req.Workers}, logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, renderer.ErrInvalidWorkers) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	// Request context cancels the render if the client disconnects
	startTime := time.Now()
	buffer, stats, err := coordinator.Render(r.Context())
	if err != nil {
		logger.Printf("Render %s failed: %v\n", renderID, err)
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, buffer.ToRGBA()); err != nil {
		log.Printf("Error encoding image for %s: %v", renderID, err)
		http.Error(w, "failed to encode image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Workers", strconv.Itoa(stats.Workers))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(encoded.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default"}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
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

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
