package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Limits applied to posted scenes and to query overrides
const (
	MaxSceneBytes = 1 << 20
	MaxImageSize  = 2000
	MaxTraceDepth = 100
)

// Server handles web requests for the raytracer
type Server struct {
	config   *config.Config
	uploader *publish.Uploader // nil when no bucket is configured
}

// NewServer creates a new web server. uploader may be nil.
func NewServer(cfg *config.Config, uploader *publish.Uploader) *Server {
	return &Server{config: cfg, uploader: uploader}
}

// RenderRequest holds the overrides accepted by the render endpoints
type RenderRequest struct {
	Scene    string  // Scene name for GET requests
	Width    int     // 0 = keep the scene's width
	Height   int     // 0 = keep the scene's height
	MaxDepth int     // -1 = keep the scene's depth
	MinCoef  float64 // -1 = keep the scene's threshold
	Upload   bool    // Publish to S3 and return the URL instead of the image
}

// Handler returns the routes served by the web server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.config.ServerAddress)
	return http.ListenAndServe(s.config.ServerAddress, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the JSON scenes in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.config.ScenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// loadScene builds the scene for a request: a posted JSON body, or the named scene for GET
func (s *Server) loadScene(r *http.Request, req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	var sceneObj *scene.Scene

	switch r.Method {
	case http.MethodPost:
		data, err := io.ReadAll(io.LimitReader(r.Body, MaxSceneBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read scene: %w", err)
		}
		if len(data) > MaxSceneBytes {
			return nil, fmt.Errorf("scene exceeds %d bytes", MaxSceneBytes)
		}
		desc, err := loaders.ParseSceneJSON(data)
		if err != nil {
			return nil, err
		}
		// Posted scenes may only reference assets inside the scenes directory
		desc.BaseDir = s.config.ScenesDir
		desc.AssetRoot = s.config.ScenesDir
		if sceneObj, err = scene.NewFromDescription(desc, logger); err != nil {
			return nil, err
		}
		sceneObj.Name = "posted"

	case http.MethodGet:
		if !scene.IsBuiltin(req.Scene) && !isSceneID(req.Scene) {
			return nil, fmt.Errorf("unknown scene: %s", req.Scene)
		}
		var err error
		if sceneObj, err = scene.Load(req.Scene, s.config.ScenesDir, logger); err != nil {
			return nil, err
		}

	default:
		return nil, errMethodNotAllowed
	}

	if req.Width > 0 {
		sceneObj.CameraConfig.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.CameraConfig.Height = req.Height
	}
	if req.MaxDepth >= 0 {
		sceneObj.TraceConfig.MaxDepth = req.MaxDepth
	}
	if req.MinCoef >= 0 {
		sceneObj.TraceConfig.MinCoefficient = req.MinCoef
	}
	if err := checkLimits(sceneObj); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// checkLimits rejects scenes whose image or bounce budget exceeds what the server renders
func checkLimits(s *scene.Scene) error {
	cam, trace := s.CameraConfig, s.TraceConfig
	if cam.Width < 1 || cam.Width > MaxImageSize || cam.Height < 1 || cam.Height > MaxImageSize {
		return fmt.Errorf("image size %dx%d outside 1..%d", cam.Width, cam.Height, MaxImageSize)
	}
	if trace.MaxDepth < 0 || trace.MaxDepth > MaxTraceDepth {
		return fmt.Errorf("max depth %d outside 0..%d", trace.MaxDepth, MaxTraceDepth)
	}
	if trace.MinCoefficient < 0 || trace.MinCoefficient > 1 {
		return fmt.Errorf("min coefficient %g outside 0..1", trace.MinCoefficient)
	}
	return nil
}

var errMethodNotAllowed = errors.New("method not allowed")

// isSceneID reports whether id names a JSON scene by ID rather than by path
func isSceneID(id string) bool {
	name, ok := strings.CutPrefix(id, "json:")
	if !ok || name == "" {
		return false
	}
	return !strings.ContainsAny(name, `/\.`)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, MaxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, 0, MaxTraceDepth); err != nil {
		return nil, err
	}
	if req.MinCoef, err = parseFloatParam(query, "minCoef", -1, 0, 1); err != nil {
		return nil, err
	}
	req.Upload = query.Get("upload") == "true"

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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sceneErrorStatus maps scene loading failures to an HTTP status
func sceneErrorStatus(err error) int {
	if errors.Is(err, errMethodNotAllowed) {
		return http.StatusMethodNotAllowed
	}
	return http.StatusBadRequest
}
