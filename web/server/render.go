package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderResult is the summary sent when a render finishes
type RenderResult struct {
	Scene              string  `json:"scene"`
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	ElapsedMs          int64   `json:"elapsedMs"`
	PrimaryRays        int     `json:"primaryRays"`
	ShadingEvaluations int     `json:"shadingEvaluations"`
	PrimitiveCount     int     `json:"primitiveCount"`
	AverageLuminance   float64 `json:"averageLuminance"`
	ImageData          string  `json:"imageData,omitempty"` // Base64 encoded PNG
	URL                string  `json:"url,omitempty"`       // Set when the render was uploaded
}

// renderScene runs a full render and encodes it as PNG
func (s *Server) renderScene(ctx context.Context, sceneObj *scene.Scene, logger core.Logger) ([]byte, *RenderResult, error) {
	config := renderer.DefaultRenderConfig()
	config.NumWorkers = s.config.RenderWorkers

	raytracer := renderer.NewRaytracer(sceneObj, config, logger)
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return nil, nil, err
	}

	data, err := publish.EncodePNG(img)
	if err != nil {
		return nil, nil, err
	}

	result := &RenderResult{
		Scene:              sceneObj.Name,
		Width:              sceneObj.CameraConfig.Width,
		Height:             sceneObj.CameraConfig.Height,
		ElapsedMs:          stats.Duration.Milliseconds(),
		PrimaryRays:        stats.PrimaryRays,
		ShadingEvaluations: stats.ShadingEvaluations,
		PrimitiveCount:     sceneObj.GetPrimitiveCount(),
		AverageLuminance:   renderer.CalculateAverageLuminance(img),
	}
	return data, result, nil
}

// publishResult uploads data when requested and records the URL on result
func (s *Server) publishResult(ctx context.Context, req *RenderRequest, sceneName string, data []byte, result *RenderResult) error {
	if !req.Upload {
		return nil
	}
	if s.uploader == nil {
		return fmt.Errorf("upload requested but no bucket is configured")
	}
	url, err := s.uploader.Upload(ctx, publish.RenderKey(sceneName, time.Now()), data)
	if err != nil {
		return err
	}
	result.URL = url
	return nil
}

// handleRender renders a scene and responds with the PNG, or with JSON when uploading.
// GET renders ?scene=<id>; POST renders the JSON scene in the request body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(r, req, core.NopLogger{})
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	// Use request context to stop rendering when the client disconnects
	ctx := r.Context()
	data, result, err := s.renderScene(ctx, sceneObj, core.NopLogger{})
	if err != nil {
		if ctx.Err() != nil {
			log.Printf("Render of %s abandoned: %v", sceneObj.Name, err)
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	if req.Upload {
		if err := s.publishResult(ctx, req, sceneObj.Name, data, result); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Ms", fmt.Sprint(result.ElapsedMs))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleRenderStream renders a scene and streams its log lines via SSE,
// finishing with a "complete" event that carries the encoded image.
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	stopConsole := func() {
		close(consoleChan)
		<-consoleDone
	}

	sceneObj, err := s.loadScene(r, req, webLogger)
	if err != nil {
		stopConsole()
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	data, result, err := s.renderScene(ctx, sceneObj, webLogger)
	if err == nil {
		err = s.publishResult(ctx, req, sceneObj.Name, data, result)
	}
	stopConsole()
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	if result.URL == "" {
		result.ImageData = base64.StdEncoding.EncodeToString(data)
	}
	payload, err := json.Marshal(result)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(payload)}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages to the SSE channel until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
