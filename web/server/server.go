// Package server exposes the renderer over HTTP: a single-frame PNG
// endpoint for previews plus a health check.
package server

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/renderer"
)

// Server handles web requests for the renderer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a validated render request
type RenderRequest struct {
	Width          int     // image width
	Height         int     // image height
	Pitch          float64 // radians
	Yaw            float64 // radians
	Led            string  // "off", "green" or "red"
	CameraDistance float64 // camera offset along -Z
}

// Handler returns the HTTP handler with all routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start runs the server until the context is canceled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Serving on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok"}`)
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	frameRenderer := renderer.NewRenderer(renderer.NewCamera(req.CameraDistance), 0)
	img, stats := frameRenderer.RenderFrame(core.FrameInputs{
		Width:    req.Width,
		Height:   req.Height,
		Pitch:    req.Pitch,
		Yaw:      req.Yaw,
		LedColor: ledColor(req.Led),
	})

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Render error: failed to encode PNG: %v", err)
		return
	}

	log.Printf("Rendered %dx%d frame in %v (%.0f%% coverage)",
		req.Width, req.Height, stats.Duration, 100*stats.Coverage())
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 640, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 480, 16, 2000); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(r.URL.Query(), "pitch", 0, -math.Pi/2, math.Pi/2); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(r.URL.Query(), "yaw", 0, -math.Pi/2, math.Pi/2); err != nil {
		return nil, err
	}
	if req.CameraDistance, err = parseFloatParam(r.URL.Query(), "camera", renderer.DefaultCameraDistance, 1.0, 10.0); err != nil {
		return nil, err
	}

	req.Led = r.URL.Query().Get("led")
	if req.Led == "" {
		req.Led = "off"
	}
	switch req.Led {
	case "off", "green", "red":
	default:
		return nil, fmt.Errorf("led must be off, green or red, got: %s", req.Led)
	}

	return req, nil
}

// ledColor maps the led parameter to its palette color
func ledColor(name string) core.Vec3 {
	switch name {
	case "green":
		return core.NewVec3(0, 1, 0)
	case "red":
		return core.NewVec3(1, 0, 0)
	default:
		return core.Vec3{}
	}
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
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
