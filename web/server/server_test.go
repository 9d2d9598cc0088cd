package server

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestServer_Health(t *testing.T) {
	srv := NewServer(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Expected ok status, got %s", rec.Body.String())
	}
}

func TestServer_RenderReturnsPNG(t *testing.T) {
	srv := NewServer(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/render?width=32&height=32&pitch=0.1&yaw=-0.2&led=green", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("Expected 32x32 image, got %v", img.Bounds())
	}
}

func TestServer_RenderRejectsBadParams(t *testing.T) {
	srv := NewServer(0)

	tests := []struct {
		name  string
		query string
	}{
		{"width too large", "width=5000"},
		{"width not a number", "width=abc"},
		{"pitch out of range", "pitch=3.0"},
		{"unknown led color", "led=blue"},
		{"camera too close", "camera=0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/render?"+tt.query, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 for %q, got %d", tt.query, rec.Code)
			}
		})
	}
}

func TestParseParams_Defaults(t *testing.T) {
	srv := NewServer(0)

	req, err := srv.parseRenderRequest(httptest.NewRequest("GET", "/render", nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Width != 640 || req.Height != 480 {
		t.Errorf("Expected 640x480 defaults, got %dx%d", req.Width, req.Height)
	}
	if req.Pitch != 0 || req.Yaw != 0 {
		t.Errorf("Expected zero angles by default, got %f/%f", req.Pitch, req.Yaw)
	}
	if req.Led != "off" {
		t.Errorf("Expected led off by default, got %s", req.Led)
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"n": {"42"}}

	if got, err := parseIntParam(values, "n", 0, 0, 100); err != nil || got != 42 {
		t.Errorf("Expected 42, got %d (%v)", got, err)
	}
	if got, err := parseIntParam(values, "missing", 7, 0, 100); err != nil || got != 7 {
		t.Errorf("Expected default 7, got %d (%v)", got, err)
	}
	if _, err := parseIntParam(url.Values{"n": {"200"}}, "n", 0, 0, 100); err == nil {
		t.Error("Expected range error for 200")
	}
}
