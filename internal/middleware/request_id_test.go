package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set(requestIDHeaderName, header)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp, seen
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	resp, seen := serveWithRequestID(t, "")

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected uuid request id, got %q", seen)
	}
	if got := resp.Header().Get(requestIDHeaderName); got != seen {
		t.Fatalf("header %q does not match context %q", got, seen)
	}
}

func TestRequestIDPropagatedAndTruncated(t *testing.T) {
	_, seen := serveWithRequestID(t, "  abc-123  ")
	if seen != "abc-123" {
		t.Fatalf("expected trimmed id, got %q", seen)
	}

	_, seen = serveWithRequestID(t, strings.Repeat("x", 300))
	if len(seen) != maxRequestIDLength {
		t.Fatalf("expected %d chars, got %d", maxRequestIDLength, len(seen))
	}
}

func TestAccessLogUsesRouteTemplate(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(previous)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/items/7", nil)
	req.Header.Set(requestIDHeaderName, "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	if !strings.Contains(line, "request_id=req-7") || !strings.Contains(line, "route=/items/:id") || !strings.Contains(line, "status=204") {
		t.Fatalf("unexpected access log %q", line)
	}
}

func TestRequestIDFromContextOutsideRequest(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
