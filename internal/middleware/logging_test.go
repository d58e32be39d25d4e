package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/api/items/99", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "status=404") {
		t.Errorf("log missing status: %s", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("4xx not logged at warn: %s", out)
	}
	if !strings.Contains(out, "path=/api/items/99") {
		t.Errorf("log missing path: %s", out)
	}
}

func TestRequestLoggerDefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lists", nil))

	if out := buf.String(); !strings.Contains(out, "status=200") || !strings.Contains(out, "level=INFO") {
		t.Errorf("unexpected log: %s", out)
	}
}
