package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	RegisterRoutes(mux)
	return mux
}

func TestLandingPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), `id="urlInput"`) {
		t.Error("landing page is missing the URL input")
	}
}

func TestStaticAssets(t *testing.T) {
	for _, path := range []string{"/static/app.js", "/static/style.css"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAppRendersSummaryBeforeSanitizing(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	js := rec.Body.String()

	if !strings.Contains(js, "DOMPurify.sanitize(marked.parse(data.ai_analysis))") {
		t.Error("summary markdown must be parsed first and the resulting HTML sanitized")
	}
	if strings.Contains(js, "marked.parse(escapeHTML(") {
		t.Error("escaping before parsing double-escapes fenced code blocks")
	}
}
