package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/m-mizutani/gt"
	httpCtrl "github.com/secmon-lab/orgdesk/pkg/controller/http"
)

func testFS() http.FileSystem {
	return http.FS(fstest.MapFS{
		"index.html":    {Data: []byte(`<!DOCTYPE html><html><body><h1>orgdesk</h1></body></html>`)},
		"app.js":        {Data: []byte(`console.log("orgdesk")`)},
		"app.css":       {Data: []byte(`body { margin: 0; }`)},
		"assets/x.json": {Data: []byte(`{}`)},
	})
}

func TestSPAHandler(t *testing.T) {
	handler, err := httpCtrl.NewSPAHandler(testFS())
	gt.NoError(t, err).Required()

	tests := []struct {
		name        string
		path        string
		contentType string
		contains    string
	}{
		{"static script", "/app.js", "application/javascript; charset=utf-8", "console.log"},
		{"stylesheet", "/app.css", "text/css; charset=utf-8", "margin"},
		{"root", "/", "text/html; charset=utf-8", "<h1>orgdesk</h1>"},
		{"unknown route", "/orgs/acme", "text/html; charset=utf-8", "<html"},
		{"directory", "/assets", "text/html; charset=utf-8", "<html"},
		{"traversal", "/../../etc/passwd", "text/html; charset=utf-8", "<html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			gt.Equal(t, http.StatusOK, w.Code)
			gt.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			gt.S(t, w.Body.String()).Contains(tt.contains)
		})
	}
}

func TestSPAHandlerRequiresIndex(t *testing.T) {
	_, err := httpCtrl.NewSPAHandler(http.FS(fstest.MapFS{
		"app.js": {Data: []byte("x")},
	}))
	gt.Error(t, err)
}
