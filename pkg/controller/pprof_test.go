package controller_test

import (
	"ground/pkg/controller"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func servePprof(t *testing.T, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "http://pprof.local"+path, nil)
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, req)

	return rec.Result()
}

func TestPprofMux_Index(t *testing.T) {
	res := servePprof(t, http.MethodGet, controller.PprofPrefix)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html index, got %q", ct)
	}
}

func TestPprofMux_NamedProfile(t *testing.T) {
	res := servePprof(t, http.MethodGet, controller.PprofPrefix+"goroutine?debug=1")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
}

func TestPprofMux_Cmdline_OK(t *testing.T) {
	res := servePprof(t, http.MethodGet, controller.PprofPrefix+"cmdline")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
}

func TestPprofMux_RejectsPost(t *testing.T) {
	res := servePprof(t, http.MethodPost, controller.PprofPrefix+"cmdline")
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", res.StatusCode)
	}
}
