package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-cleanarch/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	r := routing.New()
	r.Get("/users", okHandler)
	r.Post("/users", okHandler)
	r.Put("/users/{id}", okHandler)
	r.Patch("/users/{id}", okHandler)
	r.Delete("/users/{id}", okHandler)

	for _, tt := range []struct {
		method, path string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodPatch, "/users/1"},
		{http.MethodDelete, "/users/1"},
	} {
		if rr := do(t, r, tt.method, tt.path); rr.Code != http.StatusOK {
			t.Errorf("%s %s: got %d want 200", tt.method, tt.path, rr.Code)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := routing.New()
	r.Get("/users", okHandler)

	if rr := do(t, r, http.MethodDelete, "/users"); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /users: got %d want 405", rr.Code)
	}
}

// ── Params ───────────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/abc-123")
	if rr.Body.String() != "abc-123" {
		t.Errorf("param: got %q want abc-123", rr.Body.String())
	}
}

// ── Prefix & Group ───────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/users", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/v1/users"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/users: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/users"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /users outside prefix: got %d want 404", rr.Code)
	}
}

func TestRouter_Group_MiddlewareScoped(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}

	r := routing.New()
	r.Get("/open", okHandler)
	r.Group(func(g *routing.Router) {
		g.Middleware(deny)
		g.Get("/closed", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/open"); rr.Code != http.StatusOK {
		t.Errorf("GET /open: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/closed"); rr.Code != http.StatusForbidden {
		t.Errorf("GET /closed: got %d want 403 (group middleware)", rr.Code)
	}
}
