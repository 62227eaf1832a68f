package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"

	gohttp "github.com/km-arc/go-cleanarch/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("jsonBody: %v", err)
	}
	return bytes.NewReader(b)
}

func jsonRequest(t *testing.T, v any) *gohttp.Request {
	t.Helper()
	raw := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, v))
	raw.Header.Set("Content-Type", "application/json")
	return gohttp.NewRequest(raw)
}

// ── Bind ─────────────────────────────────────────────────────────────────────

func TestRequest_Bind_JSON(t *testing.T) {
	req := jsonRequest(t, map[string]any{"name": "Alice", "age": 30})

	var body struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	if err := req.Bind(&body); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if body.Name != "Alice" || body.Age != 30 {
		t.Errorf("bound struct: got %+v", body)
	}
}

func TestRequest_Bind_EmptyBody(t *testing.T) {
	raw := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
	req := gohttp.NewRequest(raw)

	var body struct{}
	if err := req.Bind(&body); err == nil {
		t.Error("empty body should be an error")
	}
}

func TestRequest_Bind_InvalidJSON(t *testing.T) {
	raw := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{nope")))
	req := gohttp.NewRequest(raw)

	var body struct{}
	if err := req.Bind(&body); err == nil {
		t.Error("malformed JSON should be an error")
	}
}

// ── BindValidated ────────────────────────────────────────────────────────────

type createPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func TestRequest_BindValidated_Valid(t *testing.T) {
	req := jsonRequest(t, map[string]any{"email": "alice@example.com", "name": "Alice"})

	var p createPayload
	if err := req.BindValidated(&p); err != nil {
		t.Fatalf("BindValidated: %v", err)
	}
	if p.Email != "alice@example.com" {
		t.Errorf("email: got %q", p.Email)
	}
}

func TestRequest_BindValidated_Invalid(t *testing.T) {
	req := jsonRequest(t, map[string]any{"email": "nope", "name": "A"})

	var p createPayload
	err := req.BindValidated(&p)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("got %v, want validator.ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("violations: got %d, want 2 (email format, name length)", len(verrs))
	}
}

// ── Query ────────────────────────────────────────────────────────────────────

func TestRequest_Query(t *testing.T) {
	raw := httptest.NewRequest(http.MethodGet, "/users?active=true", nil)
	req := gohttp.NewRequest(raw)

	if got := req.Query("active"); got != "true" {
		t.Errorf("Query(active): got %q want true", got)
	}
	if got := req.Query("missing", "fallback"); got != "fallback" {
		t.Errorf("Query fallback: got %q", got)
	}
	if !req.Has("active") || req.Has("missing") {
		t.Error("Has should reflect query presence")
	}
}
