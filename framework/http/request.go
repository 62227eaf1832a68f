package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared across requests; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// Request wraps *http.Request with binding helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the JSON request body into v.
func (req *Request) Bind(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

// BindValidated decodes the JSON body into v and validates it against its
// `validate` struct tags. The returned error is a
// validator.ValidationErrors when validation fails, which Response.
// ValidationError knows how to render.
func (req *Request) BindValidated(v any) error {
	if err := req.Bind(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Has reports whether the query key is present and non-empty.
func (req *Request) Has(key string) bool {
	return req.Query(key) != ""
}
