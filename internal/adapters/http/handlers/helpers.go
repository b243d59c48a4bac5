package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhidden/vetted/internal/adapters/http/dto"
	"github.com/mwhidden/vetted/internal/domain"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// pathID extracts the {id} path parameter. Emptiness and format checks are
// the core's job; the adapter passes the raw value through.
func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeObjectBody reads the request body as an untyped JSON object, limited
// to maxJSONBodyBytes. On failure it writes a 400 envelope and returns false.
func decodeObjectBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	raw, err := dto.DecodeObject(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return nil, false
	}
	return raw, true
}

// decodeJSONBody decodes the request body as JSON into dst, limited to
// maxJSONBodyBytes. On failure it writes a 400 envelope and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteError(w, r, domain.NewFieldErrors(domain.FieldError{
			Field: "body", Message: "invalid JSON",
		}))
		return false
	}
	return true
}

// writeJSON writes a bare JSON response with the given status code. Health
// endpoints use it; everything under /api/v1 goes through the envelope.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
