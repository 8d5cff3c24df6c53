package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"workbook-generator/internal/introspect"
	"workbook-generator/internal/logging"
	"workbook-generator/internal/platform"
	"workbook-generator/internal/schema"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

// errBadRequest marks request decoding and validation failures.
var errBadRequest = errors.New("bad request")

// classify maps an error to a status code and a machine-readable code.
func classify(err error) (int, string) {
	var apiErr *platform.APIError

	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, introspect.ErrInvalidSource):
		return http.StatusBadRequest, "invalid_source"
	case errors.Is(err, introspect.ErrSchemaFetch):
		return http.StatusBadGateway, "schema_fetch_failed"
	case errors.Is(err, introspect.ErrInvalidSDL), errors.Is(err, schema.ErrMalformedDocument),
		errors.Is(err, introspect.ErrMissingSchema):
		return http.StatusUnprocessableEntity, "invalid_schema"
	case errors.Is(err, platform.ErrMissingSpace):
		return http.StatusBadRequest, "missing_space"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "publish_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondError logs err and writes it as JSON.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)

	logger := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request error", "path", r.URL.Path, "status", status, "code", code, "error", err)
	} else {
		logger.Warn("request error", "path", r.URL.Path, "status", status, "code", code, "error", err)
	}

	writeJSON(w, status, ErrorResponse{
		Error:     err.Error(),
		Code:      code,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}
