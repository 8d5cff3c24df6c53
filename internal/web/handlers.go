package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/introspect"
	"workbook-generator/internal/model"
	"workbook-generator/internal/workbook"
)

// generateRequest is the body of POST /api/workbooks/generate.
type generateRequest struct {
	// Source is a URL or SDL string, or an introspection result object.
	Source         json.RawMessage       `json:"source"`
	Name           string                `json:"name"`
	Labels         []string              `json:"labels"`
	SpaceID        string                `json:"spaceId"`
	EnvironmentID  string                `json:"environmentId"`
	Namespace      string                `json:"namespace"`
	Actions        []model.Action        `json:"actions"`
	Metadata       map[string]any        `json:"metadata"`
	Sheets         []model.SheetOverride `json:"sheets"`
	ReferenceCheck string                `json:"referenceCheck"`
	Publish        bool                  `json:"publish"`
}

// GenerateResponse is the body returned by a successful generation.
type GenerateResponse struct {
	GenerationID string                  `json:"generationId"`
	Workbook     *model.Workbook         `json:"workbook"`
	Diagnostics  []diagnostic.Diagnostic `json:"diagnostics"`
	WorkbookID   string                  `json:"workbookId,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleGenerate builds a workbook from the request's source.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	source, err := decodeSource(req.Source)
	if err != nil {
		respondError(w, r, err)
		return
	}

	for i, o := range req.Sheets {
		if o.Slug == "" {
			respondError(w, r, fmt.Errorf("%w: sheets[%d] has no slug", errBadRequest, i))
			return
		}
	}

	opts := s.deps.Options
	if req.ReferenceCheck != "" {
		mode, err := workbook.ParseReferenceCheck(req.ReferenceCheck)
		if err != nil {
			respondError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}

		opts.ReferenceCheck = mode
	}

	if req.Publish && s.deps.Creator == nil {
		respondError(w, r, fmt.Errorf("%w: publishing is not configured", errBadRequest))
		return
	}

	gen := workbook.NewGenerator(s.deps.Introspector, opts)

	res, err := gen.Generate(r.Context(), workbook.SourceConfig{
		Source: source,
		WorkbookProperties: model.WorkbookProperties{
			Name:          req.Name,
			Labels:        req.Labels,
			SpaceID:       req.SpaceID,
			EnvironmentID: req.EnvironmentID,
			Namespace:     req.Namespace,
			Actions:       req.Actions,
			Metadata:      req.Metadata,
		},
	}, req.Sheets)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := GenerateResponse{
		GenerationID: res.ID,
		Workbook:     res.Workbook,
		Diagnostics:  res.Diagnostics.All(),
	}

	if req.Publish {
		id, err := s.deps.Creator.CreateWorkbook(r.Context(), req.SpaceID, res.Workbook)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp.WorkbookID = id
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleIntrospect returns the raw introspection document for a source.
func (s *Server) handleIntrospect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Source json.RawMessage `json:"source"`
	}

	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	source, err := decodeSource(req.Source)
	if err != nil {
		respondError(w, r, err)
		return
	}

	in := s.deps.Introspector
	if in == nil {
		in = introspect.New()
	}

	doc, err := in.Introspect(r.Context(), source)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err)
	}

	return nil
}

// decodeSource turns the raw source member into a generator source: JSON
// strings stay strings, objects are passed on as introspection JSON.
func decodeSource(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: source is required", errBadRequest)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("%w: invalid source string: %w", errBadRequest, err)
		}

		return s, nil
	case '{':
		return []byte(trimmed), nil
	default:
		return nil, &introspect.InvalidSourceError{Source: string(trimmed), Reason: "source must be a string or an introspection object"}
	}
}
