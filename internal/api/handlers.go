package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/chronoline/chronoline/pkg/buildinfo"
	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/pipeline"
	"github.com/chronoline/chronoline/pkg/timeline/grid"
	"github.com/chronoline/chronoline/pkg/timeline/radial"
)

// layoutResponse is the JSON envelope for all pipeline endpoints. Artifacts
// are base64-encoded by the JSON encoder ([]byte values).
type layoutResponse struct {
	RosterHash  string            `json:"roster_hash"`
	PeopleCount int               `json:"people_count"`
	Layout      *chart.Layout     `json:"layout,omitempty"`
	Arcs        []radial.Arc      `json:"arcs,omitempty"`
	Cells       []grid.Cell       `json:"cells,omitempty"`
	Artifacts   map[string][]byte `json:"artifacts,omitempty"`
	CacheHit    bool              `json:"cache_hit"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleLayout runs the chart pipeline on an inline roster.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.execute(w, r, pipeline.VizTypeChart)
}

// handleRadial runs the contemporaries-clock pipeline.
func (s *Server) handleRadial(w http.ResponseWriter, r *http.Request) {
	s.execute(w, r, pipeline.VizTypeRadial)
}

// handleGrid runs the year-grid pipeline.
func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	s.execute(w, r, pipeline.VizTypeGrid)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, vizType string) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	// The endpoint determines the viz type; rosters arrive inline only.
	opts.VizType = vizType
	opts.RosterPath = ""
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		RosterHash:  result.RosterHash,
		PeopleCount: result.Stats.PeopleCount,
		Layout:      result.Layout,
		Arcs:        result.Arcs,
		Cells:       result.Cells,
		Artifacts:   result.Artifacts,
		CacheHit:    result.CacheInfo.LayoutHit,
	})
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidRoster,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig,
		errors.ErrCodeEmptyRoster:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodePersonNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	if status >= 500 {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
