package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoline/chronoline/pkg/config"
	"github.com/chronoline/chronoline/pkg/pipeline"
	"github.com/chronoline/chronoline/pkg/timeline"
)

func yearPtr(y int) *int { return &y }

func testServer() *Server {
	cfg := config.Default()
	cfg.CurrentYear = 2026
	runner := pipeline.NewRunner(nil, cfg, log.NewWithOptions(io.Discard, log.Options{}))
	return NewServer(runner, ":0", log.NewWithOptions(io.Discard, log.Options{}))
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func testRoster() []timeline.Person {
	return []timeline.Person{
		{Name: "Marie Curie", BirthYear: 1867, DeathYear: yearPtr(1934), Category: "science"},
		{Name: "Albert Einstein", BirthYear: 1879, DeathYear: yearPtr(1955), Category: "science"},
	}
}

func TestHealthz(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestLayoutEndpoint(t *testing.T) {
	router := testServer().Router()

	rec := postJSON(t, router, "/v1/layout", pipeline.Options{
		People:  testRoster(),
		Formats: []string{"svg", "json"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp layoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.PeopleCount)
	assert.NotEmpty(t, resp.RosterHash)
	require.NotNil(t, resp.Layout)
	assert.Len(t, resp.Layout.Bars, 2)
	assert.Contains(t, string(resp.Artifacts["svg"]), "<svg")
}

func TestLayoutEndpointIgnoresRosterPath(t *testing.T) {
	router := testServer().Router()

	// File paths must not be readable through the API.
	rec := postJSON(t, router, "/v1/layout", pipeline.Options{
		RosterPath: "/etc/passwd",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLayoutEndpointEmptyRoster(t *testing.T) {
	router := testServer().Router()

	rec := postJSON(t, router, "/v1/layout", pipeline.Options{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Code)
}

func TestLayoutEndpointBadBody(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodPost, "/v1/layout", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRadialEndpoint(t *testing.T) {
	router := testServer().Router()

	rec := postJSON(t, router, "/v1/radial", pipeline.Options{
		People: testRoster(),
		Focal:  "Marie Curie",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp layoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Arcs, 1)
	assert.Nil(t, resp.Layout)
}

func TestRadialEndpointUnknownFocal(t *testing.T) {
	router := testServer().Router()

	rec := postJSON(t, router, "/v1/radial", pipeline.Options{
		People: testRoster(),
		Focal:  "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PERSON_NOT_FOUND", resp.Code)
}

func TestGridEndpoint(t *testing.T) {
	router := testServer().Router()

	rec := postJSON(t, router, "/v1/grid", pipeline.Options{
		People: testRoster(),
		Focal:  "Albert Einstein",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp layoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// One cell per year of the 1879-1955 lifespan.
	assert.Len(t, resp.Cells, 76)
}

func TestRequestIDPreserved(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied", rec.Header().Get("X-Request-ID"))
}
