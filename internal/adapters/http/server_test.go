package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpAdapter "github.com/aretw0/tramway/internal/adapters/http"
	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/pkg/adapters/memory"
	"github.com/aretw0/tramway/pkg/depot"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	journal := memory.NewJournal()
	m := metrics.New()
	fleet := depot.New(depot.WithJournal(journal), depot.WithMetrics(m))
	t.Cleanup(func() { fleet.Close(context.Background()) })

	handler := httpAdapter.NewHandler(fleet,
		httpAdapter.WithJournal(journal),
		httpAdapter.WithMetrics(m),
	)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func createTram(t *testing.T, srv *httptest.Server, id string) {
	t.Helper()
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/trams", map[string]string{"id": id})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func apply(t *testing.T, srv *httptest.Server, id, event string, payload map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	resp, data := doJSON(t, http.MethodPost, srv.URL+"/trams/"+id+"/transitions", map[string]any{
		"event":   event,
		"payload": payload,
	})
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return resp, out
}

func TestAPI_CreateListAndDuplicate(t *testing.T) {
	srv := newTestServer(t)

	createTram(t, srv, "line-1")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/trams", map[string]string{"id": "line-1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/trams", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	require.NoError(t, json.Unmarshal(data, &ids))
	assert.Equal(t, []string{"line-1"}, ids)
}

func TestAPI_CreateValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/trams", map[string]string{"id": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_StateAndTransitions(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/trams/t1/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, domain.StateIdle, snap.State)
	assert.Equal(t, 0, snap.Passengers)

	resp, out := apply(t, srv, "t1", "power_on", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", out["state"])

	// open doors, board 5
	resp, _ = apply(t, srv, "t1", "open_doors", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, out = apply(t, srv, "t1", "close_doors", map[string]any{"passengers_entered": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), out["passengers"])

	// power_off with passengers aboard succeeds but stays ready
	resp, out = apply(t, srv, "t1", "power_off", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", out["state"])
}

func TestAPI_InvalidTransition(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")

	resp, out := apply(t, srv, "t1", "move", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid transition", out["error"])
	assert.Equal(t, "idle", out["state"])
}

func TestAPI_UnknownEventAndTram(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")

	resp, _ := apply(t, srv, "t1", "levitate", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/trams/ghost/state", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/trams/ghost/transitions", map[string]any{"event": "move"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_History(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")

	apply(t, srv, "t1", "power_on", nil)
	apply(t, srv, "t1", "stop", nil) // rejected

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/trams/t1/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tail []domain.TransitionRecord
	require.NoError(t, json.Unmarshal(data, &tail))
	require.Len(t, tail, 2)
	assert.True(t, tail[0].Accepted)
	assert.False(t, tail[1].Accepted)

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/trams/t1/history?limit=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &tail))
	require.Len(t, tail, 1)
	assert.Equal(t, domain.EventStop, tail[0].Event)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/trams/t1/history?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Retire(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/trams/t1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp2, _ := doJSON(t, http.MethodGet, srv.URL+"/trams/t1/state", nil)
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestAPI_MetricsAndSpec(t *testing.T) {
	srv := newTestServer(t)
	createTram(t, srv, "t1")
	apply(t, srv, "t1", "power_on", nil)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(data), "tramway_transitions_total"))

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(data), "Tramway API"))
}
