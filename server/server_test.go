package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const verifierInput = `{"log_degree_per_air":[3],"public_values":[[1,2]]}`

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := New(Config{}).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `"OK"`, rec.Body.String())
}

func TestEncodeThenWitness(t *testing.T) {
	h := New(Config{}).Handler()

	rec := post(t, h, "/hints/encode", verifierInput)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var enc EncodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enc))
	require.Equal(t, enc.Stream.Len(), enc.Scalars)
	tail := enc.Stream.Uint64s()[len(enc.Stream)-5:]
	require.Equal(t, [][]uint64{{1}, {3}, {1}, {2}, {1, 2}}, tail)

	streamJSON, err := json.Marshal(enc.Stream)
	require.NoError(t, err)
	rec = post(t, h, "/hints/witness", string(streamJSON))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var wit WitnessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wit))
	require.Equal(t, enc.Scalars, wit.Witness.HintCount())
	require.NotEmpty(t, wit.Constraints)
}

func TestWitnessMismatch(t *testing.T) {
	h := New(Config{}).Handler()
	rec := post(t, h, "/hints/witness", `[[1]]`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "hint protocol mismatch")
}

func TestBadRequests(t *testing.T) {
	h := New(Config{MaxBodyBytes: 16}).Handler()

	rec := post(t, h, "/hints/encode", `{"log_degree_per_air":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, "/hints/witness", `[[1],[2],[3],[4],[5],[6]]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	h = New(Config{}).Handler()
	rec = post(t, h, "/hints/encode", `{"log_degree_per_air":[3],"public_values":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hints/encode", bytes.NewReader(nil)))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStartStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(Config{Addr: "127.0.0.1:0"})
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	cancel()
	require.NoError(t, <-done)
}
