package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabapcia/nodewatch/internal/peertrack"
	peertracktest "github.com/gabapcia/nodewatch/internal/peertrack/mocks"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(peers peertrack.Service) *gin.Engine {
	reg := prometheus.NewRegistry()
	return NewRouter(peers, reg, reg)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestListPeers(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		peers := peertracktest.NewService(t)
		peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{Total: 2, Peers: []string{"a", "b"}}, nil).Once()

		rec := get(t, newTestRouter(peers), "/peers")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"totalPeers":2,"peers":["a","b"]}`, rec.Body.String())
	})

	t.Run("empty set is an empty array", func(t *testing.T) {
		peers := peertracktest.NewService(t)
		peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{Peers: []string{}}, nil).Once()

		rec := get(t, newTestRouter(peers), "/peers")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"totalPeers":0,"peers":[]}`, rec.Body.String())
	})

	t.Run("two reads are identical", func(t *testing.T) {
		peers := peertracktest.NewService(t)
		peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{Total: 1, Peers: []string{"a"}}, nil).Twice()

		router := newTestRouter(peers)
		first := get(t, router, "/peers")
		second := get(t, router, "/peers")

		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		peers := peertracktest.NewService(t)
		peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{}, errors.New("redis down")).Once()

		rec := get(t, newTestRouter(peers), "/peers")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"failed to read peers"}`, rec.Body.String())
	})

	t.Run("works with the real tracker", func(t *testing.T) {
		source := peertracktest.NewPeerSource(t)
		source.On("Peers", mock.Anything).Return([]peertrack.Peer{{ID: "x"}, {ID: "x"}, {ID: "y"}}, nil).Once()

		tracker := peertrack.New(source)
		tracker.FetchPeers(t.Context())

		rec := get(t, newTestRouter(tracker), "/peers")

		var body peersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, peersResponse{Success: true, TotalPeers: 2, Peers: []string{"x", "y"}}, body)
	})
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(peertracktest.NewService(t)), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	peers := peertracktest.NewService(t)
	peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{Total: 3, Peers: []string{"a", "b", "c"}}, nil)

	router := newTestRouter(peers)
	get(t, router, "/peers")
	get(t, router, "/unknown")

	rec := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "nodewatch_peers_unique 3")
	assert.Contains(t, body, `http_requests_total{method="GET",path="/peers",status="200"} 1`)
	assert.NotContains(t, body, `path="/unknown"`)
}

func TestServer_Serve(t *testing.T) {
	t.Run("stops cleanly when the context is done", func(t *testing.T) {
		srv := NewServer("127.0.0.1:0", peertracktest.NewService(t))

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- srv.Serve(ctx) }()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("returns listen errors", func(t *testing.T) {
		srv := NewServer("127.0.0.1:-1", peertracktest.NewService(t))

		err := srv.Serve(t.Context())

		assert.Error(t, err)
	})

	t.Run("defaults the address", func(t *testing.T) {
		srv := NewServer("", peertracktest.NewService(t))
		assert.Equal(t, DefaultAddr, srv.srv.Addr)
	})
}

func TestRouter_ServesOverTCP(t *testing.T) {
	peers := peertracktest.NewService(t)
	peers.On("Snapshot", mock.Anything).Return(peertrack.Snapshot{Total: 1, Peers: []string{"a"}}, nil).Once()

	ts := httptest.NewServer(newTestRouter(peers))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/peers")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"totalPeers":1,"peers":["a"]}`, string(body))
}
