// Package http serves the tracked peer set over HTTP using gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/nodewatch/internal/peertrack"
	"github.com/gabapcia/nodewatch/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":3009"

// shutdownTimeout bounds how long in-flight requests get after Serve's context is done.
const shutdownTimeout = 5 * time.Second

type peersResponse struct {
	Success    bool     `json:"success"`
	TotalPeers int      `json:"totalPeers"`
	Peers      []string `json:"peers"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type handler struct {
	peers peertrack.Service
}

// listPeers answers GET /peers with the current snapshot.
func (h *handler) listPeers(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.peers.Snapshot(ctx)
	if err != nil {
		logger.Error(ctx, "failed to read peers", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read peers"})
		return
	}

	c.JSON(http.StatusOK, peersResponse{
		Success:    true,
		TotalPeers: snapshot.Total,
		Peers:      snapshot.Peers,
	})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter builds the gin engine: /peers, /health and /metrics. Metrics
// are registered on reg and served from gatherer.
func NewRouter(peers peertrack.Service, reg prometheus.Registerer, gatherer prometheus.Gatherer) *gin.Engine {
	m := newMetrics(reg, peers)
	h := &handler{peers: peers}

	router := gin.New()
	router.Use(gin.Recovery(), m.middleware())

	router.GET("/peers", h.listPeers)
	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

type server struct {
	srv *http.Server
}

// NewServer creates a server for peers listening on addr. An empty addr
// selects DefaultAddr.
func NewServer(addr string, peers peertrack.Service) *server {
	if addr == "" {
		addr = DefaultAddr
	}

	reg := prometheus.NewRegistry()

	return &server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(peers, reg, reg),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Serve listens until ctx is done, then shuts down gracefully. It returns
// nil after a clean shutdown.
func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http server listening", "http.addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "shutting down http server")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
