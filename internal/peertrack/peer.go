package peertrack

import (
	"context"

	"github.com/gabapcia/nodewatch/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Peer is a network node connected to the queried node, as reported by admin_peers.
//
// Only ID is tracked. The remaining fields are carried for debug logging.
type Peer struct {
	ID            string // Opaque node identifier, unique per peer
	Name          string // Client identification string, e.g. "Geth/v1.16.8-stable/linux-amd64/go1.24"
	Enode         string // enode:// URL of the peer
	RemoteAddress string // Remote endpoint of the connection
}

// PeerSource lists the peers currently connected to a node.
type PeerSource interface {
	// Peers returns the node's current peer list. Implementations call the
	// admin_peers JSON-RPC method.
	Peers(ctx context.Context) ([]Peer, error)
}

// FetchResult is the outcome of a single fetch cycle.
type FetchResult struct {
	Fetched int   // Peers returned by the node this cycle, including ones without an ID
	Added   int   // IDs seen for the first time this cycle
	Total   int   // Unique IDs tracked after the cycle
	Err     error // Non-nil when the cycle failed; the tracked set is left as it was
}

// Failed reports whether the cycle ended with an error.
func (r FetchResult) Failed() bool {
	return r.Err != nil
}

// peerIDs returns the non-empty IDs of peers, in order.
func peerIDs(peers []Peer) []string {
	ids := make([]string, 0, len(peers))
	for _, p := range peers {
		if p.ID == "" {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *service) fetchPeers(ctx context.Context) FetchResult {
	var result FetchResult

	peers, err := s.source.Peers(ctx)
	if err != nil {
		result.Err = err
		result.Total, _ = s.storage.CountPeers(ctx)
		return result
	}

	result.Fetched = len(peers)
	for _, p := range peers {
		logger.Debug(ctx, "peer reported",
			"peer.id", p.ID,
			"peer.name", p.Name,
			"peer.enode", p.Enode,
			"peer.remote_address", p.RemoteAddress,
		)
	}

	if result.Added, err = s.storage.AddPeers(ctx, peerIDs(peers)...); err != nil {
		result.Err = err
		result.Total, _ = s.storage.CountPeers(ctx)
		return result
	}

	result.Total, result.Err = s.storage.CountPeers(ctx)
	return result
}

// FetchPeers runs one fetch cycle: it asks the node for its peers and adds
// every non-empty ID to the tracked set.
//
// Failures are reported in FetchResult.Err and logged; they never clear the set.
func (s *service) FetchPeers(ctx context.Context) FetchResult {
	ctx, span := s.tracer.Start(ctx, "peertrack.FetchPeers")
	defer span.End()

	result := s.fetchPeers(ctx)

	span.SetAttributes(
		attribute.Int("peers.fetched", result.Fetched),
		attribute.Int("peers.added", result.Added),
		attribute.Int("peers.total", result.Total),
	)
	s.fetchCycles.Add(ctx, 1, metric.WithAttributes(attribute.Bool("failed", result.Failed())))
	s.peersAdded.Add(ctx, int64(result.Added))

	if result.Failed() {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())

		logger.Error(ctx, "failed to fetch peers",
			"peers.total", result.Total,
			"error", result.Err,
		)
		return result
	}

	logger.Info(ctx, "fetched peers",
		"peers.fetched", result.Fetched,
		"peers.added", result.Added,
		"peers.total", result.Total,
	)
	return result
}
