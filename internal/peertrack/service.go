// Package peertrack keeps a de-duplicated record of every peer a node has
// reported since startup. A recurring task polls the node's peer list and the
// accumulated set is exposed through Snapshot.
package peertrack

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// DefaultInterval is the delay between two fetch cycles.
const DefaultInterval = 10 * time.Second

const instrumentationName = "github.com/gabapcia/nodewatch/internal/peertrack"

// ErrServiceAlreadyStarted is returned if Start is called on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Snapshot is the tracked peer set at a point in time.
type Snapshot struct {
	Total int      // Number of unique peer IDs
	Peers []string // Every tracked ID, never nil
}

// Service tracks unique peers of a node.
type Service interface {
	// Start launches the recurring fetch task. The first cycle runs
	// immediately, then one per interval, until Close is called or ctx is done.
	//
	// Returns ErrServiceAlreadyStarted if the task is already running.
	Start(ctx context.Context) error

	// Close stops the fetch task and waits for an in-flight cycle to return.
	// It is safe to call Close on a service that was never started.
	Close()

	// FetchPeers runs a single fetch cycle.
	FetchPeers(ctx context.Context) FetchResult

	// Snapshot returns the current peer set. It never waits for a fetch in flight.
	Snapshot(ctx context.Context) (Snapshot, error)
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	source   PeerSource
	storage  PeerStorage
	interval time.Duration

	tracer      trace.Tracer
	fetchCycles metric.Int64Counter
	peersAdded  metric.Int64Counter
}

var _ Service = (*service)(nil)

// run drives the fetch cycles until ctx is canceled.
func (s *service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.FetchPeers(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.FetchPeers(ctx)
		}
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.run(ctx)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	peers, err := s.storage.ListPeers(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if peers == nil {
		peers = []string{}
	}

	return Snapshot{
		Total: len(peers),
		Peers: peers,
	}, nil
}

type config struct {
	interval time.Duration
	storage  PeerStorage
}

// Option configures the service.
type Option func(*config)

// WithInterval sets the delay between fetch cycles. Non-positive values keep DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithPeerStorage replaces the default in-memory storage.
func WithPeerStorage(ps PeerStorage) Option {
	return func(c *config) {
		c.storage = ps
	}
}

// New creates a tracker that polls source. Call Start to begin polling.
func New(source PeerSource, opts ...Option) *service {
	cfg := config{
		interval: DefaultInterval,
		storage:  NewMemoryStorage(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)

	fetchCycles, err := meter.Int64Counter("peertrack.fetch.cycles",
		metric.WithDescription("Peer fetch cycles, labeled by outcome."),
	)
	if err != nil {
		fetchCycles = noop.Int64Counter{}
	}

	peersAdded, err := meter.Int64Counter("peertrack.peers.added",
		metric.WithDescription("Peer IDs seen for the first time."),
	)
	if err != nil {
		peersAdded = noop.Int64Counter{}
	}

	return &service{
		source:      source,
		storage:     cfg.storage,
		interval:    cfg.interval,
		tracer:      otel.Tracer(instrumentationName),
		fetchCycles: fetchCycles,
		peersAdded:  peersAdded,
	}
}
