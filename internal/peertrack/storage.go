package peertrack

import (
	"context"
	"sync"

	"github.com/gabapcia/nodewatch/internal/pkg/types"
)

// PeerStorage holds the set of unique peer IDs observed since startup.
//
// Implementations must never store duplicates and must never remove IDs.
type PeerStorage interface {
	// AddPeers inserts ids and returns how many were not present before.
	// Re-inserting a known ID is a no-op.
	AddPeers(ctx context.Context, ids ...string) (int, error)

	// ListPeers returns every tracked ID. The in-memory backend returns them
	// in insertion order.
	ListPeers(ctx context.Context) ([]string, error)

	// CountPeers returns the number of tracked IDs.
	CountPeers(ctx context.Context) (int, error)
}

// memoryStorage is a PeerStorage that lives for the process lifetime.
type memoryStorage struct {
	mu    sync.RWMutex
	ids   types.Set[string]
	order []string
}

var _ PeerStorage = (*memoryStorage)(nil)

// NewMemoryStorage returns an empty in-memory PeerStorage, safe for concurrent use.
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{
		ids: types.NewSet[string](),
	}
}

func (m *memoryStorage) AddPeers(_ context.Context, ids ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	added := m.ids.Add(ids...)
	m.order = append(m.order, added...)
	return len(added), nil
}

func (m *memoryStorage) ListPeers(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peers := make([]string, len(m.order))
	copy(peers, m.order)
	return peers, nil
}

func (m *memoryStorage) CountPeers(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.order), nil
}
