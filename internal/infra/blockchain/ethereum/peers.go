package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/nodewatch/internal/peertrack"
)

// PeerInfoResponse is the subset of an admin_peers entry read by the tracker.
type PeerInfoResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enode   string `json:"enode"`
	Network struct {
		RemoteAddress string `json:"remoteAddress"`
	} `json:"network"`
}

func (p PeerInfoResponse) toPeer() peertrack.Peer {
	return peertrack.Peer{
		ID:            p.ID,
		Name:          p.Name,
		Enode:         p.Enode,
		RemoteAddress: p.Network.RemoteAddress,
	}
}

// Peers calls admin_peers. A null result is an empty list.
func (c *client) Peers(ctx context.Context) ([]peertrack.Peer, error) {
	data, err := c.conn.Fetch(ctx, "admin_peers")
	if err != nil {
		return nil, err
	}

	var resp []PeerInfoResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode admin_peers result: %w", err)
	}

	peers := make([]peertrack.Peer, len(resp))
	for i, p := range resp {
		peers[i] = p.toPeer()
	}
	return peers, nil
}
