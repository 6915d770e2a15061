// Package ethereum reads peers and blocks from an Ethereum-compatible node
// over JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/nodewatch/internal/peertrack"
	"github.com/gabapcia/nodewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/nodewatch/internal/txscan"
)

// client is the node adapter used by both the peer tracker and the scanner.
type client struct {
	conn jsonrpc.Client
}

var (
	_ peertrack.PeerSource = (*client)(nil)
	_ txscan.Blockchain    = (*client)(nil)
)

// NewClient wraps conn. The node must expose the admin namespace for Peers.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
