package redis

import (
	"context"

	"github.com/gabapcia/nodewatch/internal/peertrack"

	"github.com/redis/go-redis/v9"
)

const (
	// peersKey is the set of every peer ID seen.
	peersKey = "peertrack:peers"

	// peersOrderKey lists the same IDs in first-seen order.
	peersOrderKey = "peertrack:peers:order"
)

// addPeersScript appends an ID to the order list only when SADD reports it
// as new, so both keys change together.
var addPeersScript = redis.NewScript(`
local added = 0
for _, id in ipairs(ARGV) do
	if redis.call("SADD", KEYS[1], id) == 1 then
		redis.call("RPUSH", KEYS[2], id)
		added = added + 1
	end
end
return added
`)

func (c *client) AddPeers(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return addPeersScript.Run(ctx, c.conn, []string{peersKey, peersOrderKey}, args...).Int()
}

func (c *client) ListPeers(ctx context.Context) ([]string, error) {
	return c.conn.LRange(ctx, peersOrderKey, 0, -1).Result()
}

func (c *client) CountPeers(ctx context.Context) (int, error) {
	n, err := c.conn.SCard(ctx, peersKey).Result()
	return int(n), err
}

var _ peertrack.PeerStorage = (*client)(nil)
