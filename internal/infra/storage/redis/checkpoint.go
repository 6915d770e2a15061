package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/nodewatch/internal/pkg/types"
	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/redis/go-redis/v9"
)

// checkpointKey returns "txscan:checkpoint:<account>" with the account lowercased,
// so every spelling of an address shares one checkpoint.
func checkpointKey(account string) string {
	return fmt.Sprintf("txscan:checkpoint:%s", strings.ToLower(account))
}

// SaveCheckpoint stores height as a hex quantity with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, account string, height uint64) error {
	return c.conn.Set(ctx, checkpointKey(account), string(types.HexFromUint64(height)), 0).Err()
}

// LoadCheckpoint returns txscan.ErrNoCheckpointFound when the key does not exist.
func (c *client) LoadCheckpoint(ctx context.Context, account string) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(account)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txscan.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := types.HexFromString(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt checkpoint for %s: %w", account, err)
	}

	return height.Uint64(), nil
}

var _ txscan.CheckpointStorage = (*client)(nil)
