package txscan

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadCheckpoint when nothing was saved for an account.
var ErrNoCheckpointFound = errors.New("no checkpoint found for account")

// CheckpointStorage remembers the last block processed for each watched
// account so an interrupted scan can resume.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the last processed block for account,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, account string, height uint64) error

	// LoadCheckpoint returns the last processed block for account, or
	// ErrNoCheckpointFound.
	LoadCheckpoint(ctx context.Context, account string) (uint64, error)
}

// nopCheckpoint persists nothing.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ uint64) error {
	return nil
}

func (nopCheckpoint) LoadCheckpoint(_ context.Context, _ string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
