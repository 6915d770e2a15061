package txscan

import (
	"context"
	"errors"
	"math/big"
)

// ErrBlockNotFound is returned by Blockchain.BlockByNumber when the node has
// no block at the requested height.
var ErrBlockNotFound = errors.New("block not found")

// Transaction is a read-only snapshot of a transaction as reported by the node.
type Transaction struct {
	Hash     string   // Transaction hash
	From     string   // Sender address
	To       string   // Recipient address, empty for contract creation
	Value    *big.Int // Transferred amount in wei
	Gas      uint64   // Gas limit provided by the sender
	GasPrice *big.Int // Gas price in wei, nil when the node omits it
}

// Block is a block fetched with full transaction bodies.
type Block struct {
	Number       uint64
	Hash         string
	Transactions []Transaction
}

// Blockchain is the read-only view of the node used by the scanner.
type Blockchain interface {
	// LatestBlockNumber returns the current chain head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// BlockByNumber returns the block at number including its transactions.
	// It returns ErrBlockNotFound when the node has no such block.
	BlockByNumber(ctx context.Context, number uint64) (Block, error)
}
