package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/nodewatch/internal/pkg/types"
	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// TransactionResponse is the subset of an eth_getBlockByNumber transaction object read by the scanner.
	TransactionResponse struct {
		Hash     string         `json:"hash"`
		From     string         `json:"from"`
		To       string         `json:"to"` // null for contract creation
		Value    *hexutil.Big   `json:"value"`
		Gas      hexutil.Uint64 `json:"gas"`
		GasPrice *hexutil.Big   `json:"gasPrice"`
	}

	// BlockResponse is the subset of an eth_getBlockByNumber block object read by the scanner.
	BlockResponse struct {
		Number       types.Hex             `json:"number"`
		Hash         string                `json:"hash"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

func (t TransactionResponse) toTransaction() txscan.Transaction {
	return txscan.Transaction{
		Hash:     t.Hash,
		From:     t.From,
		To:       t.To,
		Value:    (*big.Int)(t.Value),
		Gas:      uint64(t.Gas),
		GasPrice: (*big.Int)(t.GasPrice),
	}
}

func (b BlockResponse) toBlock() txscan.Block {
	transactions := make([]txscan.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction()
	}

	return txscan.Block{
		Number:       b.Number.Uint64(),
		Hash:         b.Hash,
		Transactions: transactions,
	}
}

// LatestBlockNumber calls eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var blockNumber types.Hex
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, fmt.Errorf("decode eth_blockNumber result: %w", err)
	}

	return blockNumber.Uint64(), nil
}

// BlockByNumber calls eth_getBlockByNumber with full transaction objects.
// A null result wraps txscan.ErrBlockNotFound.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (txscan.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", types.HexFromUint64(number), true)
	if err != nil {
		return txscan.Block{}, err
	}

	var resp *BlockResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return txscan.Block{}, fmt.Errorf("decode block %d: %w", number, err)
	}

	if resp == nil {
		return txscan.Block{}, fmt.Errorf("%w: %d", txscan.ErrBlockNotFound, number)
	}

	return resp.toBlock(), nil
}
