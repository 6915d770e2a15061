package txscan

import (
	"context"
	"math/big"

	"github.com/gabapcia/nodewatch/internal/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// TransactionMatch is a transaction whose sender or recipient is the watched account.
type TransactionMatch struct {
	Account     string          `json:"account"`
	BlockNumber uint64          `json:"blockNumber"`
	Hash        string          `json:"hash"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Value       decimal.Decimal `json:"value"`    // ether
	ValueWei    *big.Int        `json:"valueWei"` // raw amount as reported by the node
	Gas         uint64          `json:"gas"`
	GasPrice    decimal.Decimal `json:"gasPrice"`    // gwei
	GasPriceWei *big.Int        `json:"gasPriceWei"` // nil when the node omits it
}

// MatchNotifier receives every match found by a scan, in block order.
type MatchNotifier interface {
	// NotifyMatch delivers a match to an external sink. An error is logged
	// by the scanner and does not fail the block.
	NotifyMatch(ctx context.Context, match TransactionMatch) error
}

func newTransactionMatch(account common.Address, blockNumber uint64, tx Transaction) TransactionMatch {
	value := tx.Value
	if value == nil {
		value = new(big.Int)
	}

	return TransactionMatch{
		Account:     account.Hex(),
		BlockNumber: blockNumber,
		Hash:        tx.Hash,
		From:        tx.From,
		To:          tx.To,
		Value:       units.ToEther(value),
		ValueWei:    value,
		Gas:         tx.Gas,
		GasPrice:    units.ToGwei(tx.GasPrice),
		GasPriceWei: tx.GasPrice,
	}
}

// involves reports whether account sent or received tx. Contract creations
// have no recipient and only match on the sender.
func involves(account common.Address, tx Transaction) bool {
	if sameAddress(account, tx.From) {
		return true
	}

	return tx.To != "" && sameAddress(account, tx.To)
}

// matchTransactions returns the transactions of block involving account, in block order.
func matchTransactions(account common.Address, block Block) []TransactionMatch {
	var matches []TransactionMatch
	for _, tx := range block.Transactions {
		if !involves(account, tx) {
			continue
		}

		matches = append(matches, newTransactionMatch(account, block.Number, tx))
	}
	return matches
}
