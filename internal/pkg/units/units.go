// Package units converts native-currency amounts between base units (wei)
// and the display denominations used in reports.
package units

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal places below each denomination's wei value.
const (
	GweiDecimals  int32 = 9
	EtherDecimals int32 = 18
)

// FromWei shifts a wei amount down by decimals places. A nil amount is zero.
func FromWei(wei *big.Int, decimals int32) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei, -decimals)
}

// ToEther converts wei to ether exactly; 1e18 wei is 1 ether.
func ToEther(wei *big.Int) decimal.Decimal {
	return FromWei(wei, EtherDecimals)
}

// ToGwei converts wei to gwei exactly; 1e9 wei is 1 gwei.
func ToGwei(wei *big.Int) decimal.Decimal {
	return FromWei(wei, GweiDecimals)
}
