package txscan

import (
	"github.com/gabapcia/nodewatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
)

// ScanTarget describes which account to look for and where.
type ScanTarget struct {
	// Address is the watched account, a 0x-prefixed 20-byte hex string in any letter case.
	Address string `validate:"required,eth_addr"`

	// StartBlock is the first block of the range, inclusive.
	StartBlock uint64

	// EndBlock is the last block of the range, inclusive. Nil means the chain
	// head at the moment the scan starts; it is not re-read while scanning.
	EndBlock *uint64

	// Resume starts after the last checkpoint saved for Address, when one is
	// later than StartBlock.
	Resume bool
}

// Height returns a pointer to n, for use as ScanTarget.EndBlock.
func Height(n uint64) *uint64 {
	return &n
}

// account validates the target and returns its normalized address.
func (t ScanTarget) account() (common.Address, error) {
	if err := validator.Validate(t); err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(t.Address), nil
}

// scanRange is the resolved block interval of a scan.
type scanRange struct {
	Account string // EIP-55 checksummed form of the watched address
	Start   uint64
	End     uint64
	Done    bool // A checkpoint at the last representable height left nothing to scan
}

func (r scanRange) empty() bool {
	return r.Done || r.Start > r.End
}

func (r scanRange) len() uint64 {
	if r.empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// sameAddress compares addresses on their 20-byte value, so checksummed and
// lowercase spellings of the same account match.
func sameAddress(account common.Address, candidate string) bool {
	return common.IsHexAddress(candidate) && common.HexToAddress(candidate) == account
}
