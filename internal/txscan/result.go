package txscan

import "time"

// BlockResult is the outcome of scanning a single block.
type BlockResult struct {
	Number       uint64
	Transactions int                // Transactions in the block, zero when Err is set
	Matches      []TransactionMatch // In block order
	Err          error
}

// Failed reports whether the block could not be scanned.
func (r BlockResult) Failed() bool {
	return r.Err != nil
}

// BlockFailure records a block skipped because of an error.
type BlockFailure struct {
	Number uint64
	Err    error
}

// ScanReport summarizes a finished or interrupted scan.
type ScanReport struct {
	ScanID        string // UUIDv7, also attached to every log line of the scan
	Account       string
	StartBlock    uint64
	EndBlock      uint64
	BlocksScanned int
	BlocksFailed  int
	Matches       []TransactionMatch
	Failures      []BlockFailure
	StartedAt     time.Time
	FinishedAt    time.Time
}

// add folds a block result into the report.
func (r *ScanReport) add(result BlockResult) {
	if result.Failed() {
		r.BlocksFailed++
		r.Failures = append(r.Failures, BlockFailure{Number: result.Number, Err: result.Err})
		return
	}

	r.BlocksScanned++
	r.Matches = append(r.Matches, result.Matches...)
}
