// Package txscan scans a range of blocks for transactions sent or received by
// an account. Blocks are fetched one at a time in ascending order; a block
// that cannot be fetched is reported and skipped without stopping the scan.
package txscan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/nodewatch/internal/pkg/logger"
	"github.com/gabapcia/nodewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/nodewatch/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/nodewatch/internal/txscan"

// Service searches blocks for transactions involving an account.
type Service interface {
	// Stream validates target, resolves its range and scans it on a background
	// goroutine. One BlockResult is sent per block, in ascending order. The
	// channel is closed after the last block or when ctx is done.
	//
	// Errors returned here happen before any block is fetched: an invalid
	// address, the chain head query or the checkpoint lookup.
	Stream(ctx context.Context, target ScanTarget) (<-chan BlockResult, error)

	// Scan runs a full scan, logging every block and match and forwarding
	// matches to the configured notifiers.
	//
	// Failed blocks are collected in the report and never abort the scan.
	// If ctx is canceled midway, the partial report is returned with ctx's error.
	Scan(ctx context.Context, target ScanTarget) (ScanReport, error)
}

type service struct {
	chain       Blockchain
	retry       retry.Retry
	checkpoints CheckpointStorage
	notifiers   []MatchNotifier

	tracer  trace.Tracer
	blocks  metric.Int64Counter
	matches metric.Int64Counter
}

var _ Service = (*service)(nil)

// execute runs op through the configured retry policy, if any.
func (s *service) execute(ctx context.Context, op func() error) error {
	if s.retry == nil {
		return op()
	}
	return s.retry.Execute(ctx, op)
}

func (s *service) latestBlockNumber(ctx context.Context) (uint64, error) {
	var latest uint64
	err := s.execute(ctx, func() error {
		var err error
		latest, err = s.chain.LatestBlockNumber(ctx)
		return err
	})
	return latest, err
}

// resolve validates target and turns it into a concrete block range.
func (s *service) resolve(ctx context.Context, target ScanTarget) (common.Address, scanRange, error) {
	account, err := target.account()
	if err != nil {
		return common.Address{}, scanRange{}, err
	}

	r := scanRange{
		Account: account.Hex(),
		Start:   target.StartBlock,
	}

	if target.EndBlock != nil {
		r.End = *target.EndBlock
	} else {
		if r.End, err = s.latestBlockNumber(ctx); err != nil {
			return common.Address{}, scanRange{}, fmt.Errorf("resolve latest block: %w", err)
		}
	}

	if !target.Resume {
		return account, r, nil
	}

	checkpoint, err := s.checkpoints.LoadCheckpoint(ctx, r.Account)
	switch {
	case errors.Is(err, ErrNoCheckpointFound):
		logger.Info(ctx, "no checkpoint found, scanning from start block",
			"account", r.Account,
			"block.start", r.Start,
		)
	case err != nil:
		return common.Address{}, scanRange{}, fmt.Errorf("load checkpoint: %w", err)
	case checkpoint == math.MaxUint64:
		logger.Info(ctx, "checkpoint covers the whole range",
			"account", r.Account,
			"checkpoint", checkpoint,
		)
		r.Done = true
	case checkpoint >= r.Start:
		logger.Info(ctx, "resuming scan from checkpoint",
			"account", r.Account,
			"checkpoint", checkpoint,
		)
		r.Start = checkpoint + 1
	}

	return account, r, nil
}

// scanBlock fetches block n and extracts the transactions involving account.
func (s *service) scanBlock(ctx context.Context, account common.Address, n uint64) BlockResult {
	ctx, span := s.tracer.Start(ctx, "txscan.scanBlock",
		trace.WithAttributes(attribute.Int64("block.number", int64(n))),
	)
	defer span.End()

	var block Block
	err := s.execute(ctx, func() error {
		var err error
		block, err = s.chain.BlockByNumber(ctx, n)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.blocks.Add(ctx, 1, metric.WithAttributes(attribute.Bool("failed", true)))
		return BlockResult{Number: n, Err: err}
	}

	matches := matchTransactions(account, block)

	span.SetAttributes(
		attribute.Int("block.transactions", len(block.Transactions)),
		attribute.Int("block.matches", len(matches)),
	)
	s.blocks.Add(ctx, 1, metric.WithAttributes(attribute.Bool("failed", false)))
	s.matches.Add(ctx, int64(len(matches)))

	return BlockResult{
		Number:       n,
		Transactions: len(block.Transactions),
		Matches:      matches,
	}
}

// stream scans r sequentially on its own goroutine. The checkpoint for a
// block is saved once its result has been handed to the consumer.
func (s *service) stream(ctx context.Context, account common.Address, r scanRange) <-chan BlockResult {
	results := make(chan BlockResult)

	go func() {
		defer close(results)

		if r.empty() {
			return
		}

		for n := r.Start; ; n++ {
			result := s.scanBlock(ctx, account, n)
			if ctx.Err() != nil {
				return
			}

			if !chflow.Send(ctx, results, result) {
				return
			}

			if err := s.checkpoints.SaveCheckpoint(ctx, r.Account, n); err != nil {
				logger.Warn(ctx, "failed to save checkpoint",
					"account", r.Account,
					"block.number", n,
					"error", err,
				)
			}

			if n == r.End {
				return
			}
		}
	}()

	return results
}

func (s *service) Stream(ctx context.Context, target ScanTarget) (<-chan BlockResult, error) {
	account, r, err := s.resolve(ctx, target)
	if err != nil {
		return nil, err
	}

	return s.stream(ctx, account, r), nil
}

// logBlockResult writes the per-block and per-match log lines.
func logBlockResult(ctx context.Context, scanID string, result BlockResult) {
	if result.Failed() {
		logger.Error(ctx, "failed to scan block",
			"scan.id", scanID,
			"block.number", result.Number,
			"error", result.Err,
		)
		return
	}

	logger.Info(ctx, "block scanned",
		"scan.id", scanID,
		"block.number", result.Number,
		"block.transactions", result.Transactions,
		"block.matches", len(result.Matches),
	)

	for _, m := range result.Matches {
		logger.Info(ctx, "transaction matched",
			"scan.id", scanID,
			"block.number", m.BlockNumber,
			"tx.hash", m.Hash,
			"tx.from", m.From,
			"tx.to", m.To,
			"tx.value_eth", m.Value.String(),
			"tx.gas", m.Gas,
			"tx.gas_price_gwei", m.GasPrice.String(),
		)
	}
}

func (s *service) notify(ctx context.Context, scanID string, matches []TransactionMatch) {
	for _, m := range matches {
		for _, n := range s.notifiers {
			if err := n.NotifyMatch(ctx, m); err != nil {
				logger.Warn(ctx, "failed to notify transaction match",
					"scan.id", scanID,
					"tx.hash", m.Hash,
					"error", err,
				)
			}
		}
	}
}

func (s *service) Scan(ctx context.Context, target ScanTarget) (ScanReport, error) {
	ctx, span := s.tracer.Start(ctx, "txscan.Scan")
	defer span.End()

	report := ScanReport{
		ScanID:    uuid.Must(uuid.NewV7()).String(),
		StartedAt: time.Now(),
	}

	account, r, err := s.resolve(ctx, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	report.Account = r.Account
	report.StartBlock = r.Start
	report.EndBlock = r.End

	span.SetAttributes(
		attribute.String("scan.id", report.ScanID),
		attribute.String("account", r.Account),
		attribute.Int64("block.start", int64(r.Start)),
		attribute.Int64("block.end", int64(r.End)),
	)

	logger.Info(ctx, "searching for transactions",
		"scan.id", report.ScanID,
		"account", r.Account,
		"block.start", r.Start,
		"block.end", r.End,
		"block.count", r.len(),
	)

	results := s.stream(ctx, account, r)
	for {
		result, ok := chflow.Receive(ctx, results)
		if !ok {
			break
		}

		report.add(result)
		logBlockResult(ctx, report.ScanID, result)
		s.notify(ctx, report.ScanID, result.Matches)
	}
	report.FinishedAt = time.Now()

	if err := ctx.Err(); err != nil {
		logger.Warn(ctx, "scan interrupted",
			"scan.id", report.ScanID,
			"blocks.scanned", report.BlocksScanned,
			"blocks.failed", report.BlocksFailed,
			"error", err,
		)
		return report, err
	}

	logger.Info(ctx, "finished scanning blocks",
		"scan.id", report.ScanID,
		"blocks.scanned", report.BlocksScanned,
		"blocks.failed", report.BlocksFailed,
		"matches", len(report.Matches),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)
	return report, nil
}

type config struct {
	retry       retry.Retry
	checkpoints CheckpointStorage
	notifiers   []MatchNotifier
}

// Option configures the scanner.
type Option func(*config)

// WithRetry retries each block fetch and the chain head query with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCheckpointStorage enables saving and resuming scan progress.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpoints = cs
	}
}

// WithMatchNotifier adds a sink for matches. It may be given more than once.
func WithMatchNotifier(n MatchNotifier) Option {
	return func(c *config) {
		c.notifiers = append(c.notifiers, n)
	}
}

// New creates a scanner reading blocks from chain.
func New(chain Blockchain, opts ...Option) *service {
	cfg := config{
		checkpoints: nopCheckpoint{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)

	blocks, err := meter.Int64Counter("txscan.blocks",
		metric.WithDescription("Blocks scanned, labeled by outcome."),
	)
	if err != nil {
		blocks = noop.Int64Counter{}
	}

	matches, err := meter.Int64Counter("txscan.matches",
		metric.WithDescription("Transactions matching the scanned account."),
	)
	if err != nil {
		matches = noop.Int64Counter{}
	}

	return &service{
		chain:       chain,
		retry:       cfg.retry,
		checkpoints: cfg.checkpoints,
		notifiers:   cfg.notifiers,
		tracer:      otel.Tracer(instrumentationName),
		blocks:      blocks,
		matches:     matches,
	}
}
