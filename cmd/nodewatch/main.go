// Command nodewatch tracks the peers of an Ethereum-compatible node and scans
// its blocks for an account's transactions.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/nodewatch/internal/config"
	"github.com/gabapcia/nodewatch/internal/handlers/cli"
	httphandler "github.com/gabapcia/nodewatch/internal/handlers/http"
	"github.com/gabapcia/nodewatch/internal/infra/blockchain/ethereum"
	kafkanotify "github.com/gabapcia/nodewatch/internal/infra/notify/kafka"
	redisstorage "github.com/gabapcia/nodewatch/internal/infra/storage/redis"
	"github.com/gabapcia/nodewatch/internal/peertrack"
	"github.com/gabapcia/nodewatch/internal/pkg/logger"
	"github.com/gabapcia/nodewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/nodewatch/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/nodewatch/internal/pkg/transport/http"
	"github.com/gabapcia/nodewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/nodewatch/internal/txscan"
)

// shutdownTimeout bounds the final telemetry flush.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		fmt.Fprintf(os.Stderr, "nodewatch: invalid configuration: %v\n", err)
		return err
	}

	shutdown := telemetry.ShutdownFunc(telemetry.NopShutdown)
	logOpts := []logger.Option{
		logger.WithLevel(cfg.Log.Level),
		logger.WithFormat(cfg.Log.Format),
	}

	if cfg.Telemetry.Enabled {
		if shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			fmt.Fprintf(os.Stderr, "nodewatch: failed to start telemetry: %v\n", err)
			return err
		}
		logOpts = append(logOpts, logger.WithOTelBridge(cfg.Telemetry.ServiceName))
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "failed to flush telemetry", "error", err)
		}
	}()

	if err := logger.Init(logOpts...); err != nil {
		fmt.Fprintf(os.Stderr, "nodewatch: failed to configure logger: %v\n", err)
		return err
	}
	defer logger.Sync()

	httpClient := httptransport.NewClient(
		httptransport.WithTimeout(cfg.RPC.Timeout),
		httptransport.WithRetryMax(cfg.RPC.RetryMax),
	).StandardClient()
	node := ethereum.NewClient(jsonrpc.NewClient(httpClient, cfg.RPC.Endpoint))

	var (
		peerOpts []peertrack.Option
		scanOpts []txscan.Option
	)

	if cfg.RedisEnabled() {
		store, err := redisstorage.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error(ctx, "failed to connect to redis", "redis.addr", cfg.Redis.Addr, "error", err)
			return err
		}
		defer store.Close()

		peerOpts = append(peerOpts, peertrack.WithPeerStorage(store))
		scanOpts = append(scanOpts, txscan.WithCheckpointStorage(store))
	}

	if cfg.KafkaEnabled() {
		notifier := kafkanotify.NewNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer notifier.Close()

		scanOpts = append(scanOpts, txscan.WithMatchNotifier(notifier))
	}

	if cfg.Scan.BlockAttempts > 1 {
		scanOpts = append(scanOpts, txscan.WithRetry(retry.New(
			retry.WithAttempts(cfg.Scan.BlockAttempts),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "retrying node call", "attempt", attempt+1, "error", err)
			}),
		)))
	}

	deps := cli.Dependencies{
		NewTracker: func(interval time.Duration) peertrack.Service {
			return peertrack.New(node, append(peerOpts, peertrack.WithInterval(interval))...)
		},
		NewServer: func(addr string, tracker peertrack.Service) cli.Server {
			return httphandler.NewServer(addr, tracker)
		},
		Scanner: txscan.New(node, scanOpts...),
	}

	defaults := cli.Defaults{
		PollInterval: cfg.Peers.PollInterval,
		ListenAddr:   cfg.Peers.ListenAddr,
		Address:      cfg.Scan.Address,
		StartBlock:   cfg.Scan.StartBlock,
		EndBlock:     cfg.Scan.EndBlock,
	}

	if err := cli.Run(ctx, args, deps, defaults); err != nil {
		logger.Error(ctx, "nodewatch exited with error", "error", err)
		return err
	}

	return nil
}
