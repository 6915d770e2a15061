package cli

import (
	"context"
	"time"

	"github.com/gabapcia/nodewatch/internal/peertrack"
	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/urfave/cli/v3"
)

// Server is a blocking HTTP server that stops when its context is done.
type Server interface {
	Serve(ctx context.Context) error
}

// Dependencies are the services behind the commands. Constructors take the
// final flag values, so the tracker and server are only built by `peers`.
type Dependencies struct {
	NewTracker func(interval time.Duration) peertrack.Service
	NewServer  func(addr string, tracker peertrack.Service) Server
	Scanner    txscan.Service
}

// Defaults hold the flag values used when a flag is not given on the
// command line, usually loaded from the environment.
type Defaults struct {
	PollInterval time.Duration
	ListenAddr   string
	Address      string
	StartBlock   uint64
	EndBlock     string // decimal block number or "latest"
}

// Run parses args and executes the matching command.
//
//   - `peers`: polls admin_peers and serves the unique peer set on /peers.
//   - `scan`: scans a block range for transactions of an account.
func Run(ctx context.Context, args []string, deps Dependencies, defaults Defaults) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "nodewatch",
		Description:           "Operational companions for an Ethereum-compatible node: peer tracking and account transaction scans.",
		Usage:                 "nodewatch [command] [flags]",
		Commands: []*cli.Command{
			peersCommand(deps, defaults),
			scanCommand(deps.Scanner, defaults),
		},
	}

	return app.Run(ctx, args)
}
