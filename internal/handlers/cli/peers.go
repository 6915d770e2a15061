package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// peersCommand starts the peer tracker and its HTTP API.
//
//	nodewatch peers --interval 10s --listen :3009
//
// It runs until SIGINT or SIGTERM, then stops the server and the tracker.
func peersCommand(deps Dependencies, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "peers",
		Description: "Polls the node's admin_peers and serves every unique peer ID seen since startup at GET /peers.",
		Usage:       "Tracks unique peers and serves them over HTTP. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Delay between two admin_peers polls",
				Value: defaults.PollInterval,
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "HTTP listen address",
				Value: defaults.ListenAddr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tracker := deps.NewTracker(c.Duration("interval"))
			if err := tracker.Start(ctx); err != nil {
				return err
			}
			defer tracker.Close()

			return deps.NewServer(c.String("listen"), tracker).Serve(ctx)
		},
	}
}
