package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/nodewatch/internal/pkg/logger"
	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/urfave/cli/v3"
)

// latestBlock is the --to value meaning the chain head at scan start.
const latestBlock = "latest"

// parseEndBlock turns a --to value into a ScanTarget.EndBlock.
func parseEndBlock(s string) (*uint64, error) {
	if s == "" || strings.EqualFold(s, latestBlock) {
		return nil, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid end block %q: expected a block number or %q", s, latestBlock)
	}

	return &n, nil
}

// scanCommand searches a block range for transactions of an account.
//
//	nodewatch scan --address 0x71C7... --from 100 --to latest
func scanCommand(scanner txscan.Service, defaults Defaults) *cli.Command {
	endBlock := defaults.EndBlock
	if endBlock == "" {
		endBlock = latestBlock
	}

	return &cli.Command{
		Name:        "scan",
		Description: "Scans blocks in ascending order and reports every transaction sent or received by an account.",
		Usage:       "Searches a block range for an account's transactions. Blocks that fail are logged and skipped.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Account to search for, 0x-prefixed 20-byte hex",
				Value:    defaults.Address,
				Required: defaults.Address == "",
			},
			&cli.Uint64Flag{
				Name:  "from",
				Usage: "First block of the range, inclusive",
				Value: defaults.StartBlock,
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: `Last block of the range, inclusive, or "latest"`,
				Value: endBlock,
			},
			&cli.BoolFlag{
				Name:  "resume",
				Usage: "Continue after the last checkpoint saved for the account",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			end, err := parseEndBlock(c.String("to"))
			if err != nil {
				return err
			}

			target := txscan.ScanTarget{
				Address:    c.String("address"),
				StartBlock: c.Uint64("from"),
				EndBlock:   end,
				Resume:     c.Bool("resume"),
			}

			if _, err := scanner.Scan(ctx, target); err != nil {
				logger.Error(ctx, "failed to scan transactions",
					"account", target.Address,
					"error", err,
				)
				return err
			}

			return nil
		},
	}
}
