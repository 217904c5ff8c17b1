package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
	"github.com/warungpos/warung/renderer"
)

type stockLogsCmd struct {
	product string
}

func (*stockLogsCmd) Name() string     { return "stocklogs" }
func (*stockLogsCmd) Synopsis() string { return "show the stock movement trail" }
func (*stockLogsCmd) Usage() string {
	return `wpos stocklogs [-p <product>]

  Shows the stock movement trail, newest first. With -p, only the movements
  of one product are shown.
`
}

func (c *stockLogsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Only movements of this product")
}

func (c *stockLogsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	logs := s.StockLogs()
	if c.product != "" {
		p, err := findProduct(s, c.product)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filtered := make([]warung.StockLog, 0, len(logs))
		for _, l := range logs {
			if l.ProductID == p.ID {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}
	printMarkdown(renderer.StockLogsMarkdown(logs))
	return subcommands.ExitSuccess
}
