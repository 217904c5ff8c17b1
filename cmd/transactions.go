package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung/renderer"
)

type transactionsCmd struct {
	number string
	limit  int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list recorded transactions" }
func (*transactionsCmd) Usage() string {
	return `wpos transactions [-n <limit>] [-t <number>]

  Lists the transactions, newest first. With -t, shows one transaction in
  full by its number.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "t", "", "Show one transaction by its number")
	f.IntVar(&c.limit, "n", 0, "At most n transactions, 0 for all")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	if c.number != "" {
		for _, t := range s.Transactions() {
			if t.TransactionNumber == c.number {
				printMarkdown(renderer.TransactionMarkdown(&t))
				return subcommands.ExitSuccess
			}
		}
		fmt.Fprintf(os.Stderr, "Error: no transaction %q\n", c.number)
		return subcommands.ExitFailure
	}

	transactions := s.Transactions()
	if c.limit > 0 && len(transactions) > c.limit {
		transactions = transactions[:c.limit]
	}
	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}
