package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung/renderer"
)

type debtsCmd struct {
	customer string
}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "show the customer debt register" }
func (*debtsCmd) Usage() string {
	return `wpos debts [-c <customer>]

  Shows every customer balance and the register totals. With -c, shows one
  customer's full ledger.
`
}

func (c *debtsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer to show in full")
}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	if c.customer != "" {
		d, err := findDebt(s, c.customer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.DebtMarkdown(d))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.DebtsMarkdown(s.Debts()))
	printMarkdown(renderer.DebtTotalsMarkdown(s.TotalDebts()))
	return subcommands.ExitSuccess
}
