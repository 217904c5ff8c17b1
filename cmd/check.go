package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the debt ledgers" }
func (*checkCmd) Usage() string {
	return `wpos check

  Verifies that every customer's running balance equals the signed sum of
  their ledger entries. A mismatch indicates corrupted data.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	drifted := s.CheckDebtBalances()
	if len(drifted) == 0 {
		fmt.Println("All debt ledgers reconcile.")
		return subcommands.ExitSuccess
	}
	for _, id := range drifted {
		d := s.Debt(id)
		fmt.Fprintf(os.Stderr, "Error: ledger of %q sums to %s but the balance says %s\n",
			d.CustomerName, d.Balance(), d.TotalDebt)
	}
	return subcommands.ExitFailure
}
