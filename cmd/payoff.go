package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type payoffCmd struct {
	customer string
	note     string
	date     string
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "settle a customer's debt in full" }
func (*payoffCmd) Usage() string {
	return `wpos payoff -c <customer> [-note <text>] [-d <date>]

  Settles the whole outstanding balance with a single payment entry. A
  balance at or below zero is left untouched.
`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name")
	f.StringVar(&c.note, "note", "", "Note")
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	d, err := findDebt(s, c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tanggal, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := s.PayOff(d.ID, c.note, tanggal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if amount == 0 {
		fmt.Printf("%q owes nothing, ledger left untouched\n", d.CustomerName)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Settled %s, %q is debt free\n", amount, d.CustomerName)
	return subcommands.ExitSuccess
}
