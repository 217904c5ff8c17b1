package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type refundCmd struct {
	customer string
	amount   int64
	note     string
	date     string
}

func (*refundCmd) Name() string     { return "refund" }
func (*refundCmd) Synopsis() string { return "pay store credit back to a customer" }
func (*refundCmd) Usage() string {
	return `wpos refund -c <customer> -amount <rupiah> [-note <text>] [-d <date>]

  Pays back credit the store owes the customer. A request larger than the
  available credit is capped at the credit, never rejected.
`
}

func (c *refundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name")
	f.Int64Var(&c.amount, "amount", 0, "Amount in rupiah")
	f.StringVar(&c.note, "note", "", "Note")
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *refundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	applied, err := s.Refund(d.ID, warung.Rp(c.amount), c.note, tanggal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if applied == 0 {
		fmt.Printf("The store owes %q nothing, ledger left untouched\n", d.CustomerName)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Refunded %s to %q\n", applied, d.CustomerName)
	return subcommands.ExitSuccess
}
