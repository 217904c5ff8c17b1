package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type payCmd struct {
	customer string
	amount   int64
	note     string
	date     string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a customer payment" }
func (*payCmd) Usage() string {
	return `wpos pay -c <customer> -amount <rupiah> [-note <text>] [-d <date>]

  Records a payment received from the customer ("menerima"), lowering the
  balance. Paying more than is owed moves the balance below zero: the store
  then owes the customer.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name")
	f.Int64Var(&c.amount, "amount", 0, "Amount in rupiah")
	f.StringVar(&c.note, "note", "", "Note")
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today)")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	after, err := s.ReceivePayment(d.ID, warung.Rp(c.amount), c.note, tanggal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Balance of %q is now %s\n", after.CustomerName, after.TotalDebt.SignedString())
	return subcommands.ExitSuccess
}
