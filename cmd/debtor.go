package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type debtorCmd struct {
	name   string
	phone  string
	amount int64
	due    string
	note   string
}

func (*debtorCmd) Name() string     { return "debtor" }
func (*debtorCmd) Synopsis() string { return "register a customer debt by hand" }
func (*debtorCmd) Usage() string {
	return `wpos debtor -name <customer> [-amount <rupiah>] [-due <date>]

  Registers a customer in the debt register. A positive amount is an
  existing debt to the store, a negative amount is store credit owed to the
  customer.
`
}

func (c *debtorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name")
	f.StringVar(&c.phone, "phone", "", "Customer phone")
	f.Int64Var(&c.amount, "amount", 0, "Signed initial balance in rupiah")
	f.StringVar(&c.due, "due", "", "Due date")
	f.StringVar(&c.note, "note", "", "Note on the initial balance")
}

func (c *debtorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	due, err := parseDate(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, err := s.AddDebtor(c.name, c.phone, warung.Rp(c.amount), due, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered %q with balance %s\n", d.CustomerName, d.TotalDebt.SignedString())
	return subcommands.ExitSuccess
}
