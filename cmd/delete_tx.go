package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTxCmd struct {
	number string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "remove a recorded transaction" }
func (*deleteTxCmd) Usage() string {
	return `wpos delete-tx -t <number>

  Removes a transaction by its number. Stock movements and debt entries it
  produced are kept.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "t", "", "Transaction number, e.g. TRX-20260901-0001")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	for _, t := range s.Transactions() {
		if t.TransactionNumber == c.number {
			if err := s.DeleteTransaction(t.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Deleted transaction %s over %s\n", t.TransactionNumber, t.Nominal)
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "Error: no transaction %q\n", c.number)
	return subcommands.ExitFailure
}
