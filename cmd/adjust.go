package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type adjustCmd struct {
	product string
	delta   int
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "add or remove stock by hand" }
func (*adjustCmd) Usage() string {
	return `wpos adjust -p <product> -n <delta>

  Applies a manual stock adjustment: a positive delta adds stock, a negative
  delta removes it. Removal stops at zero and the applied quantity is what
  gets logged.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Product name or id")
	f.IntVar(&c.delta, "n", 0, "Signed stock delta")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	p, err := findProduct(s, c.product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	after := s.AdjustStock(p.ID, c.delta)
	if after == nil {
		fmt.Fprintf(os.Stderr, "Error: product %q no longer exists\n", c.product)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock of %q is now %d\n", after.Name, after.Stock)
	return subcommands.ExitSuccess
}
