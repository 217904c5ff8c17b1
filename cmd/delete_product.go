package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteProductCmd struct {
	product string
}

func (*deleteProductCmd) Name() string     { return "delete-product" }
func (*deleteProductCmd) Synopsis() string { return "remove a product from the catalog" }
func (*deleteProductCmd) Usage() string {
	return `wpos delete-product -p <product>

  Removes a product. Its stock movement history is kept.
`
}

func (c *deleteProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Product name or id to delete")
}

func (c *deleteProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	p, err := findProduct(s, c.product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := s.DeleteProduct(p.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted product %q\n", p.Name)
	return subcommands.ExitSuccess
}
