package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
	"github.com/warungpos/warung/renderer"
)

type productsCmd struct {
	low bool
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the product catalog" }
func (*productsCmd) Usage() string {
	return `wpos products [-low]

  Lists the catalog. With -low, only the products at or below their reorder
  threshold are shown.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.low, "low", false, "Only products at or below their reorder threshold")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	var products []warung.Product
	if c.low {
		products = s.LowStock()
	} else {
		products = s.Products()
	}
	printMarkdown(renderer.ProductsMarkdown(products))
	return subcommands.ExitSuccess
}
