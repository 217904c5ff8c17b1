package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type addProductCmd struct {
	name     string
	category string
	stock    int
	price    int64
	cost     int64
	minStock int
	barcode  string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a product to the catalog" }
func (*addProductCmd) Usage() string {
	return `wpos add-product -name <name> -price <rupiah> [-stock n] [-cost <rupiah>] [-category <name>]

  Adds a product. An initial stock greater than zero is recorded in the
  stock movement trail.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name")
	f.StringVar(&c.category, "category", "", "Category name or id")
	f.IntVar(&c.stock, "stock", 0, "Initial stock")
	f.Int64Var(&c.price, "price", 0, "Selling price in rupiah")
	f.Int64Var(&c.cost, "cost", 0, "Unit cost in rupiah")
	f.IntVar(&c.minStock, "min", 0, "Reorder threshold (defaults to 10)")
	f.StringVar(&c.barcode, "barcode", "", "Barcode")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	p := warung.Product{
		Name:     c.name,
		Stock:    c.stock,
		Price:    warung.Rp(c.price),
		Cost:     warung.Rp(c.cost),
		MinStock: c.minStock,
		Barcode:  c.barcode,
	}
	if c.category != "" {
		cat, err := findCategory(s, c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.CategoryID = cat.ID
	}

	created, err := s.AddProduct(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added product %q with stock %d at %s\n", created.Name, created.Stock, created.Price)
	return subcommands.ExitSuccess
}
