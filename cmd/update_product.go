package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

// updateProductCmd edits a product. Flags left at their sentinel default keep
// the current value, so a single field can be changed in isolation.
type updateProductCmd struct {
	product  string
	name     string
	category string
	stock    int
	price    int64
	cost     int64
	minStock int
	barcode  string
}

func (*updateProductCmd) Name() string     { return "update-product" }
func (*updateProductCmd) Synopsis() string { return "edit a product's fields" }
func (*updateProductCmd) Usage() string {
	return `wpos update-product -p <product> [-name <name>] [-stock n] [-price <rupiah>] ...

  Edits a product. A stock change is recorded in the stock movement trail
  with the signed difference.
`
}

func (c *updateProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Product name or id to edit")
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.category, "category", "", "New category name or id")
	f.IntVar(&c.stock, "stock", -1, "New stock level")
	f.Int64Var(&c.price, "price", -1, "New selling price in rupiah")
	f.Int64Var(&c.cost, "cost", -1, "New unit cost in rupiah")
	f.IntVar(&c.minStock, "min", -1, "New reorder threshold")
	f.StringVar(&c.barcode, "barcode", "", "New barcode")
}

func (c *updateProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	p, err := findProduct(s, c.product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	upd := warung.ProductUpdate{
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Stock:      p.Stock,
		Price:      p.Price,
		Cost:       p.Cost,
		MinStock:   p.MinStock,
		Barcode:    p.Barcode,
	}
	if c.name != "" {
		upd.Name = c.name
	}
	if c.category != "" {
		cat, err := findCategory(s, c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		upd.CategoryID = cat.ID
	}
	if c.stock >= 0 {
		upd.Stock = c.stock
	}
	if c.price >= 0 {
		upd.Price = warung.Rp(c.price)
	}
	if c.cost >= 0 {
		upd.Cost = warung.Rp(c.cost)
	}
	if c.minStock >= 0 {
		upd.MinStock = c.minStock
	}
	if c.barcode != "" {
		upd.Barcode = c.barcode
	}

	updated, err := s.UpdateProduct(p.ID, upd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated product %q, stock %d at %s\n", updated.Name, updated.Stock, updated.Price)
	return subcommands.ExitSuccess
}
