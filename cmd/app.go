// Package cmd implements the CLI application to manage a warung's books.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addProductCmd{},
	&updateProductCmd{},
	&deleteProductCmd{},
	&adjustCmd{},
	&productsCmd{},

	&addCategoryCmd{},
	&updateCategoryCmd{},
	&deleteCategoryCmd{},
	&categoriesCmd{},

	&stockLogsCmd{},

	&txCmd{},
	&transactionsCmd{},
	&deleteTxCmd{},

	&debtsCmd{},
	&debtorCmd{},
	&giveCmd{},
	&payCmd{},
	&payoffCmd{},
	&refundCmd{},
	&checkCmd{},

	&dailyCmd{},
	&summaryCmd{},

	&settingsCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".warung", "Path to the data directory")

// OpenStore loads the store from the data directory and wires the debounced
// persistence mirror. Callers must Close the mirror before exiting so pending
// changes reach disk.
func OpenStore() (*warung.Store, *warung.Mirror) {
	s, err := warung.DecodeStore(*dataDir)
	if err != nil {
		// The store is still usable, only the named documents were skipped.
		log.Printf("warning, some data could not be read: %v", err)
	}
	m := warung.NewMirror(s, 0, func(s *warung.Store) error {
		return warung.EncodeStore(*dataDir, s)
	})
	return s, m
}

// findProduct resolves a product by id or exact name.
func findProduct(s *warung.Store, key string) (*warung.Product, error) {
	if p := s.Product(warung.ID(key)); p != nil {
		return p, nil
	}
	for _, p := range s.Products() {
		if p.Name == key {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("no product %q", key)
}

// findCategory resolves a category by id or exact name.
func findCategory(s *warung.Store, key string) (*warung.Category, error) {
	if c := s.Category(warung.ID(key)); c != nil {
		return c, nil
	}
	for _, c := range s.Categories() {
		if c.Name == key {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("no category %q", key)
}

// findDebt resolves a debt by customer name (exact) or id.
func findDebt(s *warung.Store, key string) (*warung.Debt, error) {
	if d := s.FindDebtByCustomer(key); d != nil {
		return d, nil
	}
	if d := s.Debt(warung.ID(key)); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("no debt recorded for %q", key)
}

// parseDate parses an optional ISO-8601 date flag. Empty means "unset" and is
// left to the store to default.
func parseDate(s string) (warung.Date, error) {
	if s == "" {
		return warung.Date{}, nil
	}
	return warung.ParseDate(s)
}
