package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type addCategoryCmd struct {
	name        string
	description string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add a product category" }
func (*addCategoryCmd) Usage() string {
	return `wpos add-category -name <name> [-desc <text>]

  Adds a category products can be grouped under.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name")
	f.StringVar(&c.description, "desc", "", "Description")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	created, err := s.AddCategory(warung.Category{Name: c.name, Description: c.description})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added category %q\n", created.Name)
	return subcommands.ExitSuccess
}
