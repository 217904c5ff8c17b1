package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCategoryCmd struct {
	category    string
	name        string
	description string
}

func (*updateCategoryCmd) Name() string     { return "update-category" }
func (*updateCategoryCmd) Synopsis() string { return "rename a category" }
func (*updateCategoryCmd) Usage() string {
	return `wpos update-category -c <category> -name <name> [-desc <text>]

  Renames a category. Every product in it picks up the new name.
`
}

func (c *updateCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category name or id to edit")
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.description, "desc", "", "New description")
}

func (c *updateCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	cat, err := findCategory(s, c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := c.name
	if name == "" {
		name = cat.Name
	}
	desc := c.description
	if desc == "" {
		desc = cat.Description
	}
	updated, err := s.UpdateCategory(cat.ID, name, desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated category %q\n", updated.Name)
	return subcommands.ExitSuccess
}
