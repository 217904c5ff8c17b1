package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCategoryCmd struct {
	category string
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "remove a category" }
func (*deleteCategoryCmd) Usage() string {
	return `wpos delete-category -c <category>

  Removes a category. Its products are kept and left uncategorized.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category name or id to delete")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	cat, err := findCategory(s, c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := s.DeleteCategory(cat.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted category %q\n", cat.Name)
	return subcommands.ExitSuccess
}
