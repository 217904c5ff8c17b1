package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/warungpos/warung/renderer"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the categories" }
func (*categoriesCmd) Usage() string {
	return `wpos categories

  Lists the product categories.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	printMarkdown(renderer.CategoriesMarkdown(s.Categories()))
	return subcommands.ExitSuccess
}
