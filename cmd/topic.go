package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/warungpos/warung/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the built-in manual" }
func (*topicCmd) Usage() string {
	return `wpos topic [<name>...]

  Shows pages of the built-in manual. Without arguments the overview is
  shown, which lists the available pages.

Usage Examples:
# How the debt register works.
$ wpos topic hutang

# The whole manual at once.
$ wpos topic "*"
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	var b strings.Builder
	for _, name := range names {
		page, err := docs.Topic(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(page)
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
