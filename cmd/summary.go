package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
	"github.com/warungpos/warung/renderer"
)

type summaryCmd struct {
	from string
	to   string
	top  int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a report over a date range" }
func (*summaryCmd) Usage() string {
	return `wpos summary [-from <date>] [-to <date>] [-top n]

  Shows income, expenses, gross profit and margin over an inclusive date
  range, with the best sellers and the products running low. Defaults to
  the current month to date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the range (defaults to the 1st of this month)")
	f.StringVar(&c.to, "to", "", "End of the range (defaults to today)")
	f.IntVar(&c.top, "top", 5, "Number of best sellers to show")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	from, err := parseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := parseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	today := warung.Today()
	if to.IsZero() {
		to = today
	}
	if from.IsZero() {
		from = warung.NewDate(today.Year(), today.Month(), 1)
	}

	sum := s.Summarize(from, to)
	top := s.TopProducts(from, to, c.top)
	low := s.LowStock()
	printMarkdown(renderer.SummaryMarkdown(sum, top, low))
	return subcommands.ExitSuccess
}
