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

type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "show a one-day report" }
func (*dailyCmd) Usage() string {
	return `wpos daily [-d <date>]

  Shows income, expenses and gross profit for a single day.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if on.IsZero() {
		on = warung.Today()
	}
	printMarkdown(renderer.DailyMarkdown(s.Daily(on)))
	return subcommands.ExitSuccess
}
