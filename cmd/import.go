package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore from a backup bundle" }
func (*importCmd) Usage() string {
	return `wpos import -i <file>

  Replaces every collection with the contents of a previously exported
  bundle. A bundle with a missing or different version tag is rejected and
  nothing is changed.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Bundle file to read (defaults to stdin)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	in := os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}
	if err := warung.Import(in, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d products, %d transactions and %d debts\n",
		len(s.Products()), len(s.Transactions()), len(s.Debts()))
	return subcommands.ExitSuccess
}
