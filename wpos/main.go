package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/warungpos/warung/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}
	commander.Register(commander.HelpCommand(), "")

	// Shell completion; a no-op unless invoked by the completion machinery.
	complete.Complete("wpos", &complete.Command{Sub: sub})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
