package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type settingsCmd struct {
	name    string
	address string
	phone   string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or update the store profile" }
func (*settingsCmd) Usage() string {
	return `wpos settings [-name <store name>] [-address <address>] [-phone <phone>]

  Without flags, shows the store profile. With flags, updates the given
  fields.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Store name")
	f.StringVar(&c.address, "address", "", "Store address")
	f.StringVar(&c.phone, "phone", "", "Store phone")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	st := s.Settings()
	if c.name == "" && c.address == "" && c.phone == "" {
		fmt.Printf("Store:   %s\nAddress: %s\nPhone:   %s\n", st.StoreName, st.StoreAddress, st.StorePhone)
		return subcommands.ExitSuccess
	}

	if c.name != "" {
		st.StoreName = c.name
	}
	if c.address != "" {
		st.StoreAddress = c.address
	}
	if c.phone != "" {
		st.StorePhone = c.phone
	}
	s.SetSettings(st)
	fmt.Println("Updated store profile.")
	return subcommands.ExitSuccess
}
