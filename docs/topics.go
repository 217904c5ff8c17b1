// Package docs holds the built-in manual shown by the topic command. Each
// page is a markdown file embedded at build time; the readme is the overview
// and the other pages cover one area of the bookkeeping each.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns one manual page by name. The name "*" returns the whole
// manual: the overview followed by every page in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		var b strings.Builder
		for _, n := range append([]string{"readme"}, All()...) {
			page, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(page)
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	page, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no help topic %q, try \"wpos topic readme\"", name)
	}
	return string(page), nil
}

// All lists the available page names in alphabetical order, without the
// readme; the readme is the index pointing at the rest.
func All() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
