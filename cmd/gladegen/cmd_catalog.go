package main

import (
	"fmt"
	"strings"

	"gladegen/cmd/gladegen/glade"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [TYPE]",
	Short: "List known signal signatures",
	Long: "List every (type, event) pair the signal catalog knows, with the\n" +
		"handler signature it resolves to. User catalogs from the config\n" +
		"directories are merged over the built-in data, later files winning.\n" +
		"An optional TYPE argument filters the listing.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(flagCatalogDirs)
		if err != nil {
			return err
		}
		entries := cat.Entries()
		if len(args) == 1 {
			var filtered []glade.Entry
			for _, e := range entries {
				if e.Type == args[0] {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}
		printEntries(entries)
		return nil
	},
}

// printEntries prints catalog rows aligned as <type>.<event>  (signature).
func printEntries(entries []glade.Entry) {
	if len(entries) == 0 {
		fmt.Println("no catalog entries found")
		return
	}

	maxLen := 0
	for _, e := range entries {
		if n := len(e.Type) + 1 + len(e.Event); n > maxLen {
			maxLen = n
		}
	}

	for _, e := range entries {
		full := e.Type + "." + e.Event
		sig := append([]string{"self", "widget"}, e.Params...)
		sig = append(sig, "user_data=None")
		fmt.Printf("%-*s  (%s)\n", maxLen, full, strings.Join(sig, ", "))
	}
}
