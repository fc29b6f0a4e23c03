package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed cmd_example_main.glade
var exampleGlade []byte

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a reference Glade file covering all generator features",
	Long: "Print a small annotated Glade file that demonstrates everything the\n" +
		"generator reacts to: window promotion, layout containers, separators,\n" +
		"signal declarations and requirement handling.\n" +
		"Use --output to write it to a file instead of stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		w.Write(exampleGlade)

		if output != "" {
			fmt.Fprintf(os.Stderr, "written to %s\n", output)
		}
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
