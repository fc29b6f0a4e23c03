package main

import (
	"time"

	"gladegen/cmd/gladegen/glade"
	"gladegen/cmd/gladegen/gladexml"
	"gladegen/pkg/lib"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   appName + " [FILE] [OUTFILE]",
	Short: "Generate Python GTK boilerplate from a Glade file",
	Long: "Generate Python GTK boilerplate from a Glade file.\n\n" +
		"FILE is the .glade document to parse. OUTFILE is optional: '-' or no\n" +
		"OUTFILE prints to stdout. Window-like objects become classes; everything\n" +
		"else becomes builder-sourced fields with signal handler stubs.\n\n" +
		"Signal signatures come from a built-in catalog, extendable with\n" +
		"catalog/*.yml files under the config directory:\n" +
		"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	Version: version,
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		source := args[0]
		outfile := ""
		if len(args) > 1 {
			outfile = args[1]
		}

		cat, err := loadCatalog(flagCatalogDirs)
		if err != nil {
			return err
		}
		debugf("catalog ready (%d entries)", cat.Len())

		m, err := gladexml.BuildFile(source, glade.Options{Catalog: cat})
		if err != nil {
			return err
		}
		debugf("model built: %d nodes, %d promoted", m.Len(), len(m.Promoted))

		if flagLayout {
			printLayout(m, source)
			return nil
		}

		if m.Sentinel {
			lib.Warnf("no window-like object found; the generated root class raises at run time")
		}

		ctx := glade.NewRenderContext(m, source, time.Now())
		ctx.DynamicInit = flagDynamic
		ctx.LibraryMode = flagLib
		content, err := glade.Render(ctx)
		if err != nil {
			return err
		}

		return writeOutput(outfile, content, !flagLib)
	},
}
