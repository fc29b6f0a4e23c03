package main

import (
	"fmt"
	"os"

	"gladegen/pkg/lib"
)

var (
	flagDynamic     bool
	flagLib         bool
	flagLayout      bool
	flagForce       bool
	flagDebug       bool
	flagCatalogDirs []string
)

func main() {
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(catalogCmd)

	rootCmd.Flags().BoolVarP(&flagDynamic, "dynamic", "d", false,
		"use dynamic object initialization (guinames loop instead of per-id lookups)")
	rootCmd.Flags().BoolVarP(&flagLib, "lib", "l", false,
		"generate an importable library without the runnable entry point")
	rootCmd.Flags().BoolVar(&flagLayout, "layout", false,
		"print the widget layout of FILE instead of generating code")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false,
		"overwrite OUTFILE without asking")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "D", false,
		"print debug traces to stderr")
	rootCmd.PersistentFlags().StringArrayVar(&flagCatalogDirs, "catalog-dir", nil,
		"additional signal catalog directory (repeatable; default: ~/.config/"+appName+"/catalog)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}

// debugf prints a trace to stderr when --debug is set.
func debugf(format string, args ...any) {
	if !flagDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
