package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	hexInput bool
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:     "derdump",
	Short:   "Recursively dump the TLV structure of a DER-encoded blob",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&hexInput, "hex", false, "treat the input file as hex text instead of raw bytes")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum recursion depth into constructed values (0 = unlimited)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
