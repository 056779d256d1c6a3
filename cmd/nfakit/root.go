package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "nfakit",
	Short: "nfakit builds, composes, and simulates non-deterministic finite automata",
	Long: `nfakit is a toolkit for NFAs: build automata from transitions, compose them
with the Thompson operators (concatenation, union, closure), prune unreachable
states, render diagrams, and decide whether input strings are accepted.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// newLogger builds the CLI logger honoring the --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
