package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit/pkg/codec"
)

// pruneCmd removes unreachable states from an automaton file.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove states unreachable from the start state",
	Long: `Loads an automaton from file, removes every state no path from the start
state can reach, and writes the pruned automaton out. Pruning never changes
which strings the automaton accepts.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = file
		}

		nfa, err := codec.ReadFile(file)
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		removed := nfa.Prune()
		if err := codec.WriteFile(out, nfa); err != nil {
			fmt.Printf("Error writing automaton: %v\n", err)
			os.Exit(1)
		}

		if len(removed) == 0 {
			fmt.Println("No unreachable states")
			return
		}
		fmt.Printf("Removed %d unreachable states: %v\n", len(removed), removed)
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().StringP("file", "f", "nfa.json", "Automaton file (.json, .yaml)")
	pruneCmd.Flags().StringP("output", "o", "", "Output file (defaults to the input file)")
}
