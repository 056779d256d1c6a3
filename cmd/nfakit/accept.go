package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit"
	"github.com/nfakit/nfakit/pkg/codec"
)

// acceptCmd simulates an automaton against an input string.
var acceptCmd = &cobra.Command{
	Use:   "accept INPUT",
	Short: "Decide whether an automaton accepts an input string",
	Long: `Loads an automaton from file and simulates it against INPUT.
Exits 0 when the string is accepted and 1 when it is rejected.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")

		nfa, err := codec.ReadFile(file)
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		engine := nfakit.New(
			nfakit.WithLogger(newLogger(cmd)),
			nfakit.WithMaxSteps(maxSteps),
		)
		accepted, err := engine.Accepts(cmd.Context(), nfa, args[0])
		if err != nil {
			fmt.Printf("Error simulating: %v\n", err)
			os.Exit(1)
		}

		if accepted {
			fmt.Println("accepted")
			return
		}
		fmt.Println("rejected")
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(acceptCmd)
	acceptCmd.Flags().StringP("file", "f", "nfa.json", "Automaton file (.json, .yaml)")
	acceptCmd.Flags().Int("max-steps", 0, "Step bound for the simulation (0 = unbounded)")
}
