package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit/internal/presentation/graph"
	"github.com/nfakit/nfakit/pkg/codec"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export an automaton visualization",
	Long: `Loads an automaton from file and outputs a Graphviz DOT or Mermaid diagram
with accept states double-circled, a synthetic entry marker, and edges labeled
by symbol (epsilon rendered as ε).`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")

		nfa, err := codec.ReadFile(file)
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		switch format {
		case "dot":
			fmt.Print(graph.GenerateDOT(nfa))
		case "mermaid":
			fmt.Print(graph.GenerateMermaid(nfa))
		default:
			fmt.Printf("Unknown format %q (want dot or mermaid)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("file", "f", "nfa.json", "Automaton file (.json, .yaml)")
	graphCmd.Flags().String("format", "dot", "Output format: dot or mermaid")
}
