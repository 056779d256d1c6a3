package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nfakit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nfakit version %s\n", strings.TrimSpace(nfakit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
