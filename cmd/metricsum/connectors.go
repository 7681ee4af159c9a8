package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/connstats/internal/connector"
	"github.com/gyeh/connstats/internal/model"
)

var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "List builtin connector profiles",
	Run:   runConnectors,
}

func init() {
	rootCmd.AddCommand(connectorsCmd)
}

func runConnectors(cmd *cobra.Command, args []string) {
	for _, p := range connector.Builtins {
		shape := "tabular"
		if p.Tree {
			shape = "document"
		}
		if p.SplitPhases {
			shape += ", dual-phase"
		}
		fmt.Printf("%-12s %s (%s)\n", p.Name, strings.Join(p.Extensions, ", "), shape)
		fmt.Printf("    create: %s (time: %s)\n", strings.Join(p.Columns(model.PhaseCreate), ", "), p.CreateTimeOp)
		fmt.Printf("    read:   %s (time: %s)\n", strings.Join(p.Columns(model.PhaseRead), ", "), p.ReadTimeOp)
	}
}
