package main

import (
	"fmt"

	"frame-bridge/internal/bridge"

	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the bridge connectivity greeting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), bridge.StringFromJNI())
	},
}

func init() {
	rootCmd.AddCommand(greetCmd)
}
