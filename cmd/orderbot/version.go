package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	orderbot "github.com/weikanglim/OrderBot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of orderbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("orderbot version %s\n", strings.TrimSpace(orderbot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
