package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of this tool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %v\n", version)
		fmt.Printf("Build date: %v\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
