package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default flag values",
	Long:  `Manage default values used by the launcher commands.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
