package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/config"
)

var configDefaultCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Store default values for command flags",
	Long: `Store default values for command flags in ` + config.Main.FullPath + `.
A stored value is used when the matching flag is not supplied on the command line,
unless an environment variable overrides it.`,
}

func init() {
	configCmd.AddCommand(configDefaultCmd)
}
