package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
	"github.com/ugovaretto/s3demo/config"
)

var defaultRemoveCfg = actions.DefaultRemoveConfig{ConfigFile: config.Main}

var configDefaultRemoveCmd = &cobra.Command{
	Use:     "remove",
	Short:   "Remove a stored default flag value",
	Example: "  s3demo config defaults remove --key delegate-log-level",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return actions.RunDefaultRemove(&defaultRemoveCfg)
	},
}

func init() {
	configDefaultCmd.AddCommand(configDefaultRemoveCmd)
	configDefaultRemoveCmd.Flags().StringVarP(&defaultRemoveCfg.Key, "key", "k", "", "Name of the flag whose default should be removed")
	_ = configDefaultRemoveCmd.MarkFlagRequired("key")
}
