package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
	"github.com/ugovaretto/s3demo/config"
)

var defaultAddCfg = actions.DefaultAddConfig{ConfigFile: config.Main}

var configDefaultAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a default flag value",
	Example: "  s3demo config defaults add --key delegate-log-level --value INFO",
	Args: func(cmd *cobra.Command, args []string) error {
		if _, ok := switches[defaultAddCfg.Key]; defaultAddCfg.Key != "" && !ok { // if the key is not a known flag...
			return fmt.Errorf("%q is not a flag that can be defaulted", defaultAddCfg.Key)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return actions.RunDefaultAdd(&defaultAddCfg)
	},
}

func init() {
	configDefaultCmd.AddCommand(configDefaultAddCmd)
	configDefaultAddCmd.Flags().StringVarP(&defaultAddCfg.Key, "key", "k", "", "Name of the flag to store a default for")
	configDefaultAddCmd.Flags().StringVarP(&defaultAddCfg.Value, "value", "v", "", "Default value to store")
	configDefaultAddCmd.Flags().BoolVarP(&defaultAddCfg.Force, "force", "f", false, "Overwrite an existing value")
	_ = configDefaultAddCmd.MarkFlagRequired("key")
	_ = configDefaultAddCmd.MarkFlagRequired("value")
}
