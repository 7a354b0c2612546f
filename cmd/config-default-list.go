package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/config"
)

var configDefaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored default flag values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		keys, err := config.Main.GetAllKeys()
		if err != nil {
			if _, ok := err.(config.FileNotFoundError); ok { // if there is no config file yet...
				fmt.Println("No defaults stored")
				return nil
			}
			return err
		}
		for _, k := range keys {
			var v string
			if err := config.Main.Get(k, &v); err != nil {
				return err
			}
			fmt.Printf("%v = %v\n", k, v)
		}
		return nil
	},
}

func init() {
	configDefaultCmd.AddCommand(configDefaultListCmd)
}
