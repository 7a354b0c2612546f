package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/delegate"
)

var listCfg = actions.ListConfig{}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the objects in a bucket",
	Long: `List the objects in a bucket by launching the s3-rest delegate in "get" mode.
The composed delegate command line is printed and, after a short pause so it can be
read, executed. The delegate's exit status becomes this command's exit status.`,
	Example: "  s3demo list credentials.json my-bucket",
	Args:    getConfigAndBucketArgsFunc(&listCfg.ConfigFile, &listCfg.Bucket),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		listCfg.StackDumpOnPanic = stackDumpOnPanic
		listCfg.Runner = delegate.NewExecRunner()
		return actions.RunListObjects(&listCfg)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	switches.addFlag(listCmd, &listCfg.Script, "script", constants.DelegateScriptDefault, false, "")
	switches.addFlag(listCmd, &listCfg.DelegateLogLevel, "delegate-log-level", constants.DelegateLogLevelDefault, false, "")
	switches.addFlag(listCmd, &listCfg.LogLevel, "log-level", "warn", false, "")
	switches.addFlag(listCmd, &listCfg.DelaySeconds, "delay", strconv.Itoa(constants.DelayDefaultSeconds), false, "")
	switches.addFlag(listCmd, &listCfg.DryRun, "dry-run", "false", false, "")
	switches.addFlag(listCmd, &listCfg.Output, "output", "", false, "")
}
