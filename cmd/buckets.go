package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/delegate"
)

var bucketsCfg = actions.BucketsConfig{}

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List all buckets reachable with the supplied credentials",
	Long: `List all buckets by launching the s3-rest delegate in "get" mode without a
bucket name. The composed delegate command line is printed and, after a short pause,
executed.`,
	Example: "  s3demo buckets credentials.json",
	Args:    getConfigFileArgsFunc(&bucketsCfg.ConfigFile),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		bucketsCfg.StackDumpOnPanic = stackDumpOnPanic
		bucketsCfg.Runner = delegate.NewExecRunner()
		return actions.RunListBuckets(&bucketsCfg)
	},
}

func init() {
	rootCmd.AddCommand(bucketsCmd)
	switches.addFlag(bucketsCmd, &bucketsCfg.Script, "script", constants.DelegateScriptDefault, false, "")
	switches.addFlag(bucketsCmd, &bucketsCfg.DelegateLogLevel, "delegate-log-level", constants.DelegateLogLevelDefault, false, "")
	switches.addFlag(bucketsCmd, &bucketsCfg.LogLevel, "log-level", "warn", false, "")
	switches.addFlag(bucketsCmd, &bucketsCfg.DelaySeconds, "delay", strconv.Itoa(constants.DelayDefaultSeconds), false, "")
	switches.addFlag(bucketsCmd, &bucketsCfg.DryRun, "dry-run", "false", false, "")
	switches.addFlag(bucketsCmd, &bucketsCfg.Output, "output", "", false, "")
}
