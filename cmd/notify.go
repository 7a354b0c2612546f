package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
)

var notifyCfg = actions.NotifyConfig{}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Configure bucket event notifications",
	Long: `Configure event notifications on a bucket so that the named topics, queues or
lambda functions receive the chosen S3 events. The endpoint and credentials come from
the same JSON configuration file used by the delegate.`,
	Example: `  s3demo notify credentials.json my-bucket --topic arn:aws:sns:us-east-1:444455556666:my-topic`,
	Args:    getConfigAndBucketArgsFunc(&notifyCfg.ConfigFile, &notifyCfg.Bucket),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		notifyCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunConfigureNotifications(&notifyCfg)
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringSliceVarP(&notifyCfg.Topics, "topic", "t", nil, "SNS topic ARN to notify (repeatable)")
	notifyCmd.Flags().StringSliceVarP(&notifyCfg.Queues, "queue", "q", nil, "SQS queue ARN to notify (repeatable)")
	notifyCmd.Flags().StringSliceVarP(&notifyCfg.Lambdas, "lambda-arn", "f", nil, "Lambda function ARN to invoke (repeatable)")
	notifyCmd.Flags().StringSliceVarP(&notifyCfg.Events, "event", "e", []string{"s3:ObjectCreated:*", "s3:ObjectRemoved:*"},
		"S3 event types to subscribe to (repeatable)")
	switches.addFlag(notifyCmd, &notifyCfg.LogLevel, "log-level", "warn", false, "")
}
