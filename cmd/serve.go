package cmd

import (
	"net"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/actions"
	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/delegate"
)

var serveCfg = actions.WebServerConfig{Scheme: "http"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a web service that launches the delegate on demand",
	Long: `Start a web service through which delegate runs can be launched and monitored.

Routes:

  POST /launch             launch the delegate (JSON body: configFile, bucket, method)
  GET  /runs               list launched runs
  GET  /runs/<id>/status   fetch the status of a run
  GET  /health             health check
  GET  /stop               stop the server`,
	Example: "  s3demo serve --port 8080",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		serveCfg.StackDumpOnPanic = stackDumpOnPanic
		serveCfg.Runner = delegate.NewExecRunner()
		return actions.RunWebServer(&serveCfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IPVarP(&serveCfg.Addr, "address", "a", net.IPv4(0, 0, 0, 0), "Interface address to listen on")
	switches.addFlag(serveCmd, &serveCfg.Port, "port", "8080", false, "")
	switches.addFlag(serveCmd, &serveCfg.Script, "script", constants.DelegateScriptDefault, false, "")
	switches.addFlag(serveCmd, &serveCfg.DelegateLogLevel, "delegate-log-level", constants.DelegateLogLevelDefault, false, "")
	switches.addFlag(serveCmd, &serveCfg.LogLevel, "log-level", "info", false, "")
}
