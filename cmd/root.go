package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/ugovaretto/s3demo/delegate"
)

var (
	// Default values may be set at compile time.
	version          = "0.2.0"
	buildDate        = "2020-01-02T03:04+0500"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use: "s3demo",
	Long: `s3demo is a thin launcher around the s3-rest delegate. It validates the invocation,
prepares the environment, prints the exact delegate command line and runs it after a
short pause so the trace can be read first. The launcher adopts the delegate's exit
code as its own. Extra actions configure bucket event notifications and expose
launches via a RESTful API.`,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// When a launch failed downstream, the delegate's exit status becomes our own.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		var ee *delegate.ExitError
		if errors.As(err, &ee) { // if the delegate itself failed...
			os.Exit(ee.Code)
		}
		os.Exit(1)
	}
}
