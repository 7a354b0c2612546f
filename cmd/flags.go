package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ugovaretto/s3demo/config"
	"github.com/ugovaretto/s3demo/constants"
	"github.com/ugovaretto/s3demo/helper"
)

const argsDefinitionTxt = constants.ArgsTxtConfigFile + " " + constants.ArgsTxtBucketName

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"mock": cliFlag{name: "mock", shortHand: "m", desc: "mock switch for testing"},
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug | trace\""},
	"delegate-log-level": cliFlag{name: "delegate-log-level", shortHand: "L",
		desc: "Log level forwarded to the delegate via its -l flag"},
	"script": cliFlag{name: "script", shortHand: "s",
		desc: "Path of the s3-rest delegate script"},
	"delay": cliFlag{name: "delay", shortHand: "w",
		desc: "Seconds to pause between printing the composed command and launching it \n" +
			"so the trace can be read first (use 0 to launch immediately)"},
	"dry-run": cliFlag{name: "dry-run", shortHand: "d",
		desc: "Print the composed delegate command without executing it"},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Specify \"yaml\" or \"json\" to print the delegate invocation instead of \n" +
			"running it. Optionally redirect this output to a file for use with the \"serve\" action"},
	"port": cliFlag{name: "port", shortHand: "p",
		desc: "Port to listen on"},
}

// addFlag adds a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// The default value is resolved in order: environment variable S3DEMO_<FLAG>, the config
// file, then the supplied defaultValue.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue, config.Main.Get) // get the cliFlag details, with defaults taken from env, config or the supplied defaultValue
	desc := sw.desc + desc2                                 // create the full flag description for use below
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
		// Signal that the flag was set so defaults take effect.
		if sw.val != "" { // if there is a value via env, config or default...
			mustSetFlag(c.Flags(), sw.name, sw.val)
		}
	case *bool:
		defaultBool := strings.ToLower(sw.val) == "true"
		c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
		// Signal that the flag was set so defaults take effect.
		if defaultBool {
			mustSetFlag(c.Flags(), sw.name, "true")
		} else {
			mustSetFlag(c.Flags(), sw.name, "false")
		}
	case *int:
		defaultInt, err := strconv.Atoi(sw.val)
		if err != nil {
			fmt.Printf("the value for flag %q must be an integer: %v\n", sw.name, err)
			os.Exit(1)
		}
		c.Flags().IntVarP(p, sw.name, sw.shortHand, defaultInt, desc)
		// Signal that the flag was set so defaults take effect.
		if sw.val != "" { // if there is a value via env, config or default...
			mustSetFlag(c.Flags(), sw.name, sw.val)
		}
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the value of name from the environment, then the config file,
// then falls back to the supplied defaultValue.
func (f *cliFlags) getCliFlag(name string, defaultValue string, fnGetConfig func(key string, out interface{}) error) cliFlag {
	s, ok := switches[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	if err := helper.ReadValueFromEnv(flagNameToEnvVar(name), &s.val); err != nil { // if there's no env var override...
		err := fnGetConfig(s.name, &s.val)
		if errors.As(err, &config.KeyNotFoundError{}) || s.val == "" { // if there was no key found...
			// Apply the default.
			s.val = defaultValue
		}
	}
	return s
}

// flagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix.
func flagNameToEnvVar(name string) string {
	return constants.EnvVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func mustSetFlag(f *pflag.FlagSet, name string, val string) {
	if err := f.Set(name, val); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// getConfigAndBucketArgsFunc returns a func that cobra uses to validate that we have
// the json configuration file and the bucket name.
// It saves arg[0] as the configuration file and arg[1] as the bucket name.
func getConfigAndBucketArgsFunc(cfgFile *string, bucket *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("usage: %v %v", cmd.CommandPath(), argsDefinitionTxt)
		}
		*cfgFile = args[0]
		*bucket = args[1]
		return nil
	}
}

// getConfigFileArgsFunc returns a func that cobra uses to validate that we have 1 arg.
// It saves arg[0] as the configuration file.
func getConfigFileArgsFunc(cfgFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: %v %v", cmd.CommandPath(), constants.ArgsTxtConfigFile)
		}
		*cfgFile = args[0]
		return nil
	}
}
