package delegate

import (
	"strings"

	"github.com/ugovaretto/s3demo/constants"
)

// Invocation describes one run of the s3-rest delegate.
// Flags are rendered as an argv slice so the child process is spawned directly,
// without shell re-interpretation of the arguments.
type Invocation struct {
	Script     string `json:"script" errorTxt:"delegate script" mandatory:"yes"`
	ConfigFile string `json:"configFile" errorTxt:"json configuration file" mandatory:"yes"`
	Method     string `json:"method" errorTxt:"method" mandatory:"yes"`
	Bucket     string `json:"bucket,omitempty"`
	LogLevel   string `json:"logLevel" errorTxt:"delegate log level" mandatory:"yes"`
}

// Args returns the delegate flags in the order the tool documents them.
// The bucket flag is omitted when no bucket is set, which makes the delegate
// list all buckets for the credentials instead.
func (i *Invocation) Args() []string {
	args := []string{
		constants.DelegateConfigFlag, i.ConfigFile,
		constants.DelegateMethodFlag, i.Method,
	}
	if i.Bucket != "" { // if a bucket was supplied...
		args = append(args, constants.DelegateBucketFlag, i.Bucket)
	}
	return append(args, constants.DelegateLogLevelFlag, i.LogLevel)
}

// CommandLine renders the exact command that Run will execute, for tracing.
func (i *Invocation) CommandLine() string {
	return strings.Join(append([]string{i.Script}, i.Args()...), " ")
}
