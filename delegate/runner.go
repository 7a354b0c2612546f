//go:generate mockgen -package mocks -destination mocks/runner.go -source=runner.go
package delegate

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/ugovaretto/s3demo/logger"
	"golang.org/x/net/context"
)

// Runner executes a composed delegate invocation and blocks until it completes.
type Runner interface {
	Run(ctx context.Context, log logger.Logger, i *Invocation) error
}

// ExitError carries a delegate's non-zero exit status so callers can adopt it
// as their own.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("delegate exited with status %v", e.Code)
}

// ExecRunner runs the delegate as a child process, forwarding its output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run spawns the delegate and waits for it to finish.
// A non-zero child exit status is returned as *ExitError; failure to spawn at
// all is returned as a wrapped error.
func (r *ExecRunner) Run(ctx context.Context, log logger.Logger, i *Invocation) error {
	cmd := exec.CommandContext(ctx, i.Script, i.Args()...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin
	log.Debug("launching delegate: ", i.CommandLine())
	if err := cmd.Run(); err != nil {
		if ee, ok := err.(*exec.ExitError); ok { // if the delegate started but failed...
			return &ExitError{Code: ee.ExitCode()}
		}
		return errors.Wrapf(err, "unable to launch delegate %q", i.Script)
	}
	return nil
}
