package delegate

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ugovaretto/s3demo/logger"
	"golang.org/x/net/context"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	script := filepath.Join(dir, "fake-delegate.sh")
	if err := ioutil.WriteFile(script, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return script
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are used as fake delegates")
	}
	log := logger.NewLogger("s3demo", "error", false)
	dir, err := ioutil.TempDir("", "s3demo-runner")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	// Test 1 - arguments arrive in order and output is forwarded.
	out := &bytes.Buffer{}
	r := &ExecRunner{Stdout: out, Stderr: out}
	i := &Invocation{
		Script:     writeScript(t, dir, `echo "$@"`),
		ConfigFile: "cfg.json",
		Method:     "get",
		Bucket:     "my-bucket",
		LogLevel:   "DEBUG",
	}
	if err := r.Run(context.Background(), log, i); err != nil {
		t.Fatalf("expected a clean run: %v", err)
	}
	expected := "-c cfg.json -m get -b my-bucket -l DEBUG"
	if got := strings.TrimSpace(out.String()); got != expected {
		t.Fatalf("expected delegate args %q; got %q", expected, got)
	}
	// Test 2 - non-zero delegate exit status becomes an ExitError.
	i.Script = writeScript(t, dir, "exit 3")
	err = r.Run(context.Background(), log, i)
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected an ExitError; got: %v", err)
	}
	if ee.Code != 3 {
		t.Fatalf("expected exit code 3; got %v", ee.Code)
	}
	// Test 3 - a missing script is a launch failure, not an ExitError.
	i.Script = filepath.Join(dir, "missing.sh")
	err = r.Run(context.Background(), log, i)
	if err == nil || errors.As(err, &ee) {
		t.Fatalf("expected a launch failure; got: %v", err)
	}
}
