package delegate

import (
	"reflect"
	"testing"
)

func TestArgs(t *testing.T) {
	// Test 1 - full invocation with a bucket.
	i := &Invocation{
		Script:     "./s3-rest.py",
		ConfigFile: "cfg.json",
		Method:     "get",
		Bucket:     "my-bucket",
		LogLevel:   "DEBUG",
	}
	expected := []string{"-c", "cfg.json", "-m", "get", "-b", "my-bucket", "-l", "DEBUG"}
	if got := i.Args(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected args %v; got %v", expected, got)
	}
	// Test 2 - bucket flag omitted when no bucket is set.
	i.Bucket = ""
	expected = []string{"-c", "cfg.json", "-m", "get", "-l", "DEBUG"}
	if got := i.Args(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected args %v; got %v", expected, got)
	}
}

func TestCommandLine(t *testing.T) {
	i := &Invocation{
		Script:     "./s3-rest.py",
		ConfigFile: "cfg.json",
		Method:     "get",
		Bucket:     "my-bucket",
		LogLevel:   "DEBUG",
	}
	expected := "./s3-rest.py -c cfg.json -m get -b my-bucket -l DEBUG"
	if got := i.CommandLine(); got != expected {
		t.Fatalf("expected command line %q; got %q", expected, got)
	}
	// Composition is deterministic.
	if got := i.CommandLine(); got != expected {
		t.Fatalf("expected identical command line on repeat; got %q", got)
	}
}
