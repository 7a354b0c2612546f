package config

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	dir, err := ioutil.TempDir("", "s3demo-config")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return NewFileWithDir(dir, "config.yaml")
}

func TestSetGetDelete(t *testing.T) {
	c := newTestFile(t)
	// Test 1 - Get on a missing file reports the key as missing.
	var val string
	err := c.Get("log-level", &val)
	if !errors.As(err, &KeyNotFoundError{}) {
		t.Fatalf("expected KeyNotFoundError; got: %v", err)
	}
	// Test 2 - Set then Get round trip.
	if err := c.Set("log-level", "debug"); err != nil {
		t.Fatal(err)
	}
	if err := c.Get("log-level", &val); err != nil {
		t.Fatal(err)
	}
	if val != "debug" {
		t.Fatalf("expected %q; got %q", "debug", val)
	}
	// Test 3 - values survive a reload from disk.
	c2 := NewFileWithDir(c.Dirname, c.FileName)
	if err := c2.Get("log-level", &val); err != nil {
		t.Fatal(err)
	}
	if val != "debug" {
		t.Fatalf("expected %q after reload; got %q", "debug", val)
	}
	// Test 4 - Delete removes the key.
	if err := c2.Delete("log-level"); err != nil {
		t.Fatal(err)
	}
	err = c2.Get("log-level", &val)
	if !errors.As(err, &KeyNotFoundError{}) {
		t.Fatalf("expected KeyNotFoundError after delete; got: %v", err)
	}
	// Test 5 - Delete of a missing key errors.
	if err := c2.Delete("never-set"); err == nil {
		t.Fatal("expected an error deleting a missing key")
	}
}

func TestGetAllKeys(t *testing.T) {
	c := newTestFile(t)
	keys, err := c.GetAllKeys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys; got %v", keys)
	}
	_ = c.Set("script", "./s3-rest.py")
	_ = c.Set("delay", "0")
	keys, err = c.GetAllKeys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys; got %v", keys)
	}
}
