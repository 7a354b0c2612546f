package s3

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeCredsFile(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "s3demo-creds")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	path := filepath.Join(dir, "s3-credentials.json")
	if err := ioutil.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCredentials(t *testing.T) {
	path := writeCredsFile(t, `{
		"access_key": "00000000000000000000000000000000",
		"secret_key": "11111111111111111111111111111111",
		"protocol":   "http",
		"host":       "localhost",
		"port":       8000
	}`)
	c, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.AccessKey != "00000000000000000000000000000000" {
		t.Fatalf("unexpected access key %q", c.AccessKey)
	}
	expected := "http://localhost:8000"
	if got := c.Endpoint(); got != expected {
		t.Fatalf("expected endpoint %q; got %q", expected, got)
	}
}

func TestLoadCredentialsErrors(t *testing.T) {
	// Test 1 - missing file.
	if _, err := LoadCredentials("no-such-file.json"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// Test 2 - malformed JSON.
	path := writeCredsFile(t, "{not json")
	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	// Test 3 - missing keys.
	path = writeCredsFile(t, `{"host": "localhost"}`)
	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("expected an error for missing access/secret keys")
	}
}

func TestEndpointWithoutPort(t *testing.T) {
	c := &Credentials{Protocol: "https", Host: "s3.example.com"}
	expected := "https://s3.example.com"
	if got := c.Endpoint(); got != expected {
		t.Fatalf("expected endpoint %q; got %q", expected, got)
	}
}
