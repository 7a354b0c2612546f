package helper

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ugovaretto/s3demo/constants"
)

// GetEnvVar fetches OS environment variable.
// If the variable is not set it returns empty string.
// It also returns an error if there is a missing value AND mandatory == true.
func GetEnvVar(k string, mandatory bool) (string, error) {
	if value := os.Getenv(k); value != "" {
		return value, nil
	} else {
		if mandatory {
			return "", fmt.Errorf("environment variable %v is not set", k)
		} else {
			return "", nil
		}
	}
}

// ReadValueFromEnv will read the env var called name and populate the supplied val.
// If the env var is not set then return an error.
func ReadValueFromEnv(name string, val *string) error {
	v := os.Getenv(name)
	if v != "" { // if the environment variable was set...
		*val = v // update the callers value
		return nil
	} else { // else there was no environment variable set...
		return fmt.Errorf("value for environment variable %v not found", name)
	}
}

// ReadValueFromEnvWithDefault will read the value of name from the environment into v.
// If it's not set then it will apply the supplied defaultValue and return v.
func ReadValueFromEnvWithDefault(name string, defaultValue string) (v string) {
	_ = ReadValueFromEnv(name, &v)
	if v == "" && defaultValue != "" { // if the environment variable is not set and we have been given a default value...
		v = defaultValue
	}
	return
}

// Environment is the validated state required to launch the REST delegate.
// Callers consume this value explicitly instead of relying on ambient mutation
// of the process environment.
type Environment struct {
	Python string // full path of the python interpreter found on PATH
	Script string // path of the delegate script
	Proxy  string // https proxy passthrough; empty when no proxy is set
}

// CheckEnvironment validates that a python interpreter and the delegate script are
// available before any launch is attempted.
// Override the interpreter with env var S3DEMO_PYTHON.
func CheckEnvironment(script string) (Environment, error) {
	e := Environment{Script: script}
	python := ReadValueFromEnvWithDefault(constants.EnvVarPython, constants.PythonDefault)
	p, err := exec.LookPath(python)
	if err != nil {
		return e, fmt.Errorf("interpreter %q not found on PATH: %v", python, err)
	}
	e.Python = p
	if _, err := os.Stat(script); err != nil {
		return e, fmt.Errorf("delegate script %q not found: %v", script, err)
	}
	for _, k := range []string{"https_proxy", "HTTPS_PROXY", "http_proxy", "HTTP_PROXY"} {
		if v := os.Getenv(k); v != "" { // if a proxy is configured...
			e.Proxy = v
			break
		}
	}
	return e, nil
}
