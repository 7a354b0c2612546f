package actions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ghodss/yaml"
	"github.com/ugovaretto/s3demo/delegate"
)

// serviceName tags every log line produced by the actions.
const serviceName = "s3demo"

// sleepFn is swapped by tests so the pre-launch pause can be observed without
// actually waiting.
var sleepFn = time.Sleep

// printInvocation renders the composed invocation as a structured document
// instead of running it. Supported formats are "json" and "yaml".
func printInvocation(i *delegate.Invocation, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(i, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	case "yaml":
		b, err := yaml.Marshal(i)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
	default:
		return fmt.Errorf("unsupported output format %q: use \"json\" or \"yaml\"", format)
	}
	return nil
}
