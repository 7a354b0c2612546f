package s3

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Credentials is the subset of the delegate's JSON configuration file needed to
// build an SDK session. Anything else in the file is left for the delegate.
type Credentials struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Protocol  string `json:"protocol"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Region    string `json:"region,omitempty"`
}

// LoadCredentials reads and validates the JSON configuration file.
func LoadCredentials(path string) (*Credentials, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read json configuration file")
	}
	c := &Credentials{}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "unable to parse json configuration file %q", path)
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return nil, fmt.Errorf("json configuration file %q is missing access_key or secret_key", path)
	}
	if c.Protocol == "" {
		c.Protocol = "http"
	}
	return c, nil
}

// Endpoint renders the service URL described by the configuration file.
func (c *Credentials) Endpoint() string {
	if c.Port != 0 { // if a non-default port was configured...
		return fmt.Sprintf("%v://%v:%v", c.Protocol, c.Host, c.Port)
	}
	return fmt.Sprintf("%v://%v", c.Protocol, c.Host)
}
