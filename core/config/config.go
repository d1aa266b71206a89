// Package config loads the interpreter's optional configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file looked up in the configuration directory.
const ConfigurationName = "config.yaml"

// Configuration holds every tunable of the interpreter. All fields have
// working defaults; a missing configuration file is not an error.
type Configuration struct {
	// Prompt is printed before each read.
	Prompt string `json:"prompt" validate:"required"`

	// HomeOverride, when non-empty, replaces the HOME lookup used by a
	// bare cd/chdir.
	HomeOverride string `json:"home_override"`

	// ReapBackground enables waiting on detached background children.
	ReapBackground bool `json:"reap_background"`

	// LogPath is the JSON-lines event log destination; empty disables
	// event logging.
	LogPath string `json:"log_path"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// The embedded defaults ship with the binary.
		panic(err)
	}
	return &out
}
