// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRuns is the number of measurement runs used when the config omits the value.
	defaultRuns = 5
	// defaultWorkload is the workload spec timed when none is configured.
	defaultWorkload = "sleep:10"
)

// Config represents the top-level application configuration.
type Config struct {
	Workload    string `json:"workload,omitempty"`
	Runs        int    `json:"runs,omitempty"`
	Debug       bool   `json:"debug"`
	Interactive bool   `json:"interactive"`
	LogFile     string `json:"logFile,omitempty"`
	ConfigPath  string `json:"-"`
}

// RunCount returns the configured number of measurement runs, falling back to
// the default when unset or non-positive.
func (c Config) RunCount() int {
	if c.Runs <= 0 {
		return defaultRuns
	}
	return c.Runs
}

// WorkloadSpec returns the workload spec string, applying a default if not set.
func (c Config) WorkloadSpec() string {
	if w := strings.TrimSpace(c.Workload); w != "" {
		return w
	}
	return defaultWorkload
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "timeit.log"
}

// configSchema constrains the shape of the JSON configuration document.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"workload":    map[string]any{"type": "string"},
		"runs":        map[string]any{"type": "integer", "minimum": 0},
		"debug":       map[string]any{"type": "boolean"},
		"interactive": map[string]any{"type": "boolean"},
		"logFile":     map[string]any{"type": "string"},
	},
}

// ValidateDocument checks a raw JSON configuration document against the
// config schema and returns a descriptive error listing every violation.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
}
