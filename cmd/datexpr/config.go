package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/reugn/go-datexpr/logger"
)

const defaultLayout = "2006-01-02 15:04:05.000"

// Configuration holds the runtime settings of the command line tool.
// Values come from the environment and may be overridden by flags.
type Configuration struct {
	LogLevel  string `envconfig:"DATEXPR_LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"DATEXPR_LOG_FORMAT" default:"text"`
	Layout    string `envconfig:"DATEXPR_LAYOUT" default:"2006-01-02 15:04:05.000"`
}

// loadConfig reads the configuration from the environment.
func loadConfig() (*Configuration, error) {
	var cnf Configuration
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return &cnf, nil
}

func (c *Configuration) validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	if c.Layout == "" {
		c.Layout = defaultLayout
	}
	return nil
}
