package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/npillmayer/itrans"
)

const defaultConfigFile = "itrans.yaml"

// Config is the command-line tool's configuration, read from YAML.
type Config struct {
	Backend      string   `yaml:"backend"`
	Prompt       string   `yaml:"prompt"`
	ExitCommands []string `yaml:"exit-commands"`
	Breakdown    bool     `yaml:"breakdown"`
	TraceLevel   string   `yaml:"trace-level"` // error, info or debug
}

func defaultConfig() Config {
	return Config{
		Backend:      string(itrans.BackendDAT),
		Prompt:       "ITRANS: ",
		ExitCommands: []string{"quit", "exit", "q"},
		TraceLevel:   "error",
	}
}

// LoadConfig reads filename. A missing file is only tolerated for the
// default file name, in which case the defaults are returned.
func LoadConfig(filename string) (*Config, error) {
	config := defaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		if filename == defaultConfigFile && errors.Is(err, fs.ErrNotExist) {
			return &config, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if _, err = itrans.ParseBackend(config.Backend); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	switch config.TraceLevel {
	case "error", "info", "debug":
	default:
		return nil, fmt.Errorf("%s: unknown trace level %q", filename, config.TraceLevel)
	}
	for i, cmd := range config.ExitCommands {
		config.ExitCommands[i] = strings.ToLower(strings.TrimSpace(cmd))
	}
	return &config, nil
}

// isExitCommand compares case-insensitively.
func (conf *Config) isExitCommand(line string) bool {
	line = strings.ToLower(line)
	for _, cmd := range conf.ExitCommands {
		if line == cmd {
			return true
		}
	}
	return false
}
