package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// runConfig is the optional YAML run configuration. Command-line flags win
// over the file, and the file wins over CASEFILE_* environment variables. A
// .env file in the working directory, if present, is loaded into the
// environment first.
type runConfig struct {
	Data     string   `yaml:"data"`
	Tests    []string `yaml:"tests"`
	Output   string   `yaml:"output"`
	Debug    bool     `yaml:"debug"`
	DebugAll bool     `yaml:"debugAll"`
	NoColor  bool     `yaml:"noColor"`
}

func loadRunConfig(path string) (runConfig, error) {
	_ = godotenv.Load() // a missing .env file is fine

	cfg := runConfig{
		Data:   os.Getenv("CASEFILE_DATA"),
		Output: os.Getenv("CASEFILE_OUTPUT"),
	}
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	// Keys absent from the file keep their environment-derived values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	return cfg, nil
}
