package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of a dfgc driver YAML file.
type Config struct {
	// Output is the path the DOT graph is written to. Default sets it to
	// "dfg.dot", and Load keeps that unless the file sets another value;
	// an empty value is not replaced.
	Output string `yaml:"output"`

	// MemoryDependencyOrdering mirrors dfgbuild.WithMemoryDependencyOrdering
	// as the run-wide default for every function built.
	MemoryDependencyOrdering bool `yaml:"memoryDependencyOrdering"`

	// EntryPoint restricts the build to a single named function; empty
	// means every non-declaration function in the module.
	EntryPoint string `yaml:"entryPoint"`
}

// Default returns a Config with the driver's built-in defaults.
func Default() Config {
	return Config{Output: "dfg.dot"}
}

// Load reads and parses the YAML file at path, starting from Default()
// so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
