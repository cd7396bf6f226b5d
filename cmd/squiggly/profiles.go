package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const defaultProfiles = ".squiggly.yaml"

// profileFilter resolves a named filter from the profiles file, a YAML
// mapping of names to filter strings.
func profileFilter(cfg *MainConfig, name string) (string, error) {
	path := cfg.Profiles
	if path == "" {
		path = defaultProfiles
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read profiles: %w", err)
	}
	profiles := map[string]string{}
	if err := yaml.Unmarshal(d, &profiles); err != nil {
		return "", fmt.Errorf("bad profiles file %s: %w", path, err)
	}
	filter, ok := profiles[name]
	if !ok {
		return "", fmt.Errorf("no profile %q in %s", name, path)
	}
	return filter, nil
}
