package config

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := ioutil.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	out.configurationDir = path
	return &out, nil
}

// Initialize writes the default configuration into dir unless one already
// exists, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	switch _, err := os.Stat(path); {
	case err == nil:
		logger.Printf("Configuration already exists at %s", path)
		return Load(dir)
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err := ioutil.WriteFile(path, defaultConfigData, 0o600); err != nil {
		return nil, err
	}
	logger.Printf("Wrote default configuration to %s", path)

	return Load(dir)
}
