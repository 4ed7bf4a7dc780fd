package config

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// Initialize writes the default configuration into the directory and loads
// it back. It refuses to clobber an existing configuration.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("%s already exists, not overwriting", configPath)
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	logger.Printf("Writing %s", configPath)
	if err := os.WriteFile(configPath, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	return Load(path)
}
