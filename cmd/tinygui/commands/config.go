package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/tinygui"
)

// configCandidates are tried in order when no -config flag is given.
var configCandidates = []string{tinygui.ConfigFile, "tinygui.yaml", "tinygui.yml"}

// loadConfig loads path, or the first config file found in the current
// directory. Without any file the defaults are returned.
func loadConfig(path string) (*tinygui.Config, error) {
	if path != "" {
		return tinygui.LoadConfig(path)
	}
	for _, candidate := range configCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return tinygui.LoadConfig(candidate)
		}
	}
	return tinygui.DefaultConfig(), nil
}

// saveConfig writes cfg as TOML.
func saveConfig(path string, cfg *tinygui.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
