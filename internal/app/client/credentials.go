package client

import (
	"fmt"
	"os"
	"strings"

	"github.com/OfficialArms/virtool/internal/app/client/config"
)

// SaveAPIKey stores the key next to the config so later runs pick it up.
func SaveAPIKey(cfg *config.Config, key string) error {
	if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(cfg.APIKeyPath, []byte(strings.TrimSpace(key)), 0o600); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(key)
	return nil
}

func ClearAPIKey(cfg *config.Config) error {
	if err := os.Remove(cfg.APIKeyPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove api key: %w", err)
	}
	cfg.APIKey = ""
	return nil
}
