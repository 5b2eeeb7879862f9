package config

import (
	"os"
	"path/filepath"
	"strings"
)

const dirEnv = "WALLETTHEMES_CONFIG_DIR"

// Dir returns the configuration directory. WALLETTHEMES_CONFIG_DIR wins
// over the platform user config dir.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(dirEnv)); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		if home, herr := os.UserHomeDir(); herr == nil && home != "" {
			return filepath.Join(home, ".config", "walletthemes")
		}
		return filepath.Join(".", ".walletthemes")
	}
	return filepath.Join(base, "walletthemes")
}

func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}
