// Package config provides configuration management for triptych.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	Browser BrowserConfig
	DataDir string // explicit data directory; empty means "resolve via search paths"
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// BrowserConfig holds image browser presentation settings.
type BrowserConfig struct {
	ThumbnailHeight int // fixed display height of the current image
	PanelHeight     int // height of the browser sub-panel inside panel 1
}

// Load reads configuration from an optional file and the environment.
// Env var overrides use prefix TRIPTYCH_, e.g. TRIPTYCH_DATA_DIR.
// An empty path loads from the default location if a file exists there,
// otherwise defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "triptych")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("browser.thumbnail_height", 150)
	v.SetDefault("browser.panel_height", 250)
	v.SetDefault("data_dir", "")

	v.SetEnvPrefix("TRIPTYCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			// Missing default config is fine; anything else is not.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read default config: %w", err)
			}
		}
	}

	cfg := Config{
		Window: WindowConfig{
			Title:  v.GetString("window.title"),
			Width:  v.GetInt("window.width"),
			Height: v.GetInt("window.height"),
		},
		Browser: BrowserConfig{
			ThumbnailHeight: v.GetInt("browser.thumbnail_height"),
			PanelHeight:     v.GetInt("browser.panel_height"),
		},
		DataDir: v.GetString("data_dir"),
	}

	if cfg.Browser.ThumbnailHeight <= 0 {
		return Config{}, fmt.Errorf("browser.thumbnail_height must be positive, got %d", cfg.Browser.ThumbnailHeight)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	return cfg, nil
}

// DefaultConfigDir returns the per-user configuration directory.
//
// Locations:
//   - Windows: %APPDATA%\triptych
//   - Unix: ~/.config/triptych
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "triptych")
		}
		return filepath.Join(home, ".config", "triptych")
	}
	return filepath.Join(dir, "triptych")
}
