// Package config provides configuration management for breathe.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/breathe-cli/internal/domain"
)

// EnvPrefix is the prefix for environment overrides, e.g. BREATHE_SOUND_ENABLED.
const EnvPrefix = "BREATHE"

// Config holds all configuration for the breathe application.
type Config struct {
	DefaultMethod string             `mapstructure:"default_method"`
	Sound         SoundConfig        `mapstructure:"sound"`
	Haptics       HapticsConfig      `mapstructure:"haptics"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Data          DataConfig         `mapstructure:"data"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorInhale   string `mapstructure:"color_inhale"`
	ColorHold     string `mapstructure:"color_hold"`
	ColorExhale   string `mapstructure:"color_exhale"`
	ColorFinished string `mapstructure:"color_finished"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorHelp     string `mapstructure:"color_help"`
	ColorMuted    string `mapstructure:"color_muted"`
	IconApp       string `mapstructure:"icon_app"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	p := domain.DefaultPalette()
	return ThemeConfig{
		ColorInhale:   p[domain.PhaseInhale],
		ColorHold:     p[domain.PhaseHold],
		ColorExhale:   p[domain.PhaseExhale],
		ColorFinished: p[domain.PhaseFinished],
		ColorTitle:    "#6B7280",
		ColorHelp:     "#95A5A6",
		ColorMuted:    "#4B5563",
		IconApp:       "🫁",
	}
}

// Palette returns the phase colors of the theme. Empty entries fall back
// to the default palette when looked up.
func (t ThemeConfig) Palette() domain.Palette {
	return domain.Palette{
		domain.PhaseInhale:   t.ColorInhale,
		domain.PhaseHold:     t.ColorHold,
		domain.PhaseExhale:   t.ColorExhale,
		domain.PhaseFinished: t.ColorFinished,
	}
}

// SoundConfig holds tone settings.
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// HapticsConfig holds haptic pulse settings.
type HapticsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DataConfig holds where breathe writes its own files. Only the debug log
// lives there.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultMethod: "",
		Sound:         SoundConfig{Enabled: true},
		Haptics:       HapticsConfig{Enabled: true},
		Notifications: NotificationConfig{Enabled: true},
		Data:          DataConfig{Dir: "~/.breathe"},
		Theme:         DefaultThemeConfig(),
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating the file with
// defaults when it does not exist yet.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	cfg.Data.Dir = dataDir

	return &cfg, nil
}

// Save saves the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath.
func SaveTo(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("default_method", cfg.DefaultMethod)
	v.Set("sound.enabled", cfg.Sound.Enabled)
	v.Set("haptics.enabled", cfg.Haptics.Enabled)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("data.dir", cfg.Data.Dir)
	v.Set("theme.color_inhale", cfg.Theme.ColorInhale)
	v.Set("theme.color_hold", cfg.Theme.ColorHold)
	v.Set("theme.color_exhale", cfg.Theme.ColorExhale)
	v.Set("theme.color_finished", cfg.Theme.ColorFinished)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.color_muted", cfg.Theme.ColorMuted)
	v.Set("theme.icon_app", cfg.Theme.IconApp)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".breathe", "config.toml"), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath(cfg *Config) string {
	return filepath.Join(cfg.Data.Dir, "debug.log")
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("default_method", "")
	v.SetDefault("sound.enabled", true)
	v.SetDefault("haptics.enabled", true)
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("data.dir", "~/.breathe")

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_inhale", defaults.ColorInhale)
	v.SetDefault("theme.color_hold", defaults.ColorHold)
	v.SetDefault("theme.color_exhale", defaults.ColorExhale)
	v.SetDefault("theme.color_finished", defaults.ColorFinished)
	v.SetDefault("theme.color_title", defaults.ColorTitle)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
	v.SetDefault("theme.color_muted", defaults.ColorMuted)
	v.SetDefault("theme.icon_app", defaults.IconApp)
}

func expandHome(dir string) (string, error) {
	if dir != "" && dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if dir == "" || dir == "~" {
		return filepath.Join(homeDir, ".breathe"), nil
	}
	return filepath.Join(homeDir, strings.TrimPrefix(dir, "~/")), nil
}
