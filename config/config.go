// Package config loads application settings for the canvas host.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Screen     ScreenConfig
	Scene      SceneConfig
	Font       FontConfig
	Screenshot ScreenshotConfig
	LogLevel   string `mapstructure:"log_level"`
}

// ScreenConfig holds host window settings.
type ScreenConfig struct {
	Width  int
	Height int
	Title  string
}

// SceneConfig points at the scene to load. An empty path shows the built-in
// demo scene.
type SceneConfig struct {
	Path string
}

// FontConfig holds UI font settings.
type FontConfig struct {
	Path string
	Size float64
}

// ScreenshotConfig holds where screenshots are written.
type ScreenshotConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix
// CHROMEKIT_, e.g. CHROMEKIT_SCENE_PATH.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("CHROMEKIT_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "chrome-kit"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CHROMEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 1280)
	v.SetDefault("screen.height", 800)
	v.SetDefault("screen.title", "chrome-kit canvas")
	v.SetDefault("scene.path", "")
	v.SetDefault("font.path", "fonts/Roboto-Regular.ttf")
	v.SetDefault("font.size", 14.0)
	v.SetDefault("screenshot.path", "screenshot.png")
	v.SetDefault("log_level", "info")
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
