// Package config loads the optional INI settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/rcliao/bikeshare/internal/model"
)

// Config holds resolved settings.
type Config struct {
	DataDir  string
	// Cities maps catalog keys to data file names or paths.
	Cities   map[string]string
	LogLevel string
}

type dataSection struct {
	Dir string `ini:"dir"`
}

type logSection struct {
	Level string `ini:"level"`
}

// Default returns the built-in settings: data files in the working directory.
func Default() Config {
	cities := make(map[string]string, len(model.CityData))
	for city, file := range model.CityData {
		cities[city] = file
	}
	return Config{DataDir: ".", Cities: cities, LogLevel: "warn"}
}

// DefaultPath is ~/.bikeshare/config.ini.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bikeshare", "config.ini")
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Config, error) {
	c := Default()

	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	var data dataSection
	if err := f.Section("data").MapTo(&data); err != nil {
		return c, fmt.Errorf("config [data]: %w", err)
	}
	if data.Dir != "" {
		c.DataDir = data.Dir
	}

	var lg logSection
	if err := f.Section("log").MapTo(&lg); err != nil {
		return c, fmt.Errorf("config [log]: %w", err)
	}
	if lg.Level != "" {
		c.LogLevel = lg.Level
	}

	for _, key := range f.Section("cities").Keys() {
		city, ok := model.ParseCity(key.Name())
		if !ok {
			return c, fmt.Errorf("config [cities]: unknown city %q", key.Name())
		}
		if v := strings.TrimSpace(key.String()); v != "" {
			c.Cities[city] = v
		}
	}

	return c, nil
}

// CityPath returns the data file for city. Relative file names resolve
// against DataDir.
func (c Config) CityPath(city string) (string, error) {
	file, ok := c.Cities[city]
	if !ok {
		return "", fmt.Errorf("unknown city %q", city)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(c.DataDir, file), nil
}

// Level parses LogLevel, defaulting to warn.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
