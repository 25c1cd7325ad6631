/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	applog "g2dgen/internal/log"
	"g2dgen/internal/pathcode"
	"g2dgen/internal/vector"
)

// AppConfig is the user configuration persisted as YAML in the user scope.
// Environment variables override file values at runtime and are never saved.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type EmitConfig struct {
	StrokeWeight float64 `yaml:"stroke_weight"`
	Color        string  `yaml:"color"`        // AWT constant name or #RRGGBB[AA]
	GraphicsVar  string  `yaml:"graphics_var"` // Graphics2D variable in the target code
	ArcFunc      string  `yaml:"arc_func"`     // helper drawing a cubic through four points
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Emit          EmitConfig    `yaml:"emit"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults; they reproduce the statements
// the original plugin generated.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Emit:          EmitConfig{StrokeWeight: 1, Color: "white", GraphicsVar: "g2d", ArcFunc: "drawArc"},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvStrokeWeight = "G2D_STROKE_WEIGHT"
	EnvColor        = "G2D_COLOR"
	EnvGraphicsVar  = "G2D_GRAPHICS_VAR"
	EnvArcFunc      = "G2D_ARC_FUNC"
	EnvLogLevel     = "G2D_LOG_LEVEL"
	EnvLogFormat    = "G2D_LOG_FORMAT"
	EnvLogSource    = "G2D_LOG_SOURCE"
	EnvLogFile      = "G2D_LOG_FILE"
)

// envKeys maps config keys to the env var overriding them.
var envKeys = map[string]string{
	"emit.stroke_weight": EnvStrokeWeight,
	"emit.color":         EnvColor,
	"emit.graphics_var":  EnvGraphicsVar,
	"emit.arc_func":      EnvArcFunc,
	"logging.level":      EnvLogLevel,
	"logging.format":     EnvLogFormat,
	"logging.source":     EnvLogSource,
	"logging.file":       EnvLogFile,
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "g2dgen")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "g2dgen")
	default:
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "g2dgen")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "g2dgen")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the per-user config file.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path (a missing file means defaults), then
// applies environment overrides.
func LoadFrom(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg to the per-user config file.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg as YAML to path.
func SaveTo(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Emit.StrokeWeight != 0 {
		dst.Emit.StrokeWeight = src.Emit.StrokeWeight
	}
	if v := strings.TrimSpace(src.Emit.Color); v != "" {
		dst.Emit.Color = v
	}
	if v := strings.TrimSpace(src.Emit.GraphicsVar); v != "" {
		dst.Emit.GraphicsVar = v
	}
	if v := strings.TrimSpace(src.Emit.ArcFunc); v != "" {
		dst.Emit.ArcFunc = v
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := envValue(EnvStrokeWeight); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Emit.StrokeWeight = f
		}
	}
	if v := envValue(EnvColor); v != "" {
		cfg.Emit.Color = v
	}
	if v := envValue(EnvGraphicsVar); v != "" {
		cfg.Emit.GraphicsVar = v
	}
	if v := envValue(EnvArcFunc); v != "" {
		cfg.Emit.ArcFunc = v
	}
	if v := envValue(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := envValue(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := envValue(EnvLogSource); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := envValue(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

func envValue(key string) string { return strings.TrimSpace(os.Getenv(key)) }

// Keys lists the dotted config keys that have an env override, sorted.
func Keys() []string { return slices.Sorted(maps.Keys(envKeys)) }

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || envValue(env) == "" {
		return "", false
	}
	return env, true
}

// Style converts the emit section into the emitter's style.
func (e EmitConfig) Style() (pathcode.Style, error) {
	c, err := vector.ParseColor(e.Color)
	if err != nil {
		return pathcode.Style{}, fmt.Errorf("emit.color: %w", err)
	}
	if e.StrokeWeight <= 0 {
		return pathcode.Style{}, fmt.Errorf("emit.stroke_weight must be positive, got %g", e.StrokeWeight)
	}
	return pathcode.Style{
		Stroke:      vector.Stroke{Color: c, Width: e.StrokeWeight},
		GraphicsVar: strings.TrimSpace(e.GraphicsVar),
		ArcFunc:     strings.TrimSpace(e.ArcFunc),
	}, nil
}

// LogOptions converts the logging section into logger options.
func (l LoggingConfig) LogOptions() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}
