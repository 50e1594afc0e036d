package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	File     string `json:"file"                toml:"file"`
	Color    string `json:"color,omitempty"     toml:"color"`
	Git      string `json:"git,omitempty"       toml:"git"`
	LogLevel string `json:"log_level,omitempty" toml:"log_level"`

	// EffectiveCwd is the absolute working directory (from -C flag or os.Getwd).
	EffectiveCwd string `json:"-" toml:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-" toml:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		File:  "TODO.md",
		Color: ColorAuto,
		Git:   "git",
	}
}

// ConfigFileNames are the project config file names, tried in order.
var ConfigFileNames = []string{".kpd.json", ".kpd.toml"}

var globalConfigNames = []string{"config.json", "config.toml"}

// globalConfigDir returns the directory holding the global config files.
// Uses $XDG_CONFIG_HOME/kpd if set, otherwise ~/.config/kpd.
// Returns empty string if home directory cannot be determined.
func globalConfigDir(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "kpd")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "kpd")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	FileOverride    string            // --file flag value; empty means no override
	ColorOverride   string            // --color flag value; empty means no override
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/kpd/config.{json,toml} or $XDG_CONFIG_HOME/kpd/...)
// 3. Project config file in the working directory (.kpd.json or .kpd.toml, if exists)
// 4. Explicit config file via ConfigPath (replaces 3, must exist)
// 5. CLI overrides.
//
// Files ending in .toml are decoded as TOML, everything else as JSON with
// comments and trailing commas allowed.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(absWorkDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if input.FileOverride != "" {
		cfg.File = input.FileOverride
	}

	if input.ColorOverride != "" {
		cfg.Color = input.ColorOverride
	}

	if level := input.Env["KPD_LOG"]; level != "" {
		cfg.LogLevel = level
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = absWorkDir

	return cfg, nil
}

// loadGlobalConfig loads the first global config file that exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	dir := globalConfigDir(env)
	if dir == "" {
		return Config{}, "", nil
	}

	for _, name := range globalConfigNames {
		path := filepath.Join(dir, name)

		cfg, loaded, err := loadConfigFile(path, false)
		if err != nil {
			return Config{}, "", err
		}

		if loaded {
			return cfg, path, nil
		}
	}

	return Config{}, "", nil
}

// loadProjectConfig loads the project config file or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	if configPath != "" {
		cfgFile := configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		// Check existence first to provide a clear "not found" error
		if _, statErr := os.Stat(cfgFile); statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}

		cfg, _, err := loadConfigFile(cfgFile, true)
		if err != nil {
			return Config{}, "", err
		}

		return cfg, cfgFile, nil
	}

	for _, name := range ConfigFileNames {
		cfgFile := filepath.Join(workDir, name)

		cfg, loaded, err := loadConfigFile(cfgFile, false)
		if err != nil {
			return Config{}, "", err
		}

		if loaded {
			return cfg, cfgFile, nil
		}
	}

	return Config{}, "", nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files
// return zero config. Returns the config, whether the file was loaded, and
// any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	parse := parseJSONConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = parseTOMLConfig
	}

	cfg, fileEmpty, parseErr := parse(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	if fileEmpty {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrFileNameEmpty)
	}

	return cfg, true, nil
}

// parseJSONConfig decodes JSONC. Also reports whether "file" was explicitly
// set to an empty string.
func parseJSONConfig(data []byte) (Config, bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, false, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	fileEmpty := false
	if val, exists := raw["file"]; exists {
		if str, ok := val.(string); ok && str == "" {
			fileEmpty = true
		}
	}

	return cfg, fileEmpty, nil
}

// parseTOMLConfig decodes TOML. Also reports whether "file" was explicitly
// set to an empty string.
func parseTOMLConfig(data []byte) (Config, bool, error) {
	var cfg Config

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, false, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return cfg, meta.IsDefined("file") && cfg.File == "", nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.File != "" {
		base.File = overlay.File
	}

	if overlay.Color != "" {
		base.Color = overlay.Color
	}

	if overlay.Git != "" {
		base.Git = overlay.Git
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.File == "" {
		return ErrFileNameEmpty
	}

	if cfg.File != filepath.Base(cfg.File) || cfg.File == "." || cfg.File == ".." {
		return fmt.Errorf("%w: %s", ErrFileNameInvalid, cfg.File)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %s", ErrColorInvalid, cfg.Color)
	}

	return nil
}
