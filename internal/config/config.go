package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFilter is returned for a filter name other than major, minor or all.
var ErrInvalidFilter = errors.New("invalid chord filter")

// Config holds the unified application configuration
type Config struct {
	IncludeMajor bool
	IncludeMinor bool
	Seed         int64
	LogDir       string
}

// Settings represents the config file structure. Pointers distinguish an
// absent key from an explicit false or zero.
type Settings struct {
	IncludeMajor *bool  `yaml:"include_major,omitempty"`
	IncludeMinor *bool  `yaml:"include_minor,omitempty"`
	Seed         *int64 `yaml:"seed,omitempty"`
	LogDir       string `yaml:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags. Empty values leave lower layers in place.
type CLIFlags struct {
	Filter string
	Seed   int64
	LogDir string
}

const envPrefix = "CHORDQUIZ_"

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		IncludeMajor: true,
		IncludeMinor: true,
	}

	// Priority 3: config file
	configPath, err := getConfigPath()
	if err == nil {
		fileConfig, err := loadConfigFile(configPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", configPath, err)
		}
		if fileConfig != nil {
			cfg.applySettings(fileConfig)
		}
	}

	// Priority 2: Environment variables override config file
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Priority 1: CLI flags override everything
	if flags.Filter != "" {
		major, minor, err := ParseFilter(flags.Filter)
		if err != nil {
			return nil, err
		}
		cfg.IncludeMajor, cfg.IncludeMinor = major, minor
	}
	if flags.Seed != 0 {
		cfg.Seed = flags.Seed
	}
	if flags.LogDir != "" {
		cfg.LogDir = expandPath(flags.LogDir)
	}

	return cfg, nil
}

func (c *Config) applySettings(s *Settings) {
	if s.IncludeMajor != nil {
		c.IncludeMajor = *s.IncludeMajor
	}
	if s.IncludeMinor != nil {
		c.IncludeMinor = *s.IncludeMinor
	}
	if s.Seed != nil {
		c.Seed = *s.Seed
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envPrefix + "INCLUDE_MAJOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sINCLUDE_MAJOR: %w", envPrefix, err)
		}
		c.IncludeMajor = b
	}
	if v := os.Getenv(envPrefix + "INCLUDE_MINOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sINCLUDE_MINOR: %w", envPrefix, err)
		}
		c.IncludeMinor = b
	}
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	if v := os.Getenv(envPrefix + "LOG_DIR"); v != "" {
		c.LogDir = expandPath(v)
	}
	return nil
}

// ParseFilter maps "major", "minor" or "all" to include flags.
func ParseFilter(s string) (major, minor bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return true, false, nil
	case "minor":
		return false, true, nil
	case "all", "":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("%w: %q (want major, minor or all)", ErrInvalidFilter, s)
	}
}

// GetConfigDir returns the directory holding the config file
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "chordquiz"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	yes := true
	settings := Settings{
		IncludeMajor: &yes,
		IncludeMinor: &yes,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
