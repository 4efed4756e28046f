/*
Package config manages TOML configuration for sanakko services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Speller    SpellerConfig    `toml:"speller"`
	Suggest    SuggestConfig    `toml:"suggest"`
	Server     ServerConfig     `toml:"server"`
	Redis      RedisConfig      `toml:"redis"`
}

// DictionaryConfig locates the transducer dictionary files.
type DictionaryConfig struct {
	Path string `toml:"path"`
}

// SpellerConfig has spell checking options.
type SpellerConfig struct {
	CacheSize            int  `toml:"cache_size"`
	IgnoreDot            bool `toml:"ignore_dot"`
	IgnoreNumbers        bool `toml:"ignore_numbers"`
	IgnoreUppercase      bool `toml:"ignore_uppercase"`
	IgnoreNonwords       bool `toml:"ignore_nonwords"`
	AcceptFirstUppercase bool `toml:"accept_first_uppercase"`
	AcceptAllUppercase   bool `toml:"accept_all_uppercase"`
	AcceptMissingHyphens bool `toml:"accept_missing_hyphens"`
	AcceptExtraHyphens   bool `toml:"accept_extra_hyphens"`
}

// SuggestConfig bounds the correction search.
type SuggestConfig struct {
	MaxSuggestions int    `toml:"max_suggestions"`
	TypingBudget   int    `toml:"typing_budget"`
	OCRBudget      int    `toml:"ocr_budget"`
	Strategy       string `toml:"strategy"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxBatch int `toml:"max_batch"`
}

// RedisConfig enables user dictionary persistence.
type RedisConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Key     string `toml:"key"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Speller: SpellerConfig{
			CacheSize:            1024,
			IgnoreNonwords:       true,
			AcceptFirstUppercase: true,
			AcceptAllUppercase:   true,
		},
		Suggest: SuggestConfig{
			MaxSuggestions: 5,
			TypingBudget:   800,
			OCRBudget:      2000,
			Strategy:       "typing",
		},
		Server: ServerConfig{
			MaxBatch: 256,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			Key:     "sanakko:userdict",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/sanakko
// 2. ~/Library/Application Support/sanakko (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return executableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "sanakko")
	if dirWritable(primaryPath) {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "sanakko")
	if dirWritable(macOSPath) {
		return macOSPath, nil
	}
	return executableDir()
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/sanakko/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. Decoding starts from the defaults, so
// a file that sets only some keys keeps default values for the rest.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(config)
}

func executableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

func dirWritable(dirPath string) bool {
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return false
	}
	probe := filepath.Join(dirPath, ".write_check")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
