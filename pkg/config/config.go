/*
Package config manages TOML config for spellfix.

A config file looks like:

	[dict]
	path = "dictionary.txt"
	validate = true

	[corrector]
	kind = "swap"
	table_path = ""

	[server]
	max_word_len = 64
	max_suggestions = 32

	[cli]
	show_count = true

Values from a .env file or the process environment (SPELLFIX_DICT,
SPELLFIX_CORRECTOR, SPELLFIX_TABLE) override the file.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/spellfix/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Corrector kinds accepted in [corrector] kind.
const (
	CorrectorSwap        = "swap"
	CorrectorLevenshtein = "lev"
	CorrectorTable       = "table"
)

// Environment variables read by ApplyEnv.
const (
	EnvDict      = "SPELLFIX_DICT"
	EnvCorrector = "SPELLFIX_CORRECTOR"
	EnvTable     = "SPELLFIX_TABLE"
)

// Config holds the entire config structure
type Config struct {
	Dict      DictConfig      `toml:"dict"`
	Corrector CorrectorConfig `toml:"corrector"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	Validate bool   `toml:"validate"`
}

// CorrectorConfig selects the correction policy.
type CorrectorConfig struct {
	Kind      string `toml:"kind"`
	TablePath string `toml:"table_path"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxWordLen     int `toml:"max_word_len"`
	MaxSuggestions int `toml:"max_suggestions"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowCount bool `toml:"show_count"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:     "dictionary.txt",
			Validate: true,
		},
		Corrector: CorrectorConfig{
			Kind: CorrectorSwap,
		},
		Server: ServerConfig{
			MaxWordLen:     64,
			MaxSuggestions: 32,
		},
		CLI: CliConfig{
			ShowCount: true,
		},
	}
}

// CorrectorName returns the value corrector.New understands: SWAP, LEV or
// a table path.
func (c *Config) CorrectorName() string {
	switch strings.ToLower(c.Corrector.Kind) {
	case CorrectorLevenshtein:
		return "LEV"
	case CorrectorTable:
		return c.Corrector.TablePath
	default:
		return "SWAP"
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Errorf("Failed to get user config directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		configDir = execDir
	}
	return filepath.Join(configDir, "spellfix", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/spellfix/config.toml
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

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a file that fails to parse is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corrector"); ok {
		extractCorrectorConfig(section, &config.Corrector)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractBool(data, "validate"); ok {
		dict.Validate = val
	}
}

func extractCorrectorConfig(data map[string]any, corr *CorrectorConfig) {
	if val, ok := utils.ExtractString(data, "kind"); ok {
		corr.Kind = val
	}
	if val, ok := utils.ExtractString(data, "table_path"); ok {
		corr.TablePath = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		server.MaxSuggestions = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_count"); ok {
		cli.ShowCount = val
	}
}

// ApplyEnv loads envFile when it exists (without overriding variables that
// are already set) and then applies SPELLFIX_* variables over c.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" && utils.FileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return err
		}
		log.Debugf("Loaded environment from %s", envFile)
	}
	if v := os.Getenv(EnvDict); v != "" {
		c.Dict.Path = v
	}
	if v := os.Getenv(EnvCorrector); v != "" {
		c.Corrector.Kind = v
	}
	if v := os.Getenv(EnvTable); v != "" {
		c.Corrector.TablePath = v
		if os.Getenv(EnvCorrector) == "" {
			c.Corrector.Kind = CorrectorTable
		}
	}
	return nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
