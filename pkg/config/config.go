// Package config provides configuration management for the rijndael CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rwclarke/rijndael/pkg/crypto/hashattack"
)

// Config represents the persisted tool configuration
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	AttackBits       int `json:"attack_bits"`       // Truncation width for attack runs
	AttackTrials     int `json:"attack_trials"`     // Trials to average over
	DeriveIterations int `json:"derive_iterations"` // PBKDF2 iteration count
	DeriveKeySize    int `json:"derive_key_size"`   // Derived key length in bytes
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a manager bound to the discovered config
// path, writing a default config file on first use
func NewConfigManager() (*ConfigManager, error) {
	cm := &ConfigManager{}

	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	cm.configPath = configPath

	if err := cm.LoadConfig(); err != nil {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			AttackBits:       16,
			AttackTrials:     hashattack.DefaultTrials,
			DeriveIterations: 4096,
			DeriveKeySize:    16,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// ApplyDefaults fills unset attack parameters from the configuration
func (cm *ConfigManager) ApplyDefaults(config *hashattack.Config) {
	if config.Bits == 0 {
		config.Bits = cm.config.Defaults.AttackBits
	}

	if config.Trials == 0 {
		config.Trials = cm.config.Defaults.AttackTrials
	}

	if config.MessageLen == 0 {
		config.MessageLen = hashattack.DefaultMessageLen
	}
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("RIJNDAEL_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rijndael", "config.json"), nil
	}

	// Default to ~/.config/rijndael/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "rijndael", "config.json"), nil
}
