// Package config provides repository configuration management,
// including reading and writing shipit configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when the config file is absent or a key is unset
const (
	DefaultRemote        = "origin"
	DefaultBranch        = "main"
	DefaultMessage       = "Automated commit"
	DefaultForceFallback = ForceFallbackAuto
)

// Force fallback policies for a rejected push
const (
	// ForceFallbackAuto force pushes without asking
	ForceFallbackAuto = "auto"
	// ForceFallbackPrompt asks for confirmation before force pushing
	ForceFallbackPrompt = "prompt"
	// ForceFallbackNever leaves a rejected push as the final outcome
	ForceFallbackNever = "never"
)

const configFileName = ".shipit_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Remote         *string `json:"remote,omitempty"`
	Branch         *string `json:"branch,omitempty"`
	DefaultMessage *string `json:"defaultMessage,omitempty"`
	ForceFallback  *string `json:"forceFallback,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig writes the repository configuration
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// IsInitialized reports whether a config file exists for the repository
func IsInitialized(repoRoot string) bool {
	_, err := os.Stat(configPath(repoRoot))
	return err == nil
}

// GetRemote returns the configured remote, or "origin" as default
func GetRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}
	return DefaultRemote, nil
}

// GetBranch returns the configured branch, or "main" as default
func GetBranch(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Branch != nil && *config.Branch != "" {
		return *config.Branch, nil
	}
	return DefaultBranch, nil
}

// GetDefaultMessage returns the configured commit message placeholder
func GetDefaultMessage(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.DefaultMessage != nil && *config.DefaultMessage != "" {
		return *config.DefaultMessage, nil
	}
	return DefaultMessage, nil
}

// GetForceFallback returns the configured force fallback policy
func GetForceFallback(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.ForceFallback != nil {
		switch *config.ForceFallback {
		case ForceFallbackAuto, ForceFallbackPrompt, ForceFallbackNever:
			return *config.ForceFallback, nil
		default:
			return "", fmt.Errorf("invalid forceFallback value %q (want auto, prompt or never)", *config.ForceFallback)
		}
	}
	return DefaultForceFallback, nil
}

// SetKey sets a single config key and writes the file back
func SetKey(repoRoot, key, value string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}

	switch key {
	case "remote":
		config.Remote = &value
	case "branch":
		config.Branch = &value
	case "defaultMessage":
		config.DefaultMessage = &value
	case "forceFallback":
		switch value {
		case ForceFallbackAuto, ForceFallbackPrompt, ForceFallbackNever:
		default:
			return fmt.Errorf("invalid forceFallback value %q (want auto, prompt or never)", value)
		}
		config.ForceFallback = &value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return WriteRepoConfig(repoRoot, config)
}

// GetKey returns a single config key's effective value
func GetKey(repoRoot, key string) (string, error) {
	switch key {
	case "remote":
		return GetRemote(repoRoot)
	case "branch":
		return GetBranch(repoRoot)
	case "defaultMessage":
		return GetDefaultMessage(repoRoot)
	case "forceFallback":
		return GetForceFallback(repoRoot)
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}
