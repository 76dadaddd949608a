package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/pcopy/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	configurationHeader = "# pcopy configuration. Command-line flags override these values.\n"
	yamlIndent          = 2
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
	// GlobalFilePath overrides the XDG location used for InitTargetGlobal.
	GlobalFilePath string
}

type defaultDocument struct {
	Tree          bool                 `yaml:"tree"`
	Clipboard     bool                 `yaml:"clipboard"`
	PatternEngine string               `yaml:"pattern_engine"`
	Tokens        defaultTokensSection `yaml:"tokens"`
	Paths         defaultPathsSection  `yaml:"paths"`
}

type defaultTokensSection struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
}

type defaultPathsSection struct {
	IgnoreFile  string   `yaml:"ignore_file"`
	Exclude     []string `yaml:"exclude"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

// RenderDefaultConfiguration returns the YAML written by InitializeConfiguration.
func RenderDefaultConfiguration() ([]byte, error) {
	runtime := DefaultRuntime()
	document := defaultDocument{
		Tree:          runtime.IncludeTree,
		Clipboard:     runtime.CopyToClipboard,
		PatternEngine: runtime.PatternEngine,
		Tokens: defaultTokensSection{
			Enabled: runtime.CountTokens,
			Model:   runtime.TokenModel,
		},
		Paths: defaultPathsSection{
			IgnoreFile:  runtime.IgnoreFileName,
			Exclude:     []string{},
			MaxFileSize: runtime.MaxFileSize,
		},
	}

	var buffer bytes.Buffer
	buffer.WriteString(configurationHeader)
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("render default configuration: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render default configuration: %w", err)
	}
	return buffer.Bytes(), nil
}

// InitializeConfiguration writes the default configuration to the requested target.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	case InitTargetGlobal:
		destinationPath = options.GlobalFilePath
		if destinationPath == "" {
			destinationPath = GlobalConfigurationPath()
		}
		configurationDirectory := filepath.Dir(destinationPath)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	content, renderErr := RenderDefaultConfiguration()
	if renderErr != nil {
		return "", renderErr
	}
	if err := os.WriteFile(destinationPath, content, 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}
