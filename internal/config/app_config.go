package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/temirov/pcopy/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	// GlobalFilePath overrides the XDG location of the global configuration.
	GlobalFilePath string
}

// ApplicationConfiguration holds the defaults read from configuration files.
// Pointer fields distinguish "unset" from an explicit false or zero.
type ApplicationConfiguration struct {
	Tree          *bool              `mapstructure:"tree"`
	Clipboard     *bool              `mapstructure:"clipboard"`
	PatternEngine string             `mapstructure:"pattern_engine"`
	Tokens        TokenConfiguration `mapstructure:"tokens"`
	Paths         PathConfiguration  `mapstructure:"paths"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// PathConfiguration configures exclusion rules for path traversal.
type PathConfiguration struct {
	IgnoreFile  string   `mapstructure:"ignore_file"`
	Exclude     []string `mapstructure:"exclude"`
	MaxFileSize *int64   `mapstructure:"max_file_size"`
}

// GlobalConfigurationPath returns the XDG location of the global configuration file.
func GlobalConfigurationPath() string {
	return filepath.Join(xdg.ConfigHome, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
}

// ErrConfigurationIsDirectory reports a configuration path naming a directory.
var ErrConfigurationIsDirectory = errors.New("configuration path is a directory")

const configurationTypeYAML = "yaml"

// configurationSource is one layer of configuration; later layers win.
type configurationSource struct {
	path     string
	optional bool
}

// LoadApplicationConfiguration loads configuration from the global and local files.
// The local file, or the explicit file when one is given, overrides the global one.
// Missing files contribute nothing.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	sources, sourceError := configurationSources(options)
	if sourceError != nil {
		return ApplicationConfiguration{}, sourceError
	}
	var merged ApplicationConfiguration
	for _, source := range sources {
		layer, present, readError := readConfigurationLayer(source.path)
		if readError != nil {
			return ApplicationConfiguration{}, readError
		}
		if !present {
			continue
		}
		merged = merged.Merge(layer)
	}
	merged.Paths.Exclude = utils.DeduplicatePatterns(merged.Paths.Exclude)
	return merged, nil
}

func configurationSources(options LoadOptions) ([]configurationSource, error) {
	globalPath := options.GlobalFilePath
	if globalPath == "" {
		globalPath = GlobalConfigurationPath()
	}
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}
	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if explicitPath := options.ExplicitFilePath; explicitPath != "" {
		localPath = explicitPath
		if !filepath.IsAbs(explicitPath) {
			localPath = filepath.Join(workingDirectory, explicitPath)
		}
	}
	return []configurationSource{{path: globalPath}, {path: localPath}}, nil
}

// readConfigurationLayer decodes one YAML file through viper. The boolean is
// false when the file does not exist.
func readConfigurationLayer(path string) (ApplicationConfiguration, bool, error) {
	info, statErr := os.Stat(path)
	switch {
	case errors.Is(statErr, fs.ErrNotExist):
		return ApplicationConfiguration{}, false, nil
	case statErr != nil:
		return ApplicationConfiguration{}, false, fmt.Errorf("stat configuration %s: %w", path, statErr)
	case info.IsDir():
		return ApplicationConfiguration{}, false, fmt.Errorf("%w: %s", ErrConfigurationIsDirectory, path)
	}

	layerReader := viper.New()
	layerReader.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		layerReader.SetConfigType(configurationTypeYAML)
	}
	if readErr := layerReader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, false, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var layer ApplicationConfiguration
	if decodeErr := layerReader.Unmarshal(&layer); decodeErr != nil {
		return ApplicationConfiguration{}, false, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return layer, true, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
// Only fields set in override replace values; a non-empty exclude list replaces the whole list.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	return ApplicationConfiguration{
		Tree:          overlayValue(config.Tree, override.Tree),
		Clipboard:     overlayValue(config.Clipboard, override.Clipboard),
		PatternEngine: overlayText(config.PatternEngine, override.PatternEngine),
		Tokens: TokenConfiguration{
			Enabled: overlayValue(config.Tokens.Enabled, override.Tokens.Enabled),
			Model:   overlayText(config.Tokens.Model, override.Tokens.Model),
		},
		Paths: PathConfiguration{
			IgnoreFile:  overlayText(config.Paths.IgnoreFile, override.Paths.IgnoreFile),
			Exclude:     overlayList(config.Paths.Exclude, override.Paths.Exclude),
			MaxFileSize: overlayValue(config.Paths.MaxFileSize, override.Paths.MaxFileSize),
		},
	}
}

func overlayValue[T any](base, override *T) *T {
	chosen := base
	if override != nil {
		chosen = override
	}
	if chosen == nil {
		return nil
	}
	copied := *chosen
	return &copied
}

func overlayText(base, override string) string {
	if override != "" {
		return override
	}
	return base
}

func overlayList(base, override []string) []string {
	if len(override) > 0 {
		return utils.DeduplicatePatterns(override)
	}
	return base
}
