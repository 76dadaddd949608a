package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/pcopy/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	workingDirectory := t.TempDir()
	options := InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}
	path, err := InitializeConfiguration(options)
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	for _, fragment := range []string{"clipboard: true", "pattern_engine: gitignore", "max_file_size: 5242880", "model: gpt-4o"} {
		if !strings.Contains(string(content), fragment) {
			t.Fatalf("expected %q in configuration content: %s", fragment, string(content))
		}
	}
}

func TestInitializeConfigurationRoundTrips(t *testing.T) {
	workingDirectory := t.TempDir()
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		GlobalFilePath:   filepath.Join(t.TempDir(), "absent.yaml"),
	})
	if err != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", err)
	}
	runtime, resolveErr := loadedConfig.Resolve()
	if resolveErr != nil {
		t.Fatalf("Resolve error: %v", resolveErr)
	}
	defaults := DefaultRuntime()
	if runtime.CopyToClipboard != defaults.CopyToClipboard || runtime.MaxFileSize != defaults.MaxFileSize || runtime.TokenModel != defaults.TokenModel {
		t.Fatalf("expected defaults after round trip, got %+v", runtime)
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	globalPath := filepath.Join(t.TempDir(), utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, GlobalFilePath: globalPath})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	if path != globalPath {
		t.Fatalf("expected configuration at %s, got %s", globalPath, path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: false})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: true}); err != nil {
		t.Fatalf("expected force to overwrite: %v", err)
	}
}

func TestInitializeConfigurationRejectsUnknownTarget(t *testing.T) {
	if _, err := InitializeConfiguration(InitOptions{Target: "elsewhere", WorkingDirectory: t.TempDir()}); err == nil {
		t.Fatalf("expected unsupported target error")
	}
}
