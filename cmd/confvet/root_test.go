package main

import (
	"testing"

	"confvet-hq/confvet/pkg/config"
)

func TestRootCommandStructure(t *testing.T) {
	if rootCmd.Use != "confvet" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "confvet")
	}

	want := map[string]bool{
		"check":      false,
		"watch":      false,
		"diff":       false,
		"schemas":    false,
		"rules":      false,
		"version":    false,
		"completion": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("rootCmd is missing subcommand %q", name)
		}
	}
}

func TestSetupRuntimeDefaults(t *testing.T) {
	cfgFile = config.DefaultSettingsPath
	verbose = false

	// No settings file exists at the default path in the test directory,
	// so the defaults apply.
	settings, logger, err := setupRuntime()
	if err != nil {
		t.Fatalf("setupRuntime() error = %v, want nil", err)
	}
	if logger == nil {
		t.Fatal("setupRuntime() logger is nil")
	}
	if settings.Output.Format != config.DefaultOutputFormat {
		t.Errorf("Output.Format = %q, want %q", settings.Output.Format, config.DefaultOutputFormat)
	}
	if settings.Strict {
		t.Error("Strict = true, want false")
	}
}

func TestSetupRuntimeSettingsFile(t *testing.T) {
	cfgFile = "testdata/settings.yaml"
	verbose = false
	defer func() { cfgFile = config.DefaultSettingsPath }()

	settings, _, err := setupRuntime()
	if err != nil {
		t.Fatalf("setupRuntime() error = %v, want nil", err)
	}
	if settings.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", settings.Output.Format, "json")
	}
	if !settings.Strict {
		t.Error("Strict = false, want true")
	}
	if settings.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", settings.Logging.Level, "warn")
	}
}

func TestSetupRuntimeExplicitMissingFile(t *testing.T) {
	cfgFile = "testdata/nonexistent-settings.yaml"
	verbose = false
	defer func() { cfgFile = config.DefaultSettingsPath }()

	if _, _, err := setupRuntime(); err == nil {
		t.Error("setupRuntime() with missing explicit settings file should return error")
	}
}

func TestSetupRuntimeInvalidSettings(t *testing.T) {
	cfgFile = "testdata/bad-settings.yaml"
	verbose = false
	defer func() { cfgFile = config.DefaultSettingsPath }()

	if _, _, err := setupRuntime(); err == nil {
		t.Error("setupRuntime() with invalid settings should return error")
	}
}

func TestSetupRuntimeVerbose(t *testing.T) {
	cfgFile = config.DefaultSettingsPath
	verbose = true
	defer func() { verbose = false }()

	if _, _, err := setupRuntime(); err != nil {
		t.Errorf("setupRuntime() with verbose returned error: %v", err)
	}
}
