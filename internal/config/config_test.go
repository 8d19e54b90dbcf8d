package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate runs the test in an empty directory with no config env set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{EnvConfigPath, EnvMute, EnvResponse} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadTOMLFromEnvPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "game.toml")
	writeFile(t, path, `
[window]
width = 800
height = 800
title = "Test"

[audio]
volume = 0.25
mute = true

[physics]
response = "impulse"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 800 || cfg.Window.Title != "Test" {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if !cfg.Window.VSync {
		t.Error("VSync default lost when the file omits it")
	}
	if cfg.Audio.Volume != 0.25 || !cfg.Audio.Mute {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
	if cfg.Physics.Response != "impulse" {
		t.Errorf("Response = %q, want impulse", cfg.Physics.Response)
	}
}

func TestLoadDefaultPathInWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, DefaultPath), "[window]\nwidth = 300\nheight = 300\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 300 {
		t.Errorf("Width = %d, want 300", cfg.Window.Width)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, "[window]\nwidht = 300\n")
	t.Setenv(EnvConfigPath, path)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "window.widht") {
		t.Fatalf("err = %v, want unknown key window.widht", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvConfigPath, filepath.Join(dir, "nope.toml"))
	if _, err := Load(); err == nil {
		t.Fatal("Load with missing explicit file = nil error")
	}
}

func TestLoadDotEnvAndOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "CANNONBALL_MUTE=true\n")
	// godotenv never overrides a variable that is already set, even empty.
	os.Unsetenv(EnvMute)
	t.Setenv(EnvResponse, "impulse")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Audio.Mute {
		t.Error("Mute from .env not applied")
	}
	if cfg.Physics.Response != "impulse" {
		t.Errorf("Response = %q, want impulse", cfg.Physics.Response)
	}
}

func TestLoadBadOverride(t *testing.T) {
	isolate(t)
	t.Setenv(EnvMute, "loud")
	if _, err := Load(); err == nil {
		t.Error("Load with CANNONBALL_MUTE=loud = nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, false},
		{"impulse", func(c *Config) { c.Physics.Response = "impulse" }, true},
		{"unknown response", func(c *Config) { c.Physics.Response = "sticky" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(&c)
			err := c.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
