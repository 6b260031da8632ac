package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file uses defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Profile != "default" || cfg.Storage != StorageJSON || cfg.AutosaveInterval != 30*time.Second {
			t.Errorf("Unexpected defaults: %+v", cfg)
		}
		if filepath.Base(cfg.SavePath()) != "default.json" {
			t.Errorf("Expected default.json, got %s", cfg.SavePath())
		}
	})

	t.Run("File values override defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		doc := `
profile: work
storage: sqlite
autosave_interval: 2m
seed: 42
pet_name: Pixel
log:
  mode: prod
`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Profile != "work" || cfg.Storage != StorageSQLite || cfg.Seed != 42 || cfg.PetName != "Pixel" {
			t.Errorf("Unexpected config: %+v", cfg)
		}
		if cfg.AutosaveInterval != 2*time.Minute {
			t.Errorf("Expected 2m autosave, got %s", cfg.AutosaveInterval)
		}
		if cfg.Log.Mode != "prod" || cfg.Log.File == "" {
			t.Errorf("Expected prod logs with the default file, got %+v", cfg.Log)
		}
		if cfg.TickInterval != time.Minute {
			t.Errorf("Expected the default tick interval, got %s", cfg.TickInterval)
		}
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("profile: work\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("TAMALIFE_PROFILE", "play")
		t.Setenv("TAMALIFE_NOTIFIER", "log")
		t.Setenv("TAMALIFE_TICK_INTERVAL", "10s")
		t.Setenv("TAMALIFE_SEED", "not-a-number")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Profile != "play" || cfg.Notifier != NotifierLog || cfg.TickInterval != 10*time.Second {
			t.Errorf("Unexpected config: %+v", cfg)
		}
		if cfg.Seed != 0 {
			t.Errorf("Expected a bad seed to be ignored, got %d", cfg.Seed)
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("profile: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Expected a parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"Defaults", func(c *Config) {}, true},
		{"Unknown storage", func(c *Config) { c.Storage = "redis" }, false},
		{"Unknown notifier", func(c *Config) { c.Notifier = "email" }, false},
		{"Profile with a slash", func(c *Config) { c.Profile = "../escape" }, false},
		{"Empty profile", func(c *Config) { c.Profile = "" }, false},
		{"Zero autosave", func(c *Config) { c.AutosaveInterval = 0 }, false},
		{"Negative tick", func(c *Config) { c.TickInterval = -time.Second }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/tmp/tamalife")
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
