package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName = "tamalife"

	StorageJSON   = "json"
	StorageSQLite = "sqlite"

	NotifierTermux = "termux"
	NotifierLog    = "log"
	NotifierNone   = "none"
)

type LogConfig struct {
	Mode string `yaml:"mode"`
	File string `yaml:"file"`
}

// Config holds every runtime setting. Values come from defaults, then the
// YAML file, then TAMALIFE_* environment variables.
type Config struct {
	Profile          string        `yaml:"profile"`
	DataDir          string        `yaml:"data_dir"`
	Storage          string        `yaml:"storage"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	TickInterval     time.Duration `yaml:"tick_interval"`
	Seed             uint64        `yaml:"seed"`
	Notifier         string        `yaml:"notifier"`
	PetName          string        `yaml:"pet_name"`
	Log              LogConfig     `yaml:"log"`
}

// Default returns the built-in settings rooted at dataDir.
func Default(dataDir string) Config {
	return Config{
		Profile:          "default",
		DataDir:          dataDir,
		Storage:          StorageJSON,
		AutosaveInterval: 30 * time.Second,
		TickInterval:     time.Minute,
		Notifier:         NotifierNone,
		Log: LogConfig{
			Mode: "dev",
			File: filepath.Join(dataDir, AppName+".log"),
		},
	}
}

// DefaultDir returns ~/.config/tamalife.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error. An empty path uses config.yaml in the default directory.
func Load(path string) (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(dir)
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Profile = envString("TAMALIFE_PROFILE", c.Profile)
	c.DataDir = envString("TAMALIFE_DATA_DIR", c.DataDir)
	c.Storage = envString("TAMALIFE_STORAGE", c.Storage)
	c.AutosaveInterval = envDuration("TAMALIFE_AUTOSAVE_INTERVAL", c.AutosaveInterval)
	c.TickInterval = envDuration("TAMALIFE_TICK_INTERVAL", c.TickInterval)
	c.Seed = envUint("TAMALIFE_SEED", c.Seed)
	c.Notifier = envString("TAMALIFE_NOTIFIER", c.Notifier)
	c.PetName = envString("TAMALIFE_PET_NAME", c.PetName)
	c.Log.Mode = envString("TAMALIFE_LOG_MODE", c.Log.Mode)
	c.Log.File = envString("TAMALIFE_LOG_FILE", c.Log.File)
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Profile == "" || strings.ContainsAny(c.Profile, `/\`) {
		return fmt.Errorf("invalid profile %q", c.Profile)
	}
	if c.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	switch c.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StorageJSON, StorageSQLite)
	}
	switch c.Notifier {
	case NotifierTermux, NotifierLog, NotifierNone:
	default:
		return fmt.Errorf("unknown notifier %q", c.Notifier)
	}
	if c.AutosaveInterval <= 0 {
		return errors.New("autosave_interval must be positive")
	}
	if c.TickInterval <= 0 {
		return errors.New("tick_interval must be positive")
	}
	return nil
}

// SavePath is the JSON save file for the profile.
func (c Config) SavePath() string {
	return filepath.Join(c.DataDir, c.Profile+".json")
}

// DBPath is the SQLite database shared by all profiles.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, AppName+".db")
}

func envString(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func envDuration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func envUint(name string, def uint64) uint64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
