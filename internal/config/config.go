// Package config handles the console's configuration file and state paths.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "dcm"

	// ConfigFile is the configuration filename inside the config directory.
	ConfigFile = "config.yaml"

	// DefaultListenAddr is used when the config file sets no address.
	DefaultListenAddr = ":8080"

	tasksFile = "tasks.json"
)

// Config holds the console's runtime settings.
type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string `yaml:"listen_addr"`

	// TasksFile is the path of the task store's backing file.
	TasksFile string `yaml:"tasks_file"`

	// StateDir holds the session file and settings record files.
	StateDir string `yaml:"state_dir"`
}

// Load reads the config file at path, or the default location if path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), ConfigFile)
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, unmarshalErr
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureStateDir creates the state directory if it doesn't exist.
func (c *Config) EnsureStateDir() error {
	return os.MkdirAll(c.StateDir, 0o755)
}

func (c *Config) applyDefaults() {
	if c.StateDir == "" {
		c.StateDir = DefaultConfigDir()
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.TasksFile == "" {
		c.TasksFile = filepath.Join(c.StateDir, tasksFile)
	}
}
