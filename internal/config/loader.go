package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	// EnvPrefix is the prefix for all rotationcards environment variables.
	EnvPrefix = "ROTATIONCARDS"

	// ConfigPathEnv names the variable that points at an explicit config file.
	ConfigPathEnv = EnvPrefix + "_CONFIG_PATH"

	// DefaultConfigFile is looked up in the working directory when
	// ConfigPathEnv is not set.
	DefaultConfigFile = "rotationcards.yaml"

	// DefaultDotEnvFile is loaded into the environment before reading config.
	DefaultDotEnvFile = ".env"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v          *viper.Viper
	dotEnvPath string
}

// NewLoader creates a new [Loader] with defaults and environment bindings
// already registered.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// BindEnv only fails when called without a key.
	_ = v.BindEnv("board.token", EnvPrefix+"_TOKEN", "OAUTH_TOKEN")
	_ = v.BindEnv("board.project_id", EnvPrefix+"_PROJECT_ID", "PROJECT_ID")
	_ = v.BindEnv("roster_path", EnvPrefix+"_ROSTER_PATH")

	return &Loader{v: v, dotEnvPath: DefaultDotEnvFile}
}

// SetDotEnvPath overrides the .env file location. An empty path disables
// .env loading.
func (l *Loader) SetDotEnvPath(path string) {
	l.dotEnvPath = path
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("board.token", d.Board.Token)
	v.SetDefault("board.project_id", d.Board.ProjectID)
	v.SetDefault("board.base_url", d.Board.BaseURL)
	v.SetDefault("board.user_agent", d.Board.UserAgent)
	v.SetDefault("rotations", d.Rotations)
	v.SetDefault("roster_path", d.RosterPath)
	v.SetDefault("output.date_layout", d.Output.DateLayout)
}

// Load resolves configuration from the .env file, the config file and the
// environment. A missing config file is not an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDotEnv(); err != nil {
		return nil, err
	}

	if path := os.Getenv(ConfigPathEnv); path != "" {
		return l.LoadFromFile(path)
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return l.LoadFromFile(DefaultConfigFile)
	}

	return l.unmarshal()
}

// LoadFromFile reads the YAML config file at path, then applies environment
// overrides.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv copies variables from the .env file into the process
// environment without overwriting ones that are already set.
func (l *Loader) loadDotEnv() error {
	if l.dotEnvPath == "" {
		return nil
	}
	if _, err := os.Stat(l.dotEnvPath); err != nil {
		return nil
	}
	if err := gotenv.Load(l.dotEnvPath); err != nil {
		return fmt.Errorf("error reading %s: %w", l.dotEnvPath, err)
	}
	return nil
}
