// Package config provides configuration loading and management for rotationcards.
//
// Configuration is loaded using Viper, supporting a YAML config file, a .env
// file, and environment variable overrides. Defaults work out of the box
// apart from the board token, which must come from the environment.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [BoardConfig] contains project board API settings
//
// Configuration priority (highest to lowest):
//  1. Environment variables (ROTATIONCARDS_ prefix, or the legacy OAUTH_TOKEN
//     and PROJECT_ID names)
//  2. A .env file in the working directory (never overrides the environment)
//  3. Config file specified by ROTATIONCARDS_CONFIG_PATH
//  4. ./rotationcards.yaml
//  5. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
type Config struct {
	// Board contains the project board API settings.
	Board BoardConfig `mapstructure:"board"`

	// Rotations is how many times each participant is scheduled.
	// Default: 2
	Rotations int `mapstructure:"rotations"`

	// RosterPath is an optional YAML roster file. When empty the built-in
	// roster is used.
	RosterPath string `mapstructure:"roster_path"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`
}

// BoardConfig contains the settings for the project board API.
//
// Token and ProjectID are not validated; a missing token surfaces as an
// authentication failure status when cards are published.
type BoardConfig struct {
	// Token is the OAuth token sent in the Authorization header.
	// Can be set with ROTATIONCARDS_TOKEN or OAUTH_TOKEN.
	Token string `mapstructure:"token"`

	// ProjectID identifies the project whose columns are listed.
	// Can be set with ROTATIONCARDS_PROJECT_ID or PROJECT_ID.
	ProjectID string `mapstructure:"project_id"`

	// BaseURL is the API root.
	// Default: "https://api.github.com"
	BaseURL string `mapstructure:"base_url"`

	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent"`
}

// OutputConfig contains terminal output formatting configuration.
type OutputConfig struct {
	// DateLayout is the Go time layout used in the schedule table.
	// Default: "Mon, Jan 02"
	DateLayout string `mapstructure:"date_layout"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			BaseURL:   "https://api.github.com",
			UserAgent: "miketaylr/rotationcards",
		},
		Rotations: 2,
		Output: OutputConfig{
			DateLayout: "Mon, Jan 02",
		},
	}
}
