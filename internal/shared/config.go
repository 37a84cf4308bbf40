package shared

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// TokenEnv overrides [ClickUpConfig.Token] when set.
const TokenEnv = "CLICKUP_TOKEN"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	ClickUp ClickUpConfig `toml:"clickup"`
	OAuth   OAuthConfig   `toml:"oauth"`
	Server  ServerConfig  `toml:"server"`
	Export  ExportConfig  `toml:"export"`
	Log     LogConfig     `toml:"log"`
}

// ClickUpConfig contains the API token and the ids used when a command omits them.
type ClickUpConfig struct {
	Token        string `toml:"token"`
	TokenType    string `toml:"token_type"`
	APIURL       string `toml:"api_url"`
	DefaultTeam  string `toml:"default_team"`
	DefaultSpace string `toml:"default_space"`
	DefaultList  string `toml:"default_list"`
}

// OAuthConfig contains the credentials of a ClickUp OAuth app.
type OAuthConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// ServerConfig contains settings for the local callback server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ExportConfig contains bulk export settings.
type ExportConfig struct {
	Workers   int     `toml:"workers"`
	RateLimit float64 `toml:"rate_limit"`
	Format    string  `toml:"format"`
	OutputDir string  `toml:"output_dir"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// HasToken reports whether an API token is configured.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.ClickUp.Token) != ""
}

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() {
	if token := os.Getenv(TokenEnv); token != "" {
		c.ClickUp.Token = token
		c.ClickUp.TokenType = ""
	}
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Missing keys keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrMissingConfig, err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	config.ApplyEnv()
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// SaveConfig writes config to path as TOML, replacing any existing file.
func SaveConfig(config *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// The file holds an API token.
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
