package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Server  Server   `yaml:"server"`
	News    News     `yaml:"news"`
	AI      AI       `yaml:"ai"`
	Videos  Videos   `yaml:"videos"`
	Auth    Auth     `yaml:"auth"`
	Sources Sources  `yaml:"sources"`
	Output  Output   `yaml:"output"`
	Logging Logging  `yaml:"logging"`
}

type Server struct {
	Port int `yaml:"port"`
}

type News struct {
	APIKeyEnv string `yaml:"api_key_env"`
	Country   string `yaml:"country"`
	PageSize  int    `yaml:"page_size"`
}

type AI struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	OllamaURL   string `yaml:"ollama_url"`
	OpenAIModel string `yaml:"openai_model"`
	APIKeyEnv   string `yaml:"api_key_env"`
	MaxTokens   int    `yaml:"max_tokens"`
}

type Videos struct {
	APIKeyEnv string `yaml:"api_key_env"`
}

type Auth struct {
	GoogleIDEnv     string `yaml:"google_client_id_env"`
	GoogleSecretEnv string `yaml:"google_client_secret_env"`
	CallbackBaseURL string `yaml:"callback_base_url"`
}

type Sources struct {
	Feeds []Feed `yaml:"feeds"`
}

type Feed struct {
	URL      string `yaml:"url"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for concentribe.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "concentribe")
}

// DataDir returns the XDG data directory for concentribe.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "concentribe")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/concentribe/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'concentribe init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Server: Server{Port: 5000},
		News: News{
			APIKeyEnv: "NEWS_API_KEY",
			Country:   "us",
			PageSize:  10,
		},
		AI: AI{
			Provider:    "openai",
			Model:       "qwen2.5:7b",
			OllamaURL:   "http://localhost:11434",
			OpenAIModel: "gpt-4o",
			APIKeyEnv:   "OPENAI_API_KEY",
			MaxTokens:   512,
		},
		Videos: Videos{APIKeyEnv: "YOUTUBE_API_KEY"},
		Auth: Auth{
			GoogleIDEnv:     "GOOGLE_CLIENT_ID",
			GoogleSecretEnv: "GOOGLE_CLIENT_SECRET",
			CallbackBaseURL: "http://localhost:5000",
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
