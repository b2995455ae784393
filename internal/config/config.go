package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort         = 3002
	DefaultOpenPanelURL = "http://localhost:3000"
	DefaultBrowserDelay = time.Second
	TestPagePath        = "/test.html"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	OpenPanel OpenPanelConfig `yaml:"openpanel"`
	Browser   BrowserConfig   `yaml:"browser"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// StaticDir overrides the embedded static assets when set
	StaticDir string `yaml:"static_dir"`
}

type OpenPanelConfig struct {
	APIURL       string        `yaml:"api_url"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Timeout      time.Duration `yaml:"timeout"`
}

type BrowserConfig struct {
	AutoOpen bool          `yaml:"auto_open"`
	Delay    time.Duration `yaml:"delay"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
		},
		OpenPanel: OpenPanelConfig{
			APIURL: DefaultOpenPanelURL,
		},
		Browser: BrowserConfig{
			AutoOpen: true,
			Delay:    DefaultBrowserDelay,
		},
	}
}

// Load собирает конфиг: defaults -> RELAY_CONFIG_FILE -> .env -> окружение
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("RELAY_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// .env is optional, real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.OpenPanel.APIURL = strings.TrimRight(cfg.OpenPanel.APIURL, "/")
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return fmt.Errorf("invalid PORT %q", v)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("STATIC_DIR"); ok && v != "" {
		c.Server.StaticDir = v
	}
	if v, ok := lookup("OPENPANEL_API_URL"); ok && v != "" {
		c.OpenPanel.APIURL = v
	}
	if v, ok := lookup("OPENPANEL_CLIENT_ID"); ok && v != "" {
		c.OpenPanel.ClientID = v
	}
	if v, ok := lookup("OPENPANEL_CLIENT_SECRET"); ok && v != "" {
		c.OpenPanel.ClientSecret = v
	}
	if v, ok := lookup("OPENPANEL_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid OPENPANEL_TIMEOUT: %w", err)
		}
		c.OpenPanel.Timeout = d
	}
	if v, ok := lookup("AUTO_OPEN_BROWSER"); ok && v != "" {
		// only the literal "false" disables it
		c.Browser.AutoOpen = v != "false"
	}
	if v, ok := lookup("BROWSER_OPEN_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid BROWSER_OPEN_DELAY: %w", err)
		}
		c.Browser.Delay = d
	}
	return nil
}

func (c *Config) HasCredentials() bool {
	return c.OpenPanel.ClientID != "" && c.OpenPanel.ClientSecret != ""
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}

func (c *Config) LocalURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

func (c *Config) TestPageURL() string {
	return c.LocalURL() + TestPagePath
}
