// Package config loads agent configuration from the environment and an
// optional YAML settings file. Secrets come from env vars (optionally via
// a .env file); the settings file only carries non-secret defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/willdaly/canvas-github-agent/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrSettingsParse    = errors.New("failed to parse settings")
)

// Canvas holds Canvas LMS connection settings.
type Canvas struct {
	APIURL  string
	Token   string
	Command string
	Args    []string
}

// GitHub holds GitHub connection settings.
type GitHub struct {
	Token    string
	Username string
	Org      string
}

// Notion holds Notion connection settings.
type Notion struct {
	Token        string
	ParentPageID string
}

// Settings carries non-secret defaults from the optional YAML file.
type Settings struct {
	Language     string `yaml:"language"`     // default starter language
	Branch       string `yaml:"branch"`       // commit branch (default "main")
	PrivateRepos bool   `yaml:"privateRepos"` // create private repositories
}

// Config is the full agent configuration.
type Config struct {
	Canvas   Canvas
	GitHub   GitHub
	Notion   Notion
	Settings Settings
}

// Load reads configuration from the environment, after loading a .env file
// when one exists (missing .env is not an error). settingsPath optionally
// names a YAML settings file; empty means defaults.
func Load(settingsPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Canvas: Canvas{
			APIURL:  envOr("CANVAS_API_URL", "https://canvas.instructure.com"),
			Token:   os.Getenv("CANVAS_API_TOKEN"),
			Command: envOr("CANVAS_MCP_SERVER_URL", "npx"),
			Args:    splitArgs(envOr("CANVAS_MCP_SERVER_ARGS", "-y,@illinihunt/canvas-mcp")),
		},
		GitHub: GitHub{
			Token:    os.Getenv("GITHUB_TOKEN"),
			Username: os.Getenv("GITHUB_USERNAME"),
			Org:      orgValue(os.Getenv("GITHUB_ORG")),
		},
		Notion: Notion{
			Token:        os.Getenv("NOTION_TOKEN"),
			ParentPageID: os.Getenv("NOTION_PARENT_PAGE_ID"),
		},
		Settings: Settings{
			Language: "python",
			Branch:   "main",
		},
	}

	if settingsPath != "" {
		if err := loadSettings(settingsPath, &cfg.Settings); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func loadSettings(path string, settings *Settings) error {
	data, err := os.ReadFile(path) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return fmt.Errorf("reading settings file: %w", err)
	}
	if err := yamlutil.UnmarshalStrict(data, settings); err != nil {
		return fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}
	if settings.Branch == "" {
		settings.Branch = "main"
	}
	if settings.Language == "" {
		settings.Language = "python"
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// orgValue treats commented-out placeholder values ("#my-org") as unset.
func orgValue(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || strings.HasPrefix(v, "#") {
		return ""
	}
	return v
}

func splitArgs(raw string) []string {
	parts := strings.Split(raw, ",")
	args := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	return args
}
