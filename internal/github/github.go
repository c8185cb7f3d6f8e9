// Package github creates repositories and files through the GitHub MCP
// server. Each call opens a fresh stdio session scoped to that one
// operation.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	agent "github.com/willdaly/canvas-github-agent"
	"github.com/willdaly/canvas-github-agent/internal/mcputil"
)

// Defaults for the MCP server invocation.
const (
	DefaultCommand = "npx"
)

// DefaultArgs returns the default MCP server arguments.
func DefaultArgs() []string {
	return []string{"-y", "@modelcontextprotocol/server-github"}
}

// Config holds GitHub connection settings.
type Config struct {
	Token    string
	Username string
	Org      string // optional; repositories are created under it when set
	Command  string
	Args     []string
}

// Client creates repositories and pushes files via the GitHub MCP server.
type Client struct {
	cfg Config
}

// New creates a Client, filling in defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if len(cfg.Args) == 0 {
		cfg.Args = DefaultArgs()
	}
	return &Client{cfg: cfg}
}

// Owner returns the account repositories are created under: the
// organization when configured, else the username.
func (c *Client) Owner() string {
	if c.cfg.Org != "" {
		return c.cfg.Org
	}
	return c.cfg.Username
}

func (c *Client) session(ctx context.Context) (*mcputil.Session, error) {
	env := []string{
		"GITHUB_PERSONAL_ACCESS_TOKEN=" + c.cfg.Token,
	}
	return mcputil.Open(ctx, c.cfg.Command, env, c.cfg.Args...)
}

// repoRecord is the subset of the create_repository result we use.
type repoRecord struct {
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
	Owner   struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// CreateRepository creates a new repository and returns its reference, or
// nil with an error when creation failed.
func (c *Client) CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*agent.Repository, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	text, err := session.CallText(ctx, "create_repository", map[string]any{
		"name":        name,
		"description": description,
		"private":     private,
		"auto_init":   autoInit,
		"owner":       c.Owner(),
	})
	if err != nil {
		return nil, err
	}
	return decodeRepository(text, c.Owner())
}

// CreateFile creates or updates one file in a repository.
func (c *Client) CreateFile(ctx context.Context, owner, repo, path, content, message, branch string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	_, err = session.CallText(ctx, "create_or_update_file", map[string]any{
		"owner":   owner,
		"repo":    repo,
		"path":    path,
		"content": content,
		"message": message,
		"branch":  branch,
	})
	return err
}

func decodeRepository(text, fallbackOwner string) (*agent.Repository, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var record repoRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, fmt.Errorf("decoding repository record: %w", err)
	}

	owner := record.Owner.Login
	if owner == "" {
		owner = fallbackOwner
	}
	url := record.HTMLURL
	if url == "" && owner != "" && record.Name != "" {
		url = "https://github.com/" + owner + "/" + record.Name
	}
	return &agent.Repository{
		Name:  record.Name,
		Owner: owner,
		URL:   url,
	}, nil
}

// Compile-time interface check.
var _ agent.RepoPublisher = (*Client)(nil)
