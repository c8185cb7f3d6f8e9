// Package mcputil wraps the MCP client library behind a short-lived
// session helper. Every remote operation opens its own stdio session and
// tears the subprocess down on all exit paths; nothing here is pooled or
// cached.
package mcputil

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrToolFailed indicates a tool call that the server reported as failed.
var ErrToolFailed = errors.New("tool call failed")

// Session is one initialized MCP stdio session. Callers must Close it.
type Session struct {
	client *client.Client
}

// Open starts the MCP server subprocess and performs the initialize
// handshake. The env slice uses "KEY=value" entries passed to the
// subprocess on top of the parent environment.
func Open(ctx context.Context, command string, env []string, args ...string) (*Session, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("starting MCP server %q: %w", command, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "canvas-agent",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("initializing MCP session: %w", err)
	}

	return &Session{client: c}, nil
}

// Close shuts the server subprocess down.
func (s *Session) Close() error {
	return s.client.Close()
}

// CallText invokes a tool and returns the first text content block of the
// result, or the empty string when the result carries no text.
func (s *Session) CallText(ctx context.Context, tool string, args map[string]any) (string, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args

	res, err := s.client.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling tool %q: %w", tool, err)
	}
	if res.IsError {
		return "", fmt.Errorf("%w: %s", ErrToolFailed, tool)
	}
	for _, content := range res.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text, nil
		}
	}
	return "", nil
}
