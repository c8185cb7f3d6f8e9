// Package canvas reaches Canvas LMS through its MCP server. Each call
// opens a fresh stdio session scoped to that one operation.
package canvas

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
	DefaultAPIURL  = "https://canvas.instructure.com"
	DefaultCommand = "npx"
)

// DefaultArgs returns the default MCP server arguments.
func DefaultArgs() []string {
	return []string{"-y", "@illinihunt/canvas-mcp"}
}

// Config holds Canvas connection settings.
type Config struct {
	APIURL  string
	Token   string
	Command string   // MCP server command
	Args    []string // MCP server arguments
}

// Client lists courses and assignments via the Canvas MCP server.
type Client struct {
	cfg Config
}

// New creates a Client, filling in defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if len(cfg.Args) == 0 {
		cfg.Args = DefaultArgs()
	}
	return &Client{cfg: cfg}
}

func (c *Client) session(ctx context.Context) (*mcputil.Session, error) {
	env := []string{
		"CANVAS_API_URL=" + c.cfg.APIURL,
		"CANVAS_API_TOKEN=" + c.cfg.Token,
	}
	return mcputil.Open(ctx, c.cfg.Command, env, c.cfg.Args...)
}

// ListCourses returns all courses available to the user.
func (c *Client) ListCourses(ctx context.Context) ([]agent.Course, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	text, err := session.CallText(ctx, "canvas_list_courses", map[string]any{})
	if err != nil {
		return nil, err
	}
	return decodeCourses(text)
}

// ListAssignments returns all assignments for a course.
func (c *Client) ListAssignments(ctx context.Context, courseID int64) ([]agent.Assignment, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	text, err := session.CallText(ctx, "canvas_get_assignments", map[string]any{
		"course_id": courseID,
	})
	if err != nil {
		return nil, err
	}
	return decodeAssignments(text)
}

// GetAssignment returns one assignment, or nil when it does not exist.
func (c *Client) GetAssignment(ctx context.Context, courseID, assignmentID int64) (*agent.Assignment, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	text, err := session.CallText(ctx, "canvas_get_assignment", map[string]any{
		"course_id":     courseID,
		"assignment_id": assignmentID,
	})
	if err != nil {
		return nil, err
	}
	return decodeAssignment(text)
}

func decodeCourses(text string) ([]agent.Course, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var courses []agent.Course
	if err := json.Unmarshal([]byte(text), &courses); err != nil {
		return nil, fmt.Errorf("decoding course list: %w", err)
	}
	return courses, nil
}

func decodeAssignments(text string) ([]agent.Assignment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var assignments []agent.Assignment
	if err := json.Unmarshal([]byte(text), &assignments); err != nil {
		return nil, fmt.Errorf("decoding assignment list: %w", err)
	}
	return assignments, nil
}

func decodeAssignment(text string) (*agent.Assignment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var assignment agent.Assignment
	if err := json.Unmarshal([]byte(text), &assignment); err != nil {
		return nil, fmt.Errorf("decoding assignment: %w", err)
	}
	return &assignment, nil
}

// Compile-time interface check.
var _ agent.CourseClient = (*Client)(nil)
