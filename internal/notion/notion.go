// Package notion publishes assignment pages through the Notion REST API.
// A page is a fixed three-block layout: an overview heading, a due-date
// line, and the description paragraph.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	agent "github.com/willdaly/canvas-github-agent"
)

// API constants.
const (
	DefaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	// maxTextLength is Notion's rich-text content ceiling per block.
	maxTextLength = 2000

	defaultTimeout = 30 * time.Second
)

// Config holds Notion connection settings. Token and ParentPageID are both
// required before any page can be created.
type Config struct {
	Token        string
	ParentPageID string
	BaseURL      string       // override in tests
	HTTPClient   *http.Client // override in tests
}

// Client creates assignment pages.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client, filling in defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Configured reports whether both required credentials are present.
func (c *Client) Configured() error {
	switch {
	case c.cfg.Token == "" && c.cfg.ParentPageID == "":
		return fmt.Errorf("%w: NOTION_TOKEN and NOTION_PARENT_PAGE_ID are not set", agent.ErrConfigIncomplete)
	case c.cfg.Token == "":
		return fmt.Errorf("%w: NOTION_TOKEN is not set", agent.ErrConfigIncomplete)
	case c.cfg.ParentPageID == "":
		return fmt.Errorf("%w: NOTION_PARENT_PAGE_ID is not set", agent.ErrConfigIncomplete)
	}
	return nil
}

// Request/response shapes for the pages endpoint.

type pageRequest struct {
	Parent     parentRef      `json:"parent"`
	Properties map[string]any `json:"properties"`
	Children   []block        `json:"children"`
}

type parentRef struct {
	PageID string `json:"page_id"`
}

type block struct {
	Object    string     `json:"object"`
	Type      string     `json:"type"`
	Heading2  *blockText `json:"heading_2,omitempty"`
	Paragraph *blockText `json:"paragraph,omitempty"`
}

type blockText struct {
	RichText []richText `json:"rich_text"`
}

type richText struct {
	Type string   `json:"type"`
	Text textBody `json:"text"`
}

type textBody struct {
	Content string `json:"content"`
}

type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreatePage publishes one assignment page and returns its reference.
func (c *Client) CreatePage(ctx context.Context, page agent.Page) (*agent.PageRef, error) {
	if err := c.Configured(); err != nil {
		return nil, err
	}

	description := page.Description
	if description == "" {
		description = "No description provided."
	}

	payload := pageRequest{
		Parent: parentRef{PageID: c.cfg.ParentPageID},
		Properties: map[string]any{
			"title": map[string]any{
				"title": []richText{textBlock(agent.Truncate(page.Title, maxTextLength))},
			},
		},
		Children: []block{
			{Object: "block", Type: "heading_2", Heading2: &blockText{
				RichText: []richText{textBlock("Assignment Overview")},
			}},
			{Object: "block", Type: "paragraph", Paragraph: &blockText{
				RichText: []richText{textBlock("Due date: " + page.DueDate)},
			}},
			{Object: "block", Type: "paragraph", Paragraph: &blockText{
				RichText: []richText{textBlock(agent.Truncate(description, maxTextLength))},
			}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding page request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building page request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating page %q: %w", page.Title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("creating page %q: status %d: %s", page.Title, resp.StatusCode, bytes.TrimSpace(detail))
	}

	var created pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding page response: %w", err)
	}
	return &agent.PageRef{ID: created.ID, URL: created.URL}, nil
}

func textBlock(content string) richText {
	return richText{Type: "text", Text: textBody{Content: content}}
}

// Compile-time interface check.
var _ agent.PagePublisher = (*Client)(nil)
