package main

import (
	"io"
	"os"
	"time"

	agent "github.com/willdaly/canvas-github-agent"
	"github.com/willdaly/canvas-github-agent/internal/canvas"
	"github.com/willdaly/canvas-github-agent/internal/config"
	"github.com/willdaly/canvas-github-agent/internal/github"
	"github.com/willdaly/canvas-github-agent/internal/notion"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	LoadConfig func(settingsPath string) (*config.Config, error)
	NewService func(cfg *config.Config) *agent.Service
}

// DefaultEnv returns the production environment: real clock, process
// streams, env-based config, and MCP/REST collaborator clients.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadConfig: config.Load,
		NewService: newService,
	}
}

// newService wires the collaborator clients into the pipeline service.
func newService(cfg *config.Config) *agent.Service {
	canvasClient := canvas.New(canvas.Config{
		APIURL:  cfg.Canvas.APIURL,
		Token:   cfg.Canvas.Token,
		Command: cfg.Canvas.Command,
		Args:    cfg.Canvas.Args,
	})
	githubClient := github.New(github.Config{
		Token:    cfg.GitHub.Token,
		Username: cfg.GitHub.Username,
		Org:      cfg.GitHub.Org,
	})
	notionClient := notion.New(notion.Config{
		Token:        cfg.Notion.Token,
		ParentPageID: cfg.Notion.ParentPageID,
	})

	return agent.NewService(canvasClient, githubClient, notionClient,
		agent.WithOwner(githubClient.Owner()),
		agent.WithBranch(cfg.Settings.Branch),
		agent.WithPrivateRepos(cfg.Settings.PrivateRepos),
	)
}
