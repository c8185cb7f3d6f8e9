package main

import (
	"errors"

	agent "github.com/willdaly/canvas-github-agent"
	"github.com/willdaly/canvas-github-agent/internal/config"
	"github.com/willdaly/canvas-github-agent/internal/mcputil"
)

// Exit codes for the canvas-agent CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess  = 0 // Artifact created or listing printed
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, settings, or missing credentials
	ExitNotFound = 3 // Course has no assignments / assignment missing
	ExitRemote   = 4 // Repository or page creation failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, agent.ErrNoAssignments) ||
		errors.Is(err, agent.ErrAssignmentNotFound) {
		return ExitNotFound
	}

	if errors.Is(err, agent.ErrRemoteCreation) ||
		errors.Is(err, mcputil.ErrToolFailed) {
		return ExitRemote
	}

	if errors.Is(err, agent.ErrConfigIncomplete) ||
		errors.Is(err, agent.ErrInvalidType) ||
		errors.Is(err, agent.ErrMissingCourse) ||
		errors.Is(err, config.ErrSettingsNotFound) ||
		errors.Is(err, config.ErrSettingsParse) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
