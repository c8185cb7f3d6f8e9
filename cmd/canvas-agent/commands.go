package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	agent "github.com/willdaly/canvas-github-agent"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
)

// run dispatches the subcommand.
func run(args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ErrNoCommand
	}

	command := args[1]
	rest := args[2:]

	switch command {
	case "list-courses":
		return runListCourses(rest, env)
	case "list-assignments":
		return runListAssignments(rest, env)
	case "create":
		return runCreate(rest, env)
	case "version":
		fmt.Fprintln(env.Stdout, "canvas-agent", Version)
		return nil
	case "help", "--help", "-h":
		printHelp(rest, env.Stdout)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func runListCourses(args []string, env *Environment) error {
	var flags commonFlags
	fs := newListCoursesFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := env.LoadConfig(flags.settings)
	if err != nil {
		return err
	}
	svc := env.NewService(cfg)

	if !flags.quiet {
		fmt.Fprintln(env.Stdout, "Fetching your Canvas courses...")
		fmt.Fprintln(env.Stdout)
	}

	courses, err := svc.ListCourses(context.Background())
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(env.Stdout, "No courses found. Please check your Canvas API token.")
		return nil
	}

	fmt.Fprintln(env.Stdout, "Available courses:")
	fmt.Fprintln(env.Stdout, strings.Repeat("-", 80))
	for _, c := range courses {
		fmt.Fprintf(env.Stdout, "ID: %10d | %s\n", c.ID, c.Name)
	}
	fmt.Fprintln(env.Stdout, strings.Repeat("-", 80))
	fmt.Fprintf(env.Stdout, "\nTotal: %d courses\n", len(courses))
	return nil
}

func runListAssignments(args []string, env *Environment) error {
	var flags listFlags
	fs := newListAssignmentsFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if flags.courseID == 0 {
		return fmt.Errorf("%w (use --course-id)", agent.ErrMissingCourse)
	}

	cfg, err := env.LoadConfig(flags.common.settings)
	if err != nil {
		return err
	}
	svc := env.NewService(cfg)

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Fetching assignments for course %d...\n\n", flags.courseID)
	}

	assignments, err := svc.ListAssignments(context.Background(), flags.courseID)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		fmt.Fprintln(env.Stdout, "No assignments found for this course.")
		return nil
	}

	fmt.Fprintln(env.Stdout, "Available assignments:")
	fmt.Fprintln(env.Stdout, strings.Repeat("-", 80))
	for _, a := range assignments {
		fmt.Fprintf(env.Stdout, "ID: %10d | %s\n", a.ID, a.Name)
		fmt.Fprintf(env.Stdout, "             Due: %s\n", a.DueDisplay())
		fmt.Fprintln(env.Stdout, strings.Repeat("-", 80))
	}
	fmt.Fprintf(env.Stdout, "\nTotal: %d assignments\n", len(assignments))
	return nil
}

func runCreate(args []string, env *Environment) error {
	var flags createFlags
	fs := newCreateFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if flags.courseID == 0 {
		return fmt.Errorf("%w (use --course-id)", agent.ErrMissingCourse)
	}

	cfg, err := env.LoadConfig(flags.common.settings)
	if err != nil {
		return err
	}
	svc := env.NewService(cfg)

	language := flags.language
	if language == "" {
		language = cfg.Settings.Language
	}
	if flags.common.verbose && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Language: %s, branch: %s\n", language, cfg.Settings.Branch)
	}

	ctx := context.Background()
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	input := agent.CreateInput{
		CourseID:     flags.courseID,
		AssignmentID: flags.assignmentID,
		Language:     language,
		Type:         flags.assignType,
	}

	// --confirm-type fetches the record up front so the inferred type is
	// visible before anything remote is created. An explicit --type still
	// wins.
	if flags.confirmType && flags.assignType == "" {
		assignment, err := svc.FetchAssignment(ctx, flags.courseID, flags.assignmentID)
		if err != nil {
			return err
		}
		inferred := svc.InferAssignmentType(assignment)
		fmt.Fprintf(env.Stdout, "Detected assignment: %s\n", assignment.Name)
		fmt.Fprintf(env.Stdout, "Inferred assignment type: %s\n", inferred)
		input.AssignmentID = assignment.ID
		input.Type = inferred.String()
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Fetching assignment from Canvas (course %d)...\n", flags.courseID)
	}

	result, err := svc.CreateArtifact(ctx, input)
	if err != nil {
		return err
	}

	printResult(env, &flags, result)
	return nil
}

func printResult(env *Environment, flags *createFlags, result *agent.Result) {
	if flags.common.quiet {
		return
	}

	fmt.Fprintf(env.Stdout, "Assignment: %s\n", result.Assignment.Name)
	fmt.Fprintf(env.Stdout, "Due date:   %s\n", result.Assignment.DueDisplay())

	switch result.Destination {
	case agent.TypeCoding:
		fmt.Fprintln(env.Stdout, "\nRepository created:")
		fmt.Fprintf(env.Stdout, "  %s\n", result.Repository.URL)
		if len(result.Files) > 0 {
			fmt.Fprintf(env.Stdout, "Files created: %s\n", strings.Join(result.Files, ", "))
		}
		if len(result.FailedFiles) > 0 {
			fmt.Fprintf(env.Stderr, "Warning: %d file(s) failed to upload: %s\n",
				len(result.FailedFiles), strings.Join(result.FailedFiles, ", "))
		}
	case agent.TypeWriting:
		fmt.Fprintln(env.Stdout, "\nNotion page created:")
		if result.Page.URL != "" {
			fmt.Fprintf(env.Stdout, "  %s\n", result.Page.URL)
		} else {
			fmt.Fprintf(env.Stdout, "  page id %s\n", result.Page.ID)
		}
	}
}
