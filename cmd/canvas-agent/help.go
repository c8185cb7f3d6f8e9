package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: canvas-agent <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a GitHub repo (coding) or Notion page (writing) from Canvas assignments.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list-courses        List your Canvas courses")
	fmt.Fprintln(w, "  list-assignments    List assignments for a course")
	fmt.Fprintln(w, "  create              Create the artifact for an assignment")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'canvas-agent help <command>' for details on a specific command.")
}

// printCreateUsage prints usage for the create command.
func printCreateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: canvas-agent create --course-id <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch one assignment, classify it, and publish the artifact.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --course-id <id>       Canvas course ID (required)")
	fmt.Fprintln(w, "      --assignment-id <id>   Assignment ID (default: next upcoming)")
	fmt.Fprintln(w, "  -l, --language <s>         Starter language: python, java, javascript, cpp")
	fmt.Fprintln(w, "  -t, --type <s>             Force type: coding or writing (default: infer)")
	fmt.Fprintln(w, "      --confirm-type         Print the inferred type before publishing")
	fmt.Fprintln(w, "      --timeout <d>          Per-run timeout, e.g. 2m (default: none)")
	fmt.Fprintln(w, "  -s, --settings <path>      Settings file path (YAML)")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show remote call detail")
}

// printListUsage prints usage for the listing commands.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: canvas-agent list-courses [flags]")
	fmt.Fprintln(w, "       canvas-agent list-assignments --course-id <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --course-id <id>       Canvas course ID (list-assignments only)")
	fmt.Fprintln(w, "  -s, --settings <path>      Settings file path (YAML)")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
}

// printHelp routes "help <command>".
func printHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "create":
		printCreateUsage(w)
	case "list-courses", "list-assignments":
		printListUsage(w)
	default:
		printUsage(w)
	}
}
