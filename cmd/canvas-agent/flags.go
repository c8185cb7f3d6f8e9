package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	settings string
	quiet    bool
	verbose  bool
}

// listFlags holds flags for list-assignments.
type listFlags struct {
	common   commonFlags
	courseID int64
}

// createFlags holds flags for the create command.
type createFlags struct {
	common       commonFlags
	courseID     int64
	assignmentID int64
	language     string
	assignType   string
	confirmType  bool
	timeout      time.Duration
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.settings, "settings", "s", "", "settings file path (YAML)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show remote call detail")
}

// newListCoursesFlagSet builds the flag set for list-courses.
func newListCoursesFlagSet(f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("list-courses", flag.ContinueOnError)
	addCommonFlags(fs, f)
	return fs
}

// newListAssignmentsFlagSet builds the flag set for list-assignments.
func newListAssignmentsFlagSet(f *listFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("list-assignments", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.Int64Var(&f.courseID, "course-id", 0, "Canvas course ID (required)")
	return fs
}

// newCreateFlagSet builds the flag set for create.
func newCreateFlagSet(f *createFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.Int64Var(&f.courseID, "course-id", 0, "Canvas course ID (required)")
	fs.Int64Var(&f.assignmentID, "assignment-id", 0, "assignment ID (0 = next upcoming)")
	fs.StringVarP(&f.language, "language", "l", "", "starter language: python, java, javascript, cpp")
	fs.StringVarP(&f.assignType, "type", "t", "", "assignment type: coding or writing (empty = infer)")
	fs.BoolVar(&f.confirmType, "confirm-type", false, "print the inferred type before publishing")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-run timeout (0 = none)")
	return fs
}
