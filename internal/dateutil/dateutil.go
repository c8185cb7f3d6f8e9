// Package dateutil provides lenient timestamp parsing for assignment
// records. Canvas emits several timestamp shapes depending on the API path
// (RFC 3339, date-only, US-style), so parsing goes through a
// format-guessing parser rather than a fixed layout list.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparsable indicates a timestamp string no known layout matches.
// Callers treat these as absent rather than failing the run.
var ErrUnparsable = errors.New("unparsable timestamp")

// Parse interprets a timestamp string leniently. Empty or blank input is
// unparsable, not zero time.
func Parse(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparsable)
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, value)
	}
	return t, nil
}
