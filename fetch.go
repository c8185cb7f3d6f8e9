package agent

import (
	"sort"
	"time"

	"github.com/willdaly/canvas-github-agent/internal/dateutil"
)

// selectAssignment picks one assignment when no identifier was given:
// the earliest-due assignment among those strictly after now, falling back
// to the most recently created one (creation-timestamp string comparison,
// descending) when nothing is upcoming. Assignments with unparsable due
// timestamps are excluded from the upcoming candidate set, never surfaced
// as failures.
func selectAssignment(assignments []Assignment, now time.Time) (Assignment, error) {
	if len(assignments) == 0 {
		return Assignment{}, ErrNoAssignments
	}

	type candidate struct {
		assignment Assignment
		due        time.Time
	}
	var upcoming []candidate
	for _, a := range assignments {
		if a.DueAt == "" {
			continue
		}
		due, err := dateutil.Parse(a.DueAt)
		if err != nil {
			continue
		}
		if due.After(now) {
			upcoming = append(upcoming, candidate{assignment: a, due: due})
		}
	}

	if len(upcoming) > 0 {
		sort.SliceStable(upcoming, func(i, j int) bool {
			return upcoming[i].due.Before(upcoming[j].due)
		})
		return upcoming[0].assignment, nil
	}

	recent := make([]Assignment, len(assignments))
	copy(recent, assignments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	return recent[0], nil
}
