package wellness

import (
	"errors"
	"time"

	"github.com/mindease/mindease-backend/internal/domain/wellness"
)

var ErrInvalidReference = errors.New("activity index out of range")

// CompletionRate is round-half-up of 100*completed/total, or 0 for an
// empty plan. Integer arithmetic keeps .5 boundaries exact.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

// Recompute derives plan.Progress from plan.Activities.
func Recompute(plan *wellness.WellnessPlan) {
	total := len(plan.Activities)
	done := 0
	for _, a := range plan.Activities {
		if a.Completed {
			done++
		}
	}
	plan.Progress = wellness.Progress{
		TotalActivities:     total,
		CompletedActivities: done,
		CompletionRate:      CompletionRate(done, total),
	}
}

// SetCompleted flips one activity and recomputes progress. An index
// outside [0, len) returns ErrInvalidReference and leaves plan untouched.
func SetCompleted(plan *wellness.WellnessPlan, index int, completed bool, now time.Time) error {
	if plan == nil || index < 0 || index >= len(plan.Activities) {
		return ErrInvalidReference
	}
	a := &plan.Activities[index]
	a.Completed = completed
	if completed {
		ts := now.UTC()
		a.CompletedAt = &ts
	} else {
		a.CompletedAt = nil
	}
	Recompute(plan)
	return nil
}
