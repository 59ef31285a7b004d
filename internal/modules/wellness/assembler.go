package wellness

import (
	"errors"
	"fmt"

	"github.com/mindease/mindease-backend/internal/domain/wellness"
)

var (
	ErrMissingInput     = errors.New("current mood and mood intensity are required")
	ErrInvalidIntensity = fmt.Errorf("mood intensity must be between %d and %d", MinIntensity, MaxIntensity)
)

// PlanRequest carries caller parameters. A nil MoodIntensity means the
// caller did not send one.
type PlanRequest struct {
	CurrentMood   string
	MoodIntensity *int
	Goals         []string
	ScheduleTime  string
	Duration      int
}

// Assemble builds an unsaved plan. The caller attaches ownership and
// persists it. The mood is matched and stored exactly as given; moods
// without catalog entries receive the calm activities.
func Assemble(req PlanRequest) (*wellness.WellnessPlan, error) {
	mood := req.CurrentMood
	if mood == "" || req.MoodIntensity == nil {
		return nil, ErrMissingInput
	}
	intensity := *req.MoodIntensity
	if !ValidIntensity(intensity) {
		return nil, ErrInvalidIntensity
	}

	goals := NormalizeGoals(req.Goals)
	schedule := req.ScheduleTime
	if !IsSchedule(schedule) {
		schedule = ScheduleFlexible
	}
	duration := req.Duration
	if duration <= 0 {
		duration = 1
	}

	plan := &wellness.WellnessPlan{
		CurrentMood:     mood,
		MoodIntensity:   intensity,
		Goals:           goals,
		ScheduleTime:    schedule,
		Duration:        duration,
		IsActive:        true,
		Activities:      ActivitiesFor(mood),
		Recommendations: Recommend(mood, intensity, goals),
	}
	Recompute(plan)
	return plan, nil
}
