package wellness

import "github.com/mindease/mindease-backend/internal/domain/wellness"

// MaxPlanActivities caps how many catalog entries a plan receives.
const MaxPlanActivities = 5

type catalogEntry struct {
	kind        string
	title       string
	description string
	minutes     int
	time        string
}

var catalog = map[string][]catalogEntry{
	MoodSad: {
		{"music", "Listen to Uplifting Music", "Play your favorite upbeat songs to boost your mood", 15, ScheduleFlexible},
		{"journaling", "Gratitude Journaling", "Write down 3 things you're grateful for today", 10, ScheduleEvening},
		{"exercise", "Gentle Walk", "Take a short walk outside to get fresh air and sunlight", 20, ScheduleMorning},
		{"social", "Connect with a Friend", "Call or message someone you care about", 15, ScheduleFlexible},
		{"art", "Creative Expression", "Draw, paint, or do any creative activity", 30, ScheduleAfternoon},
	},
	MoodAnxious: {
		{"breathing", "4-7-8 Breathing", "Breathe in for 4, hold for 7, exhale for 8 counts", 5, ScheduleFlexible},
		{"meditation", "Guided Meditation", "Follow a calming guided meditation session", 15, ScheduleMorning},
		{"journaling", "Worry Journal", "Write down your worries and challenge negative thoughts", 15, ScheduleEvening},
		{"exercise", "Yoga Flow", "Practice gentle yoga poses to release tension", 20, ScheduleMorning},
		{"nature", "Nature Connection", "Spend time in nature or watch nature videos", 20, ScheduleAfternoon},
	},
	MoodStressed: {
		{"breathing", "Box Breathing", "Breathe in a 4-4-4-4 pattern to calm your nervous system", 5, ScheduleFlexible},
		{"exercise", "Quick Workout", "Do 15 minutes of cardio to release stress hormones", 15, ScheduleMorning},
		{"meditation", "Body Scan Meditation", "Progressively relax each part of your body", 20, ScheduleEvening},
		{"journaling", "Priority Planning", "List tasks and prioritize what really matters", 10, ScheduleMorning},
		{"music", "Calming Sounds", "Listen to nature sounds or instrumental music", 15, ScheduleFlexible},
	},
	MoodTired: {
		{"exercise", "Energizing Stretches", "Do light stretches to wake up your body", 10, ScheduleMorning},
		{"meditation", "Power Nap", "Take a 20-minute power nap if needed", 20, ScheduleAfternoon},
		{"nature", "Sunlight Exposure", "Get 10 minutes of natural sunlight", 10, ScheduleMorning},
		{"reading", "Light Reading", "Read something uplifting for a few minutes", 15, ScheduleFlexible},
		{"social", "Social Energy", "Have a brief, positive interaction with someone", 10, ScheduleFlexible},
	},
	MoodHappy: {
		{"exercise", "Fun Movement", "Dance, play sports, or do any joyful movement", 30, ScheduleMorning},
		{"social", "Share the Joy", "Share your happiness with friends or family", 20, ScheduleFlexible},
		{"journaling", "Capture the Moment", "Journal about what's making you happy today", 10, ScheduleEvening},
		{"art", "Creative Project", "Start or continue a creative project you enjoy", 30, ScheduleAfternoon},
		{"nature", "Outdoor Adventure", "Explore a new outdoor location", 45, ScheduleAfternoon},
	},
	MoodCalm: {
		{"meditation", "Mindfulness Practice", "Practice present-moment awareness", 15, ScheduleMorning},
		{"reading", "Peaceful Reading", "Read something inspiring or educational", 30, ScheduleEvening},
		{"journaling", "Reflective Writing", "Reflect on your day and your feelings", 15, ScheduleEvening},
		{"nature", "Mindful Walk", "Take a slow, mindful walk in nature", 25, ScheduleAfternoon},
		{"art", "Meditative Art", "Try coloring, drawing, or other calming art", 30, ScheduleFlexible},
	},
}

// CatalogMood reports which catalog key serves mood.
func CatalogMood(mood string) string {
	if _, ok := catalog[mood]; ok {
		return mood
	}
	return DefaultMood
}

// CatalogSize is the number of catalog entries serving mood.
func CatalogSize(mood string) int {
	return len(catalog[CatalogMood(mood)])
}

// ActivitiesFor returns fresh, uncompleted copies of the first
// MaxPlanActivities catalog entries for mood, in catalog order.
func ActivitiesFor(mood string) []wellness.Activity {
	entries := catalog[CatalogMood(mood)]
	n := min(MaxPlanActivities, len(entries))
	out := make([]wellness.Activity, 0, n)
	for _, e := range entries[:n] {
		out = append(out, wellness.Activity{
			Type:          e.kind,
			Title:         e.title,
			Description:   e.description,
			Duration:      e.minutes,
			PreferredTime: e.time,
		})
	}
	return out
}
