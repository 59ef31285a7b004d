package wellness

// Mood labels. Matching is exact and case-sensitive.
const (
	MoodHappy     = "happy"
	MoodSad       = "sad"
	MoodAnxious   = "anxious"
	MoodStressed  = "stressed"
	MoodCalm      = "calm"
	MoodAngry     = "angry"
	MoodTired     = "tired"
	MoodEnergetic = "energetic"
)

// DefaultMood supplies activities for moods the catalog has no entry for.
const DefaultMood = MoodCalm

var Moods = []string{
	MoodHappy, MoodSad, MoodAnxious, MoodStressed,
	MoodCalm, MoodAngry, MoodTired, MoodEnergetic,
}

const (
	GoalReduceStress         = "Reduce stress"
	GoalImproveSleep         = "Improve sleep"
	GoalBoostEnergy          = "Boost energy"
	GoalManageAnxiety        = "Manage anxiety"
	GoalEnhanceFocus         = "Enhance focus"
	GoalBuildConfidence      = "Build confidence"
	GoalImproveRelationships = "Improve relationships"
	GoalPracticeMindfulness  = "Practice mindfulness"
	GoalHealthyHabits        = "Develop healthy habits"
)

var Goals = []string{
	GoalReduceStress, GoalImproveSleep, GoalBoostEnergy,
	GoalManageAnxiety, GoalEnhanceFocus, GoalBuildConfidence,
	GoalImproveRelationships, GoalPracticeMindfulness, GoalHealthyHabits,
}

const (
	ScheduleMorning   = "morning"
	ScheduleAfternoon = "afternoon"
	ScheduleEvening   = "evening"
	ScheduleFlexible  = "flexible"
)

var ScheduleTimes = []string{ScheduleMorning, ScheduleAfternoon, ScheduleEvening, ScheduleFlexible}

var ActivityTypes = []string{
	"meditation", "journaling", "breathing", "exercise",
	"music", "reading", "art", "nature", "social",
}

const (
	MinIntensity = 1
	MaxIntensity = 10
)

var (
	moodSet     = toSet(Moods)
	goalSet     = toSet(Goals)
	scheduleSet = toSet(ScheduleTimes)
)

func IsMood(s string) bool {
	_, ok := moodSet[s]
	return ok
}

func IsGoal(s string) bool {
	_, ok := goalSet[s]
	return ok
}

func IsSchedule(s string) bool {
	_, ok := scheduleSet[s]
	return ok
}

func ValidIntensity(n int) bool { return n >= MinIntensity && n <= MaxIntensity }

// NormalizeGoals drops unknown labels and repeated entries, keeping the
// first occurrence order.
func NormalizeGoals(goals []string) []string {
	out := make([]string, 0, len(goals))
	seen := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		if !IsGoal(g) {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
