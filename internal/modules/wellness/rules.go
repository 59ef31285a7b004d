package wellness

import "github.com/mindease/mindease-backend/internal/domain/wellness"

// ProfessionalSupportIntensity is the lowest intensity that suggests
// professional support.
const ProfessionalSupportIntensity = 7

type rule struct {
	rec   wellness.Recommendation
	fires func(mood string, intensity int, goals map[string]struct{}) bool
}

func goalRule(goal string) func(string, int, map[string]struct{}) bool {
	return func(_ string, _ int, goals map[string]struct{}) bool {
		_, ok := goals[goal]
		return ok
	}
}

func moodRule(m string) func(string, int, map[string]struct{}) bool {
	return func(mood string, _ int, _ map[string]struct{}) bool { return mood == m }
}

// Evaluation order is emission order.
var rules = []rule{
	{
		rec: wellness.Recommendation{
			Category:   "Breathing",
			Suggestion: "Practice deep breathing exercises 3 times today",
			Reason:     "Controlled breathing activates your parasympathetic nervous system, reducing anxiety",
		},
		fires: moodRule(MoodAnxious),
	},
	{
		rec: wellness.Recommendation{
			Category:   "Social Connection",
			Suggestion: "Reach out to at least one supportive person",
			Reason:     "Social connection is crucial for lifting mood and combating isolation",
		},
		fires: moodRule(MoodSad),
	},
	{
		rec: wellness.Recommendation{
			Category:   "Organization",
			Suggestion: "Break tasks into smaller, manageable steps",
			Reason:     "Overwhelming tasks contribute to stress; small wins build momentum",
		},
		fires: moodRule(MoodStressed),
	},
	{
		rec: wellness.Recommendation{
			Category:   "Self-Care",
			Suggestion: "Consider speaking with a mental health professional",
			Reason:     "High intensity emotions may benefit from professional support",
		},
		fires: func(_ string, intensity int, _ map[string]struct{}) bool {
			return intensity >= ProfessionalSupportIntensity
		},
	},
	{
		rec: wellness.Recommendation{
			Category:   "Sleep Hygiene",
			Suggestion: "Establish a consistent bedtime routine",
			Reason:     "Regular sleep patterns improve sleep quality and mental health",
		},
		fires: goalRule(GoalImproveSleep),
	},
	{
		rec: wellness.Recommendation{
			Category:   "Mindfulness",
			Suggestion: "Practice 10 minutes of mindfulness meditation daily",
			Reason:     "Regular mindfulness reduces stress and improves emotional regulation",
		},
		fires: goalRule(GoalReduceStress),
	},
}

// Recommend evaluates every rule independently and returns the ones that
// fire. Unknown goals match nothing.
func Recommend(mood string, intensity int, goals []string) []wellness.Recommendation {
	gs := toSet(goals)
	out := make([]wellness.Recommendation, 0, len(rules))
	for _, r := range rules {
		if r.fires(mood, intensity, gs) {
			out = append(out, r.rec)
		}
	}
	return out
}
