package companion

import "math/rand/v2"

// Source picks an index in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

const defaultPool = "default"

var fallbackPools = map[string][]string{
	"sad": {
		"I hear you, and it's okay to feel sad. Remember, these feelings are temporary. What's one small thing that usually makes you feel a bit better?",
		"I'm here for you. It's brave of you to share how you're feeling. Would you like to talk about what's making you feel this way?",
	},
	"anxious": {
		"Anxiety can feel overwhelming. Let's try a quick breathing exercise: breathe in for 4 counts, hold for 4, exhale for 4. Would you like to talk about what's worrying you?",
		"I understand anxiety can be difficult. Remember, you've gotten through tough moments before. What helps you feel grounded?",
	},
	"stressed": {
		"Stress can be exhausting. It might help to break things down into smaller steps. What's the most pressing thing on your mind right now?",
		"I hear that you're stressed. Remember to be kind to yourself. Have you taken a moment to pause and breathe today?",
	},
	defaultPool: {
		"Thank you for sharing. I'm here to listen and support you. How are you feeling right now?",
		"I appreciate you opening up. Your mental health matters. What would be most helpful for you in this moment?",
	},
}

// FallbackPool returns a copy of the replies used for mood.
func FallbackPool(mood string) []string {
	return append([]string(nil), poolFor(mood)...)
}

func poolFor(mood string) []string {
	if pool, ok := fallbackPools[mood]; ok {
		return pool
	}
	return fallbackPools[defaultPool]
}

// Picker chooses canned replies uniformly at random from a mood's pool.
type Picker struct {
	src Source
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewPicker uses src for selection; nil selects the process-wide
// generator, which is safe for concurrent use.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = globalSource{}
	}
	return &Picker{src: src}
}

func (p *Picker) Pick(mood string) string {
	pool := poolFor(mood)
	return pool[p.src.IntN(len(pool))]
}
