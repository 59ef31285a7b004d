package companion

import "strings"

type Emotion string

const (
	EmotionNegative  Emotion = "negative"
	EmotionConcerned Emotion = "concerned"
	EmotionPositive  Emotion = "positive"
	EmotionNeutral   Emotion = "neutral"
)

var (
	negativeKeywords  = []string{"sad", "depressed", "anxious", "worried", "scared", "angry", "upset", "hurt", "pain"}
	concernedKeywords = []string{"help", "struggle", "difficult", "hard", "problem", "issue"}
	positiveKeywords  = []string{"happy", "great", "good", "better", "excited", "joy", "love", "grateful"}
)

// Classify labels text by case-insensitive substring match. Negative wins
// over concerned, which wins over positive.
func Classify(text string) Emotion {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, negativeKeywords):
		return EmotionNegative
	case containsAny(lower, concernedKeywords):
		return EmotionConcerned
	case containsAny(lower, positiveKeywords):
		return EmotionPositive
	default:
		return EmotionNeutral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
