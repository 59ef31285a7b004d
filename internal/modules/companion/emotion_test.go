package companion

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want Emotion
	}{
		{"I feel so anxious and scared", EmotionNegative},
		{"I need help with this problem", EmotionConcerned},
		{"I feel great and grateful today", EmotionPositive},
		{"The sky is blue", EmotionNeutral},
		{"I'm HAPPY but also Upset", EmotionNegative},
		{"Things are hard but getting better", EmotionConcerned},
		{"", EmotionNeutral},
	}
	for _, tc := range cases {
		if got := Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q)=%s want %s", tc.text, got, tc.want)
		}
	}
}
