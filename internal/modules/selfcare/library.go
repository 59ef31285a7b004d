// Package selfcare serves the static self-care library: daily tips, quick
// activities per mood, guided meditations and breathing exercises.
package selfcare

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var libraryYAML []byte

const fallbackMood = "calm"

type QuickActivity struct {
	Title    string `yaml:"title" json:"title"`
	Icon     string `yaml:"icon" json:"icon"`
	Duration string `yaml:"duration" json:"duration"`
}

type Meditation struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Duration    int      `yaml:"duration" json:"duration"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Description string   `yaml:"description" json:"description"`
	Benefits    []string `yaml:"benefits" json:"benefits"`
}

type BreathingExercise struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Duration int      `yaml:"duration" json:"duration"`
	Steps    []string `yaml:"steps" json:"steps"`
	Benefits []string `yaml:"benefits" json:"benefits"`
	BestFor  string   `yaml:"bestFor" json:"bestFor"`
}

// Library is read-only after Load.
type Library struct {
	Tips            []string                   `yaml:"tips"`
	QuickActivities map[string][]QuickActivity `yaml:"quickActivities"`
	Meditations     []Meditation               `yaml:"meditations"`
	Breathing       []BreathingExercise        `yaml:"breathing"`
}

// Load parses the embedded library document.
func Load() (*Library, error) {
	return Parse(libraryYAML)
}

func Parse(raw []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("parse self-care library: %w", err)
	}
	if len(lib.Tips) == 0 {
		return nil, fmt.Errorf("self-care library has no tips")
	}
	if _, ok := lib.QuickActivities[fallbackMood]; !ok {
		return nil, fmt.Errorf("self-care library missing %q activities", fallbackMood)
	}
	return &lib, nil
}

// DailyTip rotates by day of month.
func (l *Library) DailyTip(now time.Time) string {
	return l.Tips[now.Day()%len(l.Tips)]
}

// ActivitiesFor returns the quick activities for mood, or the calm set.
func (l *Library) ActivitiesFor(mood string) []QuickActivity {
	if acts, ok := l.QuickActivities[mood]; ok {
		return acts
	}
	return l.QuickActivities[fallbackMood]
}
