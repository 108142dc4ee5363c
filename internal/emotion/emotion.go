package emotion

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
)

// Emotion identifies one of the states the dashboard can display.
type Emotion int

const (
	Happy Emotion = iota
	Calm
	Sad
	Stressed

	// Must stay last
	count
)

// All returns the emotions in display order.
func All() []Emotion {
	return []Emotion{Happy, Calm, Sad, Stressed}
}

var keys = [count]string{
	Happy:    "happy",
	Calm:     "calm",
	Sad:      "sad",
	Stressed: "stressed",
}

// String returns the identifier (ex: "happy").
func (e Emotion) String() string {
	if e < 0 || e >= count {
		return fmt.Sprintf("Emotion(%d)", int(e))
	}
	return keys[e]
}

// Parse converts an identifier to an emotion. Case is ignored.
func Parse(s string) (Emotion, error) {
	folder := cases.Fold()
	needle := folder.String(s)
	for e, key := range keys {
		if folder.String(key) == needle {
			return Emotion(e), nil
		}
	}
	return 0, fmt.Errorf("unknown emotion %q", s)
}

// Record contains everything needed to display an emotion.
type Record struct {
	ID          Emotion
	Emoji       string
	Name        string
	Color       lipgloss.Color
	GlowColor   lipgloss.Color
	Message     string
	Suggestion  string
	ActionLabel string
	// Start and end colors of the panel background
	Gradient [2]lipgloss.Color
}

// The array length is the number of emotions, so adding an emotion without its record does not compile.
var table = [count]Record{
	Happy: {
		ID:          Happy,
		Emoji:       "😄",
		Name:        "Happy",
		Color:       "#FACC15",
		GlowColor:   "#FDE68A",
		Message:     "You seem in great spirits today!",
		Suggestion:  "Your positive energy is contagious. Keep spreading joy!",
		ActionLabel: "Share Mood",
		Gradient:    [2]lipgloss.Color{"#EAB308", "#F97316"}, // yellow-500 -> orange-500
	},
	Calm: {
		ID:          Calm,
		Emoji:       "😌",
		Name:        "Calm",
		Color:       "#14B8A6",
		GlowColor:   "#99F6E4",
		Message:     "Your stress level is stable. Keep it up 💜",
		Suggestion:  "Maintain this peaceful state with a short meditation session.",
		ActionLabel: "Start Meditation",
		Gradient:    [2]lipgloss.Color{"#14B8A6", "#06B6D4"}, // teal-500 -> cyan-500
	},
	Sad: {
		ID:          Sad,
		Emoji:       "😢",
		Name:        "Sad",
		Color:       "#3B82F6",
		GlowColor:   "#BFDBFE",
		Message:     "I sense you're feeling low. Let's take a short break.",
		Suggestion:  "Talk to a crew member or engage in a comforting activity.",
		ActionLabel: "Connect with Crew",
		Gradient:    [2]lipgloss.Color{"#3B82F6", "#6366F1"}, // blue-500 -> indigo-500
	},
	Stressed: {
		ID:          Stressed,
		Emoji:       "😫",
		Name:        "Stressed",
		Color:       "#EF4444",
		GlowColor:   "#FECACA",
		Message:     "High stress detected — let's try deep breathing.",
		Suggestion:  "Take 5 minutes for breathing exercises to restore balance.",
		ActionLabel: "Start Breathing Exercise",
		Gradient:    [2]lipgloss.Color{"#EF4444", "#EC4899"}, // red-500 -> pink-500
	},
}

// Lookup returns the record of an emotion.
func Lookup(e Emotion) Record {
	return table[e]
}

// Record is a shortcut for Lookup.
func (e Emotion) Record() Record {
	return Lookup(e)
}
