package dashboard

import (
	"time"

	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
)

// State is everything the dashboard remembers between two renderings.
type State struct {
	Current    emotion.Emotion
	LastUpdate time.Time
}

// NewState returns the state of a freshly opened dashboard.
func NewState(now time.Time) State {
	return State{
		Current:    emotion.Calm,
		LastUpdate: now,
	}
}

// Record returns the record of the current emotion.
func (s State) Record() emotion.Record {
	return emotion.Lookup(s.Current)
}

// Event triggers a state transition.
type Event interface {
	event()
}

// SelectEmotion is emitted when the user clicks a selector button.
type SelectEmotion struct {
	Emotion emotion.Emotion
	At      time.Time
}

func (SelectEmotion) event() {}

// Next computes the state following an event.
// Selecting the current emotion again still refreshes the timestamp.
func Next(prev State, ev Event) State {
	switch ev := ev.(type) {
	case SelectEmotion:
		return State{
			Current:    ev.Emotion,
			LastUpdate: ev.At,
		}
	}
	return prev
}
