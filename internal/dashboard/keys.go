package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
)

type keyMap struct {
	Happy    key.Binding
	Calm     key.Binding
	Sad      key.Binding
	Stressed key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Happy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "happy"),
		),
		Calm: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "calm"),
		),
		Sad: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sad"),
		),
		Stressed: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "stressed"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("b/esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// selection returns the binding selecting directly an emotion.
func (k keyMap) selection(e emotion.Emotion) key.Binding {
	switch e {
	case emotion.Happy:
		return k.Happy
	case emotion.Calm:
		return k.Calm
	case emotion.Sad:
		return k.Sad
	default:
		return k.Stressed
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Happy, k.Calm, k.Sad, k.Stressed},
		{k.Next, k.Prev, k.Activate},
		{k.Back, k.Help, k.Quit},
	}
}
