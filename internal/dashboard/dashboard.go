package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/julien-sobczak/emotion-dashboard/internal/core"
	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
	"github.com/julien-sobczak/emotion-dashboard/pkg/clock"
)

// Navigator moves through the screens of the host application.
type Navigator interface {
	// Back returns to the previous screen. Does nothing when there is no previous screen.
	Back() tea.Cmd
}

// NoHistory is the navigator of a dashboard opened as the first screen.
type NoHistory struct{}

func (NoHistory) Back() tea.Cmd { return nil }

// Control is a focusable element of the dashboard.
type Control int

const (
	BackButton Control = iota
	ActionButton
	DismissButton
	// One selector button per emotion follows
	firstSelector
)

// SelectorButton returns the control selecting the given emotion.
func SelectorButton(e emotion.Emotion) Control {
	return firstSelector + Control(e)
}

// Emotion returns the emotion selected by a selector button.
func (c Control) Emotion() (emotion.Emotion, bool) {
	if c < firstSelector || c >= firstSelector+Control(len(emotion.All())) {
		return 0, false
	}
	return emotion.Emotion(c - firstSelector), true
}

func controlCount() int {
	return int(firstSelector) + len(emotion.All())
}

// Variant is the look of a button.
type Variant int

const (
	// VariantOutline is used for inactive buttons
	VariantOutline Variant = iota
	// VariantDefault is a button filled with a color
	VariantDefault
)

func (v Variant) String() string {
	if v == VariantDefault {
		return "default"
	}
	return "outline"
}

type Option func(*Model)

// WithNavigator sets how the back button is handled.
func WithNavigator(navigator Navigator) Option {
	return func(m *Model) {
		m.navigator = navigator
	}
}

// WithTimeLayout overrides the layout of the last update time.
func WithTimeLayout(layout string) Option {
	return func(m *Model) {
		m.timeLayout = layout
	}
}

// Model is the Bubble Tea model of the emotion dashboard.
// No option is required.
type Model struct {
	id         string
	state      State
	focus      Control
	navigator  Navigator
	timeLayout string
	keys       keyMap
	help       help.Model
	width      int
}

func New(options ...Option) Model {
	m := Model{
		id:         uuid.NewString(),
		state:      NewState(clock.Now()),
		focus:      SelectorButton(emotion.Calm),
		navigator:  NoHistory{},
		timeLayout: TimeLayout12h,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
	}
	for _, option := range options {
		option(&m)
	}
	core.CurrentLogger().Debugf("dashboard[%s] opened on %s", m.id, m.state.Current)
	return m
}

// ID identifies the dashboard instance in logs.
func (m Model) ID() string {
	return m.id
}

func (m Model) State() State {
	return m.state
}

func (m Model) Focus() Control {
	return m.focus
}

// SelectEmotion switches the dashboard to another emotion and refreshes the last update time.
func (m Model) SelectEmotion(e emotion.Emotion) Model {
	prev := m.state
	m.state = Next(m.state, SelectEmotion{Emotion: e, At: clock.Now()})
	core.CurrentLogger().Debugf("dashboard[%s] %s -> %s", m.id, prev.Current, m.state.Current)
	core.CurrentLogger().Trace(spew.Sdump(m.state))
	return m
}

// GoBack asks the host to display the previous screen.
func (m Model) GoBack() tea.Cmd {
	core.CurrentLogger().Debugf("dashboard[%s] back", m.id)
	return m.navigator.Back()
}

// SelectorVariant returns how the selector button of an emotion is drawn.
func (m Model) SelectorVariant(e emotion.Emotion) Variant {
	if m.state.Current == e {
		return VariantDefault
	}
	return VariantOutline
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = clampWidth(msg.Width - 2*appPadding)
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, m.GoBack()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.focus = Control((int(m.focus) + 1) % controlCount())
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.focus = Control((int(m.focus) + controlCount() - 1) % controlCount())
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			return m.press(m.focus)
		}
		for _, e := range emotion.All() {
			if key.Matches(msg, m.keys.selection(e)) {
				m.focus = SelectorButton(e)
				return m.SelectEmotion(e), nil
			}
		}
	}
	return m, nil
}

// press triggers the action of a control.
func (m Model) press(c Control) (tea.Model, tea.Cmd) {
	switch c {
	case BackButton:
		return m, m.GoBack()
	case ActionButton:
		core.CurrentLogger().Infof("dashboard[%s] %q pressed", m.id, m.state.Record().ActionLabel)
		return m, nil
	case DismissButton:
		core.CurrentLogger().Infof("dashboard[%s] suggestion dismissed", m.id)
		return m, nil
	}
	if e, ok := c.Emotion(); ok {
		return m.SelectEmotion(e), nil
	}
	return m, nil
}
