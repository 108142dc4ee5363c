package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julien-sobczak/emotion-dashboard/internal/core"
)

/*
 * The host screens (home menu + navigation history) use Bubble Tea under the hood.
 * The dashboard itself lives in internal/dashboard. Everything else Bubble Tea-related is in this file.
 */

var (
	// List-specific attributes
	listWidth             = 30
	listHeight            = 10
	listTitleStyle        = lipgloss.NewStyle().MarginLeft(2)
	listItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	listSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))

	// Common attributes
	helpStyle = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

/*
 * Navigation
 */

type pushMsg struct {
	screen tea.Model
}

type backMsg struct{}

// Push returns a command displaying a new screen on top of the current one.
func Push(screen tea.Model) tea.Cmd {
	return func() tea.Msg {
		return pushMsg{screen: screen}
	}
}

// History lets screens return to the previous screen.
type History struct{}

func (History) Back() tea.Cmd {
	return func() tea.Msg {
		return backMsg{}
	}
}

// Router displays the screen on top of the history.
// Going back from the first screen does nothing.
type Router struct {
	screens []tea.Model
	size    *tea.WindowSizeMsg
}

func NewRouter(first tea.Model) Router {
	return Router{
		screens: []tea.Model{first},
	}
}

// Current returns the displayed screen.
func (r Router) Current() tea.Model {
	return r.screens[len(r.screens)-1]
}

// Depth returns the number of screens in the history.
func (r Router) Depth() int {
	return len(r.screens)
}

func (r Router) Init() tea.Cmd {
	return r.Current().Init()
}

func (r Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pushMsg:
		// Never share the backing array with previous versions of the router
		screens := make([]tea.Model, len(r.screens), len(r.screens)+1)
		copy(screens, r.screens)
		screen := msg.screen
		if r.size != nil {
			screen, _ = screen.Update(*r.size)
		}
		r.screens = append(screens, screen)
		core.CurrentLogger().Debugf("router: push (depth=%d)", len(r.screens))
		return r, screen.Init()

	case backMsg:
		if len(r.screens) == 1 {
			core.CurrentLogger().Debug("router: no previous screen")
			return r, nil
		}
		r.screens = r.screens[:len(r.screens)-1]
		core.CurrentLogger().Debugf("router: back (depth=%d)", len(r.screens))
		return r, nil

	case tea.WindowSizeMsg:
		r.size = &msg
	}

	screens := make([]tea.Model, len(r.screens))
	copy(screens, r.screens)
	var cmd tea.Cmd
	screens[len(screens)-1], cmd = r.Current().Update(msg)
	r.screens = screens
	return r, cmd
}

func (r Router) View() string {
	return r.Current().View()
}

/*
 * Home Menu
 */

const (
	homeDashboard = "dashboard"
	homeQuit      = "quit"
)

func NewHomeModel(openDashboard func() tea.Model) HomeModel {
	items := []list.Item{
		HomeItem{label: "🧠 Emotion Dashboard", key: homeDashboard},
		HomeItem{label: "👋 Quit", key: homeQuit},
	}

	l := list.New(items, homeDelegate{}, listWidth, listHeight)
	l.Title = "AstroMate"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.Styles.Title = listTitleStyle
	l.Styles.HelpStyle = helpStyle

	return HomeModel{list: l, openDashboard: openDashboard}
}

type HomeItem struct {
	label string
	key   string
}

func (i HomeItem) FilterValue() string { return "" }

type homeDelegate struct{}

func (d homeDelegate) Height() int                             { return 1 }
func (d homeDelegate) Spacing() int                            { return 0 }
func (d homeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d homeDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(HomeItem)
	if !ok {
		return
	}

	fn := listItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return listSelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.label))
}

type HomeModel struct {
	list          list.Model
	openDashboard func() tea.Model
}

func (m HomeModel) Init() tea.Cmd {
	return nil
}

func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(HomeItem)
			if !ok {
				return m, nil
			}
			switch i.key {
			case homeDashboard:
				return m, Push(m.openDashboard())
			case homeQuit:
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HomeModel) View() string {
	return "\n" + m.list.View()
}
