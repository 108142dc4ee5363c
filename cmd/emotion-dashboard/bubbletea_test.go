package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julien-sobczak/emotion-dashboard/internal/core"
	"github.com/julien-sobczak/emotion-dashboard/internal/dashboard"
	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
	"github.com/julien-sobczak/emotion-dashboard/internal/testutil"
)

/* Test Helpers */

func update(t *testing.T, r Router, msg tea.Msg) (Router, tea.Cmd) {
	updated, cmd := r.Update(msg)
	router, ok := updated.(Router)
	require.True(t, ok)
	return router, cmd
}

func mustReadConfig(t *testing.T, content string) *core.Config {
	dir := t.TempDir()
	if content != "" {
		dir = filepath.Dir(testutil.SetUpFromFileContent(t, core.ConfigFileName, content))
	}
	config, err := core.ReadConfigFromDirectory(dir)
	require.NoError(t, err)
	return config
}

/* Tests */

func TestRouter(t *testing.T) {
	home := NewHomeModel(NewDashboardFactory(mustReadConfig(t, "")))
	r := NewRouter(home)
	assert.Nil(t, r.Init())
	assert.Contains(t, r.View(), "Emotion Dashboard")

	r, _ = update(t, r, tea.WindowSizeMsg{Width: 100, Height: 40})

	// Open the dashboard from the home menu
	r, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	r, _ = update(t, r, cmd())
	assert.Equal(t, 2, r.Depth())
	d, ok := r.Current().(dashboard.Model)
	require.True(t, ok)
	assert.Equal(t, emotion.Calm, d.State().Current)
	assert.Contains(t, r.View(), "Simulate Emotion (Demo)")

	// Keys are forwarded to the dashboard
	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	d = r.Current().(dashboard.Model)
	assert.Equal(t, emotion.Sad, d.State().Current)

	// Back returns to the home menu
	r, cmd = update(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	require.NotNil(t, cmd)
	r, _ = update(t, r, cmd())
	assert.Equal(t, 1, r.Depth())
	_, ok = r.Current().(HomeModel)
	assert.True(t, ok)

	// Nothing before the home menu
	r, cmd = update(t, r, backMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, r.Depth())
}

func TestRouterWithoutHistory(t *testing.T) {
	openDashboard := NewDashboardFactory(mustReadConfig(t, ""))
	r := NewRouter(openDashboard())

	r, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	r, cmd = update(t, r, cmd())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, r.Depth())
	_, ok := r.Current().(dashboard.Model)
	assert.True(t, ok)
}

func TestRouterPushDoesNotAlias(t *testing.T) {
	openDashboard := NewDashboardFactory(mustReadConfig(t, ""))
	r := NewRouter(NewHomeModel(openDashboard))

	r1, _ := update(t, r, pushMsg{screen: openDashboard()})
	r2, _ := update(t, r, pushMsg{screen: openDashboard()})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 2, r1.Depth())
	assert.NotEqual(t, r1.Current().(dashboard.Model).ID(), r2.Current().(dashboard.Model).ID())
}

func TestHomeQuit(t *testing.T) {
	home := NewHomeModel(NewDashboardFactory(mustReadConfig(t, "")))

	updated, _ := home.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboardFactory(t *testing.T) {
	testutil.FreezeClockAtTime(t, 14, 5)

	d := NewDashboardFactory(mustReadConfig(t, ""))()
	assert.Contains(t, d.View(), "Last updated: 02:05 PM")

	d = NewDashboardFactory(mustReadConfig(t, "[display]\nclock = \"24h\"\n"))()
	assert.Contains(t, d.View(), "Last updated: 14:05")
}
