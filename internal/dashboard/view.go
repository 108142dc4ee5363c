package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
)

const (
	defaultWidth = 72
	minWidth     = 40
	maxWidth     = 96
	appPadding   = 2
)

var (
	primaryColor    = lipgloss.Color("#A855F7")
	foregroundColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}
	mutedColor      = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	onColor         = lipgloss.Color("#111827")

	appStyle      = lipgloss.NewStyle().Padding(1, appPadding)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(foregroundColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			MarginBottom(1)
	badgeStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(onColor).
			Padding(0, 1)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)
	ghostButtonStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				MarginBottom(1)
	focusedMarker = "▸ "
)

func clampWidth(width int) int {
	if width < minWidth {
		return minWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

func (m Model) View() string {
	record := m.state.Record()
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewDeviceStatus(),
		m.viewEmotion(record),
		m.viewSuggestion(record),
		m.viewSelector(),
		m.help.View(m.keys),
	))
}

// cardWidth is the inner width of cards (borders excluded).
func (m Model) cardWidth() int {
	return m.width - 2
}

// label decorates the label of the focused control.
func (m Model) label(c Control, text string) string {
	if m.focus == c {
		return focusedMarker + text
	}
	return text
}

func (m Model) viewHeader() string {
	back := ghostButtonStyle.Render(m.label(BackButton, "← Back"))
	if m.focus == BackButton {
		back = ghostButtonStyle.Copy().Foreground(foregroundColor).Render(m.label(BackButton, "← Back"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		back,
		titleStyle.Render("🧠 Emotion Dashboard"),
		subtitleStyle.Copy().MarginBottom(1).Render("AI-detected emotional state in real time"),
	)
}

func (m Model) viewDeviceStatus() string {
	left := lipgloss.NewStyle().Bold(true).Render("⚡ Device Status")
	right := badgeStyle.Render("Connected")
	gap := m.cardWidth() - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return cardStyle.Copy().Width(m.cardWidth()).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) viewEmotion(record emotion.Record) string {
	inner := m.cardWidth() - 4
	emoji := lipgloss.NewStyle().
		Background(record.GlowColor).
		Padding(0, 2).
		Render(record.Emoji)
	name := lipgloss.NewStyle().Bold(true).Foreground(record.Color).Render(record.Name)
	content := lipgloss.JoinVertical(lipgloss.Center,
		gradientBar(record.Gradient, inner),
		"",
		emoji,
		"",
		name,
		lipgloss.NewStyle().Foreground(foregroundColor).Render(record.Message),
		subtitleStyle.Render("Last updated: "+m.state.LastUpdate.Format(m.timeLayout)),
		"",
		gradientBar([2]lipgloss.Color{record.Gradient[1], record.Gradient[0]}, inner),
	)
	return cardStyle.Copy().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(record.Color).
		Width(m.cardWidth()).
		Align(lipgloss.Center).
		Render(content)
}

func (m Model) viewSuggestion(record emotion.Record) string {
	action := buttonStyle.Copy().
		Background(primaryColor).
		Foreground(onColor).
		BorderForeground(record.GlowColor).
		Render(m.label(ActionButton, record.ActionLabel))
	dismiss := m.outlineButton(DismissButton).Render(m.label(DismissButton, "Dismiss"))

	return cardStyle.Copy().Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🧠 AstroMate Suggestion"),
		subtitleStyle.Copy().Width(m.cardWidth()-4).Render(record.Suggestion),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, action, dismiss),
	))
}

func (m Model) viewSelector() string {
	var buttons []string
	for _, e := range emotion.All() {
		buttons = append(buttons, m.viewSelectorButton(e))
	}
	return cardStyle.Copy().Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Simulate Emotion (Demo)"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	))
}

func (m Model) viewSelectorButton(e emotion.Emotion) string {
	record := emotion.Lookup(e)
	c := SelectorButton(e)
	content := lipgloss.JoinVertical(lipgloss.Center, record.Emoji, m.label(c, record.Name))

	if m.SelectorVariant(e) == VariantDefault {
		return buttonStyle.Copy().
			Border(lipgloss.ThickBorder()).
			BorderForeground(record.Color).
			Background(record.Color).
			Foreground(onColor).
			Bold(true).
			Align(lipgloss.Center).
			Render(content)
	}
	return m.outlineButton(c).Align(lipgloss.Center).Render(content)
}

func (m Model) outlineButton(c Control) lipgloss.Style {
	style := buttonStyle.Copy()
	if m.focus == c {
		style = style.BorderForeground(foregroundColor)
	}
	return style
}

// gradientBar draws a line whose color moves progressively between two colors.
func gradientBar(colors [2]lipgloss.Color, width int) string {
	from, err := colorful.Hex(string(colors[0]))
	if err != nil {
		return strings.Repeat("━", width)
	}
	to, err := colorful.Hex(string(colors[1]))
	if err != nil {
		return strings.Repeat("━", width)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := from.BlendLab(to, t).Clamped()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("━"))
	}
	return sb.String()
}
