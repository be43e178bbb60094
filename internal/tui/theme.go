package tui

import "github.com/charmbracelet/lipgloss"

// Theme 定义 TUI 主题色彩和样式
// Theme defines TUI colors and styles
type Theme struct {
	// 基础色 / Base colors
	Background lipgloss.Color
	Panel      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Online     lipgloss.Color
	Danger     lipgloss.Color
	Warm       lipgloss.Color

	// 预构建样式 / Pre-built styles
	HeaderStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	PanelStyle       lipgloss.Style
	FocusPanelStyle  lipgloss.Style
	PanelTitleStyle  lipgloss.Style
	BigStyle         lipgloss.Style
	TextStyle        lipgloss.Style
	MutedStyle       lipgloss.Style
	ErrorStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	DoneStyle        lipgloss.Style
	LabelStyle       lipgloss.Style
	FooterStyle      lipgloss.Style
	HelpOverlayStyle lipgloss.Style
}

// NeonTheme 深色霓虹主题（默认）
// NeonTheme is the default dark neon theme
func NeonTheme() Theme {
	t := Theme{
		Background: lipgloss.Color("#0a0a0a"),
		Panel:      lipgloss.Color("#181c20"),
		Border:     lipgloss.Color("#38bdf8"),
		Accent:     lipgloss.Color("#00eaff"),
		Text:       lipgloss.Color("#e5e5e5"),
		Muted:      lipgloss.Color("#7a8590"),
		Online:     lipgloss.Color("#43ff43"),
		Danger:     lipgloss.Color("#ff5c5c"),
		Warm:       lipgloss.Color("#ffd166"),
	}

	t.HeaderStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.StatusStyle = lipgloss.NewStyle().
		Foreground(t.Online).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.FocusPanelStyle = t.PanelStyle.
		BorderForeground(t.Accent)

	t.PanelTitleStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.BigStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.SelectedStyle = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent)

	t.DoneStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Strikethrough(true)

	t.LabelStyle = lipgloss.NewStyle().
		Foreground(t.Warm)

	t.FooterStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.HelpOverlayStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	return t
}
