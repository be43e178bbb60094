package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dashboard/internal/clock"
	"dashboard/internal/dashboard"
	"dashboard/internal/heading"
	"dashboard/internal/i18n"
	"dashboard/internal/sysinfo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FocusID 当前获得键盘焦点的区域
// FocusID identifies the area that owns keyboard input
type FocusID int

const (
	FocusTodoInput FocusID = iota
	FocusTodoList
	FocusCityInput
	focusCount
)

const (
	minTwoColumnWidth = 80
	maxVisibleTasks   = 8
	maxHelpWidth      = 80
)

// Options TUI 构造参数
// Options configures the TUI
type Options struct {
	Locale    *i18n.I18n
	AltScreen bool
	// MarkdownStyle is a glamour standard style name; empty means auto-detect.
	MarkdownStyle string
}

// App Bubble Tea 主 Model
// App is the main Bubble Tea model
type App struct {
	// 布局 / Layout
	width  int
	height int

	dash *dashboard.Dashboard

	// 输入 / Input
	focus     FocusID
	todoInput textinput.Model
	cityInput textinput.Model
	cursor    int

	spinner  spinner.Model
	help     help.Model
	showHelp bool

	// glamour 渲染缓存，只在 Update 中刷新
	quoteView   string
	quoteSource string
	helpView    string

	// 配置 / Config
	theme         Theme
	keys          KeyMap
	locale        *i18n.I18n
	markdownStyle string
}

// NewApp 创建 TUI 应用
// NewApp creates a new TUI application over d
func NewApp(d *dashboard.Dashboard, opts Options) App {
	loc := opts.Locale
	if loc == nil {
		loc = i18n.Global()
	}
	theme := NeonTheme()

	todo := textinput.New()
	todo.Placeholder = loc.T("todo.placeholder")
	todo.CharLimit = 256
	todo.Prompt = "› "
	todo.Focus()

	city := textinput.New()
	city.Placeholder = loc.T("weather.placeholder")
	city.CharLimit = 64
	city.Prompt = "⌖ "
	city.SetValue(d.Weather.City)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = theme.MutedStyle
	h.Styles.ShortSeparator = theme.MutedStyle

	return App{
		dash:          d,
		focus:         FocusTodoInput,
		todoInput:     todo,
		cityInput:     city,
		spinner:       sp,
		help:          h,
		theme:         theme,
		keys:          DefaultKeyMap(loc),
		locale:        loc,
		markdownStyle: opts.MarkdownStyle,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spinner.Tick)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case dashboard.Event:
		if a.dash.Apply(msg) {
			if _, ok := msg.(dashboard.QuoteLoaded); ok {
				a.refreshQuote()
			}
		}
		return a, nil
	}

	return a.updateFocusedInput(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// 帮助浮层打开时只接受关闭键 / Help overlay swallows everything but close
	if a.showHelp {
		if key.Matches(msg, a.keys.Help, a.keys.Close) {
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Focus):
		a.setFocus((a.focus + 1) % focusCount)
		return a, nil
	case key.Matches(msg, a.keys.Submit):
		a.submit()
		return a, nil
	}

	if a.focus != FocusTodoList {
		return a.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Toggle):
		a.dash.Tasks.Toggle(a.cursor)
	case key.Matches(msg, a.keys.Remove):
		if a.dash.Tasks.Remove(a.cursor) {
			a.clampCursor()
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < a.dash.Tasks.Len()-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		a.refreshHelp()
	}
	return a, nil
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case FocusTodoInput:
		a.todoInput, cmd = a.todoInput.Update(msg)
	case FocusCityInput:
		a.cityInput, cmd = a.cityInput.Update(msg)
	}
	return a, cmd
}

// --- 内部方法 / Internal methods ---

func (a *App) submit() {
	switch a.focus {
	case FocusTodoInput:
		if a.dash.Tasks.Add(a.todoInput.Value()) {
			a.todoInput.Reset()
			a.cursor = 0
		}
	case FocusTodoList:
		a.dash.Tasks.Toggle(a.cursor)
	case FocusCityInput:
		city := strings.TrimSpace(a.cityInput.Value())
		if a.dash.SetCity(city) {
			a.cityInput.SetValue(city)
		}
	}
}

func (a *App) setFocus(f FocusID) {
	a.focus = f
	a.todoInput.Blur()
	a.cityInput.Blur()
	switch f {
	case FocusTodoInput:
		a.todoInput.Focus()
	case FocusCityInput:
		a.cityInput.Focus()
	case FocusTodoList:
		a.clampCursor()
	}
}

func (a *App) clampCursor() {
	if n := a.dash.Tasks.Len(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) relayout() {
	inner := a.columnWidth() - 4
	if inner < 10 {
		inner = 10
	}
	a.todoInput.Width = inner - 2
	a.cityInput.Width = inner - 2
	a.help.Width = a.width
	a.quoteSource = ""
	a.refreshQuote()
	if a.showHelp {
		a.refreshHelp()
	}
}

func (a *App) refreshQuote() {
	q := a.dash.Quote.Quote
	if q == nil {
		a.quoteView = ""
		a.quoteSource = ""
		return
	}
	src := QuoteMarkdown(q.Content, q.Author)
	if src == a.quoteSource && a.quoteView != "" {
		return
	}
	a.quoteSource = src
	a.quoteView = RenderMarkdown(src, a.columnWidth()-4, a.markdownStyle)
}

func (a *App) refreshHelp() {
	width := a.width - 4
	if width > maxHelpWidth || width <= 0 {
		width = maxHelpWidth
	}
	a.helpView = RenderMarkdown(a.locale.T("help.body"), width, a.markdownStyle)
}

func (a App) columnWidth() int {
	if a.width <= 0 {
		return maxHelpWidth
	}
	if a.width < minTwoColumnWidth {
		return a.width
	}
	return a.width / 2
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	if a.showHelp {
		overlay := a.theme.HelpOverlayStyle.Render(a.helpView)
		return lipgloss.JoinVertical(lipgloss.Left, header, overlay, footer)
	}

	colWidth := a.columnWidth()
	left := []string{
		a.renderTodo(colWidth),
		a.renderWeather(colWidth),
		a.renderQuote(colWidth),
	}
	right := []string{
		a.renderTime(colWidth),
		a.renderDate(colWidth),
		a.renderSystem(colWidth),
		a.renderFact(colWidth),
		a.renderCompass(colWidth),
	}

	var body string
	if a.width < minTwoColumnWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, append(left, right...)...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, left...),
			lipgloss.JoinVertical(lipgloss.Left, right...),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// --- 渲染方法 / Render methods ---

func (a App) panel(width int, title, body string, focused bool) string {
	style := a.theme.PanelStyle
	if focused {
		style = a.theme.FocusPanelStyle
	}
	content := a.theme.PanelTitleStyle.Render(title) + "\n" + body
	return style.Width(width - 2).Render(content)
}

func (a App) renderHeader() string {
	title := a.theme.HeaderStyle.Render(a.locale.T("header.title"))
	status := a.theme.StatusStyle.Render("● " + a.locale.T("header.status"))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status)
}

func (a App) renderFooter() string {
	mission := a.theme.FooterStyle.Render(clock.MissionTime(a.dash.Clock.Now))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, mission) + "\n" + a.help.View(a.keys)
}

func (a App) renderTodo(width int) string {
	tasks := a.dash.Tasks
	title := a.locale.T("panel.todo")
	if tasks.Len() > 0 {
		title += " " + a.theme.MutedStyle.Render("("+a.locale.T("todo.remaining", tasks.Remaining())+")")
	}

	var lines []string
	lines = append(lines, a.todoInput.View())

	items := tasks.Items()
	if len(items) == 0 {
		lines = append(lines, a.theme.MutedStyle.Render(a.locale.T("todo.empty")))
	} else {
		start, end := visibleWindow(len(items), a.cursor, maxVisibleTasks)
		if start > 0 {
			lines = append(lines, a.theme.MutedStyle.Render("  ⋮"))
		}
		for i := start; i < end; i++ {
			item := items[i]
			box := "[ ]"
			text := a.theme.TextStyle.Render(item.Text)
			if item.Done {
				box = "[x]"
				text = a.theme.DoneStyle.Render(item.Text)
			}
			line := box + " " + text
			if a.focus == FocusTodoList && i == a.cursor {
				line = a.theme.SelectedStyle.Render("›") + " " + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
		if end < len(items) {
			lines = append(lines, a.theme.MutedStyle.Render("  ⋮"))
		}
	}

	focused := a.focus == FocusTodoInput || a.focus == FocusTodoList
	return a.panel(width, title, strings.Join(lines, "\n"), focused)
}

func (a App) renderTime(width int) string {
	body := a.theme.BigStyle.Render(clock.TimeString(a.dash.Clock.Now))
	return a.panel(width, a.locale.T("panel.time"), body, false)
}

func (a App) renderDate(width int) string {
	now := a.dash.Clock.Now
	body := a.theme.BigStyle.Render(clock.DateString(now)) + "\n" +
		a.theme.LabelStyle.Render(a.locale.T("date.day")+": ") + a.locale.Weekday(now.Weekday())
	return a.panel(width, a.locale.T("panel.date"), body, false)
}

func (a App) renderSystem(width int) string {
	sys := a.dash.System
	label := func(k string) string { return a.theme.LabelStyle.Render(a.locale.T(k) + ": ") }
	agentWidth := width - 6 - lipgloss.Width(label("system.browser"))
	lines := []string{
		label("system.browser") + sysinfo.ShortAgent(sys.Agent, agentWidth),
		label("system.os") + sys.Platform,
		label("system.screen") + sys.Screen,
		label("system.uptime") + a.theme.BigStyle.Render(clock.FormatUptime(a.dash.Clock.Uptime)),
	}
	return a.panel(width, a.locale.T("panel.system"), strings.Join(lines, "\n"), false)
}

func (a App) renderWeather(width int) string {
	w := a.dash.Weather
	lines := []string{a.cityInput.View()}
	switch {
	case w.Loading:
		lines = append(lines, a.spinner.View()+" "+a.theme.MutedStyle.Render(a.locale.T("weather.loading")))
	case w.Err != "":
		lines = append(lines, a.theme.ErrorStyle.Render(a.locale.T("weather.error")))
	case w.Snapshot != nil:
		snap := w.Snapshot
		lines = append(lines,
			a.theme.BigStyle.Render(snap.TemperatureLabel())+"  "+a.theme.TextStyle.Render(snap.Condition),
			a.theme.MutedStyle.Render(snap.Location()),
		)
	}
	return a.panel(width, a.locale.T("panel.weather"), strings.Join(lines, "\n"), a.focus == FocusCityInput)
}

func (a App) renderQuote(width int) string {
	q := a.dash.Quote
	var body string
	switch {
	case q.Loading:
		body = a.spinner.View() + " " + a.theme.MutedStyle.Render(a.locale.T("quote.loading"))
	case q.Err != "":
		body = a.theme.ErrorStyle.Render(a.locale.T("quote.error"))
	case q.Quote != nil:
		body = a.quoteView
		if body == "" {
			body = fmt.Sprintf("“%s”\n— %s", q.Quote.Content, q.Quote.Author)
		}
		if q.FromFallback {
			body += "\n" + a.theme.MutedStyle.Render("("+a.locale.T("quote.fallback")+")")
		}
	}
	return a.panel(width, a.locale.T("panel.quote"), body, false)
}

func (a App) renderFact(width int) string {
	f := a.dash.Facts
	body := a.theme.TextStyle.Width(width - 6).Render(strings.TrimSpace(f.Emoji + " " + f.Fact))
	return a.panel(width, a.locale.T("panel.fact"), body, false)
}

func (a App) renderCompass(width int) string {
	h := a.dash.Heading
	label, arrow := heading.Cardinal(h.Degrees)
	source := a.locale.T("compass.synthetic")
	if h.Source == "sensor" {
		source = a.locale.T("compass.sensor")
	}
	body := a.theme.LabelStyle.Render(a.locale.T("compass.heading")+": ") +
		a.theme.BigStyle.Render(fmt.Sprintf("%s %d° %s", arrow, h.Degrees, label)) + "\n" +
		a.theme.MutedStyle.Render(source)
	return a.panel(width, a.locale.T("panel.compass"), body, false)
}

// visibleWindow 返回以光标为中心的可见区间 [start, end)
// visibleWindow returns the [start, end) slice of rows that keeps cursor visible
func visibleWindow(n, cursor, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

// Run 挂载仪表盘并启动 Bubble Tea；程序退出后才卸载
// Run mounts the dashboard and starts the Bubble Tea program; the dashboard is
// unmounted only after the program loop has stopped
func Run(ctx context.Context, d *dashboard.Dashboard, opts Options) error {
	app := NewApp(d, opts)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, programOpts...)

	if err := d.Mount(ctx, func(ev dashboard.Event) { p.Send(ev) }); err != nil {
		return err
	}
	defer d.Unmount()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
