package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"dashboard/internal/clock"
	"dashboard/internal/dashboard"
	"dashboard/internal/i18n"
	"dashboard/internal/quote"
	"dashboard/internal/random"
	"dashboard/internal/sysinfo"
	"dashboard/internal/weather"

	tea "github.com/charmbracelet/bubbletea"
)

type stillHeading struct{}

func (stillHeading) Name() string { return "synthetic" }
func (stillHeading) Run(ctx context.Context, emit func(int)) {
	emit(45)
	<-ctx.Done()
}

type idleTicker struct{ ch chan time.Time }

func (t idleTicker) C() <-chan time.Time { return t.ch }
func (t idleTicker) Stop()               {}

var testStart = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (App, *dashboard.Dashboard) {
	t.Helper()
	d := dashboard.New(dashboard.Options{
		Random:  random.NewSequence(0),
		Heading: stillHeading{},
		SystemInfo: func() sysinfo.Info {
			return sysinfo.Info{Agent: "dashboard/dev (linux; amd64) go1.24 xterm", Platform: "linux/amd64", Screen: "120x40"}
		},
		NewTicker: func(time.Duration) clock.Ticker { return idleTicker{ch: make(chan time.Time)} },
		Now:       func() time.Time { return testStart },
	})
	if err := d.Mount(context.Background(), func(dashboard.Event) {}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(d.Unmount)

	app := NewApp(d, Options{Locale: i18n.New("en"), MarkdownStyle: "notty"})
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), d
}

func update(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppAddTask(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, typeText("Buy milk"), tea.KeyMsg{Type: tea.KeyEnter})
	app = update(t, app, typeText("Walk dog"), tea.KeyMsg{Type: tea.KeyEnter})

	items := d.Tasks.Items()
	if len(items) != 2 || items[0].Text != "Walk dog" || items[1].Text != "Buy milk" {
		t.Fatalf("unexpected tasks: %+v", items)
	}
	if app.todoInput.Value() != "" {
		t.Fatalf("input not cleared: %q", app.todoInput.Value())
	}
}

func TestAppBlankTaskIgnored(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, typeText("   "), tea.KeyMsg{Type: tea.KeyEnter})
	if d.Tasks.Len() != 0 {
		t.Fatalf("blank task added")
	}
	if !strings.Contains(app.View(), "No tasks yet!") {
		t.Fatalf("missing empty state")
	}
}

func TestAppListKeys(t *testing.T) {
	app, d := newTestApp(t)
	for _, s := range []string{"c", "b", "a"} {
		d.Tasks.Add(s)
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.focus != FocusTodoList {
		t.Fatalf("focus=%v, want list", app.focus)
	}

	app = update(t, app, typeText("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !d.Tasks.Items()[1].Done {
		t.Fatalf("space should toggle the selected task")
	}
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if d.Tasks.Items()[1].Done {
		t.Fatalf("enter should toggle the selected task back")
	}

	app = update(t, app, typeText("j"), typeText("d"))
	items := d.Tasks.Items()
	if len(items) != 2 || items[0].Text != "a" || items[1].Text != "b" {
		t.Fatalf("unexpected tasks after remove: %+v", items)
	}
	if app.cursor != 1 {
		t.Fatalf("cursor=%d, want clamped to 1", app.cursor)
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyDelete}, tea.KeyMsg{Type: tea.KeyDelete}, tea.KeyMsg{Type: tea.KeyDelete})
	if d.Tasks.Len() != 0 || app.cursor != 0 {
		t.Fatalf("len=%d cursor=%d", d.Tasks.Len(), app.cursor)
	}
}

func TestAppListKeysTypeIntoInput(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, typeText("do?"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.showHelp {
		t.Fatalf("? in the task input must not open help")
	}
	if d.Tasks.Len() != 1 || d.Tasks.Items()[0].Text != "do?" {
		t.Fatalf("unexpected tasks: %+v", d.Tasks.Items())
	}
}

func TestAppFocusCycle(t *testing.T) {
	app, _ := newTestApp(t)
	want := []FocusID{FocusTodoList, FocusCityInput, FocusTodoInput}
	for _, f := range want {
		app = update(t, app, tea.KeyMsg{Type: tea.KeyTab})
		if app.focus != f {
			t.Fatalf("focus=%v, want %v", app.focus, f)
		}
	}
}

func TestAppCityChangeAndWeather(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, dashboard.WeatherLoaded{
		Seq:      1,
		City:     "Raleigh",
		Snapshot: weather.Snapshot{Temperature: 71.6, Condition: "Clear", LocationName: "Raleigh", CountryCode: "US"},
	})
	view := app.View()
	for _, want := range []string{"72°F", "Clear", "Raleigh, US"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	app = update(t, app, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	app.cityInput.SetValue("Paris")
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if d.Weather.City != "Paris" || !d.Weather.Loading || d.Weather.Snapshot != nil {
		t.Fatalf("weather=%+v", d.Weather)
	}
	if !strings.Contains(app.View(), "Loading...") {
		t.Fatalf("missing loading state")
	}

	// 旧城市的迟到响应被丢弃
	app = update(t, app, dashboard.WeatherLoaded{Seq: 1, City: "Raleigh", Snapshot: weather.Snapshot{Temperature: 50}})
	if d.Weather.Snapshot != nil {
		t.Fatalf("stale response applied")
	}

	app = update(t, app, dashboard.WeatherLoaded{Seq: 2, City: "Paris", Err: context.DeadlineExceeded})
	if !strings.Contains(app.View(), "Could not fetch weather.") {
		t.Fatalf("missing weather error")
	}
}

func TestAppQuoteRendering(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, dashboard.QuoteLoaded{Quote: quote.Quote{Content: "Stay curious.", Author: "Ada"}})
	if d.Quote.Loading {
		t.Fatalf("quote still loading")
	}
	view := app.View()
	if !strings.Contains(view, "Stay curious.") || !strings.Contains(view, "Ada") {
		t.Fatalf("quote missing from view")
	}
	if strings.Contains(view, "offline quote") {
		t.Fatalf("live quote marked as fallback")
	}
}

func TestAppQuoteFallbackMarker(t *testing.T) {
	app, d := newTestApp(t)

	app = update(t, app, dashboard.QuoteLoaded{Err: context.DeadlineExceeded})
	if d.Quote.Loading || !d.Quote.FromFallback {
		t.Fatalf("quote=%+v", d.Quote)
	}
	if !strings.Contains(app.View(), "offline quote") {
		t.Fatalf("missing fallback marker")
	}
}

func TestAppStaticPanels(t *testing.T) {
	app, _ := newTestApp(t)
	app = update(t, app, dashboard.ClockTicked{Now: testStart.Add(3661 * time.Second)})

	view := app.View()
	for _, want := range []string{
		"MISSION CONTROL DASHBOARD",
		"SYSTEM STATUS: ONLINE",
		"13:01:01",
		"2024-03-06",
		"Wednesday",
		"01:01:01",
		"linux/amd64",
		"120x40",
		"MISSION TIME: 2024-03-06 13:01:01 ZULU",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestAppHelpOverlay(t *testing.T) {
	app, _ := newTestApp(t)

	app = update(t, app, tea.KeyMsg{Type: tea.KeyTab}, typeText("?"))
	if !app.showHelp {
		t.Fatalf("? on the list should open help")
	}
	if !strings.Contains(app.View(), "Keyboard shortcuts") {
		t.Fatalf("help overlay not rendered")
	}

	app = update(t, app, typeText("d"))
	if !app.showHelp {
		t.Fatalf("help should swallow other keys")
	}
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Fatalf("esc should close help")
	}
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestAppIgnoresEventsAfterUnmount(t *testing.T) {
	app, d := newTestApp(t)
	d.Unmount()
	app = update(t, app, dashboard.QuoteLoaded{Quote: quote.Quote{Content: "late", Author: "x"}})
	if d.Quote.Quote != nil {
		t.Fatalf("late quote applied")
	}
	_ = app
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		n, cursor, size int
		start, end      int
	}{
		{3, 0, 8, 0, 3},
		{20, 0, 8, 0, 8},
		{20, 10, 8, 6, 14},
		{20, 19, 8, 12, 20},
	}
	for _, tt := range tests {
		s, e := visibleWindow(tt.n, tt.cursor, tt.size)
		if s != tt.start || e != tt.end {
			t.Errorf("visibleWindow(%d,%d,%d)=(%d,%d), want (%d,%d)", tt.n, tt.cursor, tt.size, s, e, tt.start, tt.end)
		}
	}
}
