package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dashboard/internal/clock"
	"dashboard/internal/dashboard"
	"dashboard/internal/heading"
	"dashboard/internal/i18n"
	"dashboard/internal/sysinfo"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
)

const (
	promptText     = "mission> "
	eventQueueSize = 64
	agentWidth     = 60
)

var plainCommands = []string{"add", "toggle", "rm", "list", "city", "weather", "quote", "status", "help", "quit"}

// plainREPL 纯文本模式：命令与事件都在同一个循环里处理
// plainREPL is the line-mode front end; commands and events share one loop
type plainREPL struct {
	dash *dashboard.Dashboard
	loc  *i18n.I18n
	out  io.Writer
	term *termenv.Output

	// 请求过但尚未到达的结果，到达时再打印
	pendingWeather bool
	pendingQuote   bool
}

func newPlainREPL(d *dashboard.Dashboard, loc *i18n.I18n, out io.Writer) *plainREPL {
	if loc == nil {
		loc = i18n.Global()
	}
	return &plainREPL{
		dash: d,
		loc:  loc,
		out:  out,
		term: termenv.NewOutput(out),
	}
}

type lineResult struct {
	line string
	err  error
}

// runPlain 挂载仪表盘并运行命令循环，返回前释放全部定时器
// runPlain mounts the dashboard and runs the command loop; every timer is
// released before it returns
func runPlain(ctx context.Context, d *dashboard.Dashboard, in lineInput, out io.Writer, loc *i18n.I18n) error {
	r := newPlainREPL(d, loc, out)
	queue := dashboard.NewQueue(eventQueueSize)
	if err := d.Mount(ctx, queue.Emit); err != nil {
		return err
	}
	defer func() {
		queue.Close()
		d.Unmount()
	}()

	fmt.Fprintln(out, r.accent(r.loc.T("header.title")))
	fmt.Fprintln(out, r.loc.T("plain.banner"))

	lines := make(chan lineResult)
	next := make(chan struct{}, 1)
	next <- struct{}{}
	go func() {
		for range next {
			line, err := in.ReadLine(promptText)
			select {
			case lines <- lineResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, readline.ErrInterrupt) {
				return
			}
		}
	}()
	defer close(next)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-queue.Events():
			r.apply(ev)
		case res := <-lines:
			if res.err != nil {
				if errors.Is(res.err, readline.ErrInterrupt) {
					next <- struct{}{}
					continue
				}
				if errors.Is(res.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("read input: %w", res.err)
			}
			if r.exec(res.line) {
				fmt.Fprintln(out, r.loc.T("plain.bye"))
				return nil
			}
			next <- struct{}{}
		}
	}
}

// apply 应用事件；若用户之前请求了该结果则立即打印
// apply routes an event and prints the outcome the user was waiting for
func (r *plainREPL) apply(ev dashboard.Event) {
	if !r.dash.Apply(ev) {
		return
	}
	switch ev.(type) {
	case dashboard.WeatherLoaded:
		if r.pendingWeather {
			r.pendingWeather = false
			r.printWeather()
		}
	case dashboard.QuoteLoaded:
		if r.pendingQuote {
			r.pendingQuote = false
			r.printQuote()
		}
	}
}

// exec 执行一行命令，返回是否退出
// exec runs one command line and reports whether the loop should stop
func (r *plainREPL) exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(r.out, r.loc.T("plain.help"))
	case "add":
		if !r.dash.Tasks.Add(arg) {
			fmt.Fprintln(r.out, r.loc.T("plain.usage", "add <text>"))
			return false
		}
		fmt.Fprintln(r.out, r.loc.T("plain.added", arg))
	case "toggle":
		idx, ok := r.taskIndex(arg, "toggle <n>")
		if !ok {
			return false
		}
		r.dash.Tasks.Toggle(idx)
		state := r.loc.T("plain.open")
		if r.dash.Tasks.Items()[idx].Done {
			state = r.loc.T("plain.done")
		}
		fmt.Fprintln(r.out, r.loc.T("plain.toggled", idx+1, state))
	case "rm", "remove":
		idx, ok := r.taskIndex(arg, "rm <n>")
		if !ok {
			return false
		}
		text := r.dash.Tasks.Items()[idx].Text
		r.dash.Tasks.Remove(idx)
		fmt.Fprintln(r.out, r.loc.T("plain.removed", text))
	case "list", "ls":
		r.printTasks()
	case "city":
		if arg == "" {
			fmt.Fprintln(r.out, r.loc.T("plain.usage", "city <name>"))
			return false
		}
		if !r.dash.SetCity(arg) {
			fmt.Fprintln(r.out, r.loc.T("plain.city_same", r.dash.Weather.City))
			return false
		}
		r.pendingWeather = true
		fmt.Fprintln(r.out, r.muted(r.loc.T("plain.city_pending", r.dash.Weather.City)))
	case "weather":
		if r.dash.Weather.Loading {
			r.pendingWeather = true
		}
		r.printWeather()
	case "quote":
		if r.dash.Quote.Loading {
			r.pendingQuote = true
		}
		r.printQuote()
	case "status":
		r.printStatus()
	default:
		fmt.Fprintln(r.out, r.loc.T("plain.unknown", cmd))
	}
	return false
}

// taskIndex 把命令行上的 1 起始编号换算为位置下标
// taskIndex converts a 1-based command-line number into a positional index
func (r *plainREPL) taskIndex(arg, usage string) (int, bool) {
	if arg == "" {
		fmt.Fprintln(r.out, r.loc.T("plain.usage", usage))
		return 0, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > r.dash.Tasks.Len() {
		fmt.Fprintln(r.out, r.loc.T("plain.bad_index", arg))
		return 0, false
	}
	return n - 1, true
}

func (r *plainREPL) printTasks() {
	items := r.dash.Tasks.Items()
	fmt.Fprintln(r.out, r.accent(r.loc.T("panel.todo")))
	if len(items) == 0 {
		fmt.Fprintln(r.out, "  "+r.muted(r.loc.T("todo.empty")))
		return
	}
	for i, item := range items {
		box := "[ ]"
		if item.Done {
			box = "[x]"
		}
		fmt.Fprintf(r.out, "  %d. %s %s\n", i+1, box, item.Text)
	}
	fmt.Fprintln(r.out, "  "+r.muted(r.loc.T("todo.remaining", r.dash.Tasks.Remaining())))
}

func (r *plainREPL) printWeather() {
	w := r.dash.Weather
	title := r.accent(r.loc.T("panel.weather")) + " " + r.muted("("+w.City+")")
	switch {
	case w.Loading:
		fmt.Fprintln(r.out, title+": "+r.muted(r.loc.T("weather.loading")))
	case w.Err != "":
		fmt.Fprintln(r.out, title+": "+r.danger(r.loc.T("weather.error")))
	case w.Snapshot != nil:
		s := w.Snapshot
		fmt.Fprintf(r.out, "%s: %s %s, %s\n", title, s.TemperatureLabel(), s.Condition, s.Location())
	}
}

func (r *plainREPL) printQuote() {
	q := r.dash.Quote
	title := r.accent(r.loc.T("panel.quote"))
	switch {
	case q.Loading:
		fmt.Fprintln(r.out, title+": "+r.muted(r.loc.T("quote.loading")))
	case q.Err != "":
		fmt.Fprintln(r.out, title+": "+r.danger(r.loc.T("quote.error")))
	case q.Quote != nil:
		line := fmt.Sprintf("%s: “%s” — %s", title, q.Quote.Content, q.Quote.Author)
		if q.FromFallback {
			line += " " + r.muted("("+r.loc.T("quote.fallback")+")")
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *plainREPL) printStatus() {
	d := r.dash
	now := d.Clock.Now
	label, arrow := heading.Cardinal(d.Heading.Degrees)
	source := r.loc.T("compass.synthetic")
	if d.Heading.Source == "sensor" {
		source = r.loc.T("compass.sensor")
	}

	fmt.Fprintln(r.out, r.online(r.loc.T("header.status")))
	fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("panel.time"), clock.TimeString(now))
	fmt.Fprintf(r.out, "  %s: %s (%s)\n", r.loc.T("panel.date"), clock.DateString(now), r.loc.Weekday(now.Weekday()))
	fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("system.uptime"), clock.FormatUptime(d.Clock.Uptime))
	fmt.Fprintf(r.out, "  %s: %s %d° %s (%s)\n", r.loc.T("compass.heading"), arrow, d.Heading.Degrees, label, source)
	fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("system.browser"), sysinfo.ShortAgent(d.System.Agent, agentWidth))
	fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("system.os"), d.System.Platform)
	fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("system.screen"), d.System.Screen)
	if fact := strings.TrimSpace(d.Facts.Emoji + " " + d.Facts.Fact); fact != "" {
		fmt.Fprintf(r.out, "  %s: %s\n", r.loc.T("panel.fact"), fact)
	}
	fmt.Fprintln(r.out, r.muted(clock.MissionTime(now)))
}

// --- termenv 着色 / termenv colouring ---

func (r *plainREPL) accent(s string) string {
	return r.term.String(s).Foreground(r.term.Color("#00eaff")).Bold().String()
}

func (r *plainREPL) online(s string) string {
	return r.term.String(s).Foreground(r.term.Color("#43ff43")).Bold().String()
}

func (r *plainREPL) danger(s string) string {
	return r.term.String(s).Foreground(r.term.Color("#ff5c5c")).String()
}

func (r *plainREPL) muted(s string) string {
	return r.term.String(s).Faint().String()
}
