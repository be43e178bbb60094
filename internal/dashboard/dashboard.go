package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dashboard/internal/clock"
	"dashboard/internal/facts"
	"dashboard/internal/heading"
	"dashboard/internal/logging"
	"dashboard/internal/quote"
	"dashboard/internal/random"
	"dashboard/internal/sysinfo"
	"dashboard/internal/tasks"
	"dashboard/internal/weather"
)

var (
	ErrAlreadyMounted = errors.New("dashboard already mounted")
	errNoFetcher      = errors.New("fetcher not configured")
)

// Options 构造参数；静态数据与随机源均由调用方注入
// Options configures a Dashboard; static data and the random source are injected
type Options struct {
	City           string
	QuotePolicy    quote.Policy
	FallbackQuotes []quote.Quote
	Facts          []string
	Emoji          []string
	Random         random.Source

	Quotes  quote.Fetcher
	Weather weather.Fetcher

	// Heading overrides the capability probe when set.
	Heading      heading.Provider
	HeadingProbe heading.ProbeOptions

	SystemInfo   func() sysinfo.Info
	TickInterval time.Duration
	NewTicker    clock.NewTickerFunc
	Now          func() time.Time
	Logger       *slog.Logger
}

// Dashboard 拥有全部组件状态；Apply 只能在单个事件循环中调用
// Dashboard owns every widget; Apply must only be called from one event loop
type Dashboard struct {
	Tasks   *tasks.List
	Clock   *clock.Widget
	Quote   *quote.Widget
	Weather *weather.Widget
	Heading *heading.Widget
	Facts   facts.Widget
	System  sysinfo.Info

	opts    Options
	log     *slog.Logger
	emit    func(Event)
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mounted bool
}

func New(opts Options) *Dashboard {
	if opts.Random == nil {
		opts.Random = random.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = clock.TickInterval
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.FallbackQuotes == nil {
		opts.FallbackQuotes = quote.DefaultFallback()
	}
	if opts.Facts == nil {
		opts.Facts = facts.DefaultFacts()
	}
	if opts.Emoji == nil {
		opts.Emoji = facts.DefaultEmoji()
	}
	city := strings.TrimSpace(opts.City)
	if city == "" {
		city = weather.DefaultCity
	}

	return &Dashboard{
		Tasks:   tasks.NewList(),
		Clock:   clock.NewWidget(opts.Now()),
		Quote:   quote.NewWidget(opts.QuotePolicy, opts.FallbackQuotes, opts.Random),
		Weather: weather.NewWidget(city),
		Heading: &heading.Widget{},
		opts:    opts,
		log:     opts.Logger,
	}
}

// Mount 启动时钟、航向订阅与两次远程获取；emit 把事件交回事件循环
// Mount starts the clock, the heading subscription and both remote fetches;
// emit hands events back to the event loop
func (d *Dashboard) Mount(ctx context.Context, emit func(Event)) error {
	if d.mounted {
		return ErrAlreadyMounted
	}
	d.mounted = true
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.emit = emit

	now := d.opts.Now()
	d.Clock = clock.NewWidget(now)
	d.Facts = facts.Pick(d.opts.Facts, d.opts.Emoji, d.opts.Random)
	if d.opts.SystemInfo != nil {
		d.System = d.opts.SystemInfo()
	}

	provider := d.opts.Heading
	if provider == nil {
		provider = heading.Probe(d.opts.HeadingProbe)
	}
	d.Heading.Source = provider.Name()
	d.log.Debug("dashboard mounted", "heading", provider.Name(), "city", d.Weather.City)

	d.goRun(func(ctx context.Context) {
		clock.Run(ctx, d.opts.TickInterval, d.opts.NewTicker, func(t time.Time) {
			d.post(ctx, ClockTicked{Now: t})
		})
	})
	d.goRun(func(ctx context.Context) {
		provider.Run(ctx, func(deg int) {
			d.post(ctx, HeadingChanged{Degrees: deg})
		})
	})

	d.Quote.Begin()
	d.goRun(d.fetchQuote)
	d.startWeather(d.Weather.City)
	return nil
}

// Unmount 取消全部定时器、监听与请求并等待其退出
// Unmount cancels every timer, listener and request and waits for them to exit
func (d *Dashboard) Unmount() {
	if !d.mounted {
		return
	}
	d.mounted = false
	d.cancel()
	d.wg.Wait()
	d.log.Debug("dashboard unmounted")
}

func (d *Dashboard) Mounted() bool {
	return d.mounted
}

// Apply 把事件应用到所属组件；卸载后到达的事件被忽略
// Apply routes an event to its widget; events arriving after unmount are ignored
func (d *Dashboard) Apply(ev Event) bool {
	if !d.mounted {
		return false
	}
	switch ev := ev.(type) {
	case ClockTicked:
		d.Clock.Tick(ev.Now)
	case HeadingChanged:
		d.Heading.Apply(ev.Degrees)
	case QuoteLoaded:
		if ev.Err != nil {
			d.log.Warn("quote fetch failed", "err", ev.Err, "policy", string(d.Quote.Policy()))
		}
		d.Quote.Resolve(ev.Quote, ev.Err)
	case WeatherLoaded:
		if !d.Weather.Resolve(ev.Seq, ev.Snapshot, ev.Err) {
			d.log.Debug("stale weather response dropped", "city", ev.City, "seq", ev.Seq)
			return false
		}
		if ev.Err != nil {
			d.log.Warn("weather fetch failed", "err", ev.Err, "city", ev.City)
		}
	default:
		return false
	}
	return true
}

// SetCity 城市变化时重新获取天气；空白或未变化则忽略
// SetCity refetches weather when the city changes; blank or unchanged input is ignored
func (d *Dashboard) SetCity(city string) bool {
	city = strings.TrimSpace(city)
	if city == "" || city == d.Weather.City {
		return false
	}
	if !d.mounted {
		d.Weather.City = city
		return true
	}
	d.startWeather(city)
	return true
}

func (d *Dashboard) startWeather(city string) {
	req := d.Weather.Begin(city)
	d.goRun(func(ctx context.Context) {
		if d.opts.Weather == nil {
			d.post(ctx, WeatherLoaded{Seq: req.Seq, City: req.City, Err: errNoFetcher})
			return
		}
		snap, err := d.opts.Weather.Fetch(ctx, req.City)
		d.post(ctx, WeatherLoaded{Seq: req.Seq, City: req.City, Snapshot: snap, Err: err})
	})
}

func (d *Dashboard) fetchQuote(ctx context.Context) {
	if d.opts.Quotes == nil {
		d.post(ctx, QuoteLoaded{Err: errNoFetcher})
		return
	}
	q, err := d.opts.Quotes.Fetch(ctx)
	d.post(ctx, QuoteLoaded{Quote: q, Err: err})
}

func (d *Dashboard) goRun(fn func(ctx context.Context)) {
	ctx := d.ctx
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn(ctx)
	}()
}

func (d *Dashboard) post(ctx context.Context, ev Event) {
	if ctx.Err() != nil || d.emit == nil {
		return
	}
	d.emit(ev)
}
