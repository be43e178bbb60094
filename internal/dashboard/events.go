package dashboard

import (
	"sync"
	"time"

	"dashboard/internal/quote"
	"dashboard/internal/weather"
)

// Event 组件刷新事件，只在事件循环中应用
// Event is a widget refresh; events are applied only on the event loop
type Event interface {
	event()
}

// ClockTicked fires once per clock interval.
type ClockTicked struct{ Now time.Time }

// HeadingChanged carries a new heading in degrees.
type HeadingChanged struct{ Degrees int }

// QuoteLoaded carries the outcome of the mount-time quote fetch.
type QuoteLoaded struct {
	Quote quote.Quote
	Err   error
}

// WeatherLoaded carries the outcome of one weather request.
type WeatherLoaded struct {
	Seq      uint64
	City     string
	Snapshot weather.Snapshot
	Err      error
}

func (ClockTicked) event()    {}
func (HeadingChanged) event() {}
func (QuoteLoaded) event()    {}
func (WeatherLoaded) event()  {}

// Queue 非 bubbletea 事件循环使用的事件通道
// Queue feeds events to loops that do not run under bubbletea
type Queue struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

func NewQueue(size int) *Queue {
	if size < 0 {
		size = 0
	}
	return &Queue{ch: make(chan Event, size), done: make(chan struct{})}
}

// Emit delivers ev unless the queue is closed; it never blocks after Close.
func (q *Queue) Emit(ev Event) {
	select {
	case <-q.done:
		return
	default:
	}
	select {
	case q.ch <- ev:
	case <-q.done:
	}
}

func (q *Queue) Events() <-chan Event {
	return q.ch
}

// Close stops delivery; pending senders return immediately.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
}
