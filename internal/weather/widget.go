package weather

import "strings"

const (
	DefaultCity  = "Raleigh"
	ErrorMessage = "Could not fetch weather."
)

// Request 一次天气请求，Seq 用于丢弃过期响应
// Request identifies one fetch; Seq lets the widget drop superseded responses
type Request struct {
	Seq  uint64
	City string
}

// Widget 天气组件状态机：loading -> success | error
// Widget holds the weather state machine: loading -> success | error
type Widget struct {
	City     string
	Loading  bool
	Snapshot *Snapshot
	Err      string

	seq uint64
}

func NewWidget(city string) *Widget {
	city = strings.TrimSpace(city)
	if city == "" {
		city = DefaultCity
	}
	return &Widget{City: city, Loading: true}
}

// Begin 切换城市并进入 loading，丢弃旧快照
// Begin switches to city, enters loading and discards the prior snapshot
func (w *Widget) Begin(city string) Request {
	w.seq++
	w.City = city
	w.Loading = true
	w.Snapshot = nil
	w.Err = ""
	return Request{Seq: w.seq, City: city}
}

// Resolve 应用结果；过期的 seq 被忽略并返回 false
// Resolve applies a fetch outcome; a stale seq is ignored and reports false
func (w *Widget) Resolve(seq uint64, snap Snapshot, err error) bool {
	if seq != w.seq {
		return false
	}
	w.Loading = false
	if err != nil {
		w.Snapshot = nil
		w.Err = ErrorMessage
		return true
	}
	w.Snapshot = &snap
	w.Err = ""
	return true
}
