package quote

import (
	"fmt"
	"strings"

	"dashboard/internal/random"
)

// Policy 获取失败时的处理策略
// Policy decides what the widget shows when the fetch fails
type Policy string

const (
	// PolicyFallback 从备用列表随机挑一条，当作实时结果展示
	PolicyFallback Policy = "fallback"
	// PolicyError 显示固定错误信息
	PolicyError Policy = "error"
)

// ErrorMessage is shown under PolicyError.
const ErrorMessage = "Could not fetch quote."

// ParsePolicy accepts "fallback" or "error"; empty means fallback.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFallback:
		return PolicyFallback, nil
	case PolicyError:
		return PolicyError, nil
	default:
		return "", fmt.Errorf("unknown quote failure policy %q", s)
	}
}

// Widget 名言组件状态机：loading -> success | error
// Widget holds the quote state machine: loading -> success | error
type Widget struct {
	Loading      bool
	Quote        *Quote
	Err          string
	FromFallback bool

	policy   Policy
	fallback []Quote
	rnd      random.Source
}

// NewWidget 创建组件；fallback 与随机源由调用方注入
// NewWidget creates the widget with injected fallback data and random source
func NewWidget(policy Policy, fallback []Quote, rnd random.Source) *Widget {
	if policy == "" {
		policy = PolicyFallback
	}
	if rnd == nil {
		rnd = random.New()
	}
	return &Widget{
		Loading:  true,
		policy:   policy,
		fallback: append([]Quote(nil), fallback...),
		rnd:      rnd,
	}
}

func (w *Widget) Policy() Policy {
	return w.policy
}

// Begin 进入 loading 状态
// Begin enters the loading state
func (w *Widget) Begin() {
	w.Loading = true
	w.Err = ""
}

// Resolve 应用一次获取结果；任何错误都折叠为同一种失败
// Resolve applies one fetch outcome; every error collapses to a single failure
func (w *Widget) Resolve(q Quote, err error) {
	w.Loading = false
	if err == nil {
		w.Quote = &q
		w.Err = ""
		w.FromFallback = false
		return
	}

	if w.policy == PolicyFallback {
		if pick, ok := random.Pick(w.rnd, w.fallback); ok {
			w.Quote = &pick
			w.Err = ""
			w.FromFallback = true
			return
		}
	}
	w.Quote = nil
	w.FromFallback = false
	w.Err = ErrorMessage
}
