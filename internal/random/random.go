package random

import "math/rand/v2"

// Source 随机数来源，可在测试中替换为确定序列
// Source yields uniform integers in [0, n); tests swap in a fixed sequence
type Source interface {
	IntN(n int) int
}

// New 返回基于 math/rand/v2 的默认来源
// New returns the default source backed by math/rand/v2
func New() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick 从 items 中均匀随机选取一项；空切片返回零值与 false
// Pick selects one item uniformly at random; an empty slice yields the zero value and false
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if src == nil {
		src = New()
	}
	idx := src.IntN(len(items))
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	return items[idx], true
}

// Sequence 按顺序循环返回预设值（取模 n），用于测试
// Sequence replays preset values in order (modulo n); used by tests
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a deterministic source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
