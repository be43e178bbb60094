package tasks

import "strings"

// Task 待办条目，身份即当前位置
// Task is a single to-do entry; its identity is its current position
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List 会话内待办列表，最新条目在前
// List is the in-memory to-do list for one session, newest first
type List struct {
	items []Task
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add 前插新条目；去空白后为空则忽略
// Add prepends a new entry; text that is empty after trimming is ignored.
// It reports whether the entry was added so the caller can clear its input.
func (l *List) Add(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	l.items = append([]Task{{Text: text}}, l.items...)
	return true
}

// Toggle flips Done at index; out-of-range indices are ignored.
func (l *List) Toggle(index int) bool {
	if !l.valid(index) {
		return false
	}
	l.items[index].Done = !l.items[index].Done
	return true
}

// Remove deletes the entry at index and shifts later entries down by one.
func (l *List) Remove(index int) bool {
	if !l.valid(index) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// Items returns a copy of the entries in display order.
func (l *List) Items() []Task {
	return append([]Task(nil), l.items...)
}

func (l *List) Len() int {
	return len(l.items)
}

// Remaining counts entries not yet done.
func (l *List) Remaining() int {
	n := 0
	for _, t := range l.items {
		if !t.Done {
			n++
		}
	}
	return n
}

func (l *List) valid(index int) bool {
	return index >= 0 && index < len(l.items)
}
