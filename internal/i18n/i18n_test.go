package i18n

import (
	"testing"
	"time"
)

func TestNew_English(t *testing.T) {
	i := New("en")
	if i.Locale() != "en" {
		t.Fatalf("Locale()=%q, want en", i.Locale())
	}
	if got := i.T("todo.empty"); got != "No tasks yet!" {
		t.Fatalf("T(todo.empty)=%q, want No tasks yet!", got)
	}
}

func TestNew_Chinese(t *testing.T) {
	i := New("zh-CN")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	if got := i.T("panel.weather"); got != "天气" {
		t.Fatalf("T(panel.weather)=%q, want 天气", got)
	}
}

func TestNew_ChineseFromLang(t *testing.T) {
	i := New("zh_CN.UTF-8")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	if got := i.T("panel.todo"); got != "待办事项" {
		t.Fatalf("T(panel.todo)=%q, want 待办事项", got)
	}
}

func TestDetectLocaleFromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_LANG", "zh")
	if got := DetectLocale(); got != "zh-CN" {
		t.Fatalf("DetectLocale()=%q, want zh-CN", got)
	}
}

func TestT_WithArgs(t *testing.T) {
	i := New("en")
	got := i.T("todo.remaining", 3)
	if got != "3 remaining" {
		t.Fatalf("T with args=%q", got)
	}
}

func TestT_MissingKey(t *testing.T) {
	i := New("en")
	if got := i.T("nonexistent.key"); got != "nonexistent.key" {
		t.Fatalf("T missing key=%q, want key itself", got)
	}
}

func TestWeekday(t *testing.T) {
	en := New("en")
	zh := New("zh-CN")
	if got := en.Weekday(time.Wednesday); got != "Wednesday" {
		t.Fatalf("Weekday=%q", got)
	}
	if got := zh.Weekday(time.Sunday); got != "星期日" {
		t.Fatalf("Weekday=%q", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for k := range EnMessages {
		if _, ok := ZhCNMessages[k]; !ok {
			t.Errorf("zh-CN catalog missing %q", k)
		}
	}
	for k := range ZhCNMessages {
		if _, ok := EnMessages[k]; !ok {
			t.Errorf("en catalog missing %q", k)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en_US.UTF-8", "en"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"zh_TW", "zh-CN"},
		{"en", "en"},
		{"", "en"},
		{"fr_FR", "fr-FR"},
	}
	for _, tt := range tests {
		got := normalizeLocale(tt.input)
		if got != tt.expected {
			t.Errorf("normalizeLocale(%q)=%q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGlobal(t *testing.T) {
	g := Global()
	if g == nil {
		t.Fatal("Global() should not be nil")
	}
	// 应该返回同一实例 / Should return same instance
	g2 := Global()
	if g != g2 {
		t.Fatal("Global() should return same instance")
	}
}
