package tui

import (
	"dashboard/internal/i18n"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap 定义全局快捷键绑定
// KeyMap defines global keybindings
type KeyMap struct {
	Focus  key.Binding
	Submit key.Binding
	Toggle key.Binding
	Remove key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap 默认快捷键，帮助文字走 i18n
// DefaultKeyMap returns default keybindings with localised help text
func DefaultKeyMap(loc *i18n.I18n) KeyMap {
	if loc == nil {
		loc = i18n.Global()
	}
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", loc.T("key.focus")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.T("key.submit")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", loc.T("key.toggle")),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d/del", loc.T("key.remove")),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", loc.T("key.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", loc.T("key.down")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", loc.T("key.help")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", loc.T("key.quit")),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Toggle, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Toggle, k.Remove},
		{k.Up, k.Down, k.Help, k.Quit},
	}
}
