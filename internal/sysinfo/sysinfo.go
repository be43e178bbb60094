package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Info 挂载时读取一次的主机信息
// Info is the host description read once at mount
type Info struct {
	Agent    string
	Platform string
	Screen   string
}

// Probe 主机查询入口，测试可替换
// Probe holds the host queries so tests can substitute them
type Probe struct {
	Program string
	Version string
	Fd      int
	GetSize func(fd int) (width, height int, err error)
	Env     func(key string) string
}

// DefaultProbe queries the real host through stdout.
func DefaultProbe(version string) Probe {
	return Probe{
		Program: filepath.Base(os.Args[0]),
		Version: version,
		Fd:      int(os.Stdout.Fd()),
		GetSize: term.GetSize,
		Env:     os.Getenv,
	}
}

// Read 汇总 agent / platform / screen
// Read collects the agent, platform and screen strings
func (p Probe) Read() Info {
	program := strings.TrimSpace(p.Program)
	if program == "" {
		program = "dashboard"
	}
	version := strings.TrimSpace(p.Version)
	if version == "" {
		version = "dev"
	}
	agent := fmt.Sprintf("%s/%s (%s; %s) %s", program, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	if p.Env != nil {
		if termName := strings.TrimSpace(p.Env("TERM")); termName != "" {
			agent += " " + termName
		}
	}

	screen := "unknown"
	if p.GetSize != nil {
		if w, h, err := p.GetSize(p.Fd); err == nil && w > 0 && h > 0 {
			screen = fmt.Sprintf("%dx%d", w, h)
		}
	}
	return Info{
		Agent:    agent,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Screen:   screen,
	}
}

// ShortAgent 截取到第一个 ") "，并按显示宽度截断
// ShortAgent cuts the agent at the first ") " and truncates it to width cells
func ShortAgent(agent string, width int) string {
	if idx := strings.Index(agent, ") "); idx >= 0 {
		agent = agent[:idx+1]
	}
	if width > 0 {
		agent = runewidth.Truncate(agent, width, "…")
	}
	return agent
}
