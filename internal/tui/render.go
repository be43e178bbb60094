package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour.
// An empty style lets glamour pick one from the terminal background.
func RenderMarkdown(content string, width int, style string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.Trim(rendered, "\n")
}

// QuoteMarkdown 把名言排成引用块
// QuoteMarkdown lays a quote out as a markdown block quote
func QuoteMarkdown(content, author string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("> ")
	b.WriteString(content)
	if author = strings.TrimSpace(author); author != "" {
		b.WriteString("\n>\n> — *")
		b.WriteString(author)
		b.WriteString("*")
	}
	return b.String()
}
