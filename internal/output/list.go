package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListRenderer provides list formatting.
type ListRenderer struct {
	titleStyle lipgloss.Style
	itemStyle  lipgloss.Style
	keyStyle   lipgloss.Style
	indent     string
}

// NewListRenderer creates a new list renderer with default styling.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(Mauve),
		itemStyle:  lipgloss.NewStyle().Foreground(Text),
		keyStyle:   lipgloss.NewStyle().Foreground(Blue),
		indent:     "  ",
	}
}

// RenderMap formats a title and key-value pairs, sorted by key and aligned.
func (l *ListRenderer) RenderMap(title string, items map[string]string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(l.titleStyle.Render(title))
		sb.WriteString("\n")
	}

	keys := make([]string, 0, len(items))
	maxKeyLen := 0
	for key := range items {
		keys = append(keys, key)
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(l.indent)
		sb.WriteString(l.keyStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, key)))
		sb.WriteString(": ")
		sb.WriteString(l.itemStyle.Render(items[key]))
		sb.WriteString("\n")
	}

	return sb.String()
}
