package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	actionStyle   = lipgloss.NewStyle().Width(38)
	bindingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unboundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	findingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Width(10)
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func (m Model) View() string {
	if m.showHelp {
		return renderHelp()
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Baldur's Gate 3 - PC Key Bindings"))
	sb.WriteString("\n\n")

	visible := m.visibleRowCount()
	start := m.scrollStart(visible)
	end := min(len(m.rows), start+visible)

	for i := start; i < end; i++ {
		r := m.rows[i]
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		binding := strings.Join(r.Keys, ", ")
		if binding == "" {
			binding = unboundStyle.Render("(unbound)")
		} else {
			binding = bindingStyle.Render(binding)
		}
		sb.WriteString(prefix)
		sb.WriteString(actionStyle.Render(r.Action))
		sb.WriteString(binding)
		sb.WriteString("\n")
	}
	if len(m.rows) == 0 {
		sb.WriteString(statusStyle.Render("  no matching actions"))
		sb.WriteString("\n")
	}

	if m.showLint {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("--- Lint findings ---"))
		sb.WriteString("\n")
		if len(m.findings) == 0 {
			sb.WriteString(statusStyle.Render("nothing to review"))
			sb.WriteString("\n")
		}
		for _, f := range m.findings {
			sb.WriteString(findingStyle.Render(f.String()))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m Model) statusLine() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d/%d actions", len(m.rows), len(m.table.Rows)))
	if len(m.findings) > 0 {
		parts = append(parts, fmt.Sprintf("%d findings", len(m.findings)))
	}
	if m.filtering {
		parts = append(parts, "filter: "+m.filter+"_")
	} else if m.filter != "" {
		parts = append(parts, "filter: "+m.filter)
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render("reload error: "+m.err.Error()))
	}
	parts = append(parts, "? help")
	return statusStyle.Render(strings.Join(parts, " | "))
}

// visibleRowCount leaves room for the title and status chrome.
func (m Model) visibleRowCount() int {
	if m.height == 0 {
		return len(m.rows)
	}
	v := m.height - 5
	if m.showLint {
		v -= len(m.findings) + 2
	}
	return max(1, v)
}

func (m Model) scrollStart(visible int) int {
	if m.cursor >= visible {
		return m.cursor - visible + 1
	}
	return 0
}

func renderHelp() string {
	sections := []struct {
		header  string
		entries []struct{ key, desc string }
	}{
		{
			header: "Navigation",
			entries: []struct{ key, desc string }{
				{"^/k", "Move cursor up"},
				{"v/j", "Move cursor down"},
				{"g/G", "Jump to top / bottom"},
			},
		},
		{
			header: "Views",
			entries: []struct{ key, desc string }{
				{"/", "Filter actions and bindings"},
				{"l", "Toggle lint findings"},
				{"?", "Toggle this help screen"},
				{"q", "Quit"},
			},
		},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("bg3bridge - Keybinding browser"))
	sb.WriteString("\n\n")
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(sectionStyle.Render("--- " + section.header + " ---"))
		sb.WriteString("\n")
		for _, e := range section.entries {
			sb.WriteString(helpKeyStyle.Render(e.key))
			sb.WriteString(helpDescStyle.Render(e.desc))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Press any key to close"))
	return sb.String()
}
