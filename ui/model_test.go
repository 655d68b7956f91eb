package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/invertedmushroom/bg3bridge/keytable"
)

func testTable(t *testing.T) *keytable.Table {
	t.Helper()
	src := `| Action | PC Key Bindings |
|---|---|
| Jump | Z |
| Toggle Map | M |
| Go to Camp | |
`
	tbl, err := keytable.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_CursorMovement(t *testing.T) {
	m := New(testTable(t), "")
	if m.cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.cursor)
	}
	m = update(t, m, keyMsg("down"), keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("expected cursor at 2, got %d", m.cursor)
	}
	// Clamped at the bottom.
	m = update(t, m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("cursor must clamp at last row, got %d", m.cursor)
	}
	m = update(t, m, keyMsg("up"))
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", m.cursor)
	}
}

func TestModel_Filter(t *testing.T) {
	m := New(testTable(t), "")
	m = update(t, m, keyMsg("/"), keyMsg("m"), keyMsg("a"), keyMsg("p"), keyMsg("enter"))
	if len(m.rows) != 1 || m.rows[0].Action != "Toggle Map" {
		t.Fatalf("expected only Toggle Map, got %+v", m.rows)
	}

	// Esc clears the filter.
	m = update(t, m, keyMsg("/"), keyMsg("esc"))
	if len(m.rows) != 3 {
		t.Errorf("expected full table after filter clear, got %d rows", len(m.rows))
	}
}

func TestModel_FilterMatchesBindings(t *testing.T) {
	m := New(testTable(t), "")
	m = update(t, m, keyMsg("/"), keyMsg("z"), keyMsg("enter"))
	if len(m.rows) != 1 || m.rows[0].Action != "Jump" {
		t.Errorf("filter should match binding names, got %+v", m.rows)
	}
}

func TestModel_LintOverlay(t *testing.T) {
	m := New(testTable(t), "")
	if len(m.findings) != 1 {
		t.Fatalf("expected one finding (unbound Go to Camp), got %d", len(m.findings))
	}
	m = update(t, m, keyMsg("l"))
	if !m.showLint {
		t.Errorf("expected lint overlay on")
	}
	view := m.View()
	if !strings.Contains(view, "unbound-action") {
		t.Errorf("lint overlay should show findings:\n%s", view)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(testTable(t), "")
	m = update(t, m, keyMsg("?"))
	if !m.showHelp {
		t.Fatalf("expected help screen")
	}
	if !strings.Contains(m.View(), "Keybinding browser") {
		t.Errorf("help view missing title")
	}
	// Any key closes it.
	m = update(t, m, keyMsg("x"))
	if m.showHelp {
		t.Errorf("any key should close help")
	}
}

func TestModel_ViewShowsUnbound(t *testing.T) {
	m := New(testTable(t), "")
	view := m.View()
	if !strings.Contains(view, "Go to Camp") || !strings.Contains(view, "(unbound)") {
		t.Errorf("view should mark unbound actions:\n%s", view)
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(testTable(t), "")
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}
