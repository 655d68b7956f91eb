// Package ui is a read-only terminal browser for the keybinding reference
// table: scrolling, substring filtering, a lint overlay and live reload when
// browsing a file on disk.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/invertedmushroom/bg3bridge/keytable"
)

var uiLog zerolog.Logger = log.With().Str("module", "ui").Logger()

// Model is the bubbletea model for the browser.
type Model struct {
	table *keytable.Table
	path  string // empty when browsing the embedded table

	rows   []keytable.KeyBinding // filtered view of table.Rows
	cursor int

	filter    string
	filtering bool

	showHelp bool
	showLint bool
	findings []keytable.Finding

	width  int
	height int

	keys    keyMap
	watcher *fsnotify.Watcher
	err     error
}

// New builds a browser over tbl. If path is non-empty the file is watched
// and reloaded on change.
func New(tbl *keytable.Table, path string) Model {
	m := Model{
		table: tbl,
		path:  path,
		keys:  defaultKeyMap(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	w, err := createWatcher(m.path)
	if err != nil {
		uiLog.Warn().Err(err).Str("path", m.path).Msg("live reload disabled")
		return nil
	}
	// Init cannot mutate m; smuggle the watcher in through a message.
	return tea.Batch(
		func() tea.Msg { return watcherReadyMsg{watcher: w} },
		waitForChange(w),
	)
}

// refresh recomputes the filtered rows and lint findings.
func (m *Model) refresh() {
	m.findings = m.table.Lint()
	m.rows = m.rows[:0]
	needle := strings.ToLower(m.filter)
	for _, r := range m.table.Rows {
		if needle == "" || rowMatches(r, needle) {
			m.rows = append(m.rows, r)
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

func rowMatches(r keytable.KeyBinding, needle string) bool {
	if strings.Contains(strings.ToLower(r.Action), needle) {
		return true
	}
	for _, k := range r.Keys {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case watcherReadyMsg:
		m.watcher = msg.watcher
		return m, nil

	case tableChangedMsg:
		reloaded, err := loadFile(m.path)
		if err != nil {
			// Keep showing the last good table; edits often land mid-save.
			m.err = err
			uiLog.Warn().Err(err).Msg("reload failed, keeping previous table")
		} else {
			m.err = nil
			m.table = reloaded
			m.refresh()
			uiLog.Debug().Int("rows", len(m.table.Rows)).Msg("table reloaded")
		}
		return m, waitForChange(m.watcher)

	case watcherErrMsg:
		m.err = msg.err
		return m, waitForChange(m.watcher)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
		case "esc":
			m.filtering = false
			m.filter = ""
			m.refresh()
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.refresh()
			}
		default:
			if len(msg.Runes) > 0 {
				m.filter += string(msg.Runes)
				m.refresh()
			}
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes the help screen.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.rows)-1)
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Lint):
		m.showLint = !m.showLint
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func loadFile(path string) (*keytable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return keytable.Parse(f)
}
