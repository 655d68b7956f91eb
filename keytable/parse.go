package keytable

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads the pipe-delimited two-column table format:
//
//	| Action | PC Key Bindings |
//	|--------|-----------------|
//	| Jump   | Z               |
//
// Each data row must have exactly two columns. The first column (action) must
// be non-empty; the second holds a comma-separated list of physical inputs
// and may be empty. Separator rows (dashes) and blank lines are skipped.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	t := &Table{}
	lineNo := 0
	sawHeader := false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "|") {
			return nil, fmt.Errorf("line %d: not a table row: %q", lineNo, line)
		}

		cells, err := splitRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if isSeparator(cells) {
			continue
		}
		if !sawHeader {
			// First non-separator row is the header; its content is not data.
			sawHeader = true
			continue
		}

		action := cells[0]
		if action == "" {
			return nil, fmt.Errorf("line %d: empty action name", lineNo)
		}
		t.Rows = append(t.Rows, KeyBinding{
			Action: action,
			Keys:   splitKeys(cells[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	tblLog.Debug().Int("rows", len(t.Rows)).Msg("parsed keybinding table")
	return t, nil
}

// splitRow breaks "| a | b |" into its trimmed cells, enforcing the
// two-column shape.
func splitRow(line string) ([]string, error) {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	raw := strings.Split(line, "|")
	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(c)
	}
	if len(cells) != 2 {
		return nil, fmt.Errorf("expected 2 columns, got %d", len(cells))
	}
	return cells, nil
}

func isSeparator(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			return false
		}
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}

// splitKeys splits a comma-separated binding cell into its ordered entries.
// An empty cell means the action is unbound.
func splitKeys(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
