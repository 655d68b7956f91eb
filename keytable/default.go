package keytable

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed keybindings.md
var defaultTable string

var (
	defaultOnce sync.Once
	defaultTbl  *Table
	defaultErr  error
)

// Default returns the embedded Baldur's Gate 3 reference table, parsed once.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTbl, defaultErr = Parse(strings.NewReader(defaultTable))
		if defaultErr != nil {
			tblLog.Error().Err(defaultErr).Msg("embedded keybinding table failed to parse")
			return
		}
		tblLog.Debug().Int("rows", len(defaultTbl.Rows)).Msg("loaded embedded keybinding table")
	})
	return defaultTbl, defaultErr
}
