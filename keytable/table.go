// Package keytable models the Baldur's Gate 3 PC keybinding reference table:
// an ordered list of in-game actions, each with zero or more physical input
// bindings. The table is inert reference data; once parsed it is never
// mutated, only queried, linted and re-rendered.
package keytable

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var tblLog zerolog.Logger = log.With().Str("module", "keytable").Logger()

// KeyBinding is a single row: one action and its ordered bindings. Action
// names may repeat across rows and the binding list may be empty; both occur
// in the source document.
type KeyBinding struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys"`
}

// Table is the parsed reference table, preserving source row order.
type Table struct {
	Rows []KeyBinding
}

// Lookup returns every row whose action matches name exactly.
func (t *Table) Lookup(name string) []KeyBinding {
	var out []KeyBinding
	for _, r := range t.Rows {
		if r.Action == name {
			out = append(out, r)
		}
	}
	return out
}

// ByKey inverts the table: physical key name to the actions bound to it,
// in row order.
func (t *Table) ByKey() map[string][]string {
	out := make(map[string][]string)
	for _, r := range t.Rows {
		for _, k := range r.Keys {
			out[k] = append(out[k], r.Action)
		}
	}
	return out
}
