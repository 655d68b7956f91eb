package keytable

import (
	"fmt"
	"io"
	"strings"
)

const (
	headerAction   = "Action"
	headerBindings = "PC Key Bindings"
)

// Render writes the table in canonical form: aligned pipe columns, the
// standard header, and one separator row. Parse(Render(t)) yields t again.
func (t *Table) Render(w io.Writer) error {
	actionW := len(headerAction)
	bindingW := len(headerBindings)
	for _, r := range t.Rows {
		if len(r.Action) > actionW {
			actionW = len(r.Action)
		}
		if l := len(joinKeys(r.Keys)); l > bindingW {
			bindingW = l
		}
	}

	if err := writeRow(w, headerAction, headerBindings, actionW, bindingW); err != nil {
		return err
	}
	sep := fmt.Sprintf("|%s|%s|\n", strings.Repeat("-", actionW+2), strings.Repeat("-", bindingW+2))
	if _, err := io.WriteString(w, sep); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := writeRow(w, r.Action, joinKeys(r.Keys), actionW, bindingW); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, action, bindings string, actionW, bindingW int) error {
	_, err := fmt.Fprintf(w, "| %-*s | %-*s |\n", actionW, action, bindingW, bindings)
	return err
}

func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}
